package bazaar

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

type DemoMsg struct {
	Num  int
	Text string
}

func (DemoMsg) Path() string               { return "path" }
func (DemoMsg) Marshal() ([]byte, error)   { return []byte("foo"), nil }
func (*DemoMsg) Unmarshal(bz []byte) error { return nil }

func (m DemoMsg) Validate() error {
	if m.Num < 0 {
		return errors.Wrap(errors.ErrMsg, "negative number")
	}
	return nil
}

var _ Msg = (*DemoMsg)(nil)

type OtherMsg struct {
	ID int
}

func (OtherMsg) Path() string               { return "other" }
func (OtherMsg) Validate() error            { return nil }
func (OtherMsg) Marshal() ([]byte, error)   { return nil, nil }
func (*OtherMsg) Unmarshal(bz []byte) error { return nil }

type txMock struct {
	msg Msg
}

func (txMock) Marshal() ([]byte, error)   { return nil, nil }
func (*txMock) Unmarshal(bz []byte) error { return nil }
func (tx *txMock) GetMsg() (Msg, error)   { return tx.msg, nil }

type Container struct {
	Signatures []string
	Demo       *DemoMsg
	Other      *OtherMsg
}

type BadContents struct {
	Data *Container
}

func TestExtractMsgFromSum(t *testing.T) {
	msg := &DemoMsg{Num: 17, Text: "hello world"}

	cases := map[string]struct {
		input   interface{}
		wantErr *errors.Error
	}{
		"success": {
			input: &Container{Demo: msg},
		},
		"slices are ignored": {
			input: &Container{Signatures: []string{"a"}, Other: &OtherMsg{ID: 1}},
		},
		"nil input is not allowed": {
			input:   nil,
			wantErr: errors.ErrInput,
		},
		"invalid input content, number": {
			input:   7,
			wantErr: errors.ErrInput,
		},
		"empty container": {
			input:   &Container{},
			wantErr: errors.ErrState,
		},
		"container must be a pointer": {
			input:   Container{Demo: msg},
			wantErr: errors.ErrInput,
		},
		"more than one message": {
			input:   &Container{Demo: msg, Other: &OtherMsg{}},
			wantErr: errors.ErrState,
		},
		"field is not a message": {
			input:   &BadContents{&Container{}},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := ExtractMsgFromSum(tc.input)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil && res == nil {
				t.Fatal("nil result")
			}
		})
	}
}

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantMsg interface{}
		wantErr *errors.Error
	}{
		"success": {
			tx:      &txMock{msg: &DemoMsg{Num: 102, Text: "foobar"}},
			dest:    &DemoMsg{},
			wantMsg: &DemoMsg{Num: 102, Text: "foobar"},
		},
		"transaction contains a nil message": {
			tx:      &txMock{msg: nil},
			dest:    &DemoMsg{},
			wantErr: errors.ErrState,
		},
		"invalid destination message, not a pointer": {
			tx:      &txMock{msg: &DemoMsg{Num: 1}},
			dest:    DemoMsg{},
			wantErr: errors.ErrType,
		},
		"invalid destination message, wrong message type": {
			tx:      &txMock{msg: &DemoMsg{Num: 1}},
			dest:    &OtherMsg{},
			wantErr: errors.ErrType,
		},
		"invalid destination message, nil interface": {
			tx:      &txMock{msg: &DemoMsg{Num: 1}},
			dest:    nil,
			wantErr: errors.ErrType,
		},
		"message is validated": {
			tx:      &txMock{msg: &DemoMsg{Num: -1}},
			dest:    &DemoMsg{},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantMsg, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "path", GetPath(&txMock{msg: &DemoMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&txMock{}))
}
