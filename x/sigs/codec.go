package sigs

import "github.com/gogo/protobuf/proto"

type wireUserData UserData

func (m *wireUserData) Reset()         { *m = wireUserData{} }
func (m *wireUserData) String() string { return proto.CompactTextString(m) }
func (*wireUserData) ProtoMessage()    {}

func (m *UserData) Reset()         { *m = UserData{} }
func (m *UserData) String() string { return proto.CompactTextString((*wireUserData)(m)) }
func (*UserData) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*wireUserData)(m))
}

func (m *UserData) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireUserData)(m))
}

type wireStdSignature StdSignature

func (m *wireStdSignature) Reset()         { *m = wireStdSignature{} }
func (m *wireStdSignature) String() string { return proto.CompactTextString(m) }
func (*wireStdSignature) ProtoMessage()    {}

func (m *StdSignature) Reset()         { *m = StdSignature{} }
func (m *StdSignature) String() string { return proto.CompactTextString((*wireStdSignature)(m)) }
func (*StdSignature) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*wireStdSignature)(m))
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireStdSignature)(m))
}
