package cash

import "github.com/gogo/protobuf/proto"

type wireSet Set

func (m *wireSet) Reset()         { *m = wireSet{} }
func (m *wireSet) String() string { return proto.CompactTextString(m) }
func (*wireSet) ProtoMessage()    {}

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString((*wireSet)(m)) }
func (*Set) ProtoMessage()    {}

func (m *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*wireSet)(m))
}

func (m *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireSet)(m))
}

type wireSendMsg SendMsg

func (m *wireSendMsg) Reset()         { *m = wireSendMsg{} }
func (m *wireSendMsg) String() string { return proto.CompactTextString(m) }
func (*wireSendMsg) ProtoMessage()    {}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString((*wireSendMsg)(m)) }
func (*SendMsg) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireSendMsg)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireSendMsg)(m))
}
