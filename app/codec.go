package app

import "github.com/gogo/protobuf/proto"

type wireResultSet ResultSet

func (m *wireResultSet) Reset()         { *m = wireResultSet{} }
func (m *wireResultSet) String() string { return proto.CompactTextString(m) }
func (*wireResultSet) ProtoMessage()    {}

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString((*wireResultSet)(m)) }
func (*ResultSet) ProtoMessage()    {}

func (m *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal((*wireResultSet)(m))
}

func (m *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireResultSet)(m))
}
