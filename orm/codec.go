package orm

import "github.com/gogo/protobuf/proto"

type wireMultiRef MultiRef

func (m *wireMultiRef) Reset()         { *m = wireMultiRef{} }
func (m *wireMultiRef) String() string { return proto.CompactTextString(m) }
func (*wireMultiRef) ProtoMessage()    {}

func (m *MultiRef) Reset()         { *m = MultiRef{} }
func (m *MultiRef) String() string { return proto.CompactTextString((*wireMultiRef)(m)) }
func (*MultiRef) ProtoMessage()    {}

func (m *MultiRef) Marshal() ([]byte, error) {
	return proto.Marshal((*wireMultiRef)(m))
}

func (m *MultiRef) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireMultiRef)(m))
}
