package bazaar

import "github.com/gogo/protobuf/proto"

// wireMetadata is the serialization form of Metadata. It carries the same
// field tags but none of the methods, so that the protobuf runtime encodes
// it using reflection.
type wireMetadata Metadata

func (m *wireMetadata) Reset()         { *m = wireMetadata{} }
func (m *wireMetadata) String() string { return proto.CompactTextString(m) }
func (*wireMetadata) ProtoMessage()    {}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString((*wireMetadata)(m)) }
func (*Metadata) ProtoMessage()    {}

func (m *Metadata) Marshal() ([]byte, error) {
	return proto.Marshal((*wireMetadata)(m))
}

func (m *Metadata) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireMetadata)(m))
}
