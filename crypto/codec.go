package crypto

import "github.com/gogo/protobuf/proto"

type wirePublicKey PublicKey

func (m *wirePublicKey) Reset()         { *m = wirePublicKey{} }
func (m *wirePublicKey) String() string { return proto.CompactTextString(m) }
func (*wirePublicKey) ProtoMessage()    {}

func (m *PublicKey) Reset()         { *m = PublicKey{} }
func (m *PublicKey) String() string { return proto.CompactTextString((*wirePublicKey)(m)) }
func (*PublicKey) ProtoMessage()    {}

func (m *PublicKey) Marshal() ([]byte, error) {
	return proto.Marshal((*wirePublicKey)(m))
}

func (m *PublicKey) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wirePublicKey)(m))
}

type wirePrivateKey PrivateKey

func (m *wirePrivateKey) Reset()         { *m = wirePrivateKey{} }
func (m *wirePrivateKey) String() string { return proto.CompactTextString(m) }
func (*wirePrivateKey) ProtoMessage()    {}

func (m *PrivateKey) Reset()         { *m = PrivateKey{} }
func (m *PrivateKey) String() string { return "PrivateKey{...}" }
func (*PrivateKey) ProtoMessage()    {}

func (m *PrivateKey) Marshal() ([]byte, error) {
	return proto.Marshal((*wirePrivateKey)(m))
}

func (m *PrivateKey) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wirePrivateKey)(m))
}

type wireSignature Signature

func (m *wireSignature) Reset()         { *m = wireSignature{} }
func (m *wireSignature) String() string { return proto.CompactTextString(m) }
func (*wireSignature) ProtoMessage()    {}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString((*wireSignature)(m)) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) Marshal() ([]byte, error) {
	return proto.Marshal((*wireSignature)(m))
}

func (m *Signature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireSignature)(m))
}
