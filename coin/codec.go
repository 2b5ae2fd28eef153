package coin

import "github.com/gogo/protobuf/proto"

type wireCoin Coin

func (m *wireCoin) Reset()         { *m = wireCoin{} }
func (m *wireCoin) String() string { return proto.CompactTextString(m) }
func (*wireCoin) ProtoMessage()    {}

func (m *Coin) Reset()      { *m = Coin{} }
func (*Coin) ProtoMessage() {}

func (m *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*wireCoin)(m))
}

func (m *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireCoin)(m))
}
