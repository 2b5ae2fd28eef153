package app

import "github.com/gogo/protobuf/proto"

type wireTx Tx

func (m *wireTx) Reset()         { *m = wireTx{} }
func (m *wireTx) String() string { return proto.CompactTextString(m) }
func (*wireTx) ProtoMessage()    {}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString((*wireTx)(m)) }
func (*Tx) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*wireTx)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireTx)(m))
}

type wireTxMsg TxMsg

func (m *wireTxMsg) Reset()         { *m = wireTxMsg{} }
func (m *wireTxMsg) String() string { return proto.CompactTextString(m) }
func (*wireTxMsg) ProtoMessage()    {}

func (m *TxMsg) Reset()         { *m = TxMsg{} }
func (m *TxMsg) String() string { return proto.CompactTextString((*wireTxMsg)(m)) }
func (*TxMsg) ProtoMessage()    {}

func (m *TxMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireTxMsg)(m))
}

func (m *TxMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireTxMsg)(m))
}
