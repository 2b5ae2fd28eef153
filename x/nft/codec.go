package nft

import "github.com/gogo/protobuf/proto"

type wireCollection Collection

func (m *wireCollection) Reset()         { *m = wireCollection{} }
func (m *wireCollection) String() string { return proto.CompactTextString(m) }
func (*wireCollection) ProtoMessage()    {}

func (m *Collection) Reset()         { *m = Collection{} }
func (m *Collection) String() string { return proto.CompactTextString((*wireCollection)(m)) }
func (*Collection) ProtoMessage()    {}

func (m *Collection) Marshal() ([]byte, error) {
	return proto.Marshal((*wireCollection)(m))
}

func (m *Collection) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireCollection)(m))
}

type wireToken Token

func (m *wireToken) Reset()         { *m = wireToken{} }
func (m *wireToken) String() string { return proto.CompactTextString(m) }
func (*wireToken) ProtoMessage()    {}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString((*wireToken)(m)) }
func (*Token) ProtoMessage()    {}

func (m *Token) Marshal() ([]byte, error) {
	return proto.Marshal((*wireToken)(m))
}

func (m *Token) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireToken)(m))
}

type wireCreateCollectionMsg CreateCollectionMsg

func (m *wireCreateCollectionMsg) Reset()         { *m = wireCreateCollectionMsg{} }
func (m *wireCreateCollectionMsg) String() string { return proto.CompactTextString(m) }
func (*wireCreateCollectionMsg) ProtoMessage()    {}

func (m *CreateCollectionMsg) Reset()         { *m = CreateCollectionMsg{} }
func (m *CreateCollectionMsg) String() string { return proto.CompactTextString((*wireCreateCollectionMsg)(m)) }
func (*CreateCollectionMsg) ProtoMessage()    {}

func (m *CreateCollectionMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireCreateCollectionMsg)(m))
}

func (m *CreateCollectionMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireCreateCollectionMsg)(m))
}

type wireMintMsg MintMsg

func (m *wireMintMsg) Reset()         { *m = wireMintMsg{} }
func (m *wireMintMsg) String() string { return proto.CompactTextString(m) }
func (*wireMintMsg) ProtoMessage()    {}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString((*wireMintMsg)(m)) }
func (*MintMsg) ProtoMessage()    {}

func (m *MintMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireMintMsg)(m))
}

func (m *MintMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireMintMsg)(m))
}

type wireApproveMsg ApproveMsg

func (m *wireApproveMsg) Reset()         { *m = wireApproveMsg{} }
func (m *wireApproveMsg) String() string { return proto.CompactTextString(m) }
func (*wireApproveMsg) ProtoMessage()    {}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString((*wireApproveMsg)(m)) }
func (*ApproveMsg) ProtoMessage()    {}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireApproveMsg)(m))
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireApproveMsg)(m))
}

type wireTransferMsg TransferMsg

func (m *wireTransferMsg) Reset()         { *m = wireTransferMsg{} }
func (m *wireTransferMsg) String() string { return proto.CompactTextString(m) }
func (*wireTransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString((*wireTransferMsg)(m)) }
func (*TransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireTransferMsg)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireTransferMsg)(m))
}
