package exchange

import "github.com/gogo/protobuf/proto"

type wireListing Listing

func (m *wireListing) Reset()         { *m = wireListing{} }
func (m *wireListing) String() string { return proto.CompactTextString(m) }
func (*wireListing) ProtoMessage()    {}

func (m *Listing) Reset()         { *m = Listing{} }
func (m *Listing) String() string { return proto.CompactTextString((*wireListing)(m)) }
func (*Listing) ProtoMessage()    {}

func (m *Listing) Marshal() ([]byte, error) {
	return proto.Marshal((*wireListing)(m))
}

func (m *Listing) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireListing)(m))
}

type wireProceeds Proceeds

func (m *wireProceeds) Reset()         { *m = wireProceeds{} }
func (m *wireProceeds) String() string { return proto.CompactTextString(m) }
func (*wireProceeds) ProtoMessage()    {}

func (m *Proceeds) Reset()         { *m = Proceeds{} }
func (m *Proceeds) String() string { return proto.CompactTextString((*wireProceeds)(m)) }
func (*Proceeds) ProtoMessage()    {}

func (m *Proceeds) Marshal() ([]byte, error) {
	return proto.Marshal((*wireProceeds)(m))
}

func (m *Proceeds) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireProceeds)(m))
}

type wireConfiguration Configuration

func (m *wireConfiguration) Reset()         { *m = wireConfiguration{} }
func (m *wireConfiguration) String() string { return proto.CompactTextString(m) }
func (*wireConfiguration) ProtoMessage()    {}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString((*wireConfiguration)(m)) }
func (*Configuration) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*wireConfiguration)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireConfiguration)(m))
}

type wireUpdateConfigurationMsg UpdateConfigurationMsg

func (m *wireUpdateConfigurationMsg) Reset()         { *m = wireUpdateConfigurationMsg{} }
func (m *wireUpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*wireUpdateConfigurationMsg) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString((*wireUpdateConfigurationMsg)(m)) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireUpdateConfigurationMsg)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireUpdateConfigurationMsg)(m))
}

type wireListItemMsg ListItemMsg

func (m *wireListItemMsg) Reset()         { *m = wireListItemMsg{} }
func (m *wireListItemMsg) String() string { return proto.CompactTextString(m) }
func (*wireListItemMsg) ProtoMessage()    {}

func (m *ListItemMsg) Reset()         { *m = ListItemMsg{} }
func (m *ListItemMsg) String() string { return proto.CompactTextString((*wireListItemMsg)(m)) }
func (*ListItemMsg) ProtoMessage()    {}

func (m *ListItemMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireListItemMsg)(m))
}

func (m *ListItemMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireListItemMsg)(m))
}

type wireCancelListingMsg CancelListingMsg

func (m *wireCancelListingMsg) Reset()         { *m = wireCancelListingMsg{} }
func (m *wireCancelListingMsg) String() string { return proto.CompactTextString(m) }
func (*wireCancelListingMsg) ProtoMessage()    {}

func (m *CancelListingMsg) Reset()         { *m = CancelListingMsg{} }
func (m *CancelListingMsg) String() string { return proto.CompactTextString((*wireCancelListingMsg)(m)) }
func (*CancelListingMsg) ProtoMessage()    {}

func (m *CancelListingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireCancelListingMsg)(m))
}

func (m *CancelListingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireCancelListingMsg)(m))
}

type wireBuyItemMsg BuyItemMsg

func (m *wireBuyItemMsg) Reset()         { *m = wireBuyItemMsg{} }
func (m *wireBuyItemMsg) String() string { return proto.CompactTextString(m) }
func (*wireBuyItemMsg) ProtoMessage()    {}

func (m *BuyItemMsg) Reset()         { *m = BuyItemMsg{} }
func (m *BuyItemMsg) String() string { return proto.CompactTextString((*wireBuyItemMsg)(m)) }
func (*BuyItemMsg) ProtoMessage()    {}

func (m *BuyItemMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireBuyItemMsg)(m))
}

func (m *BuyItemMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireBuyItemMsg)(m))
}

type wireUpdateListingMsg UpdateListingMsg

func (m *wireUpdateListingMsg) Reset()         { *m = wireUpdateListingMsg{} }
func (m *wireUpdateListingMsg) String() string { return proto.CompactTextString(m) }
func (*wireUpdateListingMsg) ProtoMessage()    {}

func (m *UpdateListingMsg) Reset()         { *m = UpdateListingMsg{} }
func (m *UpdateListingMsg) String() string { return proto.CompactTextString((*wireUpdateListingMsg)(m)) }
func (*UpdateListingMsg) ProtoMessage()    {}

func (m *UpdateListingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireUpdateListingMsg)(m))
}

func (m *UpdateListingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireUpdateListingMsg)(m))
}

type wireWithdrawProceedsMsg WithdrawProceedsMsg

func (m *wireWithdrawProceedsMsg) Reset()         { *m = wireWithdrawProceedsMsg{} }
func (m *wireWithdrawProceedsMsg) String() string { return proto.CompactTextString(m) }
func (*wireWithdrawProceedsMsg) ProtoMessage()    {}

func (m *WithdrawProceedsMsg) Reset()         { *m = WithdrawProceedsMsg{} }
func (m *WithdrawProceedsMsg) String() string { return proto.CompactTextString((*wireWithdrawProceedsMsg)(m)) }
func (*WithdrawProceedsMsg) ProtoMessage()    {}

func (m *WithdrawProceedsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*wireWithdrawProceedsMsg)(m))
}

func (m *WithdrawProceedsMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireWithdrawProceedsMsg)(m))
}
