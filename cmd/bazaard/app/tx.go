package app

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/exchange"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/sigs"
)

// Tx is the transaction accepted by bazaard. It carries exactly one message.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Sum        *TxMsg               `protobuf:"bytes,2,opt,name=sum,proto3" json:"sum,omitempty"`
}

// TxMsg holds the message of a transaction. Only one field can be set.
type TxMsg struct {
	SendMsg                *cash.SendMsg                    `protobuf:"bytes,1,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	CreateCollectionMsg    *nft.CreateCollectionMsg         `protobuf:"bytes,2,opt,name=create_collection_msg,json=createCollectionMsg,proto3" json:"create_collection_msg,omitempty"`
	MintMsg                *nft.MintMsg                     `protobuf:"bytes,3,opt,name=mint_msg,json=mintMsg,proto3" json:"mint_msg,omitempty"`
	ApproveMsg             *nft.ApproveMsg                  `protobuf:"bytes,4,opt,name=approve_msg,json=approveMsg,proto3" json:"approve_msg,omitempty"`
	TransferMsg            *nft.TransferMsg                 `protobuf:"bytes,5,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
	ListItemMsg            *exchange.ListItemMsg            `protobuf:"bytes,6,opt,name=list_item_msg,json=listItemMsg,proto3" json:"list_item_msg,omitempty"`
	CancelListingMsg       *exchange.CancelListingMsg       `protobuf:"bytes,7,opt,name=cancel_listing_msg,json=cancelListingMsg,proto3" json:"cancel_listing_msg,omitempty"`
	BuyItemMsg             *exchange.BuyItemMsg             `protobuf:"bytes,8,opt,name=buy_item_msg,json=buyItemMsg,proto3" json:"buy_item_msg,omitempty"`
	UpdateListingMsg       *exchange.UpdateListingMsg       `protobuf:"bytes,9,opt,name=update_listing_msg,json=updateListingMsg,proto3" json:"update_listing_msg,omitempty"`
	WithdrawProceedsMsg    *exchange.WithdrawProceedsMsg    `protobuf:"bytes,10,opt,name=withdraw_proceeds_msg,json=withdrawProceedsMsg,proto3" json:"withdraw_proceeds_msg,omitempty"`
	UpdateConfigurationMsg *exchange.UpdateConfigurationMsg `protobuf:"bytes,11,opt,name=update_configuration_msg,json=updateConfigurationMsg,proto3" json:"update_configuration_msg,omitempty"`
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (bazaar.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ bazaar.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction carrying msg.
func NewTx(msg bazaar.Msg) (*Tx, error) {
	var sum TxMsg
	switch m := msg.(type) {
	case *cash.SendMsg:
		sum.SendMsg = m
	case *nft.CreateCollectionMsg:
		sum.CreateCollectionMsg = m
	case *nft.MintMsg:
		sum.MintMsg = m
	case *nft.ApproveMsg:
		sum.ApproveMsg = m
	case *nft.TransferMsg:
		sum.TransferMsg = m
	case *exchange.ListItemMsg:
		sum.ListItemMsg = m
	case *exchange.CancelListingMsg:
		sum.CancelListingMsg = m
	case *exchange.BuyItemMsg:
		sum.BuyItemMsg = m
	case *exchange.UpdateListingMsg:
		sum.UpdateListingMsg = m
	case *exchange.WithdrawProceedsMsg:
		sum.WithdrawProceedsMsg = m
	case *exchange.UpdateConfigurationMsg:
		sum.UpdateConfigurationMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return &Tx{Sum: &sum}, nil
}

// GetMsg returns the single message set in the transaction.
func (tx *Tx) GetMsg() (bazaar.Msg, error) {
	if tx.Sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "missing message")
	}
	return bazaar.ExtractMsgFromSum(tx.Sum)
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
