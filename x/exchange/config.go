package exchange

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
	"github.com/iov-one/bazaar/x"
)

const gconfPackage = "exchange"

// Configuration is the exchange settings stored in gconf.
type Configuration struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner bazaar.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/bazaar.Address" json:"owner,omitempty"`
	// Currency is the ticker every listing price must use.
	Currency string `protobuf:"bytes,3,opt,name=currency,proto3" json:"currency,omitempty"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) GetOwner() bazaar.Address {
	return c.Owner
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.Append(errs, c.Metadata.Validate())
	errs = errors.Append(errs, errors.Wrap(c.Owner.Validate(), "owner"))
	if !coin.IsCC(c.Currency) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid currency %q", c.Currency))
	}
	return errs
}

// loadConf returns the current configuration.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, gconfPackage, &conf); err != nil {
		return nil, errors.Wrap(err, "exchange configuration")
	}
	return &conf, nil
}

// UpdateConfigurationMsg changes the fields of the configuration that are
// set in Patch. It must be signed by the configuration owner.
type UpdateConfigurationMsg struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration   `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

var _ bazaar.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "exchange/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return err
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if len(m.Patch.Owner) != 0 {
		if err := m.Patch.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	if m.Patch.Currency != "" && !coin.IsCC(m.Patch.Currency) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency %q", m.Patch.Currency)
	}
	return nil
}

// NewConfigHandler returns a handler for UpdateConfigurationMsg.
func NewConfigHandler(auth x.Authenticator) bazaar.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(gconfPackage, &conf, auth)
}
