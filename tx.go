package bazaar

import (
	"reflect"

	"github.com/iov-one/bazaar/errors"
)

// Msg is message for the blockchain to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be alphanumeric [0-9A-Za-z_\-]+
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one of the checks fails.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
//
// Each Application must define their own tx type, which
// embeds all the middlewares that we wish to use.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
//
// Destination must be a pointer of the same type as the message carried by
// the transaction.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "nil message")
	}

	// Destination must be a pointer to the same type as the message.
	// Messages are always passed around as pointers.
	dest := reflect.ValueOf(destination)
	if !dest.IsValid() || dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if dest.Elem().Type() != src.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest.Elem().Set(src)
	return nil
}

// ExtractMsgFromSum returns the message carried by a transaction container.
// The container must be a pointer to a struct that has exactly one non nil
// field and that field must be a message. This is how application
// transactions declare the set of messages they can carry.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container is nil")
	}
	ptr := reflect.ValueOf(sum)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container type %T", sum)
	}
	if ptr.IsNil() {
		return nil, errors.Wrap(errors.ErrInput, "message container is nil")
	}

	var found reflect.Value
	val := ptr.Elem()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() != reflect.Ptr && field.Kind() != reflect.Interface {
			continue
		}
		if field.IsNil() {
			continue
		}
		if found.IsValid() {
			return nil, errors.Wrap(errors.ErrState, "more than one message set")
		}
		found = field
	}
	if !found.IsValid() {
		return nil, errors.Wrap(errors.ErrState, "message container is empty")
	}
	if !found.CanInterface() {
		return nil, errors.Wrap(errors.ErrType, "message field is not exported")
	}
	msg, ok := found.Interface().(Msg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%s is not a message", found.Type())
	}
	return msg, nil
}
