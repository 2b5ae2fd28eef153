package x

import (
	"github.com/iov-one/bazaar/errors"
)

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// Validate runs every given validater and collects all failures into a
// single error. Nil values are ignored.
func Validate(vs ...Validater) error {
	var err error
	for _, v := range vs {
		if v == nil {
			continue
		}
		err = errors.Append(err, v.Validate())
	}
	return err
}
