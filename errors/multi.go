package errors

import (
	"fmt"
	"strings"
)

// Append combines given errors into a single error. Nil values are
// ignored. If all given errors are nil, nil is returned.
//
// The ABCI code of the result is the code of the first error, so that the
// failure reported to the client is the one that was hit first.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type unpacker interface {
	Unpack() []error
}

// multiErr is a collection of errors that happened together. Is matches if any
// of the contained errors match.
type multiErr []error

var (
	_ coder    = multiErr(nil)
	_ unpacker = multiErr(nil)
)

func (m multiErr) Unpack() []error {
	return m
}

func (m multiErr) Error() string {
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(points, "\n\t"))
}

// ABCICode returns the error code of a first error consistent with fail-fast
// approach.
func (m multiErr) ABCICode() uint32 {
	if len(m) == 0 {
		return SuccessABCICode
	}
	return abciCode(m[0])
}
