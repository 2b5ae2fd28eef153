package commands

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/bazaar/errors"
)

// Example will be written out to a file, .json and .bin
// Filename should have no path and no extension
type Example struct {
	Filename string
	Obj      proto.Message
}

// TestGenCmd writes the json and protobuf encodings of every example into
// the directory given as the first argument ("testdata" by default). Client
// libraries use those files as fixtures for their own codecs.
func TestGenCmd(examples []Example, args []string) error {
	outdir := "testdata"
	if len(args) > 0 {
		outdir = args[0]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(err, "output directory")
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "json %s", ex.Filename)
		}
		if err := os.WriteFile(filepath.Join(outdir, ex.Filename+".json"), js, 0644); err != nil {
			return errors.Wrapf(err, "write %s", ex.Filename)
		}

		pb, err := proto.Marshal(ex.Obj)
		if err != nil {
			return errors.Wrapf(err, "protobuf %s", ex.Filename)
		}
		if err := os.WriteFile(filepath.Join(outdir, ex.Filename+".bin"), pb, 0644); err != nil {
			return errors.Wrapf(err, "write %s", ex.Filename)
		}
	}
	return nil
}
