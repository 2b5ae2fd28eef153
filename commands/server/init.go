package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagIgnore = "i"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func parseInitFlags(args []string) (bool, []string, error) {
	var ignore bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&ignore, flagIgnore, false, "ignore previous app_state")
	if err := initFlags.Parse(args); err != nil {
		return false, nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return ignore, initFlags.Args(), nil
}

// InitCmd will try to load the genesis file created by tendermint and add
// the app_state produced by gen to it. An existing app_state is only
// overwritten if the -i flag is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	ignore, rest, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	if !fileExists(genFile) {
		return errors.Wrapf(errors.ErrNotFound, "%s missing, run tendermint init first", genFile)
	}

	bz, err := ioutil.ReadFile(genFile)
	if err != nil {
		return errors.Wrap(err, "read genesis")
	}
	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if v, ok := doc["app_state"]; ok && len(v) > 0 && string(v) != "null" && !ignore {
		return errors.Wrapf(errors.ErrState, "app_state already set in %s, use -i to override", genFile)
	}

	options, err := gen(rest)
	if err != nil {
		return err
	}
	doc["app_state"] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize genesis")
	}
	if err := ioutil.WriteFile(genFile, out, 0600); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	logger.Info("App state written to genesis file", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}
