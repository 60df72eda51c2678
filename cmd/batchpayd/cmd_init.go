package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/batchpay/cmd/batchpayd/app"
	"github.com/iov-one/batchpay/errors"
	"github.com/urfave/cli/v2"
)

// initCmd writes the application state into the tendermint genesis file
// found in the home directory. The genesis file must already exist.
func initCmd(c *cli.Context) error {
	genFile := filepath.Join(c.String(flagHome), "config", "genesis.json")
	if _, err := os.Stat(genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run tendermint init first", genFile)
	}
	state, err := app.GenInitOptions(c.App.Writer, c.Args().Slice())
	if err != nil {
		return err
	}
	return addGenesisOptions(genFile, state)
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "read genesis: %s", err)
	}

	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	if _, ok := doc["app_state"]; ok {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set in genesis")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInternal, "marshal genesis: %s", err)
	}
	return ioutil.WriteFile(filename, out, 0600)
}
