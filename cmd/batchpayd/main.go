package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/batchpay"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/urfave/cli/v2"
)

const (
	flagHome     = "home"
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log-level"
	flagIssuer   = "issuer"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".batchpay")
	return &cli.App{
		Name:  "batchpayd",
		Usage: "batch payment node",
		Description: "Transactions declare their signers and no signature is verified. " +
			"Any client can act as any address, so only run batchpayd on development networks.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagHome, Value: defaultHome, Usage: "directory to store files under", EnvVars: []string{"BATCHPAY_HOME"}},
			&cli.StringFlag{Name: flagLogLevel, Value: "info", Usage: "log level: debug, info, error or none", EnvVars: []string{"BATCHPAY_LOG_LEVEL"}},
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Initialize app options in genesis file",
				ArgsUsage: "[ticker] [address]",
				Action:    initCmd,
			},
			{
				Name:  "start",
				Usage: "Run the abci server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagBind, Value: "tcp://localhost:26658", Usage: "address server listens on", EnvVars: []string{"BATCHPAY_BIND"}},
					&cli.BoolFlag{Name: flagDebug, Usage: "call stack returned on error", EnvVars: []string{"BATCHPAY_DEBUG"}},
					&cli.StringFlag{Name: flagIssuer, Usage: "the only address allowed to register tokens", EnvVars: []string{"BATCHPAY_ISSUER"}},
				},
				Action: startCmd,
			},
			{
				Name:  "version",
				Usage: "Print the app version",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(c.App.Writer, batchpay.Version())
					return err
				},
			},
		},
	}
}

// newLogger returns a logger writing to stdout that only shows messages of
// the given level or more severe.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, opt).With("module", "batchpay"), nil
}
