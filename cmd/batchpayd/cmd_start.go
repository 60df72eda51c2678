package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/cmd/batchpayd/app"
	"github.com/iov-one/batchpay/errors"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/urfave/cli/v2"
)

// startCmd runs the ABCI socket server until an interrupt signal is received.
func startCmd(c *cli.Context) error {
	logger, err := newLogger(c.String(flagLogLevel))
	if err != nil {
		return err
	}

	var issuer batchpay.Address
	if raw := c.String(flagIssuer); raw != "" {
		if issuer, err = batchpay.ParseAddress(raw); err != nil {
			return errors.Wrap(err, "issuer")
		}
	}

	application, err := app.GenerateApp(&app.Options{
		Home:   c.String(flagHome),
		Logger: logger,
		Debug:  c.Bool(flagDebug),
		Issuer: issuer,
	})
	if err != nil {
		return err
	}

	addr := c.String(flagBind)
	logger.Info("Starting ABCI app", "bind", addr)
	logger.Info("Transaction signers are declared, not verified", "network", "development only")

	svr, err := server.NewServer(addr, "socket", application)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrInternal, "cannot start server: %s", err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	logger.Info("Stopping ABCI app")
	return svr.Stop()
}
