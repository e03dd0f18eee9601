// SPDX-License-Identifier: MIT

// Command matcalc is an interactive dense-matrix calculator.
//
// It reads menu choices and matrices from stdin and prints results to stdout.
// Diagnostics go to stderr; see internal/config for the MATCALC_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/internal/calculator"
	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/matrix"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "matcalc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(loggerConfig(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := calculator.New(os.Stdin, os.Stdout,
		calculator.WithLogger(logger),
		calculator.WithPrecision(cfg.Precision),
		calculator.WithDeterminant(determinantFor(cfg.DetMethod)),
	)
	logger.Info("session started",
		zap.Int("precision", cfg.Precision),
		zap.String("det_method", cfg.DetMethod),
	)

	// Run blocks on stdin, so a signal must be able to win the race.
	errChan := make(chan error, 1)
	go func() { errChan <- sess.Run(ctx) }()

	select {
	case err = <-errChan:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}

	return err
}

// loggerConfig starts from the quiet or the development preset and applies
// MATCALC_LOG_LEVEL on top.
func loggerConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	if cfg.LogDev {
		lc = logging.DevelopmentConfig()
	}
	lc.Level = cfg.LogLevel

	return lc
}

func determinantFor(method string) calculator.DeterminantFunc {
	if method == config.DetMethodLU {
		return matrix.DeterminantLU
	}

	return matrix.Determinant
}
