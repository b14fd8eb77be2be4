// Command itlist replays a script of list operations against an
// itlist.List and writes a per-operation report.
//
//	itlist script.csv
//
// See vars.go for the environment variables it reads.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kchristidis/itlist/itlist"
	"github.com/kchristidis/itlist/replay"
	"github.com/kchristidis/itlist/snapshot"
	"github.com/kchristidis/itlist/stats"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string, writer io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if len(args) != 1 {
		return errors.New("usage: itlist <script.csv>")
	}

	// Load the script

	ops, err := replay.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot load script: %w", err)
	}
	logger.Debug("script loaded", zap.String("path", args[0]), zap.Int("ops", len(ops)))

	// Load the starting list

	list := itlist.New[string]()
	if cfg.Load != "" {
		b, err := os.ReadFile(cfg.Load)
		if err != nil {
			return err
		}
		if list, err = snapshot.Unmarshal(b, snapshot.DecodeString); err != nil {
			return fmt.Errorf("cannot load snapshot %s: %w", cfg.Load, err)
		}
		logger.Info("snapshot loaded", zap.String("path", cfg.Load), zap.Int("size", list.Len()))
	}

	// Set up the stats collector

	opc := make(chan stats.Op, StatChannelBuffer)
	donec := make(chan struct{})
	collector := stats.New(opc, writer, donec)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		collector.Run()
		wg.Done()
	}()

	// Replay

	runner := replay.New(list, opc, writer)
	runner.Debug = cfg.Debug
	failed := runner.Run(ops)

	close(donec)
	wg.Wait()

	logger.Info("replay completed",
		zap.Int("ops", len(ops)),
		zap.Int("failed", failed),
		zap.Int("size", list.Len()),
	)

	if err := metrics(cfg, collector, writer); err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		b, err := snapshot.Marshal(list, snapshot.EncodeString)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Snapshot, b, 0644); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", cfg.Snapshot), zap.Int("bytes", len(b)))
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
