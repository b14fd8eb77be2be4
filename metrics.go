package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/kchristidis/itlist/stats"
)

func metrics(cfg config, collector *stats.Collector, writer io.Writer) (err error) {
	msg := fmt.Sprint("main • time to collect & print the results...")
	fmt.Fprintln(writer, msg)

	// Create the output dir if it doesn't exist already
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	opsFile, err := os.Create(filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s", cfg.Prefix, OutputOps)))
	if err != nil {
		return err
	}
	defer opsFile.Close()

	opsWriter := csv.NewWriter(opsFile)
	defer func() {
		opsWriter.Flush()
		if flushErr := opsWriter.Error(); err == nil {
			err = flushErr
		}
	}()

	if err := opsWriter.Write([]string{"op_num", "op", "latency_us", "status"}); err != nil {
		return err
	}

	for _, op := range collector.Ops {
		numVal := fmt.Sprintf("%06d", op.Number)
		latVal := fmt.Sprintf("%d", op.LatencyInMicros)
		if err := opsWriter.Write([]string{numVal, op.Name, latVal, op.Status}); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(collector.Summaries))
	for name := range collector.Summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := collector.Summaries[name]
		msg := fmt.Sprintf("[op: %s]"+
			"\tcount:%d"+
			"\t\tfailed:%d"+
			"\t\tmean latency:%.1f µs",
			name,
			s.Count,
			s.Failures,
			s.MeanMicros(),
		)
		fmt.Fprintln(writer, msg)
	}

	return nil
}
