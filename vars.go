package main

import (
	"time"

	"github.com/spf13/viper"
)

// The file this tool writes its per-operation report to, under OutputDir.
const (
	OutputDir = "output"
	OutputOps = "ops.csv"
)

// StatChannelBuffer sets the buffer of the channel we use to pipe operation
// stats into the stats collector. The larger the buffer, the less the runner
// blocks on the collector.
const StatChannelBuffer = 100

// EnvPrefix prefixes every environment variable read by this tool, e.g.
// ITLIST_OUTPUT_DIR.
const EnvPrefix = "itlist"

// config holds the settings of a run. Every field can be set through the
// environment or through the file named by ITLIST_CONFIG.
type config struct {
	// Where the report goes.
	OutputDir string
	// The prefix for the report file. Defaults to the start time of the run.
	Prefix string
	// If set, the final list is written here as a snapshot.
	Snapshot string
	// If set, the list starts out with the contents of this snapshot.
	Load string
	// Log the contents of the list after every operation.
	Debug bool
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("output_dir", OutputDir)
	v.SetDefault("prefix", time.Now().Format("20060102-150405"))
	v.SetDefault("debug", false)

	if fname := v.GetString("config"); fname != "" {
		v.SetConfigFile(fname)
		if err := v.ReadInConfig(); err != nil {
			return config{}, err
		}
	}

	return config{
		OutputDir: v.GetString("output_dir"),
		Prefix:    v.GetString("prefix"),
		Snapshot:  v.GetString("snapshot"),
		Load:      v.GetString("load"),
		Debug:     v.GetBool("debug"),
	}, nil
}
