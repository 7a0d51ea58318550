// randorg
//
// A command-line client for the RANDOM.ORG Basic API. True random values
// from atmospheric noise, straight to stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Nick-Seinsche/randomorg"
	"github.com/Nick-Seinsche/randomorg/internal/config"
)

var (
	version = "dev"

	flagEndpoint string
	flagTimeout  time.Duration
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "randorg",
	Short: "randorg - true random values from RANDOM.ORG",
	Long: `randorg fetches true random values from the RANDOM.ORG Basic API.

The API key is read from RANDOMORG_API_KEY or ~/.randorg/config.yaml.

  randorg int -n 5 --min 1 --max 100     Five integers in [1,100]
  randorg seq -n 2 --length 6 --max 49   Two lotto rows
  randorg decimal -n 3 --places 8        Three decimal fractions
  randorg gaussian -n 3 --stddev 2.5     Three Gaussian numbers
  randorg string -n 4 --length 12        Four random strings
  randorg uuid -n 2                      Two version-4 UUIDs
  randorg blob -n 1 --size 256           One 256-bit blob
  randorg usage                          Remaining quota`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "override the API endpoint URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-call timeout (default from config, 30s)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every request at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a library client from config file, environment, and
// global flags (flags win).
func newClient() (*randomorg.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	timeout := cfg.TimeoutOrDefault()
	if flagTimeout > 0 {
		timeout = flagTimeout
	}

	opts := []randomorg.Option{
		randomorg.WithLogger(logger),
		randomorg.WithTimeout(timeout),
		randomorg.WithQuotaWarnings(cfg.WarnBitsBelow, cfg.WarnRequestsBelow),
	}
	endpoint := cfg.Endpoint
	if flagEndpoint != "" {
		endpoint = flagEndpoint
	}
	if endpoint != "" {
		opts = append(opts, randomorg.WithEndpoint(endpoint))
	}

	return randomorg.New(cfg.APIKey, opts...), nil
}
