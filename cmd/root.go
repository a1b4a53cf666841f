package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thyeshengleng/collection-form/config"
	"github.com/thyeshengleng/collection-form/logger"
)

var (
	envFile string
	cfg     config.Config

	flagBackend  string
	flagDatabase string
	flagCSVPath  string
	flagWorker   string
	flagTimeout  time.Duration
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "collection-form",
	Short: "Collection Action List record store",
	Long: `collection-form keeps the collection action records of onboarding customers.
It serves a web form and table for the records, a small JSON API, and
CSV import and export. Records live in SQLite, a CSV file, a remote
/api/form endpoint or memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}

		loaded, err := config.Load(files...)
		if err != nil {
			return err
		}

		// Flags override the environment
		flags := cmd.Flags()
		if flags.Changed("backend") {
			loaded.Backend = flagBackend
		}
		if flags.Changed("db") {
			loaded.DatabasePath = flagDatabase
		}
		if flags.Changed("csv") {
			loaded.CSVPath = flagCSVPath
		}
		if flags.Changed("worker-url") {
			loaded.WorkerURL = flagWorker
		}
		if flags.Changed("timeout") {
			loaded.HTTPTimeout = flagTimeout
		}
		if flags.Changed("log-level") {
			loaded.LogLevel = flagLogLevel
		}

		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := logger.Initialize(loaded.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	defaults := config.Default()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "env file to load (default .env when present)")
	pf.StringVar(&flagBackend, "backend", defaults.Backend, "record backend: sql, http, csv or memory")
	pf.StringVar(&flagDatabase, "db", defaults.DatabasePath, "SQLite database path")
	pf.StringVar(&flagCSVPath, "csv", defaults.CSVPath, "CSV file of the csv backend")
	pf.StringVar(&flagWorker, "worker-url", defaults.WorkerURL, "base URL of the http backend")
	pf.DurationVar(&flagTimeout, "timeout", defaults.HTTPTimeout, "timeout of http backend requests")
	pf.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "log level")

	rootCmd.AddCommand(serveCmd, importCmd, exportCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
