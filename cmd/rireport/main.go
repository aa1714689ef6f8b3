package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/rireport/internal/app"
)

// Exit codes.
const (
	exitOK         = 0
	exitConfig     = 1
	exitExtraction = 2
)

type flags struct {
	configPath string
	envFiles   []string
	output     string
	outputDir  string
	format     string
	encoding   string
	strategy   string
	lenient    bool
	noTransfer bool
	manifest   bool
	verbose    bool
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	code := exitOK
	var f flags
	root := &cobra.Command{
		Use:   "rireport [flags] <report-file>...",
		Short: "Convert payroll portal report downloads into typed tables",
		Long: `rireport reads report files saved from the payroll portal (MHTML archives,
usually named .xls), selects the data table and writes it with the columns
date, lonart and antal as CSV, JSON, XLSX or PDF.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, f, args)
			if err != nil {
				code = exitConfig
				return err
			}
			if cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			a, err := app.New(cfg)
			if err != nil {
				code = exitConfig
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if _, err := a.Run(ctx); err != nil {
				code = exitExtraction
				if errors.Is(err, app.ErrExtractionFailed) {
					// Per-file causes were already logged.
					return app.ErrExtractionFailed
				}
				return err
			}
			return nil
		},
	}

	fs := root.Flags()
	fs.StringVar(&f.configPath, "config", os.Getenv("RI_CONFIG"), "Path to YAML/JSON config file")
	fs.StringSliceVar(&f.envFiles, "env-file", []string{".env"}, "Dotenv files to load before reading environment")
	fs.StringVarP(&f.output, "output", "o", "", "Output file (single input only); format from extension unless --format is set")
	fs.StringVar(&f.outputDir, "output-dir", "", "Directory for outputs (default: next to each input)")
	fs.StringVar(&f.format, "format", "", "Output format: csv, json, xlsx, pdf (default csv)")
	fs.StringVar(&f.encoding, "encoding", "", "Text encoding of the report file (default utf-8)")
	fs.StringVar(&f.strategy, "strategy", "", "Table selection: largest-markup, most-cells, header-match")
	fs.BoolVar(&f.lenient, "lenient", false, "Pass tables without expected columns through unrenamed")
	fs.BoolVar(&f.noTransfer, "no-transfer-decoding", false, "Do not undo quoted-printable/base64 MIME transfer encoding")
	fs.BoolVar(&f.manifest, "manifest", false, "Write a .manifest.json next to each output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rireport %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		},
	})

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		if code == exitOK {
			code = exitConfig
		}
	}
	return code
}

// buildConfig layers settings: config file, then environment, then flags
// that were set explicitly on the command line.
func buildConfig(cmd *cobra.Command, f flags, args []string) (app.Config, error) {
	var cfg app.Config
	if err := app.LoadEnvFiles(f.envFiles...); err != nil {
		return cfg, fmt.Errorf("load env files: %w", err)
	}
	if strings.TrimSpace(f.configPath) != "" {
		fc, err := app.LoadConfigFile(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)

	fs := cmd.Flags()
	if len(args) > 0 {
		cfg.Inputs = append([]string{}, args...)
	}
	if fs.Changed("output") {
		cfg.OutputPath = f.output
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("encoding") {
		cfg.Encoding = f.encoding
	}
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("lenient") {
		cfg.Lenient = f.lenient
	}
	if fs.Changed("no-transfer-decoding") {
		cfg.DisableTransferDecoding = f.noTransfer
	}
	if fs.Changed("manifest") {
		cfg.Manifest = f.manifest
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return cfg, nil
}
