package main

import (
	"fmt"
	"os"

	"github.com/IvanShishkin/finder/internal/config"
	"github.com/IvanShishkin/finder/internal/core"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		printError(fmt.Errorf("failed to load config: %w", err))
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// newRootCmd builds the single finder command. Flag defaults come from cfg,
// and parsed flags are written straight back into it.
func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finder",
		Short: "A flexible file finder with content search capabilities",
		Long: `Recursively find files and directories whose names match a glob or regex
pattern, optionally matching file contents, and report size and modification
date with optional sorting.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			finder := core.NewFinder(cfg, logger)
			return finder.Run(cmd.OutOrStdout())
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
		return err
	})

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Pattern, "pattern", "p", cfg.Pattern, "The search pattern. Supports regex and glob patterns like *.rs")
	flags.StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "The directory to start the search from")
	flags.BoolVar(&cfg.Date, "date", cfg.Date, "Display the last modification date of found files")
	flags.BoolVarP(&cfg.Size, "size", "s", cfg.Size, "Display the size of found files")
	flags.BoolVarP(&cfg.HumanReadable, "human-readable", "H", cfg.HumanReadable, "Display file sizes in a human-readable format (KB, MB, GB, etc.)")
	flags.VarP(config.NewSortKeyValue(&cfg.Sort), "sort", "S", "Sort the results by name, size, or modification date")
	flags.BoolVarP(&cfg.ContentSearch, "content-search", "c", cfg.ContentSearch, "Search for the pattern within file contents")
	flags.VarP(config.NewFormatValue(&cfg.Format), "format", "f", "Output format: text, json, yaml")
	flags.StringSliceVarP(&cfg.Exclude, "exclude", "e", cfg.Exclude, "Skip entries matching these patterns (doublestar syntax, repeatable)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable verbose logging")

	cmd.MarkFlagRequired("pattern")

	return cmd
}

// newLogger returns a development logger when verbose, otherwise one that
// only emits errors
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}

// printError prints a fatal error to stderr
func printError(err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
}
