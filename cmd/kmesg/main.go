package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/modoterra/kmesg/internal/buildinfo"
	"github.com/modoterra/kmesg/pkg/config"
	"github.com/modoterra/kmesg/pkg/dmesg"
	"github.com/modoterra/kmesg/pkg/klog"
	"github.com/modoterra/kmesg/pkg/logging"
)

// kernel is replaced in tests.
var kernel klog.Controller = klog.New()

func main() {
	if err := execute(os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	// The invalid level message is already on stdout.
	if errors.Is(err, dmesg.ErrInvalidLevel) {
		return
	}
	fmt.Fprintf(w, "%s: %v\n", rootCmd.Name(), err)
}

// execute runs the root command over args. cobra's hidden completion
// commands would otherwise answer their names before dispatch.
func execute(args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return runKmesg(rootCmd, args)
	}
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "kmesg [option [argument]]",
	Short: "Read, clear and configure the kernel log buffer",
	Long: `kmesg prints the kernel log buffer with priority prefixes stripped.

Options:
  -C          clear the buffer
  -c          print the buffer, then clear it
  -D          disable printing of kernel messages to the console
  -E          enable printing of kernel messages to the console
  -r          print the buffer verbatim, priority prefixes included
  -F <file>   dump file to stdout
  -n <level>  set the console log level, 1 to 8`,
	Args: cobra.ArbitraryArgs,
	// Options are matched literally against the dispatch table.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runKmesg,
}

func runKmesg(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	cfg := loadConfig(stderr)

	logger := logging.New(cfg.Log, stderr)
	logger.Debug("starting kmesg", "version", buildinfo.Version, "commit", buildinfo.Commit, "date", buildinfo.Date)

	r := dmesg.New(os.Args[0], kernel, logger)
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = stderr
	r.ChunkSize = cfg.Dump.ChunkSize
	return r.Run(args)
}

// loadConfig never fails: problems with the file are reported and the
// defaults are used instead.
func loadConfig(stderr io.Writer) *config.Config {
	warn := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		warn.Warn("config load failed, using defaults", "err", err)
		return config.Default()
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			warn.Warn("config validation", "path", path, "err", e)
		}
		return config.Default()
	}
	return cfg
}
