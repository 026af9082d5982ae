package main

import (
	"bufio"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/intersperse"
	"github.com/bjaus/intersperse/internal/config"
)

type options struct {
	sep        string
	render     string
	newline    bool
	stderr     bool
	verbose    bool
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "intersperse [items...]",
		Short: "Print items with a separator between them",
		Long: "Print the given items, or the lines of standard input when no items\n" +
			"are given, with a separator between consecutive items.\n\n" +
			"Renderers: " + strings.Join(intersperse.Renderers(), ", ") + ", go-template=<tmpl>",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sep, "sep", "s", ", ", "separator between items")
	cmd.Flags().StringVarP(&opts.render, "render", "r", "plain", "item renderer")
	cmd.Flags().BoolVarP(&opts.newline, "newline", "n", true, "end output with a newline")
	cmd.Flags().BoolVar(&opts.stderr, "stderr", false, "write to standard error")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("load config failed", zap.Error(err))
		return err
	}
	applyConfig(cmd, &opts, cfg)

	render, err := intersperse.ParseRenderer(opts.render)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.stderr {
		out = cmd.ErrOrStderr()
	}

	items := slices.Values(args)
	var scanner *bufio.Scanner
	if len(args) == 0 {
		scanner = bufio.NewScanner(cmd.InOrStdin())
		items = lines(scanner)
	}

	logger.Debug("writing items",
		zap.String("separator", opts.sep),
		zap.String("renderer", opts.render),
		zap.Bool("newline", opts.newline),
		zap.Bool("stdin", scanner != nil),
	)

	write := intersperse.WriteFunc[string]
	if opts.newline {
		write = intersperse.WritelnFunc[string]
	}
	if err := write(out, items, opts.sep, intersperse.Map(toAny, render)); err != nil {
		logger.Error("write failed", zap.Error(err))
		return err
	}
	if scanner != nil {
		if err := scanner.Err(); err != nil {
			logger.Error("read input failed", zap.Error(err))
			return err
		}
	}
	return nil
}

// applyConfig fills options the user did not set on the command line.
func applyConfig(cmd *cobra.Command, opts *options, cfg config.Config) {
	flags := cmd.Flags()
	if cfg.Separator != nil && !flags.Changed("sep") {
		opts.sep = *cfg.Separator
	}
	if cfg.Renderer != "" && !flags.Changed("render") {
		opts.render = cfg.Renderer
	}
	if cfg.Newline != nil && !flags.Changed("newline") {
		opts.newline = *cfg.Newline
	}
}

func lines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

func toAny(s string) any { return s }

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
