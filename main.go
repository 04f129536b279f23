// docaudit scores documentation coverage and code quality indicators across a
// C++ source tree using line and pattern heuristics.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phobologic/docaudit/internal/artifact"
	"github.com/phobologic/docaudit/internal/config"
	"github.com/phobologic/docaudit/internal/discover"
	"github.com/phobologic/docaudit/internal/docs"
	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/quality"
	"github.com/phobologic/docaudit/internal/ranking"
	"github.com/phobologic/docaudit/internal/report"
	"github.com/phobologic/docaudit/internal/toon"
)

var version = "dev"

const (
	formatText = "text"
	formatTOON = "toon"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	configPath string
	workers    int
	format     string
	verbose    bool
	quiet      bool

	stdout io.Writer
	logger *log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{stdout: stdout}

	cmd := &cobra.Command{
		Use:   "docaudit",
		Short: "Heuristic documentation and code quality audit for C++ trees",
		Long: `docaudit scans a source tree in two passes. The docs pass scores every
header and source file for documentation coverage and writes a handoff
artifact. The quality pass reads that artifact and scans the poorly
documented files for magic numbers, complexity, age markers and code smells.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.format {
			case formatText, formatTOON:
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatTOON)
			}
			opts.logger = newLogger(stderr, opts.verbose, opts.quiet)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("docaudit {{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "show version and exit")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default <root>/"+config.DefaultFileName+")")
	pf.IntVar(&opts.workers, "workers", 0, "files analyzed in parallel (0 = config or GOMAXPROCS)")
	pf.StringVar(&opts.format, "format", formatText, "report format: text or toon")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		newDocsCmd(opts),
		newQualityCmd(opts),
		newRunCmd(opts),
		newExamplesCmd(opts),
		newInitCmd(opts),
	)
	return cmd
}

func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "docaudit"})
	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// loadConfig reads the config for root and applies flag overrides.
func (o *globalOptions) loadConfig(root string) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, root)
	if err != nil {
		return nil, err
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	return cfg, nil
}

func rootArg(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	return abs, nil
}

func newDocsCmd(opts *globalOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "docs [root]",
		Short: "Classify files by documentation quality",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootArg(args)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(root)
			if err != nil {
				return err
			}
			rep, err := classify(cmd.Context(), opts, cfg, root)
			if err != nil {
				return err
			}
			opts.printDocs(rep)
			if err := artifact.SaveDocs(out, rep); err != nil {
				return err
			}
			opts.logger.Info("saved results", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", artifact.DocsFile, "documentation results file")
	return cmd
}

func newQualityCmd(opts *globalOptions) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Scan flagged files for code quality indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docsRep, err := loadDocs(in)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(docsRep.Root)
			if err != nil {
				return err
			}
			rep, err := scanQuality(cmd.Context(), opts, cfg, docsRep)
			if err != nil {
				return err
			}
			opts.printQuality(rep)
			if err := artifact.SaveQuality(out, rep); err != nil {
				return err
			}
			opts.logger.Info("saved results", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", artifact.DocsFile, "documentation results file to read")
	cmd.Flags().StringVarP(&out, "out", "o", artifact.QualityFile, "quality results file")
	return cmd
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	var docsOut, qualityOut string
	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Run the docs and quality passes back to back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootArg(args)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(root)
			if err != nil {
				return err
			}
			docsRep, err := classify(cmd.Context(), opts, cfg, root)
			if err != nil {
				return err
			}
			opts.printDocs(docsRep)
			if err := artifact.SaveDocs(docsOut, docsRep); err != nil {
				return err
			}

			rep, err := scanQuality(cmd.Context(), opts, cfg, docsRep)
			if err != nil {
				return err
			}
			opts.printQuality(rep)
			if err := artifact.SaveQuality(qualityOut, rep); err != nil {
				return err
			}
			opts.logger.Info("saved results", "docs", docsOut, "quality", qualityOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&docsOut, "docs-out", artifact.DocsFile, "documentation results file")
	cmd.Flags().StringVar(&qualityOut, "quality-out", artifact.QualityFile, "quality results file")
	return cmd
}

func newExamplesCmd(opts *globalOptions) *cobra.Command {
	var (
		in  string
		top int
	)
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Show representative files from each documentation tier",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rep, err := loadDocs(in)
			if err != nil {
				return err
			}
			report.Examples(opts.stdout, rep, ranking.Select(rep, top))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", artifact.DocsFile, "documentation results file to read")
	cmd.Flags().IntVarP(&top, "top", "n", 5, "files shown per documented tier")
	return cmd
}

func classify(ctx context.Context, opts *globalOptions, cfg *config.Config, root string) (*model.DocReport, error) {
	paths, err := discover.Files(root, discover.Options{
		Extensions: cfg.Extensions,
		Exclude:    cfg.ExcludeSegments,
		NoIgnore:   cfg.NoIgnore,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no source files found under %s", root)
	}
	opts.logger.Debug("discovered files", "root", root, "files", len(paths))

	c := &docs.Classifier{
		Root:         root,
		SourceMarker: cfg.SourceMarker,
		Options: docs.Options{
			LookaheadLines: cfg.Docs.LookaheadLines,
			LookbackLines:  cfg.Docs.LookbackLines,
		},
		Workers: cfg.Workers,
		Logger:  opts.logger,
	}
	return c.Run(ctx, paths)
}

func scanQuality(ctx context.Context, opts *globalOptions, cfg *config.Config, docsRep *model.DocReport) (*model.QualityReport, error) {
	s := &quality.Scanner{
		Category: cfg.Quality.GateCategory,
		Options: quality.Options{
			MagicMin:          cfg.Quality.MagicMin,
			LongFunctionLines: cfg.Quality.LongFunctionLines,
			MaxNesting:        cfg.Quality.MaxNesting,
		},
		ExampleCap: cfg.Quality.ExampleCap,
		Workers:    cfg.Workers,
		Logger:     opts.logger,
	}
	return s.Run(ctx, docsRep)
}

func loadDocs(path string) (*model.DocReport, error) {
	rep, err := artifact.LoadDocs(path)
	if errors.Is(err, artifact.ErrNoArtifact) {
		return nil, fmt.Errorf("%w (run `docaudit docs` first)", err)
	}
	return rep, err
}

func (o *globalOptions) printDocs(rep *model.DocReport) {
	if o.format == formatTOON {
		_, _ = fmt.Fprintln(o.stdout, toon.EncodeDocs(rep))
		return
	}
	report.Docs(o.stdout, rep)
}

func (o *globalOptions) printQuality(rep *model.QualityReport) {
	if o.format == formatTOON {
		_, _ = fmt.Fprintln(o.stdout, toon.EncodeQuality(rep))
		return
	}
	report.Quality(o.stdout, rep)
}
