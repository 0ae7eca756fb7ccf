package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theimaginaryfoundation/diary-lens/analysis"
	"github.com/theimaginaryfoundation/diary-lens/analysis/fileutils"
	"github.com/theimaginaryfoundation/diary-lens/analysis/provider"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	inputErrorSummary      = "Failed to parse diary entries."
	unexpectedErrorSummary = "An unexpected error occurred."
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, defaultDeps())
	stop()
	os.Exit(code)
}

// deps are the process-level collaborators, replaced in tests.
type deps struct {
	getenv   func(string) string
	newModel func(provider.Kind, provider.Config) (provider.Model, error)
	now      func() time.Time
}

func defaultDeps() deps {
	return deps{
		getenv:   os.Getenv,
		newModel: provider.New,
		now:      time.Now,
	}
}

// exitError carries an exit status out of a cobra RunE. A nil err means the
// message has already been written.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, d deps) int {
	root := newRootCommand(d)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, ee.err.Error())
		}
		return ee.code
	}
	// Flag and argument errors from cobra.
	fmt.Fprintln(stderr, err.Error())
	return exitUsage
}

func newRootCommand(d deps) *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "diary-analyzer",
		Short: "Analyze diary entries with an LLM using CBT or MBT",
		Long: "Analyze a batch of diary entries with a hosted model and print one JSON report.\n" +
			"Analysis failures are reported inside the JSON with exit status 0; only invalid\n" +
			"input and unexpected errors exit non-zero.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.entriesSet = cmd.Flags().Changed("entries")
			cfg.normalize()
			if err := cfg.Validate(); err != nil {
				return usageError(err)
			}
			return runAnalyze(cmd, cfg, d)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Entries, "entries", "", "JSON array of diary entries ({entryDate, mood, content})")
	f.StringVar(&cfg.EntriesFile, "entries-file", "", "Read the entries JSON from a file ('-' for stdin)")
	f.StringVar(&cfg.Mode, "mode", cfg.Mode, "Analysis mode: cbt or mbt")
	f.StringVar(&cfg.Provider, "provider", cfg.Provider, "LLM provider: gemini, anthropic or openai")
	f.StringVar(&cfg.Model, "model", "", "Model override for the selected provider")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Deadline for the model call (0 disables)")
	f.IntVar(&cfg.Retries, "retries", 0, "Retries after rate-limit or server errors")
	f.StringVar(&cfg.OutPath, "out", "", "Also write the JSON report to this file")
	f.StringVar(&cfg.ConfigPath, "config", "", "Optional TOML file with provider settings")
	f.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Dotenv file with provider credentials (skipped if missing)")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(newSchemaCommand())
	cmd.AddCommand(newEligibilityCommand(d))
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg Config, d deps) error {
	stdout := cmd.OutOrStdout()
	mode, _ := analysis.ParseMode(cfg.Mode)
	kind, _ := provider.ParseKind(cfg.Provider)

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	pcfg, err := loadProviderConfig(cfg, d.getenv)
	if err != nil {
		return usageError(err)
	}
	if cfg.Model != "" {
		s := pcfg.For(kind)
		s.Model = cfg.Model
		pcfg = pcfg.With(kind, s)
	}

	raw, err := readEntries(cfg, cmd.InOrStdin())
	if err != nil {
		return printFailure(stdout, analysis.Envelope(err.Error(), inputErrorSummary, false))
	}
	entries, err := analysis.DecodeEntries(raw)
	if err != nil {
		return printFailure(stdout, analysis.Envelope("Invalid JSON input: "+err.Error(), inputErrorSummary, false))
	}

	model, err := d.newModel(kind, pcfg)
	if err != nil {
		logger.Error("build model client", zap.Stringer("provider", kind), zap.Error(err))
		return printFailure(stdout, analysis.Envelope(err.Error(), unexpectedErrorSummary, false))
	}
	model = provider.WithRetry(model, provider.DefaultRetryPolicy(cfg.Retries+1), logger)

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.Debug("starting analysis",
		zap.Stringer("provider", kind),
		zap.String("model", pcfg.For(kind).Model),
		zap.Stringer("mode", mode),
		zap.Int("entries", len(entries)))

	analyzer := analysis.NewAnalyzer(model, analysis.WithLogger(logger), analysis.WithClock(d.now))
	rep := analyzer.Analyze(ctx, entries, mode)

	if err := fileutils.WriteJSON(stdout, rep.Result); err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("write result: %w", err)}
	}
	if cfg.OutPath != "" {
		if err := fileutils.WriteJSONFileAtomic(cfg.OutPath, rep.Result); err != nil {
			return &exitError{code: exitFailure, err: fmt.Errorf("write -out: %w", err)}
		}
	}
	return nil
}

// printFailure writes an envelope for a failure outside the analyzer and exits 1.
func printFailure(w io.Writer, envelope analysis.Result) error {
	if err := fileutils.WriteJSON(w, envelope); err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	return &exitError{code: exitFailure}
}

func readEntries(cfg Config, stdin io.Reader) ([]byte, error) {
	switch {
	case cfg.entriesSet:
		return []byte(cfg.Entries), nil
	case cfg.EntriesFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read entries from stdin: %w", err)
		}
		return b, nil
	default:
		b, err := os.ReadFile(cfg.EntriesFile)
		if err != nil {
			return nil, fmt.Errorf("read entries file: %w", err)
		}
		return b, nil
	}
}

// loadProviderConfig reads the dotenv file (process environment wins) and the
// optional TOML file into the provider config used for this run.
func loadProviderConfig(cfg Config, getenv func(string) string) (provider.Config, error) {
	fileEnv := map[string]string{}
	if cfg.EnvFile != "" {
		vals, err := godotenv.Read(cfg.EnvFile)
		switch {
		case err == nil:
			fileEnv = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return provider.Config{}, fmt.Errorf("read env file %s: %w", cfg.EnvFile, err)
		}
	}
	lookup := func(key string) string {
		if getenv != nil {
			if v := getenv(key); v != "" {
				return v
			}
		}
		return fileEnv[key]
	}
	return provider.LoadConfig(cfg.ConfigPath, lookup)
}
