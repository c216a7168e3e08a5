package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"wiki2sent/internal/app"
	"wiki2sent/internal/config"
	"wiki2sent/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags - значения CLI; применяются поверх env только если флаг задан явно
type flags struct {
	input         string
	output        string
	language      string
	segmenter     string
	punktModelDir string
	onError       string
	format        string
	echo          bool
	logLevel      string
	index         bool
	indexFile     string
	topK          int
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFlags(&flags{})
}

func newRootCmdWithFlags(f *flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wiki2sent",
		Short: "Convert WikiExtractor output into one sentence per line",
		Long: `wiki2sent walks a directory of WikiExtractor files (<doc>...</doc> fragments),
splits every document into sentences with a language-aware segmenter and
writes them to a single file, one sentence per line.

Configuration comes from environment variables (and an optional .env file);
flags override them.`,
		SilenceUsage: true,
		RunE:         runConvert(f),
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.input, "input", "i", "", "Corpus root directory (INPUT_DIR)")
	pf.StringVarP(&f.output, "output", "o", "", "Output file, truncated on start (OUTPUT_FILE)")
	pf.StringVarP(&f.language, "language", "l", "", "Segmenter language, name or ISO code (SEGMENTER_LANGUAGE)")
	pf.StringVar(&f.segmenter, "segmenter", "", "Segmentation method: punkt or rules (SEGMENTER)")
	pf.StringVar(&f.punktModelDir, "punkt-models", "", "Directory with <language>.json Punkt models (PUNKT_MODEL_DIR)")
	pf.StringVar(&f.onError, "on-error", "", "What to do with unreadable or malformed files: fail or skip (ON_ERROR)")
	pf.StringVar(&f.format, "format", "", "Document text format: plain or markdown (TEXT_FORMAT)")
	pf.BoolVar(&f.echo, "echo", true, "Echo every sentence to stdout (ECHO)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (LOG_LEVEL)")
	pf.BoolVar(&f.index, "index", false, "Also build a sentence similarity index (INDEX_ENABLED)")
	pf.StringVar(&f.indexFile, "index-file", "", "Sentence index file (INDEX_FILE)")
	pf.IntVar(&f.topK, "top-k", 0, "Number of similar sentences returned by query (TOP_K)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Convert the corpus (default command)",
		Args:  cobra.NoArgs,
		RunE:  runConvert(f),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "query <text>",
		Short: "Find sentences similar to the given text in the sentence index",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQuery(f),
	})

	return rootCmd
}

// loadConfig: .env (опционально) -> env -> флаги
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.InputDir = f.input
	}
	if changed("output") {
		cfg.OutputFile = f.output
	}
	if changed("language") {
		cfg.Language = f.language
	}
	if changed("segmenter") {
		cfg.Segmenter = f.segmenter
	}
	if changed("punkt-models") {
		cfg.PunktModelDir = f.punktModelDir
	}
	if changed("on-error") {
		cfg.OnError = strings.ToLower(f.onError)
	}
	if changed("format") {
		cfg.TextFormat = strings.ToLower(f.format)
	}
	if changed("echo") {
		cfg.Echo = f.echo
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("index") {
		cfg.IndexEnabled = f.index
	}
	if changed("index-file") {
		cfg.IndexFile = f.indexFile
	}
	if changed("top-k") {
		cfg.TopK = f.topK
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setup(cmd *cobra.Command, f *flags) (*app.App, *logging.Logger, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create app: %w", err)
	}
	return a, logger, nil
}

func runConvert(f *flags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, logger, err := setup(cmd, f)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		// Однократная инициализация сегментатора до чтения файлов
		if err := a.Init(); err != nil {
			logger.Error("Failed to initialize", err)
			return err
		}

		// Контекст с сигналами завершения
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := a.Run(ctx); err != nil {
			logger.Error("Conversion failed", err)
			return err
		}
		return nil
	}
}

func runQuery(f *flags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, logger, err := setup(cmd, f)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		results, err := a.Query(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			logger.Error("Query failed", err)
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No similar sentences found")
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(out, "%d. %s (similarity: %.2f, source: %s#%s)\n", i+1, r.Content, r.Similarity, r.Source, r.DocID)
		}
		return nil
	}
}
