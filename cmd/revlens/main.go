package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/gemini"
	revhttp "github.com/reviewlens/revlens/http"
	"github.com/reviewlens/revlens/openai"
	"github.com/reviewlens/revlens/rod"
	"github.com/reviewlens/revlens/sentiment"
	revslog "github.com/reviewlens/revlens/slog"
	"github.com/reviewlens/revlens/sqlite"
	"github.com/reviewlens/revlens/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService revlens.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("revlens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'revlens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REVLENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.ExtractionService

	// Wire command-specific dependencies based on command
	if cmd == "extract" || cmd == "analyze" {
		selectorPath := cli.Extract.Selectors
		static := cli.Extract.Static
		if cmd == "analyze" {
			selectorPath = cli.Analyze.Selectors
			static = cli.Analyze.Static
		}

		deps.Selectors, err = loadSelectors(selectorPath)
		if err != nil {
			return err
		}

		accessor, err := newAccessor(static)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Accessor = revslog.NewLoggingAccessor(accessor, deps.Logger)
		defer deps.Accessor.Close()
	}

	if cmd == "analyze" || cmd == "serve" {
		deps.Summarizer = newSummarizer(ctx, deps.Logger, stderr)
	}

	return kongCtx.Run(deps)
}

// loadSelectors reads the YAML selector config when a path is given,
// otherwise returns the built-in defaults.
func loadSelectors(path string) (*revlens.SelectorConfig, error) {
	if path == "" {
		return revlens.DefaultSelectorConfig(), nil
	}
	return yaml.LoadSelectorConfig(path)
}

// newAccessor picks the page source: a headless browser by default, so
// JavaScript-rendered review sections are visible, or plain HTTP with
// --static.
func newAccessor(static bool) (revlens.DocumentAccessor, error) {
	if static {
		return revhttp.NewAccessor(), nil
	}
	return rod.NewAccessor()
}

// newSummarizer builds the summarizer chain: an LLM backend when an API
// key is configured, always falling back to the local lexicon summarizer.
func newSummarizer(ctx context.Context, logger *slog.Logger, stderr io.Writer) revlens.Summarizer {
	fallback := sentiment.NewSummarizer()

	primary := newLLMSummarizer(ctx, stderr)
	if primary == nil {
		fmt.Fprintln(stderr, "No OPENROUTER_API_KEY or GEMINI_API_KEY set; using local sentiment analysis only")
		return revslog.NewLoggingSummarizer(fallback, logger)
	}

	chain := &revlens.FallbackSummarizer{
		Primary:  primary,
		Fallback: fallback,
		OnFallback: func(err error) {
			logger.Warn("llm summarizer failed, using fallback", "error", err)
		},
	}
	return revslog.NewLoggingSummarizer(chain, logger)
}

func newLLMSummarizer(ctx context.Context, stderr io.Writer) revlens.Summarizer {
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		return openai.NewSummarizer(openai.NewClient(apiKey), os.Getenv("REVLENS_MODEL"))
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Check your GEMINI_API_KEY is valid: %v\n", err)
			return nil
		}
		return gemini.NewSummarizer(client, os.Getenv("REVLENS_MODEL"))
	}

	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("REVLENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "revlens.db"
	}
	dir := filepath.Join(home, ".revlens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "revlens.db")
}
