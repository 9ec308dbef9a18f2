package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Extractions revlens.ExtractionService
	Accessor    revlens.DocumentAccessor
	Selectors   *revlens.SelectorConfig
	Summarizer  revlens.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract reviews from product page URLs"`
	Analyze AnalyzeCmd `cmd:"" help:"Extract and summarize reviews from a product page"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Show    ShowCmd    `cmd:"" help:"Show a stored extraction and its summary"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
	Serve   ServeCmd   `cmd:"" help:"Run the review analysis HTTP API"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Product page URLs"`
	Static      bool     `short:"s" help:"Fetch pages over plain HTTP without a browser"`
	Save        bool     `help:"Record extractions in the history database"`
	Selectors   string   `help:"Path to a YAML selector config"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per domain"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL       string `arg:"" help:"Product page URL"`
	Static    bool   `short:"s" help:"Fetch the page over plain HTTP without a browser"`
	Save      bool   `help:"Record the extraction and summary in the history database"`
	Selectors string `help:"Path to a YAML selector config"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only show extractions for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of extractions to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:":5000" help:"Listen address"`
	NoHistory bool   `help:"Run stateless without recording extractions"`
}
