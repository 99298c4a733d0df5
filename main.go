// Package main is the entry point for the bclean server: the binding
// surface that exposes the three cleaner variants (title, author, text) as
// MCP tools over stdio.
//
// This file is intentionally minimal - the pipeline lives in internal/.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcphandlers "github.com/bibkit/bclean/internal/mcp"
	"github.com/bibkit/bclean/internal/stemmer"
	"github.com/bibkit/bclean/internal/stopwords"
)

const (
	serverName    = "bclean"
	serverVersion = "v0.1.0"
	defaultLogDir = ".bclean"
)

// setupLogger creates an slog logger that writes to a debug file in the log
// directory. File format: debug-YYYY-MM-DD.txt
func setupLogger(logDir string) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logDir, fmt.Sprintf("debug-%s.txt", date))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler), file, nil
}

func main() {
	// MCP stdio servers must log to stderr only (for the standard log package).
	log.SetOutput(os.Stderr)

	languages := flag.String("languages", "",
		"Comma-separated stopword languages (e.g. 'en,fr,la'); empty merges all built-ins")
	stem := flag.Bool("stem", false,
		"Enable the stemming stage for clean_title and clean_text")
	stemLanguage := flag.String("stem-language", "english",
		"Snowball language used when -stem is set")
	stripMarkup := flag.Bool("strip-markup", false,
		"Strip HTML from text input before tokenization")
	logDir := flag.String("log-dir", defaultLogDir, "Directory for log files")

	flag.Parse()

	// --- 1. Setup file-based debug logger ---

	logger, logFile, err := setupLogger(*logDir)
	if err != nil {
		log.Printf("Warning: failed to setup file logger: %v", err)
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	} else {
		defer logFile.Close()
	}

	logger.Info("server starting",
		"name", serverName,
		"version", serverVersion,
		"languages", *languages,
		"stem", *stem,
	)

	// --- 2. Load the process-wide lexical resources ---
	// Misconfiguration fails fast here, never per-token later.

	var set stopwords.Set
	if *languages == "" {
		set = stopwords.Merged()
	} else {
		set, err = stopwords.Load(strings.Split(*languages, ",")...)
		if err != nil {
			logger.Error("failed to load stopwords", "error", err)
			log.Fatalf("Failed to load stopwords: %v", err)
		}
	}
	logger.Info("stopwords loaded", "entries", set.Len())

	var st stemmer.Stemmer
	if *stem {
		sb, err := stemmer.New(*stemLanguage)
		if err != nil {
			logger.Error("failed to create stemmer", "error", err)
			log.Fatalf("Failed to create stemmer: %v", err)
		}
		logger.Info("stemmer ready", "language", sb.Language())
		st = sb
	}

	// --- 3. Create the tool handlers ---

	handlers := mcphandlers.NewHandlers(set, st, *stripMarkup, logger)

	// --- 4. Create and configure the MCP server ---

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: "Normalize pre-tokenized bibliographic strings: clean_title for titles, clean_author for author names, clean_text for free text. Pass tokens (preferred) or text.",
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean_title",
		Description: "Normalize a title token sequence: case folding, punctuation stripping, stopword removal, optional stemming.",
	}, handlers.CleanTitle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean_author",
		Description: "Normalize an author name token sequence: case folding, punctuation stripping, life-date removal. Initials survive.",
	}, handlers.CleanAuthor)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean_text",
		Description: "Normalize a free-text token sequence: case and diacritic folding, punctuation stripping, stopword removal, optional stemming.",
	}, handlers.CleanText)

	logger.Info("server ready, waiting for requests")

	// --- 5. Run the server ---

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("server error", "error", err)
		log.Fatal(err)
	}
}
