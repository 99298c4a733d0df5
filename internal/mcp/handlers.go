// Package mcp provides the MCP tool handlers of the cleaning server. Each
// handler validates its arguments, runs one cleaner variant, and returns
// the normalized tokens as both text and structured content.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bibkit/bclean/internal/cleaner"
	"github.com/bibkit/bclean/internal/markup"
	"github.com/bibkit/bclean/internal/stemmer"
	"github.com/bibkit/bclean/internal/stopwords"
)

// CleanArgs defines the arguments shared by the cleaning tools.
type CleanArgs struct {
	Tokens []string `json:"tokens,omitempty" jsonschema_description:"Pre-tokenized input, one lexical unit per entry (punctuation may be embedded in tokens)"`
	Text   string   `json:"text,omitempty" jsonschema_description:"Raw text to split on whitespace; used when tokens is omitted"`
	Stem   bool     `json:"stem,omitempty" jsonschema_description:"Apply the configured stemmer as a final stage (clean_title and clean_text only)"`
}

// CleanResult carries the normalized token sequence.
type CleanResult struct {
	Tokens []string `json:"tokens"`
}

// Handlers holds the process-wide cleaning resources: the stopword set and
// the optional stemmer, both immutable after construction.
type Handlers struct {
	stopwords   stopwords.Set
	stemmer     stemmer.Stemmer
	stripMarkup bool
	logger      *slog.Logger
}

// NewHandlers creates handlers over the given resources. st may be nil, in
// which case stem requests are ignored. When stripMarkup is set, text input
// is stripped of HTML before tokenization.
func NewHandlers(set stopwords.Set, st stemmer.Stemmer, stripMarkup bool, logger *slog.Logger) *Handlers {
	return &Handlers{stopwords: set, stemmer: st, stripMarkup: stripMarkup, logger: logger}
}

// tokensFromArgs resolves the input sequence: explicit tokens win, then
// whitespace-split text. An explicitly empty token list is valid input; a
// request with neither field is not.
func (h *Handlers) tokensFromArgs(args CleanArgs) ([]string, error) {
	if args.Tokens != nil {
		return args.Tokens, nil
	}
	if strings.TrimSpace(args.Text) != "" {
		text := args.Text
		if h.stripMarkup {
			text = markup.StripTags(text)
		}
		return strings.Fields(text), nil
	}
	return nil, fmt.Errorf("tokens or text is required")
}

func (h *Handlers) stemOption(args CleanArgs) []cleaner.Option {
	opts := []cleaner.Option{cleaner.WithStopwords(h.stopwords)}
	if args.Stem && h.stemmer != nil {
		opts = append(opts, cleaner.WithStemmer(h.stemmer))
	}
	return opts
}

func result(tokens []string) (*mcp.CallToolResult, any) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: strings.Join(tokens, " ")}},
	}, CleanResult{Tokens: tokens}
}

// CleanTitle handles the clean_title tool call.
func (h *Handlers) CleanTitle(ctx context.Context, req *mcp.CallToolRequest, args CleanArgs) (*mcp.CallToolResult, any, error) {
	toks, err := h.tokensFromArgs(args)
	if err != nil {
		h.logger.Error("clean_title: invalid arguments", "error", err)
		return nil, nil, err
	}

	h.logger.Debug("clean_title", "tokens", len(toks), "stem", args.Stem)

	out := cleaner.NewTitle(toks, h.stemOption(args)...).Clean().Tokens()

	h.logger.Info("clean_title: success", "in", len(toks), "out", len(out))

	res, structured := result(out)
	return res, structured, nil
}

// CleanAuthor handles the clean_author tool call. Author names are never
// stopword-filtered or stemmed.
func (h *Handlers) CleanAuthor(ctx context.Context, req *mcp.CallToolRequest, args CleanArgs) (*mcp.CallToolResult, any, error) {
	toks, err := h.tokensFromArgs(args)
	if err != nil {
		h.logger.Error("clean_author: invalid arguments", "error", err)
		return nil, nil, err
	}

	h.logger.Debug("clean_author", "tokens", len(toks))

	out := cleaner.NewAuthor(toks).Clean().Tokens()

	h.logger.Info("clean_author: success", "in", len(toks), "out", len(out))

	res, structured := result(out)
	return res, structured, nil
}

// CleanText handles the clean_text tool call.
func (h *Handlers) CleanText(ctx context.Context, req *mcp.CallToolRequest, args CleanArgs) (*mcp.CallToolResult, any, error) {
	toks, err := h.tokensFromArgs(args)
	if err != nil {
		h.logger.Error("clean_text: invalid arguments", "error", err)
		return nil, nil, err
	}

	h.logger.Debug("clean_text", "tokens", len(toks), "stem", args.Stem)

	out := cleaner.NewText(toks, h.stemOption(args)...).Clean().Tokens()

	h.logger.Info("clean_text: success", "in", len(toks), "out", len(out))

	res, structured := result(out)
	return res, structured, nil
}
