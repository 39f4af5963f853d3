// Package nlp is the remote entity-extraction annotation service client. It
// posts flattened card text to the vendor endpoint, validates the response
// against a declared schema, and maps vendor entity types onto the
// canonical category set.
package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cardvault/constants"
	"cardvault/internal/annotate"
	"cardvault/internal/annotate/httpjson"
	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

type Config struct {
	BaseURL string        // vendor endpoint root
	APIKey  string        // falls back to env NLP_API_KEY
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("NLP_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type vendorEntity struct {
	Type        string  `json:"type"`
	Text        string  `json:"text"`
	BeginOffset int     `json:"begin_offset"`
	EndOffset   int     `json:"end_offset"`
	Normalized  string  `json:"normalized,omitempty"`
	Probability float64 `json:"probability,omitempty"`
}

type vendorResponse struct {
	Entities []vendorEntity `json:"entities"`
}

// Annotate implements annotate.Annotator. Cancelling the returned handle
// aborts the in-flight HTTP request and suppresses the callback.
func (c *Client) Annotate(req *annotate.Request, done annotate.Done) task.Handle {
	call := annotate.NewCall()
	ctx, cancel := context.WithCancel(context.Background())
	call.OnCancel(cancel)

	go func() {
		defer cancel()
		resp, err := c.extract(ctx, req)
		if err != nil {
			c.logger.Warn("nlp.annotate.failed", "error", err)
			call.Deliver(done, nil, err)
			return
		}
		call.Deliver(done, resp, nil)
	}()
	return call
}

func (c *Client) extract(ctx context.Context, req *annotate.Request) (*annotate.Response, error) {
	out := annotate.Blank(req)
	content := out.Content()

	c.logger.Info("nlp.extract.start", "text_len", len(content))
	start := time.Now()

	body := map[string]any{
		"document": map[string]any{"type": "PLAIN_TEXT", "content": content},
		"encoding": "UTF8",
	}
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := httpjson.Post(ctx, c.http, c.cfg.BaseURL+"/v1/entities:extract", body, headers, c.logger)
	if err != nil {
		return nil, fmt.Errorf("nlp request: %w", err)
	}

	if err := validate(entitySchema(), raw); err != nil {
		return nil, fmt.Errorf("nlp response: %w", err)
	}
	var vr vendorResponse
	if err := json.Unmarshal(raw, &vr); err != nil {
		return nil, fmt.Errorf("decode nlp response: %w", err)
	}

	tagged := 0
	for _, e := range vr.Entities {
		cat, ok := constants.Canonicalize(e.Type)
		if !ok {
			c.logger.Debug("nlp.extract.unmapped_type", "type", e.Type)
			continue
		}
		if e.BeginOffset >= e.EndOffset || e.EndOffset > len(content) {
			c.logger.Warn("nlp.extract.bad_offsets", "type", e.Type, "begin", e.BeginOffset, "end", e.EndOffset)
			continue
		}
		out.AddTag(cat, e.Normalized, annotation.NewSpan(e.BeginOffset, e.EndOffset))
		tagged++
	}

	c.logger.Info("nlp.extract.ok",
		"entities", len(vr.Entities),
		"tagged", tagged,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &annotate.Response{Text: out}, nil
}
