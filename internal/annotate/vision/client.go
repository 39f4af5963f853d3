// Package vision is the remote image-annotation service client: raw card
// image in, OCR text plus face/logo detections out, expressed as one
// annotated text so downstream consumers stay uniform.
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"cardvault/constants"
	"cardvault/internal/annotate"
	"cardvault/internal/annotate/httpjson"
	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

type Config struct {
	BaseURL string
	APIKey  string // falls back to env VISION_API_KEY
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("VISION_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
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

type vendorVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type vendorWord struct {
	Text     string         `json:"text"`
	Vertices []vendorVertex `json:"vertices"`
}

type vendorAnnotation struct {
	Category    string         `json:"category"` // TEXT | FACE | LOGO | CODE
	Description string         `json:"description,omitempty"`
	Vertices    []vendorVertex `json:"vertices"`
	Words       []vendorWord   `json:"words,omitempty"`
}

type vendorResponse struct {
	Annotations []vendorAnnotation `json:"annotations"`
}

// Annotate implements annotate.Annotator for image requests.
func (c *Client) Annotate(req *annotate.Request, done annotate.Done) task.Handle {
	call := annotate.NewCall()
	ctx, cancel := context.WithCancel(context.Background())
	call.OnCancel(cancel)

	go func() {
		defer cancel()
		resp, err := c.detect(ctx, req)
		if err != nil {
			c.logger.Warn("vision.annotate.failed", "error", err)
			call.Deliver(done, nil, err)
			return
		}
		call.Deliver(done, resp, nil)
	}()
	return call
}

func (c *Client) detect(ctx context.Context, req *annotate.Request) (*annotate.Response, error) {
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("vision request has no image bytes")
	}

	c.logger.Info("vision.detect.start", "image_bytes", len(req.Image))
	start := time.Now()

	body := map[string]any{
		"image":    map[string]any{"content": base64.StdEncoding.EncodeToString(req.Image)},
		"features": []string{"TEXT_DETECTION", "FACE_DETECTION", "LOGO_DETECTION"},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := httpjson.Post(ctx, c.http, c.cfg.BaseURL+"/v1/images:annotate", body, headers, c.logger)
	if err != nil {
		return nil, fmt.Errorf("vision request: %w", err)
	}

	var vr vendorResponse
	if err := json.Unmarshal(raw, &vr); err != nil {
		return nil, fmt.Errorf("decode vision response: %w", err)
	}

	resp := buildResponse(vr)
	c.logger.Info("vision.detect.ok",
		"annotations", len(vr.Annotations),
		"lines", resp.Text.LineCount(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// buildResponse flattens the vendor detections into one annotated text. The
// recognized text block becomes the content, tagged Note over its full
// span; per-word bounding polygons become shape annotations anchored at
// each word's occurrence; face and logo detections are tagged over the full
// span with their geometry, since they have no text anchor of their own.
func buildResponse(vr vendorResponse) *annotate.Response {
	var textAnn *vendorAnnotation
	for i := range vr.Annotations {
		if vr.Annotations[i].Category == "TEXT" {
			textAnn = &vr.Annotations[i]
			break
		}
	}

	var out *annotation.Text
	if textAnn != nil {
		out = annotation.New(textAnn.Description, "\n")
	} else {
		out = annotation.NewFromLines(nil)
	}
	content := out.Content()
	full := annotation.NewSpan(0, len(content))

	if textAnn != nil {
		out.AddTag(constants.Note, "", full)
		out.AddShape(toPolygon(textAnn.Vertices), full)

		// Anchor word geometry at each word's first occurrence past the
		// previous word, so repeated words land on distinct spans.
		cursor := 0
		for _, w := range textAnn.Words {
			if w.Text == "" {
				continue
			}
			idx := strings.Index(content[cursor:], w.Text)
			if idx < 0 {
				continue
			}
			span := annotation.NewSpan(cursor+idx, cursor+idx+len(w.Text))
			out.AddShape(toPolygon(w.Vertices), span)
			cursor = span.End
		}
	}

	for _, a := range vr.Annotations {
		switch a.Category {
		case "FACE":
			out.AddTag(constants.Face, "", full)
			out.AddShape(toPolygon(a.Vertices), full)
		case "LOGO":
			out.AddTag(constants.Logo, a.Description, full)
			out.AddShape(toPolygon(a.Vertices), full)
		}
	}

	return &annotate.Response{Text: out}
}

func toPolygon(vs []vendorVertex) annotation.Polygon {
	poly := make(annotation.Polygon, 0, len(vs))
	for _, v := range vs {
		poly = append(poly, annotation.Point{X: v.X, Y: v.Y})
	}
	return poly
}
