package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"wattcompare-backend/internal/energy"
	"wattcompare-backend/internal/ocr"
	"wattcompare-backend/internal/report"
	"wattcompare-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	engine ocr.Engine
	report *report.Generator
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, engine ocr.Engine, gen *report.Generator) *Handler {
	return &Handler{
		store:  s,
		engine: engine,
		report: gen,
	}
}

// extractFromImage runs text recognition over an uploaded label image and
// scans the recognized text for a yearly energy figure. The returned value is
// nil when no pattern matched; the lowercased raw text is always returned for
// diagnostic display.
func (h *Handler) extractFromImage(ctx context.Context, fh *multipart.FileHeader) (*float64, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("read uploaded image: %w", err)
	}

	text, err := h.engine.Recognize(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("text recognition failed: %w", err)
	}
	text = strings.ToLower(text)

	val, ok := energy.Extract(text)
	if !ok {
		return nil, text, nil
	}
	return &val, text, nil
}
