package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/pipeline"
)

// AnalyzeRequest is the body of POST /v1/analyze. Unset options take their
// defaults.
type AnalyzeRequest struct {
	Text     string         `json:"text"`
	Language string         `json:"language"`
	Options  RequestOptions `json:"options"`
}

// RequestOptions mirror pipeline.Options with every field optional.
type RequestOptions struct {
	Tags               []string `json:"tags,omitempty"`
	MultilineComments  *bool    `json:"multiline_comments,omitempty"`
	HighlightPlainText *bool    `json:"highlight_plain_text,omitempty"`
	UseJSDocStyle      *bool    `json:"use_jsdoc_style,omitempty"`
}

func (o RequestOptions) resolve() pipeline.Options {
	opts := pipeline.DefaultOptions()
	if o.Tags != nil {
		opts.Tags = o.Tags
	}
	if o.MultilineComments != nil {
		opts.MultilineComments = *o.MultilineComments
	}
	if o.HighlightPlainText != nil {
		opts.HighlightPlainText = *o.HighlightPlainText
	}
	if o.UseJSDocStyle != nil {
		opts.UseJSDocStyle = *o.UseJSDocStyle
	}
	return opts
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req AnalyzeRequest
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", MaxBodyBytes))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Language == "" {
		writeError(w, http.StatusBadRequest, "language is required")
		return
	}

	opts := req.Options.resolve()
	for _, e := range pipeline.ValidateOptions(opts) {
		slog.Warn("ignoring option", "field", e.Field, "reason", e.Message,
			"request_id", middleware.GetReqID(r.Context()))
	}

	result, err := s.engine.Run(r.Context(), req.Text, req.Language, opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "analysis cancelled")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, language.All())
}
