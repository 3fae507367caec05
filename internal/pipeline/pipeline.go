// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/davetashner/textinfo/internal/document"
	"github.com/davetashner/textinfo/internal/extract"
	"github.com/davetashner/textinfo/internal/grade"
	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/pattern"
	"github.com/davetashner/textinfo/internal/readability"
	"github.com/davetashner/textinfo/internal/stats"
)

// DefaultCacheSize bounds the number of compiled pattern sets an Engine
// keeps.
const DefaultCacheSize = 128

// cancelCheckInterval is how many comments are evaluated between context
// checks.
const cancelCheckInterval = 64

// DefaultTags are the keywords recognised right after a single-line
// delimiter when no configuration says otherwise.
var DefaultTags = []string{"!", "?", "//", "todo", "*"}

// Options are the user-facing switches that shape extraction.
type Options struct {
	// Tags are literal keywords matched after a single-line delimiter.
	Tags []string `json:"tags"`

	// MultilineComments enables block comment extraction.
	MultilineComments bool `json:"multiline_comments"`

	// HighlightPlainText treats every line of a plaintext document as a
	// comment.
	HighlightPlainText bool `json:"highlight_plain_text"`

	// UseJSDocStyle enables /** */ extraction for C-like languages.
	UseJSDocStyle bool `json:"use_jsdoc_style"`
}

// DefaultOptions returns the out-of-the-box configuration.
func DefaultOptions() Options {
	return Options{
		Tags:              append([]string(nil), DefaultTags...),
		MultilineComments: true,
		UseJSDocStyle:     true,
	}
}

func (o Options) patternOptions() pattern.Options {
	return pattern.Options{
		PlainText:         o.HighlightPlainText,
		MultilineComments: o.MultilineComments,
		UseJSDocStyle:     o.UseJSDocStyle,
	}
}

// Result is everything computed for one text snapshot. Spans, Stats and the
// per-comment order of Annotations line up with extraction order.
type Result struct {
	Language    string              `json:"language"`
	Supported   bool                `json:"supported"`
	Lines       int                 `json:"lines"`
	Words       int                 `json:"words"`
	ReadingTime string              `json:"reading_time"`
	Spans       []extract.Span      `json:"spans"`
	Stats       []readability.Stats `json:"stats"`
	Summary     stats.Summary       `json:"summary"`
	Annotations []grade.Annotation  `json:"annotations"`
}

// Kinds returns the kind of every span, in order.
func (r *Result) Kinds() []extract.Kind {
	kinds := make([]extract.Kind, len(r.Spans))
	for i, s := range r.Spans {
		kinds[i] = s.Kind
	}
	return kinds
}

// Engine runs the extraction and readability pipeline. It memoises compiled
// pattern sets; results are never cached. An Engine is safe for concurrent
// use, and each call works on its own snapshot of the text.
type Engine struct {
	patterns *lru.Cache[string, *pattern.Set]
}

// NewEngine creates an Engine whose pattern cache holds up to size entries.
// A size of zero or less selects DefaultCacheSize.
func NewEngine(size int) (*Engine, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *pattern.Set](size)
	if err != nil {
		return nil, fmt.Errorf("create pattern cache: %w", err)
	}
	return &Engine{patterns: cache}, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return e
})

// Run executes the pipeline on the shared default Engine.
func Run(ctx context.Context, text, languageID string, opts Options) (*Result, error) {
	return defaultEngine().Run(ctx, text, languageID, opts)
}

// Patterns returns the compiled pattern set for a language and options,
// compiling and caching it on first use.
func (e *Engine) Patterns(languageID string, opts Options) (*pattern.Set, error) {
	key := cacheKey(languageID, opts)
	if set, ok := e.patterns.Get(key); ok {
		return set, nil
	}

	profile := language.Lookup(languageID, opts.HighlightPlainText)
	set, err := pattern.Build(profile, normalizeTags(opts.Tags), opts.patternOptions())
	if err != nil {
		return nil, fmt.Errorf("build patterns for %q: %w", languageID, err)
	}
	e.patterns.Add(key, set)
	return set, nil
}

// Run extracts the comments of text, evaluates each one and summarises the
// corpus. An unsupported language is not an error; it yields a result with
// Supported false and no spans. The only errors are cancellation and
// pattern compilation failures.
func (e *Engine) Run(ctx context.Context, text, languageID string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := document.New(text)
	result := &Result{
		Language:    languageID,
		Supported:   language.Lookup(languageID, opts.HighlightPlainText).Supported,
		Lines:       doc.LineCount(),
		Words:       readability.WordCount(text),
		ReadingTime: readability.ReadingTime(text),
		Spans:       []extract.Span{},
		Stats:       []readability.Stats{},
		Annotations: []grade.Annotation{},
	}
	if !result.Supported {
		result.Summary = stats.Summarize(nil, nil)
		return result, nil
	}

	set, err := e.Patterns(languageID, opts)
	if err != nil {
		return nil, err
	}

	result.Spans = extract.Extract(doc, set)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Stats = make([]readability.Stats, len(result.Spans))
	for i, span := range result.Spans {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		result.Stats[i] = readability.Evaluate(span.Text)
	}

	result.Summary = stats.Summarize(result.Stats, result.Kinds())
	result.Annotations = Annotate(result.Spans, result.Stats)
	return result, nil
}
