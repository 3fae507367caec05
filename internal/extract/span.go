// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package extract finds comment spans in document text using compiled
// pattern sets. It is a heuristic scanner, not a lexer: delimiters inside
// string literals are reported as comments.
package extract

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a comment span by the pass that found it.
type Kind int

const (
	// SingleLine comments run from a delimiter to the end of the line.
	SingleLine Kind = iota
	// Block comments sit between start and end delimiters.
	Block
	// DocBlock comments are /** ... */ blocks.
	DocBlock
)

// Kinds lists every kind in pass order.
var Kinds = []Kind{SingleLine, Block, DocBlock}

var kindNames = [...]string{"SingleLineComment", "MultiLineComment", "JSDocComment"}

// String returns the stable label used in reports.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalJSON encodes the kind as its label.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a label written by MarshalJSON.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown comment kind %q", s)
}

// Span is one detected comment. Start and End are byte offsets into the
// document with End exclusive; Text is the verbatim slice between them.
type Span struct {
	Kind  Kind   `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
}
