// Package lookup fetches an AI-generated medicine summary with web citations.
// The backend is a black box behind the Searcher interface; the shipped
// implementation talks to the Gemini API with Google Search grounding.
package lookup

import (
	"context"
	"errors"
)

// ErrUnavailable covers transport and service failures. It is distinct from
// a successful lookup that simply found nothing (Result with empty Text).
var ErrUnavailable = errors.New("info lookup unavailable")

type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type Result struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

type Searcher interface {
	Search(ctx context.Context, productName string) (*Result, error)
}
