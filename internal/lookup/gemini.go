package lookup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// callTimeout bounds a single lookup; the upstream has no SLA.
const callTimeout = 30 * time.Second

const promptTemplate = `Provide a comprehensive but concise summary about %q.
Include:
1. Common uses
2. Potential side effects
3. Key warnings or interactions
4. Any recent relevant news or shortage updates if applicable.

Keep the tone professional and medical but accessible to a patient.`

// Gemini implements Searcher against the Gemini API with Google Search
// grounding, so summaries come back with live web citations.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

func (g *Gemini) Search(ctx context.Context, productName string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(fmt.Sprintf(promptTemplate, productName)), cfg)
	if err != nil {
		g.log.Error("gemini lookup failed", zap.String("product", productName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	res := &Result{Text: resp.Text()}
	res.Sources = groundingSources(resp)
	g.log.Info("gemini lookup done",
		zap.String("product", productName),
		zap.Int("sources", len(res.Sources)),
		zap.Bool("empty", res.Text == ""))
	return res, nil
}

// groundingSources pulls web citations out of the grounding metadata.
// Chunks without a web reference are skipped.
func groundingSources(resp *genai.GenerateContentResponse) []Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}
