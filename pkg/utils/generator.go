package utils

import (
	"context"
	"strings"
)

// GenerativeClientInterface is the one seam between the planner and the
// external text-generation service. Implementations return a GenerationResult
// rather than a bare string because the upstream SDKs disagree about where the
// text payload lives.
type GenerativeClientInterface interface {
	Generate(ctx context.Context, prompt string) (GenerationResult, error)
	Close() error
}

// GenerationResult is a closed set of known response shapes. Every shape knows
// how to surface its text payload; anything outside the set fails with
// ErrUnrecognizedShape instead of being probed reflectively.
type GenerationResult interface {
	textPayload() (string, bool)
}

// TextResult is the simplest shape: the payload is a plain string field.
type TextResult struct {
	Text string
}

func (r TextResult) textPayload() (string, bool) {
	return r.Text, r.Text != ""
}

// CandidateResult mirrors the Gemini candidates/parts layout.
type CandidateResult struct {
	Candidates []GenerationCandidate
}

type GenerationCandidate struct {
	Parts []string
}

func (r CandidateResult) textPayload() (string, bool) {
	var parts []string
	for _, cand := range r.Candidates {
		for _, p := range cand.Parts {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// ContentArrayResult mirrors the output/content fallback layout some client
// versions return.
type ContentArrayResult struct {
	Output []GenerationContent
}

type GenerationContent struct {
	Content []string
}

func (r ContentArrayResult) textPayload() (string, bool) {
	var blocks []string
	for _, out := range r.Output {
		for _, c := range out.Content {
			if c != "" {
				blocks = append(blocks, c)
			}
		}
	}
	if len(blocks) == 0 {
		return "", false
	}
	return strings.Join(blocks, "\n"), true
}

// ExtractText locates the text payload inside a result. A nil or unknown
// result is an unrecognized shape; a recognized shape with no text is an
// empty response.
func ExtractText(result GenerationResult) (string, error) {
	if result == nil {
		return "", ErrUnrecognizedShape
	}
	text, ok := result.textPayload()
	if !ok {
		return "", ErrEmptyResponse
	}
	return text, nil
}
