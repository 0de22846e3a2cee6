package services

import (
	"encoding/json"
	"strings"

	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

// StripCodeFences removes Markdown code-fence wrappers the backend sometimes
// adds despite being told not to, and trims surrounding whitespace. Nothing
// else is touched; a response that is still not JSON after this fails parsing
// rather than being coerced.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseItineraryDocument turns a raw backend result into an itinerary
// document. Only JSON-syntactic correctness is checked here; shape validation
// is the reconciler's job because the backend is unreliable about schema
// adherence.
func ParseItineraryDocument(result utils.GenerationResult) (*response_models.ItineraryDocument, error) {
	text, err := utils.ExtractText(result)
	if err != nil {
		return nil, err
	}

	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, utils.ErrEmptyResponse
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &utils.MalformedResponseError{Raw: text, Err: err}
	}

	return &doc, nil
}

// ParsePackingList extracts the packingList array from a raw backend result.
func ParsePackingList(result utils.GenerationResult) ([]response_models.PackingCategory, error) {
	text, err := utils.ExtractText(result)
	if err != nil {
		return nil, err
	}

	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, utils.ErrEmptyResponse
	}

	var payload struct {
		PackingList []response_models.PackingCategory `json:"packingList"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &utils.MalformedResponseError{Raw: text, Err: err}
	}

	if payload.PackingList == nil {
		return []response_models.PackingCategory{}, nil
	}
	return payload.PackingList, nil
}
