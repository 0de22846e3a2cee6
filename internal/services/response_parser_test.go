package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

func TestParseStripsCodeFences(t *testing.T) {
	result := utils.TextResult{Text: "```json\n{\"itinerary\": []}\n```"}

	doc, err := ParseItineraryDocument(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Itinerary) != 0 {
		t.Fatalf("expected empty itinerary, got %d days", len(doc.Itinerary))
	}
}

func TestParseIsIdempotentOnCleanJSON(t *testing.T) {
	original := response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{
			{
				Day:     1,
				Morning: &response_models.Activity{Activity: "Fort walk", Time: "9:00 AM", Location: "Old town"},
				Lunch:   &response_models.Meal{Name: "Spice Route", Cuisine: "Indian"},
			},
		},
		Hotels: []response_models.Hotel{{Name: "The Grand", PriceRange: "luxury"}},
		Tips:   []string{"Carry cash"},
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	doc, err := ParseItineraryDocument(utils.TextResult{Text: string(data)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(*doc, original) {
		t.Fatalf("round trip changed the document:\n got %+v\nwant %+v", *doc, original)
	}
}

func TestParseJoinsCandidateParts(t *testing.T) {
	result := utils.CandidateResult{
		Candidates: []utils.GenerationCandidate{
			{Parts: []string{"```json", `{"tips": ["a"]}`, "```"}},
		},
	}

	doc, err := ParseItineraryDocument(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tips) != 1 || doc.Tips[0] != "a" {
		t.Fatalf("unexpected tips: %v", doc.Tips)
	}
}

func TestParseEmptyResponse(t *testing.T) {
	if _, err := ParseItineraryDocument(utils.TextResult{}); !errors.Is(err, utils.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
	if _, err := ParseItineraryDocument(utils.TextResult{Text: "``` ```"}); !errors.Is(err, utils.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse after fence stripping, got %v", err)
	}
	if _, err := ParseItineraryDocument(nil); !errors.Is(err, utils.ErrUnrecognizedShape) {
		t.Fatalf("expected ErrUnrecognizedShape for nil result, got %v", err)
	}
}

func TestParseMalformedCarriesRawPayload(t *testing.T) {
	raw := "Sure! Here is your itinerary: {not json"

	_, err := ParseItineraryDocument(utils.TextResult{Text: raw})
	if !errors.Is(err, utils.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}

	var malformed *utils.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %T", err)
	}
	if malformed.Raw != raw {
		t.Fatalf("raw payload not preserved: %q", malformed.Raw)
	}
}

func TestParsePackingList(t *testing.T) {
	result := utils.TextResult{Text: "```json\n{\"packingList\": [{\"category\": \"Clothing\", \"items\": [\"Light jacket\"]}]}\n```"}

	categories, err := ParsePackingList(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].Category != "Clothing" || len(categories[0].Items) != 1 {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestParsePackingListMissingKey(t *testing.T) {
	categories, err := ParsePackingList(utils.TextResult{Text: "{}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if categories == nil || len(categories) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", categories)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{}\n```": "{}",
		"```JSON\n{}\n```": "{}",
		"  {}  ":           "{}",
		"{}":               "{}",
	}
	for in, want := range cases {
		if got := StripCodeFences(in); got != want {
			t.Fatalf("StripCodeFences(%q) = %q, want %q", in, got, want)
		}
	}
}
