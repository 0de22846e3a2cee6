package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travelr/internal/models/request_models"
	"travelr/pkg/utils"
)

func TestGeneratePackingList(t *testing.T) {
	client := &fakeGenerativeClient{
		generate: func(_ context.Context, _ string) (utils.GenerationResult, error) {
			return utils.TextResult{Text: "```json\n{\"packingList\": [{\"category\": \"Clothing\", \"items\": [\"Raincoat\", \"Quick-dry shirts\"]}]}\n```"}, nil
		},
	}
	svc := NewPackingService(client, time.Second)

	categories, err := svc.GeneratePackingList(context.Background(), request_models.GeneratePackingListRequest{
		Destination: "Goa",
		Days:        5,
		Interests:   []string{"Beaches"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].Category != "Clothing" || len(categories[0].Items) != 2 {
		t.Fatalf("unexpected categories: %+v", categories)
	}
	if !strings.Contains(client.lastSeen, "Goa") || !strings.Contains(client.lastSeen, "Beaches") {
		t.Fatalf("packing prompt missing trip parameters")
	}
}

func TestGeneratePackingListBackendTimeout(t *testing.T) {
	client := &fakeGenerativeClient{
		generate: func(ctx context.Context, _ string) (utils.GenerationResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	svc := NewPackingService(client, 20*time.Millisecond)

	_, err := svc.GeneratePackingList(context.Background(), request_models.GeneratePackingListRequest{Destination: "Goa", Days: 2})
	if !errors.Is(err, utils.ErrBackendTimeout) {
		t.Fatalf("expected ErrBackendTimeout, got %v", err)
	}
}
