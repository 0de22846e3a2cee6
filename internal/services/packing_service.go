package services

import (
	"context"
	"errors"
	"time"

	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

type PackingServiceInterface interface {
	GeneratePackingList(ctx context.Context, req request_models.GeneratePackingListRequest) ([]response_models.PackingCategory, error)
}

type PackingService struct {
	client         utils.GenerativeClientInterface
	requestTimeout time.Duration
}

func NewPackingService(client utils.GenerativeClientInterface, requestTimeout time.Duration) PackingServiceInterface {
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	return &PackingService{
		client:         client,
		requestTimeout: requestTimeout,
	}
}

func (s *PackingService) GeneratePackingList(ctx context.Context, req request_models.GeneratePackingListRequest) ([]response_models.PackingCategory, error) {
	prompt := BuildPackingListPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	result, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, utils.ErrBackendTimeout
		}
		return nil, err
	}

	return ParsePackingList(result)
}
