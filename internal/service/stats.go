package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

// StatsReader aggregates recorded audit events.
type StatsReader interface {
	CountByKind(ctx context.Context) (map[string]int64, error)
	CountByStrength(ctx context.Context) (map[string]int64, error)
}

// StatsService exposes audit aggregates to operators.
type StatsService struct {
	repo StatsReader
}

// NewStatsService creates a new StatsService. A nil repo reports
// repository.ErrAuditUnavailable.
func NewStatsService(repo StatsReader) *StatsService {
	return &StatsService{repo: repo}
}

// Stats returns event counts per kind and per strength tier.
func (s *StatsService) Stats(ctx context.Context) (model.StatsResponse, error) {
	if s.repo == nil {
		return model.StatsResponse{}, repository.ErrAuditUnavailable
	}

	byKind, err := s.repo.CountByKind(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}
	byStrength, err := s.repo.CountByStrength(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	var total int64
	for _, n := range byKind {
		total += n
	}

	return model.StatsResponse{
		Total:      total,
		ByKind:     byKind,
		ByStrength: byStrength,
	}, nil
}
