package services

import (
	"context"

	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/storage"
)

// hoursPerWork is the flat estimate used for the volunteer hours counter.
const hoursPerWork = 2

// StatsService aggregates the landing page counters
type StatsService struct {
	store storage.Store
}

// NewStatsService creates a new stats service instance
func NewStatsService(store storage.Store) *StatsService {
	return &StatsService{store: store}
}

// Collect computes the aggregate counters across members and works
func (s *StatsService) Collect(ctx context.Context) (dto.StatsResponse, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return dto.StatsResponse{}, err
	}
	works, err := s.store.Works().List(ctx)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	stats := dto.StatsResponse{
		TotalMembers: len(users),
		TotalWorks:   len(works),
	}
	for _, w := range works {
		stats.TotalBeneficiaries += w.BeneficiariesCount
	}
	stats.VolunteerHours = stats.TotalWorks * hoursPerWork

	return stats, nil
}
