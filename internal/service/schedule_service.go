package service

import (
	"context"
	"errors"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"
)

// --- Service Interface ---
type ScheduleService interface {
	// GetSchedule returns the saved grid, or a fully initialized empty one
	// when nothing has been saved yet.
	GetSchedule(ctx context.Context) (*domain.WeeklySchedule, error)
	// SaveSchedule replaces the singleton. Unknown days or time slots in the
	// submitted grid are dropped rather than persisted; the returned grid is
	// the normalized one that was actually stored.
	SaveSchedule(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
}

// --- Service Implementation ---

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) GetSchedule(ctx context.Context) (*domain.WeeklySchedule, error) {
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewEmptySchedule(), nil
		}
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) SaveSchedule(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	if schedule == nil || schedule.Schedule == nil {
		return nil, ErrValidationFailed
	}

	// Normalize onto the known grid so stray keys never reach the document.
	normalized := domain.NewEmptySchedule()
	for _, day := range domain.ScheduleDays {
		submitted, ok := schedule.Schedule[day]
		if !ok {
			continue
		}
		for _, slot := range domain.ScheduleSlots {
			normalized.Schedule[day][slot] = submitted[slot]
		}
	}

	if err := s.scheduleRepo.Save(ctx, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
