package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"
)

// MembershipStatusLabel is the derived status shown on the public lookup
// page. It folds expiry into the stored active/paused state.
type MembershipStatusLabel string

const (
	MembershipActive  MembershipStatusLabel = "active"
	MembershipPaused  MembershipStatusLabel = "paused"
	MembershipExpired MembershipStatusLabel = "expired"
)

// MembershipInfo is the read-only projection returned by the public lookup.
// When Found is false no other field is populated.
type MembershipInfo struct {
	Found            bool
	FullName         string
	Plan             string
	EndDate          time.Time
	Status           domain.ClientStatus
	StatusLabel      MembershipStatusLabel
	DaysLeft         int
	CurrentGoalTitle string
	TargetMetric     string
	TargetValue      string
	TargetDate       *time.Time
	Schedule         []domain.ScheduleEntry
}

// --- Service Interface ---
type MembershipService interface {
	// Lookup resolves a membership code to the client's public projection.
	// Unknown codes are not an error: the projection reports Found=false.
	Lookup(ctx context.Context, code string) (*MembershipInfo, error)
}

// --- Service Implementation ---

type membershipService struct {
	clientRepo   repository.ClientRepository
	scheduleRepo repository.ScheduleRepository

	now func() time.Time
}

// NewMembershipService creates a new instance of membershipService.
func NewMembershipService(clientRepo repository.ClientRepository, scheduleRepo repository.ScheduleRepository) MembershipService {
	return &membershipService{
		clientRepo:   clientRepo,
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

func (s *membershipService) Lookup(ctx context.Context, code string) (*MembershipInfo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return &MembershipInfo{Found: false}, nil
	}

	client, err := s.clientRepo.GetByMembershipCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &MembershipInfo{Found: false}, nil
		}
		return nil, err
	}

	// A missing singleton just means nothing has been scheduled yet.
	var entries []domain.ScheduleEntry
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if schedule != nil {
		entries = schedule.EntriesFor(client.ID.Hex())
	}

	daysLeft := domain.DaysUntil(client.EndDate, s.now().UTC())
	label := MembershipActive
	switch {
	case client.IsPaused():
		label = MembershipPaused
	case daysLeft <= 0:
		label = MembershipExpired
	}

	return &MembershipInfo{
		Found:            true,
		FullName:         client.FullName,
		Plan:             client.Plan,
		EndDate:          client.EndDate,
		Status:           client.Status,
		StatusLabel:      label,
		DaysLeft:         daysLeft,
		CurrentGoalTitle: client.CurrentGoalTitle,
		TargetMetric:     client.TargetMetric,
		TargetValue:      client.TargetValue,
		TargetDate:       client.TargetDate,
		Schedule:         entries,
	}, nil
}
