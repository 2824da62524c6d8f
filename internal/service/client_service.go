package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrAlreadyPaused    = errors.New("membership is already paused")
	ErrNotPaused        = errors.New("membership is not paused")
	ErrValidationFailed = errors.New("validation failed")
)

// Progress-log notes must be substantive but bounded.
const (
	minProgressNoteLen = 5
	maxProgressNoteLen = 500
)

// ClientGoal carries the coaching goal fields set from the admin client
// detail screen.
type ClientGoal struct {
	CurrentGoalTitle string
	TargetMetric     string
	TargetValue      string
	TargetDate       time.Time
}

// --- Service Interface ---
type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	DeleteClient(ctx context.Context, id primitive.ObjectID) error

	// PauseMembership freezes the remaining days of an active membership.
	PauseMembership(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	// ResumeMembership restores a paused membership, pushing the end date
	// out by the frozen day count.
	ResumeMembership(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	// ExtendMembership adds days to the end date.
	ExtendMembership(ctx context.Context, id primitive.ObjectID, days int) (*domain.Client, error)

	UpdateGoal(ctx context.Context, id primitive.ObjectID, goal ClientGoal) (*domain.Client, error)
	UpdateResources(ctx context.Context, id primitive.ObjectID, nutritionPlanURL, trainingProgramURL string) (*domain.Client, error)

	AddProgressLog(ctx context.Context, clientID primitive.ObjectID, note string, category domain.LogCategory) (*domain.ProgressLog, error)
	GetProgressLogs(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressLog, error)
}

// --- Service Implementation ---

type clientService struct {
	clientRepo repository.ClientRepository
	logRepo    repository.ProgressLogRepository

	now func() time.Time
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository, logRepo repository.ProgressLogRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		logRepo:    logRepo,
		now:        time.Now,
	}
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id primitive.ObjectID) error {
	err := s.clientRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrClientNotFound
	}
	return err
}

// PauseMembership captures the remaining whole days and freezes the clock.
// A second pause without a resume is rejected: recomputing the counter from
// the already frozen end date would silently shrink the membership.
func (s *clientService) PauseMembership(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.IsPaused() {
		return nil, ErrAlreadyPaused
	}

	days := domain.DaysUntil(client.EndDate, s.now().UTC())
	client.DaysLeftOnPause = &days
	client.Status = domain.ClientPaused

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ResumeMembership restores the frozen days: endDate = now + daysLeftOnPause.
func (s *clientService) ResumeMembership(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if !client.IsPaused() {
		return nil, ErrNotPaused
	}

	days := 0
	if client.DaysLeftOnPause != nil {
		days = *client.DaysLeftOnPause
	}
	client.EndDate = s.now().UTC().AddDate(0, 0, days)
	client.DaysLeftOnPause = nil
	client.Status = domain.ClientActive

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ExtendMembership pushes the end date out by the given number of days.
func (s *clientService) ExtendMembership(ctx context.Context, id primitive.ObjectID, days int) (*domain.Client, error) {
	if days < 1 {
		return nil, ErrValidationFailed
	}
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	client.EndDate = client.EndDate.AddDate(0, 0, days)

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateGoal(ctx context.Context, id primitive.ObjectID, goal ClientGoal) (*domain.Client, error) {
	if goal.CurrentGoalTitle == "" || goal.TargetMetric == "" || goal.TargetValue == "" || goal.TargetDate.IsZero() {
		return nil, ErrValidationFailed
	}
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	targetDate := goal.TargetDate.UTC()
	client.CurrentGoalTitle = goal.CurrentGoalTitle
	client.TargetMetric = goal.TargetMetric
	client.TargetValue = goal.TargetValue
	client.TargetDate = &targetDate

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateResources(ctx context.Context, id primitive.ObjectID, nutritionPlanURL, trainingProgramURL string) (*domain.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	client.NutritionPlanURL = nutritionPlanURL
	client.TrainingProgramURL = trainingProgramURL

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) AddProgressLog(ctx context.Context, clientID primitive.ObjectID, note string, category domain.LogCategory) (*domain.ProgressLog, error) {
	if n := utf8.RuneCountInString(note); n < minProgressNoteLen || n > maxProgressNoteLen {
		return nil, ErrValidationFailed
	}
	// The client must exist; progress logs are not free-floating.
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	entry := &domain.ProgressLog{
		ClientID: clientID,
		Note:     note,
		Category: category,
	}
	entryID, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

func (s *clientService) GetProgressLogs(ctx context.Context, clientID primitive.ObjectID) ([]domain.ProgressLog, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.logRepo.ListByClientID(ctx, clientID)
}
