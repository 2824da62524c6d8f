package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"akramfit/coaching-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedClient(repo *fakeClientRepo, endDate time.Time, status domain.ClientStatus) *domain.Client {
	id := primitive.NewObjectID()
	client := &domain.Client{
		ID:             id,
		FullName:       "Lina B",
		Plan:           "Premium",
		StartDate:      endDate.AddDate(0, -1, 0),
		EndDate:        endDate,
		Status:         status,
		MembershipCode: domain.MembershipCodeFromID(id),
	}
	repo.clients[id] = *client
	return client
}

func TestPauseResumeRoundTrip(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{}).(*clientService)

	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seeded := seedClient(clientRepo, now.AddDate(0, 0, 42), domain.ClientActive)

	paused, err := svc.PauseMembership(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("PauseMembership() error = %v", err)
	}
	if paused.Status != domain.ClientPaused {
		t.Errorf("status after pause = %q, want %q", paused.Status, domain.ClientPaused)
	}
	if paused.DaysLeftOnPause == nil || *paused.DaysLeftOnPause != 42 {
		t.Fatalf("DaysLeftOnPause = %v, want 42", paused.DaysLeftOnPause)
	}

	// Resume three weeks later; the banked 42 days re-apply from that day.
	later := now.AddDate(0, 0, 21)
	svc.now = func() time.Time { return later }

	resumed, err := svc.ResumeMembership(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("ResumeMembership() error = %v", err)
	}
	if resumed.Status != domain.ClientActive {
		t.Errorf("status after resume = %q, want %q", resumed.Status, domain.ClientActive)
	}
	if resumed.DaysLeftOnPause != nil {
		t.Errorf("DaysLeftOnPause = %v, want nil after resume", resumed.DaysLeftOnPause)
	}
	if want := later.AddDate(0, 0, 42); !resumed.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", resumed.EndDate, want)
	}
}

func TestPauseMembershipGuards(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{}).(*clientService)
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seeded := seedClient(clientRepo, now.AddDate(0, 0, 10), domain.ClientActive)

	if _, err := svc.PauseMembership(context.Background(), seeded.ID); err != nil {
		t.Fatalf("first pause error = %v", err)
	}
	if _, err := svc.PauseMembership(context.Background(), seeded.ID); !errors.Is(err, ErrAlreadyPaused) {
		t.Errorf("second pause error = %v, want ErrAlreadyPaused", err)
	}

	if _, err := svc.PauseMembership(context.Background(), primitive.NewObjectID()); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("pause unknown client error = %v, want ErrClientNotFound", err)
	}
}

func TestResumeRequiresPausedState(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{}).(*clientService)
	seeded := seedClient(clientRepo, time.Now().UTC().AddDate(0, 1, 0), domain.ClientActive)

	if _, err := svc.ResumeMembership(context.Background(), seeded.ID); !errors.Is(err, ErrNotPaused) {
		t.Errorf("resume active client error = %v, want ErrNotPaused", err)
	}
}

func TestExtendMembership(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{}).(*clientService)

	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seeded := seedClient(clientRepo, end, domain.ClientActive)

	extended, err := svc.ExtendMembership(context.Background(), seeded.ID, 14)
	if err != nil {
		t.Fatalf("ExtendMembership() error = %v", err)
	}
	if want := end.AddDate(0, 0, 14); !extended.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", extended.EndDate, want)
	}

	if _, err := svc.ExtendMembership(context.Background(), seeded.ID, 0); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("extend by 0 error = %v, want ErrValidationFailed", err)
	}
}

func TestUpdateGoalValidation(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{}).(*clientService)
	seeded := seedClient(clientRepo, time.Now().UTC().AddDate(0, 1, 0), domain.ClientActive)

	goal := ClientGoal{
		CurrentGoalTitle: "Cut to 80kg",
		TargetMetric:     "weight",
		TargetValue:      "80",
		TargetDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	updated, err := svc.UpdateGoal(context.Background(), seeded.ID, goal)
	if err != nil {
		t.Fatalf("UpdateGoal() error = %v", err)
	}
	if updated.CurrentGoalTitle != goal.CurrentGoalTitle {
		t.Errorf("CurrentGoalTitle = %q", updated.CurrentGoalTitle)
	}
	if updated.TargetDate == nil || !updated.TargetDate.Equal(goal.TargetDate) {
		t.Errorf("TargetDate = %v, want %v", updated.TargetDate, goal.TargetDate)
	}

	goal.TargetMetric = ""
	if _, err := svc.UpdateGoal(context.Background(), seeded.ID, goal); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("incomplete goal error = %v, want ErrValidationFailed", err)
	}
}

func TestProgressLogsRequireExistingClient(t *testing.T) {
	clientRepo := newFakeClientRepo()
	logRepo := &fakeProgressLogRepo{}
	svc := NewClientService(clientRepo, logRepo)
	seeded := seedClient(clientRepo, time.Now().UTC().AddDate(0, 1, 0), domain.ClientActive)

	entry, err := svc.AddProgressLog(context.Background(), seeded.ID, "Dropped 2kg this month", domain.LogProgress)
	if err != nil {
		t.Fatalf("AddProgressLog() error = %v", err)
	}
	if entry.ID.IsZero() {
		t.Error("entry ID not assigned")
	}

	logs, err := svc.GetProgressLogs(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetProgressLogs() error = %v", err)
	}
	if len(logs) != 1 || logs[0].Note != "Dropped 2kg this month" {
		t.Errorf("logs = %+v, want the one added entry", logs)
	}

	if _, err := svc.AddProgressLog(context.Background(), primitive.NewObjectID(), "orphan entry", domain.LogGeneral); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("log for unknown client error = %v, want ErrClientNotFound", err)
	}
}

func TestAddProgressLogNoteBounds(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewClientService(clientRepo, &fakeProgressLogRepo{})
	seeded := seedClient(clientRepo, time.Now().UTC().AddDate(0, 1, 0), domain.ClientActive)

	tests := []struct {
		name    string
		note    string
		wantErr bool
	}{
		{"too short", "ok", true},
		{"just below minimum", strings.Repeat("a", 4), true},
		{"minimum length", strings.Repeat("a", 5), false},
		{"maximum length", strings.Repeat("a", 500), false},
		{"just above maximum", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProgressLog(context.Background(), seeded.ID, tt.note, domain.LogGeneral)
			if tt.wantErr {
				if !errors.Is(err, ErrValidationFailed) {
					t.Errorf("AddProgressLog(len=%d) error = %v, want ErrValidationFailed", len(tt.note), err)
				}
				return
			}
			if err != nil {
				t.Errorf("AddProgressLog(len=%d) error = %v", len(tt.note), err)
			}
		})
	}
}
