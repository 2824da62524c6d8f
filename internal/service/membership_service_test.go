package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"akramfit/coaching-app/internal/domain"
)

func TestLookupUnknownCode(t *testing.T) {
	svc := NewMembershipService(newFakeClientRepo(), &fakeScheduleRepo{}).(*membershipService)

	tests := []string{"", "  ", "ZZZZZZZZ"}
	for _, code := range tests {
		info, err := svc.Lookup(context.Background(), code)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", code, err)
		}
		if info.Found {
			t.Errorf("Lookup(%q).Found = true, want false", code)
		}
	}
}

func TestLookupReturnsProjectionWithSchedule(t *testing.T) {
	clientRepo := newFakeClientRepo()
	scheduleRepo := &fakeScheduleRepo{}
	svc := NewMembershipService(clientRepo, scheduleRepo).(*membershipService)

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	client := seedClient(clientRepo, now.AddDate(0, 0, 30), domain.ClientActive)

	schedule := domain.NewEmptySchedule()
	schedule.Schedule["Monday"]["9:00"] = client.ID.Hex()
	schedule.Schedule["Thursday"]["18:00"] = client.ID.Hex()
	schedule.Schedule["Friday"]["10:00"] = "someone-else"
	if err := scheduleRepo.Save(context.Background(), schedule); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Lookup is case-insensitive on the code.
	info, err := svc.Lookup(context.Background(), "  "+strings.ToLower(client.MembershipCode)+" ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !info.Found {
		t.Fatal("Found = false, want true")
	}
	if info.FullName != client.FullName || info.Plan != client.Plan {
		t.Errorf("projection = %q/%q, want %q/%q", info.FullName, info.Plan, client.FullName, client.Plan)
	}
	if info.StatusLabel != MembershipActive {
		t.Errorf("StatusLabel = %q, want %q", info.StatusLabel, MembershipActive)
	}
	if info.DaysLeft != 30 {
		t.Errorf("DaysLeft = %d, want 30", info.DaysLeft)
	}
	want := []domain.ScheduleEntry{
		{Day: "Monday", Time: "9:00"},
		{Day: "Thursday", Time: "18:00"},
	}
	if len(info.Schedule) != len(want) {
		t.Fatalf("Schedule = %v, want %v", info.Schedule, want)
	}
	for i := range want {
		if info.Schedule[i] != want[i] {
			t.Errorf("Schedule[%d] = %v, want %v", i, info.Schedule[i], want[i])
		}
	}
}

func TestLookupStatusLabels(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		status  domain.ClientStatus
		want    MembershipStatusLabel
	}{
		{"active with time left", now.AddDate(0, 1, 0), domain.ClientActive, MembershipActive},
		{"expired", now.AddDate(0, 0, -1), domain.ClientActive, MembershipExpired},
		{"paused wins over expiry", now.AddDate(0, 0, -1), domain.ClientPaused, MembershipPaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientRepo := newFakeClientRepo()
			svc := NewMembershipService(clientRepo, &fakeScheduleRepo{}).(*membershipService)
			svc.now = func() time.Time { return now }

			client := seedClient(clientRepo, tt.endDate, tt.status)

			info, err := svc.Lookup(context.Background(), client.MembershipCode)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if info.StatusLabel != tt.want {
				t.Errorf("StatusLabel = %q, want %q", info.StatusLabel, tt.want)
			}
		})
	}
}

// A missing schedule singleton is not an error, just an empty schedule.
func TestLookupWithoutSavedSchedule(t *testing.T) {
	clientRepo := newFakeClientRepo()
	svc := NewMembershipService(clientRepo, &fakeScheduleRepo{}).(*membershipService)

	client := seedClient(clientRepo, time.Now().UTC().AddDate(0, 1, 0), domain.ClientActive)

	info, err := svc.Lookup(context.Background(), client.MembershipCode)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !info.Found {
		t.Fatal("Found = false, want true")
	}
	if len(info.Schedule) != 0 {
		t.Errorf("Schedule = %v, want empty", info.Schedule)
	}
}
