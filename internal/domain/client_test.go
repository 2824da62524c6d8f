package domain

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMembershipCodeFromID(t *testing.T) {
	id := primitive.NewObjectID()
	code := MembershipCodeFromID(id)

	if len(code) != 8 {
		t.Fatalf("code length = %d, want 8", len(code))
	}
	if code != strings.ToUpper(code) {
		t.Errorf("code %q is not upper-cased", code)
	}
	if !strings.EqualFold(code, id.Hex()[:8]) {
		t.Errorf("code %q does not match ID prefix %q", code, id.Hex()[:8])
	}
	if got := MembershipCodeFromID(id); got != code {
		t.Errorf("code not deterministic: %q != %q", got, code)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"thirty days out", now.AddDate(0, 0, 30), 30},
		{"partial day truncates", now.Add(36 * time.Hour), 1},
		{"same instant", now, 0},
		{"past clamps to zero", now.AddDate(0, 0, -10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.t, now); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}
