package domain

import "testing"

func TestNewEmptySchedule(t *testing.T) {
	grid := NewEmptySchedule()

	if len(grid.Schedule) != 7 {
		t.Fatalf("days = %d, want 7", len(grid.Schedule))
	}
	for _, day := range ScheduleDays {
		slots, ok := grid.Schedule[day]
		if !ok {
			t.Fatalf("missing day %s", day)
		}
		if len(slots) != 13 {
			t.Errorf("slots on %s = %d, want 13", day, len(slots))
		}
	}
	if _, ok := grid.Schedule["Monday"]["8:00"]; !ok {
		t.Error("missing first slot 8:00")
	}
	if _, ok := grid.Schedule["Monday"]["20:00"]; !ok {
		t.Error("missing last slot 20:00")
	}
}

func TestEntriesFor(t *testing.T) {
	grid := NewEmptySchedule()
	grid.Schedule["Monday"]["9:00"] = "abc"
	grid.Schedule["Wednesday"]["18:00"] = "abc"
	grid.Schedule["Friday"]["10:00"] = "other"

	entries := grid.EntriesFor("abc")
	want := []ScheduleEntry{
		{Day: "Monday", Time: "9:00"},
		{Day: "Wednesday", Time: "18:00"},
	}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %v, want %v", i, entries[i], want[i])
		}
	}

	if got := grid.EntriesFor(""); len(got) != 0 {
		t.Errorf("EntriesFor(\"\") = %v, want none", got)
	}

	var nilGrid *WeeklySchedule
	if got := nilGrid.EntriesFor("abc"); len(got) != 0 {
		t.Errorf("nil grid entries = %v, want none", got)
	}
}
