package domain

import "strconv"

// Weekly schedule grid dimensions. Slots run hourly from 8:00 to 20:00.
var (
	ScheduleDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	ScheduleSlots = makeSlots()
)

func makeSlots() []string {
	slots := make([]string, 0, 13)
	for h := 8; h <= 20; h++ {
		slots = append(slots, strconv.Itoa(h)+":00")
	}
	return slots
}

// WeeklySchedule is the singleton grid mapping day -> time slot -> client ID
// (hex string, empty when unassigned). It is saved as one whole document with
// last-write-wins semantics.
type WeeklySchedule struct {
	Schedule map[string]map[string]string `bson:"schedule" json:"schedule"`
}

// NewEmptySchedule returns a fully initialized grid with no assignments.
func NewEmptySchedule() *WeeklySchedule {
	grid := make(map[string]map[string]string, len(ScheduleDays))
	for _, day := range ScheduleDays {
		grid[day] = make(map[string]string, len(ScheduleSlots))
		for _, slot := range ScheduleSlots {
			grid[day][slot] = ""
		}
	}
	return &WeeklySchedule{Schedule: grid}
}

// ScheduleEntry is one (day, time) pair assigned to a client.
type ScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// EntriesFor scans the whole grid and collects every slot assigned to the
// given client ID. The grid is bounded (7 days x 13 slots) so a full scan is
// fine.
func (w *WeeklySchedule) EntriesFor(clientID string) []ScheduleEntry {
	var entries []ScheduleEntry
	if w == nil || clientID == "" {
		return entries
	}
	for _, day := range ScheduleDays {
		slots, ok := w.Schedule[day]
		if !ok {
			continue
		}
		for _, slot := range ScheduleSlots {
			if slots[slot] == clientID {
				entries = append(entries, ScheduleEntry{Day: day, Time: slot})
			}
		}
	}
	return entries
}
