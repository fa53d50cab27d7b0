package analysis

import (
	"testing"
	"time"

	"pachislot_analytics/internal/model"
)

func TestUsableForProbability(t *testing.T) {
	tests := []struct {
		name string
		rec  model.DailyRecord
		want bool
	}{
		{"games present", model.DailyRecord{Games: intp(100)}, true},
		{"games present, bonus null", model.DailyRecord{Games: intp(1), Big: nil, Reg: nil}, true},
		{"games present, bonus zero", model.DailyRecord{Games: intp(1), Big: intp(0), Reg: intp(0)}, true},
		{"games null", model.DailyRecord{Big: intp(3)}, false},
		{"games zero", model.DailyRecord{Games: intp(0), Big: intp(3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsableForProbability(tt.rec); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterByDayType(t *testing.T) {
	records := []model.DailyRecord{
		rec(1, 1, 0, nil, nil, intp(10)),
		rec(2, 1, 0, nil, nil, intp(10)),
		rec(3, 1, 0, nil, nil, intp(10)),
		rec(3, 2, 0, nil, nil, intp(10)),
	}
	calendar := NewEventCalendar([]time.Time{day(3)})

	tests := []struct {
		name    string
		dayType model.DayType
		isEvent func(time.Time) bool
		want    int
	}{
		{"all", model.DayTypeAll, calendar.IsEvent, 4},
		{"empty means all", "", calendar.IsEvent, 4},
		{"event", model.DayTypeEvent, calendar.IsEvent, 2},
		{"normal", model.DayTypeNormal, calendar.IsEvent, 2},
		{"event without calendar", model.DayTypeEvent, nil, 0},
		{"normal without calendar", model.DayTypeNormal, nil, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByDayType(records, tt.dayType, tt.isEvent)
			if len(got) != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, len(got))
			}
		})
	}
}

func TestEventCalendarIgnoresTimeOfDay(t *testing.T) {
	calendar := NewEventCalendar([]time.Time{day(7)})

	// 2024-06-06 20:00 UTC это уже 2024-06-07 в UTC+9
	if !calendar.IsEvent(time.Date(2024, 6, 6, 20, 0, 0, 0, time.UTC)) {
		t.Error("expected event day in UTC+9")
	}
	if calendar.IsEvent(day(6)) {
		t.Error("2024-06-06 must not be an event day")
	}
}
