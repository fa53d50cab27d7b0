package analysis

import (
	"time"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/pkg/jst"
)

// UsableForProbability - запись участвует в расчете вероятностей только при games > 0.
// Big/Reg при этом могут быть nil, в сумму они идут как 0.
func UsableForProbability(rec model.DailyRecord) bool {
	return rec.Games != nil && *rec.Games > 0
}

func FilterUsable(records []model.DailyRecord) []model.DailyRecord {
	res := make([]model.DailyRecord, 0, len(records))
	for _, rec := range records {
		if UsableForProbability(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// EventCalendar - множество дней мероприятий магазина
type EventCalendar map[string]struct{}

func NewEventCalendar(dates []time.Time) EventCalendar {
	c := make(EventCalendar, len(dates))
	for _, d := range dates {
		c[jst.Key(d)] = struct{}{}
	}
	return c
}

func (c EventCalendar) IsEvent(t time.Time) bool {
	_, ok := c[jst.Key(t)]
	return ok
}

// FilterByDayType Отбор записей по типу дня. isEvent == nil - мероприятий нет.
func FilterByDayType(records []model.DailyRecord, dayType model.DayType, isEvent func(time.Time) bool) []model.DailyRecord {
	if dayType == model.DayTypeAll || dayType == "" {
		return records
	}

	wantEvent := dayType == model.DayTypeEvent
	res := make([]model.DailyRecord, 0, len(records))
	for _, rec := range records {
		event := isEvent != nil && isEvent(rec.Date)
		if event == wantEvent {
			res = append(res, rec)
		}
	}
	return res
}
