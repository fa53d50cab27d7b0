package analysis

import (
	"testing"
	"time"

	"pachislot_analytics/internal/model"
)

func TestSummarizeDays(t *testing.T) {
	records := []model.DailyRecord{
		rec(2, 1, 1000, intp(5), intp(2), intp(3000)),
		rec(2, 2, -500, intp(1), intp(1), intp(2000)),
		rec(2, 3, 300, nil, nil, nil), // без игр: считается в разнице, но не в выплатах
		rec(1, 1, -1500, intp(2), intp(1), intp(4000)),
	}
	calendar := NewEventCalendar([]time.Time{day(2)})

	rows, total := SummarizeDays(records, calendar.IsEvent)

	if len(rows) != 2 {
		t.Fatalf("expected 2 days, got %d", len(rows))
	}
	if !rows[0].Date.Before(rows[1].Date) {
		t.Error("expected rows in ascending date order")
	}

	first, second := rows[0], rows[1]
	if first.IsEvent || !second.IsEvent {
		t.Errorf("unexpected event flags: %v, %v", first.IsEvent, second.IsEvent)
	}
	if first.Cabinets != 1 || first.PlusCabinets != 0 || first.TotalDiff != -1500 {
		t.Errorf("unexpected first day: %+v", first)
	}
	if first.PayoutRate != PayoutRate(4000, -1500) {
		t.Errorf("unexpected first day payout: %v", first.PayoutRate)
	}

	if second.Cabinets != 3 || second.PlusCabinets != 2 {
		t.Errorf("unexpected cabinet counts: %+v", second)
	}
	if second.TotalDiff != 800 || second.AvgDiff != 267 {
		t.Errorf("unexpected diff: total %d avg %d", second.TotalDiff, second.AvgDiff)
	}
	if second.TotalGames != 5000 || second.PayoutRate != PayoutRate(5000, 500) {
		t.Errorf("payout must use only records with games: %+v", second)
	}

	if total.Cabinets != 4 || total.TotalDiff != -700 || total.TotalGames != 9000 {
		t.Errorf("unexpected total: %+v", total)
	}
	if total.AvgDiff != -175 {
		t.Errorf("expected avg -175, got %d", total.AvgDiff)
	}
	if total.PayoutRate != PayoutRate(9000, -1000) {
		t.Errorf("unexpected total payout: %v", total.PayoutRate)
	}
}

func TestSummarizeDaysEmpty(t *testing.T) {
	rows, total := SummarizeDays(nil, nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if total != (model.DailySummaryRow{}) {
		t.Errorf("expected zero total, got %+v", total)
	}
}
