package analysis

import (
	"context"
	"math"
	"sort"
	"time"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/pkg/jst"
)

// DailySummary Сводка по дням: сколько тумб, сколько в плюсе, суммарная и средняя разница.
// Разница считается по всем записям дня, процент выплат - только по записям с играми.
func (s *serv) DailySummary(ctx context.Context, q model.AnalysisQuery) (*model.DailySummary, error) {
	data, err := s.load(ctx, &q, true)
	if err != nil {
		return nil, err
	}

	rows, total := SummarizeDays(data.records, data.calendar.IsEvent)

	return &model.DailySummary{
		MachineID:   data.machine.ID,
		MachineName: data.machine.Name,
		DayType:     q.DayType,
		Rows:        rows,
		Total:       total,
	}, nil
}

type dayAcc struct {
	row        model.DailySummaryRow
	usableDiff int // разница только по записям с играми
}

// SummarizeDays Группирует записи по календарным дням (по возрастанию) и считает итог
func SummarizeDays(records []model.DailyRecord, isEvent func(t time.Time) bool) ([]model.DailySummaryRow, model.DailySummaryRow) {
	byDay := make(map[string]*dayAcc)

	for _, rec := range records {
		key := jst.Key(rec.Date)
		acc, ok := byDay[key]
		if !ok {
			acc = &dayAcc{row: model.DailySummaryRow{Date: jst.Day(rec.Date)}}
			if isEvent != nil {
				acc.row.IsEvent = isEvent(rec.Date)
			}
			byDay[key] = acc
		}

		acc.row.Cabinets++
		if rec.Diff > 0 {
			acc.row.PlusCabinets++
		}
		acc.row.TotalDiff += rec.Diff
		if UsableForProbability(rec) {
			acc.row.TotalGames += *rec.Games
			acc.usableDiff += rec.Diff
		}
	}

	rows := make([]model.DailySummaryRow, 0, len(byDay))
	var (
		total      model.DailySummaryRow
		usableDiff int
	)
	for _, acc := range byDay {
		acc.row.AvgDiff = average(acc.row.TotalDiff, acc.row.Cabinets)
		acc.row.PayoutRate = PayoutRate(acc.row.TotalGames, acc.usableDiff)
		rows = append(rows, acc.row)

		total.Cabinets += acc.row.Cabinets
		total.PlusCabinets += acc.row.PlusCabinets
		total.TotalDiff += acc.row.TotalDiff
		total.TotalGames += acc.row.TotalGames
		usableDiff += acc.usableDiff
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	// В итоге Cabinets - количество пар (тумба, день)
	total.AvgDiff = average(total.TotalDiff, total.Cabinets)
	total.PayoutRate = PayoutRate(total.TotalGames, usableDiff)

	return rows, total
}

func average(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
