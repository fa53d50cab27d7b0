package analysis

import (
	"math"
	"sort"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/pkg/jst"
)

// coinsPerGame Ставка за одну игру в медалях
const coinsPerGame = 3

// Aggregate считает агрегаты по тумбам и общий итог.
// Записи без игр отбрасываются до группировки.
// Тумбы в результате отсортированы по номеру.
func Aggregate(records []model.DailyRecord) ([]model.AnalysisRecord, model.AnalysisRecord) {
	byNo := make(map[int]*model.AnalysisRecord)
	dates := make(map[string]struct{})

	for _, rec := range records {
		if !UsableForProbability(rec) {
			continue
		}

		cab, ok := byNo[rec.MachineNo]
		if !ok {
			cab = &model.AnalysisRecord{MachineNo: rec.MachineNo}
			byNo[rec.MachineNo] = cab
		}
		cab.TotalGames += *rec.Games
		cab.TotalBig += valueOrZero(rec.Big)
		cab.TotalReg += valueOrZero(rec.Reg)
		cab.TotalDiff += rec.Diff
		cab.Days++

		dates[jst.Key(rec.Date)] = struct{}{}
	}

	cabinets := make([]model.AnalysisRecord, 0, len(byNo))
	var overall model.AnalysisRecord
	for _, cab := range byNo {
		finalize(cab)
		cabinets = append(cabinets, *cab)

		overall.TotalGames += cab.TotalGames
		overall.TotalBig += cab.TotalBig
		overall.TotalReg += cab.TotalReg
		overall.TotalDiff += cab.TotalDiff
	}
	sort.Slice(cabinets, func(i, j int) bool {
		return cabinets[i].MachineNo < cabinets[j].MachineNo
	})

	// Дни считаем по уникальным датам, а не суммой по тумбам
	overall.Days = len(dates)
	finalize(&overall)

	return cabinets, overall
}

func finalize(rec *model.AnalysisRecord) {
	rec.TotalHits = rec.TotalBig + rec.TotalReg
	rec.BigProb = OneIn(rec.TotalGames, rec.TotalBig)
	rec.RegProb = OneIn(rec.TotalGames, rec.TotalReg)
	rec.HitProb = OneIn(rec.TotalGames, rec.TotalHits)
	rec.PayoutRate = PayoutRate(rec.TotalGames, rec.TotalDiff)
}

// OneIn Вероятность в виде "1/N". 0 - попаданий нет, данных недостаточно.
func OneIn(games, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(games) / float64(count)))
}

// PayoutRate Процент выплат с одним знаком после запятой.
// Вход = игры * 3 медали, выход = вход + разница. Без игр - 0.
func PayoutRate(games, diff int) float64 {
	if games <= 0 {
		return 0
	}
	in := float64(games * coinsPerGame)
	out := in + float64(diff)
	return math.Round(out/in*1000) / 10
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
