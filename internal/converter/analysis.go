package converter

import (
	"time"

	dto "pachislot_analytics/internal/api/dto/analysis"
	"pachislot_analytics/internal/model"
	"pachislot_analytics/pkg/jst"
)

func ToMachinesResponse(machines []model.Machine) []dto.MachineResponse {
	result := make([]dto.MachineResponse, len(machines))
	for i, m := range machines {
		result[i] = dto.MachineResponse{
			ID:      m.ID,
			StoreID: m.StoreID,
			Name:    m.Name,
			SpecKey: m.SpecKey,
		}
	}
	return result
}

func ToAnalysisResponse(res model.AnalysisResult) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		MachineID:   res.MachineID,
		MachineName: res.MachineName,
		StoreID:     res.StoreID,
		From:        toOptionalDate(res.From),
		To:          toOptionalDate(res.To),
		DayType:     string(res.DayType),
		Cabinets:    toAnalysisRecords(res.Cabinets),
		Overall:     toAnalysisRecord(res.Overall),
	}
}

func ToCabinetHistoryResponse(h model.CabinetHistory) dto.CabinetHistoryResponse {
	days := make([]dto.CabinetDay, len(h.Days))
	for i, d := range h.Days {
		days[i] = dto.CabinetDay{
			Date:       jst.Format(d.Date),
			Diff:       d.Diff,
			Big:        d.Big,
			Reg:        d.Reg,
			Games:      d.Games,
			BigProb:    d.BigProb,
			RegProb:    d.RegProb,
			HitProb:    d.HitProb,
			PayoutRate: d.PayoutRate,
		}
	}
	return dto.CabinetHistoryResponse{
		MachineID:   h.MachineID,
		MachineName: h.MachineName,
		MachineNo:   h.MachineNo,
		Days:        days,
		Summary:     toAnalysisRecord(h.Summary),
	}
}

func ToDailySummaryResponse(s model.DailySummary) dto.DailySummaryResponse {
	rows := make([]dto.DailySummaryRow, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = toDailySummaryRow(r)
		rows[i].Date = jst.Format(r.Date)
	}
	return dto.DailySummaryResponse{
		MachineID:   s.MachineID,
		MachineName: s.MachineName,
		DayType:     string(s.DayType),
		Rows:        rows,
		Total:       toDailySummaryRow(s.Total),
	}
}

func toDailySummaryRow(r model.DailySummaryRow) dto.DailySummaryRow {
	return dto.DailySummaryRow{
		IsEvent:      r.IsEvent,
		Cabinets:     r.Cabinets,
		PlusCabinets: r.PlusCabinets,
		TotalDiff:    r.TotalDiff,
		AvgDiff:      r.AvgDiff,
		TotalGames:   r.TotalGames,
		PayoutRate:   r.PayoutRate,
	}
}

func toAnalysisRecords(records []model.AnalysisRecord) []dto.AnalysisRecord {
	result := make([]dto.AnalysisRecord, len(records))
	for i, r := range records {
		result[i] = toAnalysisRecord(r)
	}
	return result
}

func toAnalysisRecord(r model.AnalysisRecord) dto.AnalysisRecord {
	return dto.AnalysisRecord{
		MachineNo:  r.MachineNo,
		TotalGames: r.TotalGames,
		TotalBig:   r.TotalBig,
		TotalReg:   r.TotalReg,
		TotalHits:  r.TotalHits,
		TotalDiff:  r.TotalDiff,
		Days:       r.Days,
		BigProb:    r.BigProb,
		RegProb:    r.RegProb,
		HitProb:    r.HitProb,
		PayoutRate: r.PayoutRate,
	}
}

func toOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := jst.Format(*t)
	return &s
}
