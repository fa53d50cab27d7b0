package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pachislot_analytics/internal/model"
)

// CabinetHistory История одной тумбы по дням (от новых к старым) и итог по дням с играми
func (s *serv) CabinetHistory(ctx context.Context, machineID int64, machineNo int, from, to *time.Time) (*model.CabinetHistory, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from is after to", model.ErrInvalidQuery)
	}

	var (
		machine *model.Machine
		records []model.DailyRecord
	)

	err := s.txManager.DoWithSettings(ctx, s.txSettings, func(txCtx context.Context) error {
		var err error

		machine, err = s.machineRepo.GetMachine(txCtx, machineID)
		if err != nil {
			return err
		}

		records, err = s.recordRepo.ListRecords(txCtx, model.RecordFilter{
			MachineID: machineID,
			MachineNo: &machineNo,
			From:      from,
			To:        to,
		})
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.CabinetHistory{
		MachineID:   machine.ID,
		MachineName: machine.Name,
		MachineNo:   machineNo,
		Days:        BuildHistory(records),
		Summary:     cabinetSummary(records, machineNo),
	}, nil
}

// BuildHistory Строки истории по дням. Для дней без игр вероятности и процент выплат - 0.
func BuildHistory(records []model.DailyRecord) []model.CabinetDay {
	days := make([]model.CabinetDay, 0, len(records))
	for _, rec := range records {
		day := model.CabinetDay{
			Date:  rec.Date,
			Diff:  rec.Diff,
			Big:   rec.Big,
			Reg:   rec.Reg,
			Games: rec.Games,
		}
		if UsableForProbability(rec) {
			big, reg := valueOrZero(rec.Big), valueOrZero(rec.Reg)
			day.BigProb = OneIn(*rec.Games, big)
			day.RegProb = OneIn(*rec.Games, reg)
			day.HitProb = OneIn(*rec.Games, big+reg)
			day.PayoutRate = PayoutRate(*rec.Games, rec.Diff)
		}
		days = append(days, day)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}

func cabinetSummary(records []model.DailyRecord, machineNo int) model.AnalysisRecord {
	cabinets, _ := Aggregate(records)
	for _, cab := range cabinets {
		if cab.MachineNo == machineNo {
			return cab
		}
	}
	return model.AnalysisRecord{MachineNo: machineNo}
}
