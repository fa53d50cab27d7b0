package analysis

import (
	"context"
	"fmt"
	"time"

	"pachislot_analytics/internal/model"
)

// Analyze Агрегаты по тумбам автомата за период с учетом типа дня
func (s *serv) Analyze(ctx context.Context, q model.AnalysisQuery) (*model.AnalysisResult, error) {
	data, err := s.load(ctx, &q, false)
	if err != nil {
		return nil, err
	}
	machine := data.machine

	cabinets, overall := Aggregate(data.records)

	return &model.AnalysisResult{
		MachineID:   machine.ID,
		MachineName: machine.Name,
		StoreID:     machine.StoreID,
		SpecKey:     machine.SpecKey,
		From:        q.From,
		To:          q.To,
		DayType:     q.DayType,
		Cabinets:    cabinets,
		Overall:     overall,
	}, nil
}

// ListMachines Все автоматы для выбора на дашборде
func (s *serv) ListMachines(ctx context.Context) ([]model.Machine, error) {
	return s.machineRepo.ListMachines(ctx)
}

type loaded struct {
	machine  *model.Machine
	records  []model.DailyRecord // уже отфильтрованы по типу дня
	calendar EventCalendar
}

// load Читает автомат, записи и дни мероприятий в одной транзакции.
// Дни мероприятий читаются, если withEvents или нужен фильтр по типу дня.
func (s *serv) load(ctx context.Context, q *model.AnalysisQuery, withEvents bool) (*loaded, error) {
	if q.DayType == "" {
		q.DayType = model.DayTypeAll
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	withEvents = withEvents || q.DayType != model.DayTypeAll

	var (
		machine *model.Machine
		records []model.DailyRecord
		events  []time.Time
	)

	err := s.txManager.DoWithSettings(ctx, s.txSettings, func(txCtx context.Context) error {
		var err error

		machine, err = s.machineRepo.GetMachine(txCtx, q.MachineID)
		if err != nil {
			return err
		}

		records, err = s.recordRepo.ListRecords(txCtx, model.RecordFilter{
			MachineID: q.MachineID,
			From:      q.From,
			To:        q.To,
		})
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}

		if withEvents {
			events, err = s.eventRepo.ListEventDates(txCtx, machine.StoreID, q.From, q.To)
			if err != nil {
				return fmt.Errorf("list event dates: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	calendar := NewEventCalendar(events)
	return &loaded{
		machine:  machine,
		records:  FilterByDayType(records, q.DayType, calendar.IsEvent),
		calendar: calendar,
	}, nil
}
