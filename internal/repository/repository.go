package repository

import (
	"context"
	"time"

	"pachislot_analytics/internal/model"
)

type MachineRepository interface {
	GetMachine(ctx context.Context, id int64) (*model.Machine, error)
	ListMachines(ctx context.Context) ([]model.Machine, error)
}

type RecordRepository interface {
	ListRecords(ctx context.Context, filter model.RecordFilter) ([]model.DailyRecord, error)
}

type EventDayRepository interface {
	ListEventDates(ctx context.Context, storeID int64, from, to *time.Time) ([]time.Time, error)
}

type SpecRepository interface {
	Register(spec model.MachineSpec) error
	Get(key string) (model.MachineSpec, bool)
	Lookup(machineName string) (model.MachineSpec, bool)
	List() []model.MachineSpec
}
