package model

import "time"

// DailyRecord - данные одной тумбы (machineNo) за один день.
// Big, Reg и Games - nil, если значение не вносилось. 0 - внесено как ноль.
type DailyRecord struct {
	ID        int64
	Date      time.Time // календарный день, UTC+9
	MachineID int64
	MachineNo int
	Diff      int // разница в медалях за день
	Big       *int
	Reg       *int
	Games     *int
}

// RecordFilter - параметры выборки записей из хранилища
type RecordFilter struct {
	MachineID int64
	MachineNo *int
	From      *time.Time
	To        *time.Time
}
