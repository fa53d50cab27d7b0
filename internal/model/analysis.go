package model

import (
	"fmt"
	"time"
)

type DayType string

const (
	DayTypeAll    DayType = "all"
	DayTypeEvent  DayType = "event"  // дни мероприятий магазина
	DayTypeNormal DayType = "normal" // все остальные дни
)

// ParseDayType - пустая строка означает DayTypeAll
func ParseDayType(s string) (DayType, error) {
	switch DayType(s) {
	case "", DayTypeAll:
		return DayTypeAll, nil
	case DayTypeEvent:
		return DayTypeEvent, nil
	case DayTypeNormal:
		return DayTypeNormal, nil
	}
	return "", fmt.Errorf("%w: unknown day type %q", ErrInvalidQuery, s)
}

type AnalysisQuery struct {
	MachineID int64
	From      *time.Time
	To        *time.Time
	DayType   DayType
}

func (q AnalysisQuery) Validate() error {
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return fmt.Errorf("%w: from is after to", ErrInvalidQuery)
	}
	if _, err := ParseDayType(string(q.DayType)); err != nil {
		return err
	}
	return nil
}

// AnalysisRecord - агрегат по тумбе (или по всем тумбам для Overall).
// Вероятности в виде "1/N", 0 - недостаточно данных.
type AnalysisRecord struct {
	MachineNo  int // 0 для Overall
	TotalGames int
	TotalBig   int
	TotalReg   int
	TotalHits  int
	TotalDiff  int
	Days       int
	BigProb    int
	RegProb    int
	HitProb    int
	PayoutRate float64 // %, 0 если игр нет
}

type AnalysisResult struct {
	MachineID   int64
	MachineName string
	StoreID     int64
	SpecKey     string
	From        *time.Time
	To          *time.Time
	DayType     DayType
	Cabinets    []AnalysisRecord
	Overall     AnalysisRecord
}

// CabinetDay - один день в истории тумбы
type CabinetDay struct {
	Date       time.Time
	Diff       int
	Big        *int
	Reg        *int
	Games      *int
	BigProb    int
	RegProb    int
	HitProb    int
	PayoutRate float64
}

type CabinetHistory struct {
	MachineID   int64
	MachineName string
	MachineNo   int
	Days        []CabinetDay // от новых к старым
	Summary     AnalysisRecord
}

type DailySummaryRow struct {
	Date         time.Time
	IsEvent      bool
	Cabinets     int // тумб с данными за день
	PlusCabinets int // тумб в плюсе
	TotalDiff    int
	AvgDiff      int
	TotalGames   int
	PayoutRate   float64
}

type DailySummary struct {
	MachineID   int64
	MachineName string
	DayType     DayType
	Rows        []DailySummaryRow
	Total       DailySummaryRow // Date не заполняется
}
