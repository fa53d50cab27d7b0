package service

import (
	"context"
	"time"

	"pachislot_analytics/internal/model"
)

type AnalysisService interface {
	Analyze(ctx context.Context, q model.AnalysisQuery) (*model.AnalysisResult, error)
	DailySummary(ctx context.Context, q model.AnalysisQuery) (*model.DailySummary, error)
	CabinetHistory(ctx context.Context, machineID int64, machineNo int, from, to *time.Time) (*model.CabinetHistory, error)
	ListMachines(ctx context.Context) ([]model.Machine, error)
}

type EstimationService interface {
	EstimateMachine(ctx context.Context, q model.AnalysisQuery, priors []float64) (*model.MachineEstimation, error)
	Estimate(ctx context.Context, specKey string, games, hits int, priors []float64) (*model.SettingEstimate, error)
	ListSpecs() []model.MachineSpec
}
