package estimation

import (
	"context"
	"fmt"
	"log/slog"

	"pachislot_analytics/internal/model"

	"golang.org/x/sync/errgroup"
)

// EstimateMachine Оценка настроек по каждой тумбе автомата и по автомату в целом.
// Если спецификации для автомата нет - Available = false, это не ошибка.
func (s *serv) EstimateMachine(ctx context.Context, q model.AnalysisQuery, priors []float64) (*model.MachineEstimation, error) {
	if priors != nil {
		if err := model.ValidatePriors(priors); err != nil {
			return nil, err
		}
	}

	analysis, err := s.analysisServ.Analyze(ctx, q)
	if err != nil {
		return nil, err
	}

	res := &model.MachineEstimation{
		Analysis: *analysis,
		Cabinets: make([]model.CabinetEstimation, 0),
	}

	spec, ok := s.resolveSpec(analysis)
	if !ok {
		return res, nil
	}
	res.Available = true
	res.SpecKey = spec.Key
	res.SpecName = spec.Name
	res.Signal = spec.HitSource()

	// Тумбы независимы, считаем параллельно
	cabinets := make([]model.CabinetEstimation, len(analysis.Cabinets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, cab := range analysis.Cabinets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			est, err := EstimateRecord(cab, spec, priors)
			if err != nil {
				return fmt.Errorf("cabinet %d: %w", cab.MachineNo, err)
			}
			cabinets[i] = est
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Cabinets = cabinets

	pooled, err := EstimateRecord(analysis.Overall, spec, priors)
	if err != nil {
		return nil, err
	}
	res.Pooled = &pooled.Estimate

	return res, nil
}

// resolveSpec Сначала явный ключ автомата, затем поиск по названию
func (s *serv) resolveSpec(analysis *model.AnalysisResult) (model.MachineSpec, bool) {
	if analysis.SpecKey != "" {
		if spec, ok := s.specRepo.Get(analysis.SpecKey); ok {
			return spec, true
		}
		slog.Warn("machine spec key is not registered, falling back to name lookup",
			"machine_id", analysis.MachineID,
			"spec_key", analysis.SpecKey,
		)
	}
	return s.specRepo.Lookup(analysis.MachineName)
}

// Estimate Разовая оценка по введенным вручную играм и попаданиям
func (s *serv) Estimate(_ context.Context, specKey string, games, hits int, priors []float64) (*model.SettingEstimate, error) {
	spec, ok := s.specRepo.Get(specKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSpecNotFound, specKey)
	}

	results, err := EstimateSetting(games, hits, spec, priors)
	if err != nil {
		return nil, err
	}

	est := Summarize(results)
	return &est, nil
}

func (s *serv) ListSpecs() []model.MachineSpec {
	return s.specRepo.List()
}
