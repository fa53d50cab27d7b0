package estimation

import (
	"fmt"
	"math"

	"pachislot_analytics/internal/model"
)

// highSettingFrom Настройки начиная с этой считаются высокими
const highSettingFrom = 4

// UniformPriors Равномерное априорное распределение по 6 настройкам
func UniformPriors() []float64 {
	priors := make([]float64, model.SettingsCount)
	for i := range priors {
		priors[i] = 1.0 / model.SettingsCount
	}
	return priors
}

// EstimateSetting Апостериорное распределение настроек по наблюдению (games, hits).
// Модель наблюдения - биномиальная, биномиальный коэффициент опускается,
// так как одинаков для всех настроек и сокращается при нормировке.
// priors == nil - берутся priors спецификации, если их нет - равномерные.
// Результат в процентах, в порядке spec.Settings.
func EstimateSetting(games, hits int, spec model.MachineSpec, priors []float64) ([]model.EstimationResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if games < 0 || hits < 0 {
		return nil, fmt.Errorf("%w: games and hits must be non-negative", model.ErrInvalidQuery)
	}

	priors, err := resolvePriors(spec, priors)
	if err != nil {
		return nil, err
	}

	results := make([]model.EstimationResult, len(spec.Settings))

	// Без игр данные ничего не говорят - возвращаем априорное распределение
	if games == 0 {
		for i, st := range spec.Settings {
			results[i] = model.EstimationResult{Setting: st.Setting, Probability: priors[i] * 100}
		}
		return results, nil
	}

	logPosterior := make([]float64, len(spec.Settings))
	maxLog := math.Inf(-1)
	for i := range spec.Settings {
		p := spec.HitProbability(i)
		logLikelihood := float64(hits)*math.Log(p) + float64(games-hits)*math.Log1p(-p)
		logPosterior[i] = logLikelihood + math.Log(priors[i])
		if logPosterior[i] > maxLog {
			maxLog = logPosterior[i]
		}
	}

	// Вычитаем максимум перед exp, иначе при больших games все уходит в 0
	weights := make([]float64, len(spec.Settings))
	var sum float64
	for i, lp := range logPosterior {
		weights[i] = math.Exp(lp - maxLog)
		sum += weights[i]
	}

	for i, st := range spec.Settings {
		results[i] = model.EstimationResult{Setting: st.Setting, Probability: weights[i] / sum * 100}
	}
	return results, nil
}

func resolvePriors(spec model.MachineSpec, priors []float64) ([]float64, error) {
	if priors == nil {
		if len(spec.Priors) > 0 {
			return spec.Priors, nil
		}
		return UniformPriors(), nil
	}
	if err := model.ValidatePriors(priors); err != nil {
		return nil, err
	}
	return priors, nil
}

// Summarize Самая вероятная настройка, ожидаемая настройка и вероятность высокой (4-6)
func Summarize(results []model.EstimationResult) model.SettingEstimate {
	est := model.SettingEstimate{Results: results}

	best := -1.0
	for _, r := range results {
		if r.Probability > best {
			best = r.Probability
			est.MostLikely = r.Setting
		}
		est.ExpectedSetting += float64(r.Setting) * r.Probability / 100
		if r.Setting >= highSettingFrom {
			est.HighSettingProbability += r.Probability
		}
	}
	return est
}

// ObservedHits Количество попаданий из агрегата, соответствующее сигналу спецификации
func ObservedHits(rec model.AnalysisRecord, spec model.MachineSpec) int {
	switch spec.HitSource() {
	case model.SignalBig:
		return rec.TotalBig
	case model.SignalTotal:
		return rec.TotalHits
	}
	return rec.TotalReg
}

// EstimateRecord Оценка настройки по агрегату тумбы
func EstimateRecord(rec model.AnalysisRecord, spec model.MachineSpec, priors []float64) (model.CabinetEstimation, error) {
	hits := ObservedHits(rec, spec)
	results, err := EstimateSetting(rec.TotalGames, hits, spec, priors)
	if err != nil {
		return model.CabinetEstimation{}, err
	}
	return model.CabinetEstimation{
		MachineNo: rec.MachineNo,
		Games:     rec.TotalGames,
		Hits:      hits,
		Estimate:  Summarize(results),
	}, nil
}
