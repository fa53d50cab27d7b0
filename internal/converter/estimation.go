package converter

import (
	"math"

	dto "pachislot_analytics/internal/api/dto/estimation"
	"pachislot_analytics/internal/model"
)

func ToMachineEstimationResponse(res model.MachineEstimation) dto.MachineEstimationResponse {
	cabinets := make([]dto.CabinetEstimation, len(res.Cabinets))
	for i, c := range res.Cabinets {
		cabinets[i] = dto.CabinetEstimation{
			MachineNo: c.MachineNo,
			Games:     c.Games,
			Hits:      c.Hits,
			Estimate:  ToSettingEstimateResponse(c.Estimate),
		}
	}

	response := dto.MachineEstimationResponse{
		Analysis:  ToAnalysisResponse(res.Analysis),
		Available: res.Available,
		SpecKey:   res.SpecKey,
		SpecName:  res.SpecName,
		Signal:    string(res.Signal),
		Cabinets:  cabinets,
	}
	if res.Pooled != nil {
		pooled := ToSettingEstimateResponse(*res.Pooled)
		response.Pooled = &pooled
	}
	return response
}

func ToSettingEstimateResponse(est model.SettingEstimate) dto.SettingEstimate {
	results := make([]dto.EstimationResult, len(est.Results))
	for i, r := range est.Results {
		results[i] = dto.EstimationResult{
			Setting:     r.Setting,
			Probability: r.Probability,
		}
	}
	return dto.SettingEstimate{
		Results:                results,
		MostLikely:             est.MostLikely,
		ExpectedSetting:        est.ExpectedSetting,
		HighSettingProbability: est.HighSettingProbability,
	}
}

func ToSpecsResponse(specs []model.MachineSpec) []dto.SpecResponse {
	result := make([]dto.SpecResponse, len(specs))
	for i, s := range specs {
		settings := make([]dto.SettingSpec, len(s.Settings))
		for j, st := range s.Settings {
			settings[j] = dto.SettingSpec{
				Setting:    st.Setting,
				BigProb:    toDenominator(st.BigProb),
				RegProb:    toDenominator(st.RegProb),
				TotalProb:  toDenominator(st.TotalProb),
				PayoutRate: st.PayoutRate,
			}
		}

		aliases := s.Aliases
		if aliases == nil {
			aliases = []string{}
		}

		result[i] = dto.SpecResponse{
			Key:      s.Key,
			Name:     s.Name,
			Aliases:  aliases,
			Signal:   string(s.HitSource()),
			Settings: settings,
			Priors:   s.Priors,
		}
	}
	return result
}

// toDenominator 1/366.0 -> 366.0, с точностью до десятых
func toDenominator(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Round(10/p) / 10
}
