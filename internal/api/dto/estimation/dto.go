package estimation

import "pachislot_analytics/internal/api/dto/analysis"

type EstimateRequest struct {
	Games  int       `json:"games"`
	Hits   int       `json:"hits"`
	Priors []float64 `json:"priors,omitempty"` // 6 значений, пусто - по умолчанию
}

type EstimationResult struct {
	Setting     int     `json:"setting"`
	Probability float64 `json:"probability"` // %
}

type SettingEstimate struct {
	Results                []EstimationResult `json:"results"`
	MostLikely             int                `json:"most_likely"`
	ExpectedSetting        float64            `json:"expected_setting"`
	HighSettingProbability float64            `json:"high_setting_probability"`
}

type CabinetEstimation struct {
	MachineNo int             `json:"machine_no"`
	Games     int             `json:"games"`
	Hits      int             `json:"hits"`
	Estimate  SettingEstimate `json:"estimate"`
}

type MachineEstimationResponse struct {
	Analysis  analysis.AnalysisResponse `json:"analysis"`
	Available bool                      `json:"available"`
	SpecKey   string                    `json:"spec_key,omitempty"`
	SpecName  string                    `json:"spec_name,omitempty"`
	Signal    string                    `json:"signal,omitempty"`
	Cabinets  []CabinetEstimation       `json:"cabinets"`

	// Pooled Оценка по сумме всех тумб. Тумбы настраиваются независимо,
	// это диагностика, а не настройка автомата. null - спецификации нет.
	Pooled *SettingEstimate `json:"pooled"`
}

type SettingSpec struct {
	Setting    int     `json:"setting"`
	BigProb    float64 `json:"big_prob,omitempty"` // знаменатель "1/N"
	RegProb    float64 `json:"reg_prob,omitempty"`
	TotalProb  float64 `json:"total_prob,omitempty"`
	PayoutRate float64 `json:"payout_rate,omitempty"`
}

type SpecResponse struct {
	Key      string        `json:"key"`
	Name     string        `json:"name"`
	Aliases  []string      `json:"aliases"`
	Signal   string        `json:"signal"`
	Settings []SettingSpec `json:"settings"`
	Priors   []float64     `json:"priors,omitempty"`
}
