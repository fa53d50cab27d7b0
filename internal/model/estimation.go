package model

// EstimationResult - апостериорная вероятность настройки в процентах
type EstimationResult struct {
	Setting     int
	Probability float64
}

type SettingEstimate struct {
	Results                []EstimationResult
	MostLikely             int
	ExpectedSetting        float64 // среднее, взвешенное по вероятностям
	HighSettingProbability float64 // сумма по настройкам 4-6, %
}

type CabinetEstimation struct {
	MachineNo int
	Games     int
	Hits      int
	Estimate  SettingEstimate
}

type MachineEstimation struct {
	Analysis  AnalysisResult
	Available bool // false - спецификации для автомата нет
	SpecKey   string
	SpecName  string
	Signal    BonusSignal
	Cabinets  []CabinetEstimation

	// Pooled - все тумбы сложены в одно наблюдение. Настройки у тумб независимы,
	// поэтому это не настройка автомата, а общий ориентир по автомату.
	Pooled *SettingEstimate
}
