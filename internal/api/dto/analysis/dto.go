package analysis

type MachineResponse struct {
	ID      int64  `json:"id"`
	StoreID int64  `json:"store_id"`
	Name    string `json:"name"`
	SpecKey string `json:"spec_key,omitempty"` // пусто - спецификация ищется по имени
}

// AnalysisRecord Вероятности - знаменатель "1/N", 0 - данных недостаточно
type AnalysisRecord struct {
	MachineNo  int     `json:"machine_no"` // 0 для общего итога
	TotalGames int     `json:"total_games"`
	TotalBig   int     `json:"total_big"`
	TotalReg   int     `json:"total_reg"`
	TotalHits  int     `json:"total_hits"`
	TotalDiff  int     `json:"total_diff"`
	Days       int     `json:"days"`
	BigProb    int     `json:"big_prob"`
	RegProb    int     `json:"reg_prob"`
	HitProb    int     `json:"hit_prob"`
	PayoutRate float64 `json:"payout_rate"` // %
}

type AnalysisResponse struct {
	MachineID   int64            `json:"machine_id"`
	MachineName string           `json:"machine_name"`
	StoreID     int64            `json:"store_id"`
	From        *string          `json:"from"` // YYYY-MM-DD
	To          *string          `json:"to"`
	DayType     string           `json:"day_type"`
	Cabinets    []AnalysisRecord `json:"cabinets"`
	Overall     AnalysisRecord   `json:"overall"`
}

type CabinetDay struct {
	Date       string  `json:"date"`
	Diff       int     `json:"diff"`
	Big        *int    `json:"big"` // null - не вносилось
	Reg        *int    `json:"reg"`
	Games      *int    `json:"games"`
	BigProb    int     `json:"big_prob"`
	RegProb    int     `json:"reg_prob"`
	HitProb    int     `json:"hit_prob"`
	PayoutRate float64 `json:"payout_rate"`
}

type CabinetHistoryResponse struct {
	MachineID   int64          `json:"machine_id"`
	MachineName string         `json:"machine_name"`
	MachineNo   int            `json:"machine_no"`
	Days        []CabinetDay   `json:"days"`
	Summary     AnalysisRecord `json:"summary"`
}

type DailySummaryRow struct {
	Date         string  `json:"date,omitempty"` // пусто в итоговой строке
	IsEvent      bool    `json:"is_event"`
	Cabinets     int     `json:"cabinets"`
	PlusCabinets int     `json:"plus_cabinets"`
	TotalDiff    int     `json:"total_diff"`
	AvgDiff      int     `json:"avg_diff"`
	TotalGames   int     `json:"total_games"`
	PayoutRate   float64 `json:"payout_rate"`
}

type DailySummaryResponse struct {
	MachineID   int64             `json:"machine_id"`
	MachineName string            `json:"machine_name"`
	DayType     string            `json:"day_type"`
	Rows        []DailySummaryRow `json:"rows"`
	Total       DailySummaryRow   `json:"total"`
}
