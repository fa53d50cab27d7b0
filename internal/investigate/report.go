package investigate

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/repository"
	"pachislot_analytics/internal/service/analysis"
	"pachislot_analytics/pkg/jst"
)

// Report - качество данных по одному автомату
type Report struct {
	MachineID   int64
	MachineName string
	SpecKey     string // ключ, найденный в реестре, пусто - спецификации нет

	Records int
	Usable  int

	// Записи без игр (nil или 0) не попадают в вероятности
	MissingGamesWithBonus int // бонусы внесены, игр нет
	MissingGamesNoBonus   int

	NegativeValues int // отрицательные big, reg или games

	Dates     int
	Cabinets  []int // номера тумб по возрастанию
	FirstDate *time.Time
	LastDate  *time.Time
}

// BuildReport считает отчет по записям автомата.
// specs может быть nil, тогда проверка спецификации пропускается.
func BuildReport(machine model.Machine, records []model.DailyRecord, specs repository.SpecRepository) Report {
	r := Report{
		MachineID:   machine.ID,
		MachineName: machine.Name,
		Records:     len(records),
	}

	if specs != nil {
		if spec, ok := specs.Get(machine.SpecKey); ok {
			r.SpecKey = spec.Key
		} else if spec, ok := specs.Lookup(machine.Name); ok {
			r.SpecKey = spec.Key
		}
	}

	dates := make(map[string]struct{})
	for _, rec := range records {
		dates[jst.Key(rec.Date)] = struct{}{}

		day := jst.Day(rec.Date)
		if r.FirstDate == nil || day.Before(*r.FirstDate) {
			r.FirstDate = &day
		}
		if r.LastDate == nil || day.After(*r.LastDate) {
			r.LastDate = &day
		}

		if negative(rec.Big) || negative(rec.Reg) || negative(rec.Games) {
			r.NegativeValues++
		}

		switch {
		case analysis.UsableForProbability(rec):
			r.Usable++
		case positive(rec.Big) || positive(rec.Reg):
			r.MissingGamesWithBonus++
		default:
			r.MissingGamesNoBonus++
		}
	}
	r.Dates = len(dates)
	r.Cabinets = CabinetNumbers(records)

	return r
}

func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	spec := r.SpecKey
	if spec == "" {
		spec = "not registered"
	}

	lines := [][2]string{
		{"machine", fmt.Sprintf("%d %s", r.MachineID, r.MachineName)},
		{"spec", spec},
		{"records", fmt.Sprint(r.Records)},
		{"usable", fmt.Sprint(r.Usable)},
		{"no games, has bonus", fmt.Sprint(r.MissingGamesWithBonus)},
		{"no games, no bonus", fmt.Sprint(r.MissingGamesNoBonus)},
		{"negative values", fmt.Sprint(r.NegativeValues)},
		{"dates", fmt.Sprint(r.Dates)},
		{"cabinets", fmt.Sprintf("%d %v", len(r.Cabinets), r.Cabinets)},
		{"first date", optionalDate(r.FirstDate)},
		{"last date", optionalDate(r.LastDate)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// CabinetNumbers Номера тумб по возрастанию
func CabinetNumbers(records []model.DailyRecord) []int {
	seen := make(map[int]struct{})
	for _, rec := range records {
		seen[rec.MachineNo] = struct{}{}
	}
	res := make([]int, 0, len(seen))
	for no := range seen {
		res = append(res, no)
	}
	sort.Ints(res)
	return res
}

func negative(v *int) bool {
	return v != nil && *v < 0
}

func positive(v *int) bool {
	return v != nil && *v > 0
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return jst.Format(*t)
}
