package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "pachislot_analytics/internal/api/dto/analysis"
	"pachislot_analytics/internal/model"

	"github.com/go-chi/chi/v5"
)

type fakeService struct {
	lastQuery   model.AnalysisQuery
	lastNo      int
	lastFrom    *time.Time
	lastTo      *time.Time
	analyzeErr  error
	historyDays []model.CabinetDay
}

func (s *fakeService) Analyze(_ context.Context, q model.AnalysisQuery) (*model.AnalysisResult, error) {
	s.lastQuery = q
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	if q.MachineID != 1 {
		return nil, fmt.Errorf("%w: id %d", model.ErrMachineNotFound, q.MachineID)
	}
	return &model.AnalysisResult{
		MachineID:   1,
		MachineName: "スマスロ北斗の拳 転生の章2",
		StoreID:     10,
		From:        q.From,
		To:          q.To,
		DayType:     q.DayType,
		Cabinets: []model.AnalysisRecord{
			{MachineNo: 245, TotalGames: 2459, TotalReg: 62, RegProb: 40, Days: 1},
		},
		Overall: model.AnalysisRecord{TotalGames: 2459, TotalReg: 62, RegProb: 40, Days: 1},
	}, nil
}

func (s *fakeService) DailySummary(_ context.Context, q model.AnalysisQuery) (*model.DailySummary, error) {
	s.lastQuery = q
	return &model.DailySummary{
		MachineID: q.MachineID,
		DayType:   q.DayType,
		Rows: []model.DailySummaryRow{
			{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Cabinets: 2, TotalDiff: 300, AvgDiff: 150},
		},
		Total: model.DailySummaryRow{Cabinets: 2, TotalDiff: 300, AvgDiff: 150},
	}, nil
}

func (s *fakeService) CabinetHistory(_ context.Context, machineID int64, machineNo int, from, to *time.Time) (*model.CabinetHistory, error) {
	s.lastNo = machineNo
	s.lastFrom, s.lastTo = from, to
	return &model.CabinetHistory{MachineID: machineID, MachineNo: machineNo, Days: s.historyDays}, nil
}

func (s *fakeService) ListMachines(_ context.Context) ([]model.Machine, error) {
	return []model.Machine{{ID: 1, StoreID: 10, Name: "スマスロ北斗の拳 転生の章2", SpecKey: "hokuto-tensei2"}}, nil
}

func newRouter(serv *fakeService) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Get("/machines", h.ListMachines)
	r.Get("/machines/{machineID}/analysis", h.Analyze)
	r.Get("/machines/{machineID}/daily-summary", h.DailySummary)
	r.Get("/machines/{machineID}/cabinets/{machineNo}/history", h.CabinetHistory)
	return r
}

func do(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAnalyze(t *testing.T) {
	serv := &fakeService{}
	w := do(newRouter(serv), "/machines/1/analysis?from=2024-05-01&to=2024-05-31&day_type=event")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if serv.lastQuery.DayType != model.DayTypeEvent {
		t.Errorf("expected event day type, got %q", serv.lastQuery.DayType)
	}

	var body dto.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.From == nil || *body.From != "2024-05-01" || *body.To != "2024-05-31" {
		t.Errorf("unexpected range in response: %v %v", body.From, body.To)
	}
	if len(body.Cabinets) != 1 || body.Cabinets[0].RegProb != 40 {
		t.Errorf("unexpected cabinets: %+v", body.Cabinets)
	}
	if body.DayType != "event" {
		t.Errorf("expected day_type event, got %q", body.DayType)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"not found", "/machines/2/analysis", http.StatusNotFound},
		{"bad id", "/machines/abc/analysis", http.StatusBadRequest},
		{"bad day type", "/machines/1/analysis?day_type=holiday", http.StatusBadRequest},
		{"bad date", "/machines/1/analysis?from=2024-13-01", http.StatusBadRequest},
		{"reversed range", "/machines/1/analysis?from=2024-06-01&to=2024-05-01", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&fakeService{}), tt.target)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestAnalyzeInternalError(t *testing.T) {
	w := do(newRouter(&fakeService{analyzeErr: fmt.Errorf("select records: connection reset")}), "/machines/1/analysis")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestListMachines(t *testing.T) {
	w := do(newRouter(&fakeService{}), "/machines")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []dto.MachineResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0].SpecKey != "hokuto-tensei2" {
		t.Errorf("unexpected machines: %+v", body)
	}
}

func TestDailySummary(t *testing.T) {
	serv := &fakeService{}
	w := do(newRouter(serv), "/machines/1/daily-summary")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if serv.lastQuery.DayType != model.DayTypeAll {
		t.Errorf("expected default day type all, got %q", serv.lastQuery.DayType)
	}

	var body dto.DailySummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Rows) != 1 || body.Rows[0].Date != "2024-05-01" {
		t.Errorf("unexpected rows: %+v", body.Rows)
	}
	if body.Total.Date != "" || body.Total.TotalDiff != 300 {
		t.Errorf("unexpected total: %+v", body.Total)
	}
}

func TestCabinetHistory(t *testing.T) {
	games := 3000
	serv := &fakeService{historyDays: []model.CabinetDay{
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Diff: -200, Games: &games},
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Diff: 400},
	}}

	w := do(newRouter(serv), "/machines/1/cabinets/245/history?to=2024-05-31")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if serv.lastNo != 245 || serv.lastFrom != nil || serv.lastTo == nil {
		t.Errorf("unexpected arguments: no=%d from=%v to=%v", serv.lastNo, serv.lastFrom, serv.lastTo)
	}

	var body dto.CabinetHistoryResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Days) != 2 || body.Days[0].Date != "2024-05-02" {
		t.Fatalf("unexpected days: %+v", body.Days)
	}
	if body.Days[1].Games != nil {
		t.Errorf("missing games must stay null, got %v", *body.Days[1].Games)
	}

	w = do(newRouter(serv), "/machines/1/cabinets/x/history")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad machine number, got %d", w.Code)
	}
}
