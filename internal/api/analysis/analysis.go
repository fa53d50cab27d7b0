package analysis

import (
	"fmt"
	"net/http"
	"strconv"

	"pachislot_analytics/internal/api"
	"pachislot_analytics/internal/converter"
	"pachislot_analytics/internal/model"
	"pachislot_analytics/internal/service"
	"pachislot_analytics/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AnalysisService
}

type Handler struct {
	serv service.AnalysisService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.serv.ListMachines(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMachinesResponse(machines))
}

// Analyze Агрегаты по тумбам и по автомату за период
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	q, err := api.AnalysisQuery(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.Analyze(r.Context(), q)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAnalysisResponse(*result))
}

func (h *Handler) DailySummary(w http.ResponseWriter, r *http.Request) {
	q, err := api.AnalysisQuery(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	summary, err := h.serv.DailySummary(r.Context(), q)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDailySummaryResponse(*summary))
}

// CabinetHistory Все дни одной тумбы, от новых к старым
func (h *Handler) CabinetHistory(w http.ResponseWriter, r *http.Request) {
	machineID, err := api.MachineID(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	raw := chi.URLParam(r, "machineNo")
	machineNo, err := strconv.Atoi(raw)
	if err != nil || machineNo <= 0 {
		api.WriteError(w, r, fmt.Errorf("%w: invalid machine number %q", model.ErrInvalidQuery, raw))
		return
	}

	from, to, err := api.DateRange(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	history, err := h.serv.CabinetHistory(r.Context(), machineID, machineNo, from, to)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCabinetHistoryResponse(*history))
}
