package estimation

import (
	"net/http"

	"pachislot_analytics/internal/api"
	dto "pachislot_analytics/internal/api/dto/estimation"
	"pachislot_analytics/internal/converter"
	"pachislot_analytics/internal/service"
	"pachislot_analytics/pkg/req"
	"pachislot_analytics/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.EstimationService
}

type Handler struct {
	serv service.EstimationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// EstimateMachine Оценка настроек по тумбам автомата.
// Если спецификации нет - 200 с available=false.
func (h *Handler) EstimateMachine(w http.ResponseWriter, r *http.Request) {
	q, err := api.AnalysisQuery(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	priors, err := api.Priors(r.URL.Query().Get("priors"))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	result, err := h.serv.EstimateMachine(r.Context(), q, priors)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMachineEstimationResponse(*result))
}

func (h *Handler) ListSpecs(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpecsResponse(h.serv.ListSpecs()))
}

// Estimate Расчет по введенным вручную играм и попаданиям
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EstimateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	priors := payload.Priors
	if len(priors) == 0 {
		priors = nil
	}

	result, err := h.serv.Estimate(r.Context(), chi.URLParam(r, "specKey"), payload.Games, payload.Hits, priors)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingEstimateResponse(*result))
}
