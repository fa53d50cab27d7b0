package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pachislot_analytics/internal/middleware"
	"pachislot_analytics/internal/model"
	"pachislot_analytics/pkg/jst"
	"pachislot_analytics/pkg/resp"

	"github.com/go-chi/chi/v5"
)

// WriteError отдает ошибку сервиса с подходящим статусом.
// Внутренние ошибки логируются, клиенту уходит только текст статуса.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", middleware.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrMachineNotFound), errors.Is(err, model.ErrSpecNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidQuery), errors.Is(err, model.ErrInvalidPriors):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MachineID id автомата из пути
func MachineID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "machineID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid machine id %q", model.ErrInvalidQuery, raw)
	}
	return id, nil
}

// DateRange from и to из query, оба необязательные
func DateRange(r *http.Request) (from, to *time.Time, err error) {
	q := r.URL.Query()
	from, err = jst.ParseOptionalDate(q.Get("from"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: from: %v", model.ErrInvalidQuery, err)
	}
	to, err = jst.ParseOptionalDate(q.Get("to"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: to: %v", model.ErrInvalidQuery, err)
	}
	return from, to, nil
}

// AnalysisQuery machineID из пути, from, to и day_type из query
func AnalysisQuery(r *http.Request) (model.AnalysisQuery, error) {
	id, err := MachineID(r)
	if err != nil {
		return model.AnalysisQuery{}, err
	}
	from, to, err := DateRange(r)
	if err != nil {
		return model.AnalysisQuery{}, err
	}
	dayType, err := model.ParseDayType(r.URL.Query().Get("day_type"))
	if err != nil {
		return model.AnalysisQuery{}, err
	}

	q := model.AnalysisQuery{MachineID: id, From: from, To: to, DayType: dayType}
	if err := q.Validate(); err != nil {
		return model.AnalysisQuery{}, err
	}
	return q, nil
}

// Priors список вида "0.2,0.2,0.2,0.2,0.1,0.1", пустая строка - nil
func Priors(raw string) ([]float64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	priors := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", model.ErrInvalidPriors, p)
		}
		priors[i] = v
	}
	if err := model.ValidatePriors(priors); err != nil {
		return nil, err
	}
	return priors, nil
}

func Health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
