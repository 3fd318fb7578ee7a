package liftlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/history"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=liftlog_test

type trackerService interface {
	Catalog(ctx context.Context) []catalog.Exercise
	CurrentSession(ctx context.Context) Session
	Recommendation(ctx context.Context, exerciseID string) (float64, error)
	WeekLogs(ctx context.Context, exerciseID string) ([]history.Entry, error)
	LogSet(ctx context.Context, exerciseID string, weight float64, reps int) (history.Entry, error)
	UpdateSet(ctx context.Context, exerciseID string, sessionIndex int, weight float64, reps int) (bool, error)
	ResetWeek(ctx context.Context, exerciseID string) error
	SwapCandidates(ctx context.Context, exerciseID string) ([]catalog.Exercise, error)
	Swap(ctx context.Context, currentID, targetID string) (bool, error)
	FinishDay(ctx context.Context) (int, error)
	FinishWeek(ctx context.Context) (int, error)
	HardReset(ctx context.Context) error
}

type LogSetRequest struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type UpdateSetResponse struct {
	Updated bool `json:"updated"`
}

type SwapRequest struct {
	CurrentID string `json:"currentId"`
	TargetID  string `json:"targetId"`
}

type SwapResponse struct {
	Swapped bool `json:"swapped"`
}

type RecommendationResponse struct {
	ExerciseID        string  `json:"exerciseId"`
	RecommendedWeight float64 `json:"recommendedWeight"`
}

type WeekLogsResponse struct {
	ExerciseID string          `json:"exerciseId"`
	Logs       []history.Entry `json:"logs"`
}

type FinishDayResponse struct {
	DayIndex int `json:"dayIndex"`
}

type FinishWeekResponse struct {
	Week int `json:"week"`
}

type HardResetRequest struct {
	Confirm bool `json:"confirm"`
}

type Handler struct {
	service trackerService
	metrics *metrics.Manager
}

func NewHandler(service trackerService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.session")
	defer span.End()

	sessionJson, err := json.Marshal(handler.service.CurrentSession(ctx))
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "failed to marshal session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.catalog")
	defer span.End()

	catalogJson, err := json.Marshal(handler.service.Catalog(ctx))
	if err != nil {
		log.Errorf("failed to marshal catalog: %s", err)
		http.Error(w, "failed to marshal catalog", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, catalogJson, http.StatusOK)
}

func (handler *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.recommendation")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	recommended, err := handler.service.Recommendation(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get recommendation [%s]: %s", exerciseID, err)
		http.Error(w, "failed to get recommendation", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(RecommendationResponse{
		ExerciseID:        exerciseID,
		RecommendedWeight: recommended,
	})
	if err != nil {
		log.Errorf("failed to marshal recommendation: %s", err)
		http.Error(w, "failed to marshal recommendation", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleWeekLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.weeklogs")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	logs, err := handler.service.WeekLogs(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get week logs [%s]: %s", exerciseID, err)
		http.Error(w, "failed to get week logs", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(WeekLogsResponse{
		ExerciseID: exerciseID,
		Logs:       logs,
	})
	if err != nil {
		log.Errorf("failed to marshal week logs: %s", err)
		http.Error(w, "failed to marshal week logs", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.logset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	var logSetReq LogSetRequest
	if err := json.NewDecoder(r.Body).Decode(&logSetReq); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}
	if logSetReq.Reps <= 0 {
		http.Error(w, "error, reps must be a positive number", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.LogSet(ctx, exerciseID, logSetReq.Weight, logSetReq.Reps)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to log set [%s]: %s", exerciseID, err)
		http.Error(w, "error, failed to log set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsLogged.Inc()

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal logged set: %s", err)
		http.Error(w, "error, failed to log set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new set logged for [%s]: %s", exerciseID, entryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.updateset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	exerciseID := vars["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	sessionIndex, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, set index NaN", http.StatusBadRequest)
		return
	}

	var updateReq LogSetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	if updateReq.Reps <= 0 {
		http.Error(w, "error, reps must be a positive number", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.UpdateSet(ctx, exerciseID, sessionIndex, updateReq.Weight, updateReq.Reps)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update set [%s][%d]: %s", exerciseID, sessionIndex, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	if updated {
		handler.metrics.CounterSetsUpdated.Inc()
	} else {
		// out of range session index, deliberately a no-op
		log.Debugf("update set [%s]: index %d out of range, nothing updated", exerciseID, sessionIndex)
	}

	respJson, err := json.Marshal(UpdateSetResponse{Updated: updated})
	if err != nil {
		log.Errorf("failed to marshal update set response: %s", err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleResetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.resetweek")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.ResetWeek(ctx, exerciseID); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to reset week [%s]: %s", exerciseID, err)
		http.Error(w, "error, failed to reset week", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWeekResets.Inc()
	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}

func (handler *Handler) HandleSwapCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.swapcandidates")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	candidates, err := handler.service.SwapCandidates(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get swap candidates [%s]: %s", exerciseID, err)
		http.Error(w, "failed to get swap candidates", http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []catalog.Exercise{}
	}

	candidatesJson, err := json.Marshal(candidates)
	if err != nil {
		log.Errorf("failed to marshal swap candidates: %s", err)
		http.Error(w, "failed to marshal swap candidates", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, candidatesJson, http.StatusOK)
}

func (handler *Handler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.swap")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var swapReq SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&swapReq); err != nil {
		log.Tracef("swap, unmarshal json params: %s", err)
		http.Error(w, "swap failed", http.StatusBadRequest)
		return
	}
	if swapReq.CurrentID == "" || swapReq.TargetID == "" {
		http.Error(w, "error, current or target id empty", http.StatusBadRequest)
		return
	}

	swapped, err := handler.service.Swap(ctx, swapReq.CurrentID, swapReq.TargetID)
	if err != nil {
		log.Errorf("failed to swap [%s] -> [%s]: %s", swapReq.CurrentID, swapReq.TargetID, err)
		http.Error(w, "error, failed to swap", http.StatusInternalServerError)
		return
	}

	if swapped {
		handler.metrics.CounterSwaps.Inc()
	} else {
		// unknown ids swap to nothing, deliberately silent
		log.Debugf("swap [%s] -> [%s]: no such exercises, nothing swapped", swapReq.CurrentID, swapReq.TargetID)
	}

	respJson, err := json.Marshal(SwapResponse{Swapped: swapped})
	if err != nil {
		log.Errorf("failed to marshal swap response: %s", err)
		http.Error(w, "error, failed to swap", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleFinishDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.finishday")
	defer span.End()

	dayIndex, err := handler.service.FinishDay(ctx)
	if err != nil {
		log.Errorf("failed to finish day: %s", err)
		http.Error(w, "error, failed to finish day", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(FinishDayResponse{DayIndex: dayIndex})
	if err != nil {
		log.Errorf("failed to marshal finish day response: %s", err)
		http.Error(w, "error, failed to finish day", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleFinishWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.finishweek")
	defer span.End()

	week, err := handler.service.FinishWeek(ctx)
	if err != nil {
		log.Errorf("failed to finish week: %s", err)
		http.Error(w, "error, failed to finish week", http.StatusInternalServerError)
		return
	}

	handler.metrics.GaugeCurrentWeek.Set(float64(week))

	respJson, err := json.Marshal(FinishWeekResponse{Week: week})
	if err != nil {
		log.Errorf("failed to marshal finish week response: %s", err)
		http.Error(w, "error, failed to finish week", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleHardReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.liftlog.hardreset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var resetReq HardResetRequest
	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		log.Tracef("hard reset, unmarshal json params: %s", err)
		http.Error(w, "hard reset failed", http.StatusBadRequest)
		return
	}
	if !resetReq.Confirm {
		http.Error(w, "error, hard reset needs explicit confirmation", http.StatusBadRequest)
		return
	}

	reqIp, _ := pkg.ReadUserIP(r)
	log.Warnf("hard reset requested and confirmed from [%s], wiping all state", reqIp)

	if err := handler.service.HardReset(ctx); err != nil {
		log.Errorf("failed to hard reset: %s", err)
		http.Error(w, "error, failed to hard reset", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterHardResets.Inc()
	handler.metrics.GaugeCurrentWeek.Set(1)

	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}
