package liftlog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/history"
	"github.com/2beens/liftlog/internal/liftlog/progression"
	"github.com/2beens/liftlog/internal/liftlog/session"
	"github.com/2beens/liftlog/internal/liftlog/state"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// SessionExercise is one exercise of today's training list, together
// with everything the client renders for it.
type SessionExercise struct {
	catalog.Exercise
	Logs              []history.Entry `json:"logs"`
	Completed         bool            `json:"completed"`
	RecommendedWeight float64         `json:"recommendedWeight"`
}

// Session is the derived view of the current training day.
type Session struct {
	Week     int               `json:"week"`
	DayIndex int               `json:"dayIndex"`
	Day      catalog.Day       `json:"day"`
	LastDay  bool              `json:"lastDay"`
	Circuit1 []SessionExercise `json:"circuit1"`
	Circuit2 []SessionExercise `json:"circuit2"`
}

// Service owns the tracker state: it loads it from the store on startup,
// applies the catalog/history/progression engines on it, and writes the
// affected keys back after every mutation. One logical writer; the mutex
// only guards against concurrent HTTP requests.
type Service struct {
	mu       sync.RWMutex
	store    state.Store
	schedule []catalog.Day

	cat      []catalog.Exercise
	hist     history.History
	week     int
	dayIndex int
}

func NewService(store state.Store, schedule []catalog.Day) *Service {
	return &Service{
		store:    store,
		schedule: schedule,
	}
}

// Load pulls the persisted state from the store, falling back to
// defaults for absent or malformed keys.
func (s *Service) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot, err := state.Load(ctx, s.store)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = snapshot.Catalog
	s.hist = snapshot.History
	s.week = snapshot.CurrentWeek
	s.dayIndex = snapshot.CurrentDayIndex

	span.SetAttributes(attribute.Int("week", s.week))
	span.SetAttributes(attribute.Int("day_index", s.dayIndex))
	return nil
}

// Catalog returns a copy of the full catalog, active and benched.
func (s *Service) Catalog(_ context.Context) []catalog.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat := make([]catalog.Exercise, len(s.cat))
	copy(cat, s.cat)
	return cat
}

// CurrentWeek returns the training week in progress.
func (s *Service) CurrentWeek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week
}

// CurrentSession derives today's training list, with this week's logs,
// completion and the recommended working weight per exercise.
func (s *Service) CurrentSession(ctx context.Context) Session {
	_, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.session")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	day, _ := session.Day(s.schedule, s.dayIndex)
	todays := session.TodaysExercises(s.cat, s.schedule, s.dayIndex)

	return Session{
		Week:     s.week,
		DayIndex: s.dayIndex,
		Day:      day,
		LastDay:  s.dayIndex >= len(s.schedule)-1,
		Circuit1: s.sessionExercises(todays.Circuit1),
		Circuit2: s.sessionExercises(todays.Circuit2),
	}
}

// sessionExercises must be called with the lock held.
func (s *Service) sessionExercises(exs []catalog.Exercise) []SessionExercise {
	sessionExs := make([]SessionExercise, 0, len(exs))
	for _, ex := range exs {
		logs := history.WeekLogs(s.hist, ex.ID, s.week)
		sessionExs = append(sessionExs, SessionExercise{
			Exercise:          ex,
			Logs:              logs,
			Completed:         session.IsComplete(ex, logs),
			RecommendedWeight: progression.Recommend(ex, s.cat, s.hist, s.week),
		})
	}
	return sessionExs
}

// Recommendation computes the suggested next working weight for one exercise.
func (s *Service) Recommendation(ctx context.Context, exerciseID string) (_ float64, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.recommendation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := catalog.FindByID(s.cat, exerciseID)
	if i == -1 {
		return 0, ErrExerciseNotFound
	}
	return progression.Recommend(s.cat[i], s.cat, s.hist, s.week), nil
}

// WeekLogs returns this week's sets of one exercise, in append order.
func (s *Service) WeekLogs(ctx context.Context, exerciseID string) (_ []history.Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.weeklogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if catalog.FindByID(s.cat, exerciseID) == -1 {
		return nil, ErrExerciseNotFound
	}
	return history.WeekLogs(s.hist, exerciseID, s.week), nil
}

// LogSet appends a set for the exercise in the current week and persists
// the updated history and catalog.
func (s *Service) LogSet(ctx context.Context, exerciseID string, weight float64, reps int) (_ history.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.logset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if reps <= 0 {
		return history.Entry{}, errors.New("reps must be a positive number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if catalog.FindByID(s.cat, exerciseID) == -1 {
		return history.Entry{}, ErrExerciseNotFound
	}

	s.hist, s.cat = history.LogSet(s.hist, s.cat, exerciseID, weight, reps, s.week, time.Now())

	if err := s.persistHistoryAndCatalog(ctx); err != nil {
		return history.Entry{}, err
	}

	entries := s.hist[exerciseID]
	return entries[len(entries)-1], nil
}

// UpdateSet edits this week's set at the session-relative index. An out
// of range index is a no-op; the returned bool says whether the edit was
// applied.
func (s *Service) UpdateSet(ctx context.Context, exerciseID string, sessionIndex int, weight float64, reps int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.updateset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))
	span.SetAttributes(attribute.Int("session_index", sessionIndex))

	if reps <= 0 {
		return false, errors.New("reps must be a positive number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if catalog.FindByID(s.cat, exerciseID) == -1 {
		return false, ErrExerciseNotFound
	}

	before := len(history.WeekLogs(s.hist, exerciseID, s.week))
	if sessionIndex < 0 || sessionIndex >= before {
		return false, nil
	}

	s.hist, s.cat = history.UpdateSet(s.hist, s.cat, exerciseID, sessionIndex, weight, reps, s.week)

	if err := s.persistHistoryAndCatalog(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ResetWeek drops this week's sets of one exercise; other weeks stay.
func (s *Service) ResetWeek(ctx context.Context, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.resetweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if catalog.FindByID(s.cat, exerciseID) == -1 {
		return ErrExerciseNotFound
	}

	s.hist = history.ResetWeek(s.hist, exerciseID, s.week)
	return state.SaveHistory(ctx, s.store, s.hist)
}

// SwapCandidates lists the exercises the given one can be swapped for today.
func (s *Service) SwapCandidates(ctx context.Context, exerciseID string) (_ []catalog.Exercise, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.swapcandidates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := catalog.FindByID(s.cat, exerciseID)
	if i == -1 {
		return nil, ErrExerciseNotFound
	}

	day, ok := session.Day(s.schedule, s.dayIndex)
	if !ok {
		return nil, fmt.Errorf("day index %d outside of schedule", s.dayIndex)
	}
	return catalog.SwapCandidates(s.cat[i], s.cat, day.Type), nil
}

// Swap replaces the current exercise with the target one, benching the
// current. Unknown ids leave the catalog as is (the bool reports whether
// anything changed).
func (s *Service) Swap(ctx context.Context, currentID, targetID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.swap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("current.id", currentID))
	span.SetAttributes(attribute.String("target.id", targetID))

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, swapped := catalog.Swap(s.cat, currentID, targetID)
	if !swapped {
		return false, nil
	}

	s.cat = updated
	if err := state.SaveCatalog(ctx, s.store, s.cat); err != nil {
		return false, err
	}
	return true, nil
}

// FinishDay advances to the next scheduled day. On the last day it is a
// no-op: the week only advances through FinishWeek.
func (s *Service) FinishDay(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.finishday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dayIndex >= len(s.schedule)-1 {
		return s.dayIndex, nil
	}

	s.dayIndex++
	if err := state.SaveDayIndex(ctx, s.store, s.dayIndex); err != nil {
		return 0, err
	}
	return s.dayIndex, nil
}

// FinishWeek starts the next training week from its first day.
func (s *Service) FinishWeek(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.finishweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.week++
	s.dayIndex = 0
	if err := state.SaveWeek(ctx, s.store, s.week); err != nil {
		return 0, err
	}
	if err := state.SaveDayIndex(ctx, s.store, s.dayIndex); err != nil {
		return 0, err
	}
	return s.week, nil
}

// HardReset wipes all persisted state and goes back to the seed catalog,
// empty history, week 1, day 0. Destructive and irreversible; callers
// must have collected an explicit confirmation first.
func (s *Service) HardReset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.liftlog.hardreset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := state.ClearAll(ctx, s.store); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}

	snapshot := state.DefaultSnapshot()
	s.cat = snapshot.Catalog
	s.hist = snapshot.History
	s.week = snapshot.CurrentWeek
	s.dayIndex = snapshot.CurrentDayIndex
	return nil
}

// persistHistoryAndCatalog must be called with the lock held.
func (s *Service) persistHistoryAndCatalog(ctx context.Context) error {
	if err := state.SaveHistory(ctx, s.store, s.hist); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	if err := state.SaveCatalog(ctx, s.store, s.cat); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
