package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

const (
	triggerFetch   = "fetch"
	triggerFilters = "filters"
	triggerSearch  = "search"
)

var ErrOrchestratorClosed = errors.New("query orchestrator is closed")

// QueryOrchestrator runs the dashboard pipeline for one session:
// record store, filters, search, then aggregates and pagination over the
// result. All state changes go through mu; the record store is called
// without holding it and the debounce timer re-enters through applySearch.
type QueryOrchestrator struct {
	mu          sync.Mutex
	store       repositories.TransactionRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      QueryLoggerInterface
	debouncer   *Debouncer
	loc         *time.Location
	recentCount int

	query       models.RecordQuery
	loaded      bool
	superset    []models.Transaction
	filters     models.FilterSet
	searchTerm  string
	pendingTerm string
	searchSeq   uint64
	fetchSeq    uint64
	loading     bool
	closed      bool

	paginator   *Paginator
	summary     models.Summary
	granularity models.Granularity
	moneyFlow   []models.MoneyFlowBucket
	recent      []models.Transaction

	listeners []func(models.QueryView)
}

// NewQueryOrchestrator creates an orchestrator with nothing loaded; the
// first SetFilters or SetDateRange call reads the record store.
func NewQueryOrchestrator(
	store repositories.TransactionRepositoryInterface,
	cfg *config.QueryConfig,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) QueryOrchestratorInterface {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = NewQueryLogger(nil)
	}

	return &QueryOrchestrator{
		store:       store,
		metrics:     metrics,
		logger:      logger,
		debouncer:   NewDebouncer(cfg.SearchDebounce),
		loc:         loc,
		recentCount: max(cfg.RecentCount, 0),
		filters:     models.NewFilterSet(),
		paginator:   NewPaginator(cfg.PageSize),
		summary:     Summarize(nil),
		moneyFlow:   []models.MoneyFlowBucket{},
		recent:      []models.Transaction{},
	}
}

func (o *QueryOrchestrator) SetDateRange(ctx context.Context, rng models.DateRange, types []models.TransactionType) error {
	values := make([]string, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}

	return o.apply(ctx, func(current models.FilterSet) models.FilterSet {
		return current.WithRange(rng).With(models.DimensionTransactionType, values...)
	})
}

func (o *QueryOrchestrator) SetFilters(ctx context.Context, filters models.FilterSet) error {
	replacement := filters.Clone()
	return o.apply(ctx, func(models.FilterSet) models.FilterSet {
		return replacement
	})
}

// SetDimensionFilters replaces the accepted values of every dimension while
// keeping the current date range.
func (o *QueryOrchestrator) SetDimensionFilters(ctx context.Context, filters models.FilterSet) error {
	replacement := filters.Clone()
	return o.apply(ctx, func(current models.FilterSet) models.FilterSet {
		return replacement.WithRange(current.Range)
	})
}

// apply installs the filter set produced by next. When the record store
// prefilter is unchanged the loaded records are reused; otherwise they are
// reloaded, and a reload superseded by a newer one is dropped. A failed
// reload keeps the previous records.
func (o *QueryOrchestrator) apply(ctx context.Context, next func(models.FilterSet) models.FilterSet) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrOrchestratorClosed
	}

	o.filters = next(o.filters)
	query := models.RecordQuery{Range: o.filters.Range, Types: PrefilterTypes(o.filters)}

	if o.loaded && query.Equal(o.query) {
		view := o.recomputeLocked(ctx, triggerFilters)
		o.unlockAndNotify(view)
		return nil
	}

	o.fetchSeq++
	seq := o.fetchSeq
	o.loading = true
	o.unlockAndNotify(o.viewLocked())

	started := time.Now()
	records, err := o.store.LoadAll(ctx, query)
	elapsed := time.Since(started)

	o.mu.Lock()
	if seq != o.fetchSeq || o.closed {
		o.mu.Unlock()
		o.metrics.IncrementCounter(MetricQueryFetch, map[string]string{"status": "stale"})
		return nil
	}

	o.loading = false
	o.metrics.RecordProcessingTime(MetricQueryFetch, elapsed)

	var fetchErr error
	if err != nil {
		fetchErr = fmt.Errorf("failed to load transactions: %w", err)
		o.metrics.IncrementCounter(MetricQueryFetch, map[string]string{"status": "failed"})
		o.logger.LogFetchFailed(ctx, query, err)
	} else {
		o.superset = records
		o.query = query
		o.loaded = true
		o.metrics.IncrementCounter(MetricQueryFetch, map[string]string{"status": "success"})
		o.logger.LogRecordsFetched(ctx, query, len(records), elapsed)
	}

	view := o.recomputeLocked(ctx, triggerFetch)
	o.unlockAndNotify(view)
	return fetchErr
}

// SetSearchTerm records term and schedules it; only the last term of a
// burst is applied, once the debounce delay has passed without new input.
func (o *QueryOrchestrator) SetSearchTerm(ctx context.Context, term string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}

	o.pendingTerm = term
	o.searchSeq++
	seq := o.searchSeq
	o.debouncer.Trigger(func() {
		o.applySearch(seq)
	})

	o.metrics.IncrementCounter(MetricSearchScheduled, nil)
	o.logger.LogSearchScheduled(ctx, term, o.debouncer.Delay())
}

func (o *QueryOrchestrator) FlushSearch() bool {
	return o.debouncer.Flush()
}

func (o *QueryOrchestrator) applySearch(seq uint64) {
	o.mu.Lock()
	if o.closed || seq != o.searchSeq {
		o.mu.Unlock()
		return
	}

	ctx := context.Background()
	o.searchTerm = o.pendingTerm
	view := o.recomputeLocked(ctx, triggerSearch)

	o.metrics.IncrementCounter(MetricSearchApplied, nil)
	o.logger.LogSearchApplied(ctx, o.searchTerm, view.Total)
	o.unlockAndNotify(view)
}

func (o *QueryOrchestrator) GetPage(n int) (models.QueryView, bool) {
	o.mu.Lock()
	if _, ok := o.paginator.GetPage(n); !ok {
		defer o.mu.Unlock()
		return o.viewLocked(), false
	}
	view := o.viewLocked()
	o.unlockAndNotify(view)
	return view, true
}

func (o *QueryOrchestrator) LoadMore() (models.QueryView, bool) {
	o.mu.Lock()
	if _, ok := o.paginator.LoadMore(); !ok {
		defer o.mu.Unlock()
		return o.viewLocked(), false
	}
	view := o.viewLocked()
	o.unlockAndNotify(view)
	return view, true
}

func (o *QueryOrchestrator) View() models.QueryView {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked()
}

// OnChange registers listener to receive every new view. Listeners run on
// the goroutine that caused the change, after the lock is released.
func (o *QueryOrchestrator) OnChange(listener func(models.QueryView)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, listener)
}

// Close cancels any pending search and stops all further work.
func (o *QueryOrchestrator) Close() {
	o.mu.Lock()
	o.closed = true
	o.listeners = nil
	o.mu.Unlock()

	o.debouncer.Cancel()
}

// recomputeLocked rebuilds everything derived from the loaded records.
// Pagination restarts at page 1 with the first batch delivered.
func (o *QueryOrchestrator) recomputeLocked(ctx context.Context, trigger string) models.QueryView {
	started := time.Now()

	active := SearchTransactions(ApplyFilters(o.superset, o.filters), o.searchTerm)

	o.summary = Summarize(active)
	o.granularity, o.moneyFlow = o.moneyFlowLocked(active)
	o.paginator.Reset(active)
	o.paginator.LoadMore()
	o.recent = cloneTransactions(active[:min(o.recentCount, len(active))])

	elapsed := time.Since(started)
	o.metrics.IncrementCounter(MetricQueryRecompute, map[string]string{"trigger": trigger})
	o.metrics.RecordProcessingTime(MetricQueryRecompute, elapsed)
	o.metrics.RecordGauge(MetricQueryResultSize, float64(len(active)), nil)
	o.logger.LogRecomputed(ctx, trigger, len(active), o.granularity, elapsed)

	return o.viewLocked()
}

// moneyFlowLocked charts the active filter range. Open bounds are taken
// from the oldest and newest records; nothing is charted when a bound is
// open and there are no records.
func (o *QueryOrchestrator) moneyFlowLocked(active []models.Transaction) (models.Granularity, []models.MoneyFlowBucket) {
	rng := o.filters.Range
	if !rng.IsBounded() {
		if len(active) == 0 {
			return "", []models.MoneyFlowBucket{}
		}
		oldest, newest := active[0].Timestamp, active[0].Timestamp
		for _, t := range active[1:] {
			oldest = min(oldest, t.Timestamp)
			newest = max(newest, t.Timestamp)
		}
		if rng.Start == nil {
			start := time.UnixMilli(oldest)
			rng.Start = &start
		}
		if rng.End == nil {
			end := time.UnixMilli(newest)
			rng.End = &end
		}
	}

	start := rng.Start.In(o.loc)
	end := rng.End.In(o.loc)
	granularity := SelectGranularity(start, end)
	return granularity, MoneyFlowWithGranularity(active, start, end, granularity)
}

func (o *QueryOrchestrator) viewLocked() models.QueryView {
	flow := make([]models.MoneyFlowBucket, len(o.moneyFlow))
	copy(flow, o.moneyFlow)

	return models.QueryView{
		Displayed:     o.paginator.Displayed(),
		PageItems:     o.paginator.PageItems(),
		Loading:       o.loading,
		SearchPending: o.debouncer.Pending(),
		SearchTerm:    o.searchTerm,
		CurrentPage:   o.paginator.CurrentPage(),
		TotalPages:    o.paginator.TotalPages(),
		Total:         o.paginator.Total(),
		Cursor:        o.paginator.Cursor(),
		HasMore:       o.paginator.HasMore(),
		Summary:       o.summary,
		Granularity:   o.granularity,
		MoneyFlow:     flow,
		Recent:        cloneTransactions(o.recent),
		Range:         o.filters.Range,
		Filters:       o.filters.Clone(),
	}
}

// unlockAndNotify releases mu and hands view to the registered listeners.
func (o *QueryOrchestrator) unlockAndNotify(view models.QueryView) {
	listeners := make([]func(models.QueryView), len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(view)
	}
}
