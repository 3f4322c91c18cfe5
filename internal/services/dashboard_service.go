package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

// DashboardRequest is one stateless dashboard query. Filters carries the
// resolved date range.
type DashboardRequest struct {
	Filters    models.FilterSet
	SearchTerm string
	Page       int
}

type DashboardService struct {
	store   repositories.TransactionRepositoryInterface
	cfg     *config.QueryConfig
	catalog models.FilterLabelCatalog
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
	now     func() time.Time
}

func NewDashboardService(
	store repositories.TransactionRepositoryInterface,
	cfg *config.QueryConfig,
	catalog models.FilterLabelCatalog,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) DashboardServiceInterface {
	if catalog == nil {
		catalog = models.DefaultFilterLabelCatalog()
	}
	return &DashboardService{
		store:   store,
		cfg:     cfg,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// ResolveRange turns the dd/MM/yyyy query parameters into a range in the
// dashboard time zone. Missing or malformed values fall back to the last
// DefaultRangeDays days ending today.
func (s *DashboardService) ResolveRange(startParam, endParam string) models.DateRange {
	return ResolveDateRange(startParam, endParam, s.now().In(s.location()), s.cfg.DefaultRangeDays)
}

// DefaultFilters is the filter set of a fresh dashboard: the default range
// and no other constraint.
func (s *DashboardService) DefaultFilters() models.FilterSet {
	return models.NewFilterSet().WithRange(s.ResolveRange("", ""))
}

func (s *DashboardService) Catalog() models.FilterLabelCatalog {
	return s.catalog
}

func (s *DashboardService) GetDashboard(ctx context.Context, req DashboardRequest) (models.QueryView, error) {
	orchestrator := s.NewOrchestrator()
	defer orchestrator.Close()

	if err := orchestrator.SetFilters(ctx, req.Filters); err != nil {
		return models.QueryView{}, err
	}

	if req.SearchTerm != "" {
		orchestrator.SetSearchTerm(ctx, req.SearchTerm)
		orchestrator.FlushSearch()
	}

	if req.Page > 1 {
		view, _ := orchestrator.GetPage(req.Page)
		return view, nil
	}
	return orchestrator.View(), nil
}

// FilterOptions lists the distinct values of every dimension found in rng,
// sorted, with their display labels.
func (s *DashboardService) FilterOptions(ctx context.Context, rng models.DateRange) (models.FilterOptions, error) {
	records, err := s.store.LoadAll(ctx, models.RecordQuery{Range: rng})
	if err != nil {
		return nil, fmt.Errorf("failed to load filter options: %w", err)
	}

	seen := make(map[models.FilterDimension]map[string]struct{}, len(models.FilterDimensions))
	for _, dim := range models.FilterDimensions {
		seen[dim] = make(map[string]struct{})
	}
	for _, t := range records {
		for _, dim := range models.FilterDimensions {
			if v := dim.ValueOf(t); v != "" {
				seen[dim][v] = struct{}{}
			}
		}
	}

	options := make(models.FilterOptions, len(seen))
	for dim, values := range seen {
		keys := make([]string, 0, len(values))
		for v := range values {
			keys = append(keys, v)
		}
		sort.Strings(keys)

		opts := make([]models.FilterOption, 0, len(keys))
		for _, k := range keys {
			opts = append(opts, models.FilterOption{Value: k, Label: s.catalog.Label(dim, k)})
		}
		options[dim] = opts
	}

	return options, nil
}

func (s *DashboardService) NewOrchestrator() QueryOrchestratorInterface {
	return NewQueryOrchestrator(s.store, s.cfg, s.metrics, s.logger)
}

func (s *DashboardService) location() *time.Location {
	if s.cfg.Location != nil {
		return s.cfg.Location
	}
	return time.Local
}
