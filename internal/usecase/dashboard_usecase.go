package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"acredge/internal/domain/entity"
	"acredge/pkg/errors"
)

type statusCounter interface {
	Stats(ctx context.Context) (entity.StatusCounts, error)
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

type DashboardUseCase struct {
	kinds      map[string]statusCounter
	users      counter
	properties counter
}

func NewDashboardUseCase(developers, projects, series, towers *EntityUseCase, users counter, properties counter) *DashboardUseCase {
	return &DashboardUseCase{
		kinds: map[string]statusCounter{
			"developers": developers,
			"projects":   projects,
			"series":     series,
			"towers":     towers,
		},
		users:      users,
		properties: properties,
	}
}

func (uc *DashboardUseCase) KindStats(ctx context.Context, kind string) (entity.StatusCounts, error) {
	c, ok := uc.kinds[kind]
	if !ok {
		return entity.StatusCounts{}, errors.NotFound("Dashboard "+kind, nil)
	}
	return c.Stats(ctx)
}

func (uc *DashboardUseCase) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	var stats entity.AdminStats
	targets := map[string]*entity.StatusCounts{
		"developers": &stats.Developers,
		"projects":   &stats.Projects,
		"series":     &stats.Series,
		"towers":     &stats.Towers,
	}

	g, gctx := errgroup.WithContext(ctx)
	for kind, target := range targets {
		kind, target := kind, target
		g.Go(func() error {
			counts, err := uc.kinds[kind].Stats(gctx)
			if err != nil {
				return err
			}
			*target = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.All = stats.Developers.Add(stats.Projects).Add(stats.Series).Add(stats.Towers)
	return &stats, nil
}

func (uc *DashboardUseCase) TotalUsers(ctx context.Context) (int64, error) {
	return uc.users.Count(ctx)
}

func (uc *DashboardUseCase) TotalProperties(ctx context.Context) (int64, error) {
	return uc.properties.Count(ctx)
}
