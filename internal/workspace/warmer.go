package workspace

import (
	"context"
	"errors"

	"go-shiftplan/internal/planilla"

	"go.uber.org/zap"
)

// CacheWarmer reloads a sede through the coordinator and recomputes the
// planilla of each of its schedules for the schedule's own month.
type CacheWarmer struct {
	coord  *Coordinator
	cache  planilla.Cache
	logger *zap.Logger
}

func NewCacheWarmer(coord *Coordinator, cache planilla.Cache, logger ...*zap.Logger) *CacheWarmer {
	l := zap.L().Named("workspace.warmer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workspace.warmer")
	}
	if cache == nil {
		cache = planilla.NoopCache{}
	}
	return &CacheWarmer{coord: coord, cache: cache, logger: l}
}

func (w *CacheWarmer) Refresh(ctx context.Context, sede string) error {
	if err := w.coord.SelectSede(ctx, sede); err != nil {
		return err
	}
	if err := w.cache.InvalidateSede(ctx, sede); err != nil {
		return err
	}
	gen, err := w.cache.Generation(ctx, sede)
	if err != nil {
		return err
	}

	warmed := 0
	for _, s := range w.coord.State().Schedules {
		report, err := w.coord.Planilla(s.ID, s.Month, s.Year)
		if err != nil {
			w.logger.Warn("planilla warmup skipped", zap.String("schedule_id", s.ID), zap.Error(err))
			continue
		}
		field := planilla.CacheField(report.Year, report.Month, report.Policy)
		if err := w.cache.Set(ctx, report, field, gen); err != nil {
			if errors.Is(err, planilla.ErrStaleReport) {
				// a newer event for this sede will warm it again
				w.logger.Debug("planilla warmup superseded", zap.String("sede", sede))
				return nil
			}
			return err
		}
		warmed++
	}

	w.logger.Info("planilla cache warmed", zap.String("sede", sede), zap.Int("schedules", warmed))
	return nil
}
