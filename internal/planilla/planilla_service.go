package planilla

import (
	"context"
	"errors"
	"strings"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/hours"
	planillaerrors "go-shiftplan/internal/planilla/errors"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/shared/calendar"
	"go-shiftplan/internal/shared/contextutil"
	"go-shiftplan/internal/worktime"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"

	minYear = 2000
	maxYear = 2100
)

type ScheduleReader interface {
	FindByID(ctx context.Context, id string) (*schedule.Schedule, error)
}

type RosterReader interface {
	FindAllBySede(ctx context.Context, sedeName string) ([]employee.Employee, error)
}

type ConfigReader interface {
	FindAllBySede(ctx context.Context, sedeName string) ([]worktime.Config, error)
}

// Query selects the month a schedule is replayed over. Zero values fall
// back to the schedule's own month and year and the service policy.
type Query struct {
	Month  int
	Year   int
	Policy string
}

// File is a rendered export.
type File struct {
	Filename    string
	ContentType string
	Body        []byte
}

//go:generate mockgen -source=planilla_service.go -destination=mock/planilla_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, scheduleID string, q Query) (Report, error)
	Export(ctx context.Context, scheduleID string, q Query, format string) (File, error)
}

type service struct {
	schedules ScheduleReader
	roster    RosterReader
	configs   ConfigReader
	cache     Cache
	policy    hours.Policy
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	schedules ScheduleReader,
	roster RosterReader,
	configs ConfigReader,
	cache Cache,
	policy hours.Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("planilla.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("planilla.service")
	}
	if cache == nil {
		cache = NoopCache{}
	}
	if policy == "" {
		policy = hours.DefaultPolicy
	}
	return &service{
		schedules: schedules,
		roster:    roster,
		configs:   configs,
		cache:     cache,
		policy:    policy,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) resolve(q Query, sch *schedule.Schedule) (int, int, hours.Policy, error) {
	month, year := q.Month, q.Year
	if month == 0 {
		month = sch.Month
	}
	if year == 0 {
		year = sch.Year
	}
	if !calendar.ValidMonth(month) {
		return 0, 0, "", planillaerrors.ErrInvalidMonth
	}
	if year < minYear || year > maxYear {
		return 0, 0, "", planillaerrors.ErrInvalidYear
	}

	policy := s.policy
	if strings.TrimSpace(q.Policy) != "" {
		p, err := hours.ParsePolicy(q.Policy)
		if err != nil {
			return 0, 0, "", planillaerrors.ErrInvalidPolicy
		}
		policy = p
	}
	return month, year, policy, nil
}

func (s *service) Get(ctx context.Context, scheduleID string, q Query) (Report, error) {
	rid := contextutil.GetRequestID(ctx)

	sch, err := s.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Report{}, planillaerrors.ErrScheduleNotFound
		}
		s.logger.Error("planilla schedule lookup failed", zap.String("request_id", rid), zap.Error(err))
		return Report{}, err
	}

	month, year, policy, err := s.resolve(q, sch)
	if err != nil {
		return Report{}, err
	}
	field := CacheField(year, month, policy)

	cached, err := s.cache.Get(ctx, sch.ID, field)
	if err != nil {
		s.logger.Warn("planilla cache read failed", zap.String("schedule_id", sch.ID), zap.Error(err))
	}
	if cached != nil {
		s.logger.Debug("planilla cache hit", zap.String("schedule_id", sch.ID), zap.String("field", field))
		return *cached, nil
	}

	v, err, _ := s.sf.Do(CacheKey(sch.ID)+":"+field, func() (interface{}, error) {
		gen, genErr := s.cache.Generation(ctx, sch.Sede)
		if genErr != nil {
			s.logger.Warn("planilla cache generation read failed", zap.String("sede", sch.Sede), zap.Error(genErr))
		}

		roster, err := s.roster.FindAllBySede(ctx, sch.Sede)
		if err != nil {
			return nil, err
		}
		cfgs, err := s.configs.FindAllBySede(ctx, sch.Sede)
		if err != nil {
			return nil, err
		}

		report := Build(*sch, roster, hours.LookupFrom(cfgs), month, year, policy)

		if genErr == nil {
			switch err := s.cache.Set(ctx, report, field, gen); {
			case errors.Is(err, ErrStaleReport):
				s.logger.Debug("planilla cache write discarded", zap.String("schedule_id", sch.ID))
			case err != nil:
				s.logger.Warn("planilla cache write failed", zap.String("schedule_id", sch.ID), zap.Error(err))
			}
		}
		return report, nil
	})
	if err != nil {
		s.logger.Error("planilla build failed", zap.String("request_id", rid), zap.String("schedule_id", sch.ID), zap.Error(err))
		return Report{}, err
	}

	report := v.(Report)
	s.logger.Info("planilla built",
		zap.String("request_id", rid),
		zap.String("schedule_id", sch.ID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("rows", len(report.Rows)),
	)
	return report, nil
}

func (s *service) Export(ctx context.Context, scheduleID string, q Query, format string) (File, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatPDF {
		return File{}, planillaerrors.ErrUnsupportedFormat
	}

	report, err := s.Get(ctx, scheduleID, q)
	if err != nil {
		return File{}, err
	}

	return Render(report, format)
}

// Render encodes a report as csv or pdf.
func Render(r Report, format string) (File, error) {
	switch format {
	case FormatCSV:
		body, err := CSV(r)
		if err != nil {
			return File{}, err
		}
		return File{
			Filename:    Filename(r.ScheduleName, r.Month, r.Year, FormatCSV),
			ContentType: "text/csv; charset=utf-8",
			Body:        body,
		}, nil
	case FormatPDF:
		body, err := PDF(r)
		if err != nil {
			return File{}, err
		}
		return File{
			Filename:    Filename(r.ScheduleName, r.Month, r.Year, FormatPDF),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	}
	return File{}, planillaerrors.ErrUnsupportedFormat
}
