package worktime

import (
	"context"
	"database/sql"

	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=worktime_repo.go -destination=mock/worktime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, cfg *Config) error
	FindAllBySede(ctx context.Context, sedeName string) ([]Config, error)
	Find(ctx context.Context, sedeName string, year int) (*Config, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

// Upsert inserts cfg or overwrites the hours of the existing (sede, year) row.
func (r *repository) Upsert(ctx context.Context, cfg *Config) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sede"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_time_monthly_hours",
				"part_time_monthly_hours",
				"updated_at",
			}),
		}).
		Create(cfg).Error
}

func (r *repository) FindAllBySede(ctx context.Context, sedeName string) ([]Config, error) {
	var cfgs []Config
	err := r.conn(ctx).
		Scopes(sede.Scope(sedeName)).
		Order("year DESC").
		Find(&cfgs).Error
	return cfgs, err
}

func (r *repository) Find(ctx context.Context, sedeName string, year int) (*Config, error) {
	var cfg Config
	err := r.conn(ctx).
		Scopes(sede.Scope(sedeName)).
		Where("year = ?", year).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
