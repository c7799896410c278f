package schedule

import (
	"context"
	"database/sql"

	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Schedule) error
	FindAllBySede(ctx context.Context, sedeName string) ([]Schedule, error)
	FindByID(ctx context.Context, id string) (*Schedule, error)
	Update(ctx context.Context, s *Schedule) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, s *Schedule) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindAllBySede(ctx context.Context, sedeName string) ([]Schedule, error) {
	var schedules []Schedule
	err := r.conn(ctx).
		Scopes(sede.Scope(sedeName)).
		Order("year DESC, month DESC, created_at DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var s Schedule
	if err := r.conn(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Schedule) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Schedule{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
