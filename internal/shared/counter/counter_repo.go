package counter

import (
	"context"

	"gorm.io/gorm"
)

// Repository hands out monotonically increasing serials per counter type
// (e.g. "login_id:2026" for the login IDs of employees hired in 2026).
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Raw SQL for an atomic upsert-and-increment; two concurrent hires in
	// the same year must never share a serial.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO hr_counters (counter_type, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = hr_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
