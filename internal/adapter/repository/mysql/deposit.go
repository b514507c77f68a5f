package mysql

import (
	"context"

	depositDomain "bundle-backend/internal/domain/deposit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepositRepository struct{ db *gorm.DB }

func NewDepositRepository(db *gorm.DB) *DepositRepository { return &DepositRepository{db: db} }

func (r *DepositRepository) Create(ctx context.Context, c *depositDomain.Capture) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DepositRepository) Save(ctx context.Context, c *depositDomain.Capture) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *DepositRepository) GetByOrderID(ctx context.Context, orderID string) (*depositDomain.Capture, error) {
	var out depositDomain.Capture
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&out)
	return &out, res.Error
}

func (r *DepositRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*depositDomain.Capture, error) {
	var out depositDomain.Capture
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ?", orderID).
		First(&out)
	return &out, res.Error
}

func (r *DepositRepository) ListUnreconciled(ctx context.Context) ([]depositDomain.Capture, error) {
	var out []depositDomain.Capture
	res := r.db.WithContext(ctx).
		Where("status = ?", depositDomain.StatusCaptured).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
