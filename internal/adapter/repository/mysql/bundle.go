package mysql

import (
	"context"
	"errors"

	bundleDomain "bundle-backend/internal/domain/bundle"

	"gorm.io/gorm"
)

type BundleRepository struct{ db *gorm.DB }

func NewBundleRepository(db *gorm.DB) *BundleRepository { return &BundleRepository{db: db} }

func (r *BundleRepository) Create(ctx context.Context, b *bundleDomain.Bundle) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BundleRepository) Save(ctx context.Context, b *bundleDomain.Bundle) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BundleRepository) GetByBundleID(ctx context.Context, bundleID string) (*bundleDomain.Bundle, error) {
	var out bundleDomain.Bundle
	res := r.db.WithContext(ctx).Where("bundle_id = ?", bundleID).First(&out)
	return &out, res.Error
}

func (r *BundleRepository) ListActive(ctx context.Context) ([]bundleDomain.Bundle, error) {
	var out []bundleDomain.Bundle
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// ListByLoanID matches on the serialized member list. The list is stored as
// a JSON array of quoted 32-hex ids, so a substring match on the quoted id
// cannot false-positive.
func (r *BundleRepository) ListByLoanID(ctx context.Context, loanID string) ([]bundleDomain.Bundle, error) {
	var out []bundleDomain.Bundle
	res := r.db.WithContext(ctx).
		Where("loan_ids LIKE ?", `%"`+loanID+`"%`).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// NextSeqID reads max+1. The unique index on seq_id rejects the loser of a
// concurrent create, and soft-deleted rows count so their numbers are never
// re-minted against that index.
func (r *BundleRepository) NextSeqID(ctx context.Context) (uint64, error) {
	var last bundleDomain.Bundle
	res := r.db.WithContext(ctx).Unscoped().Order("seq_id DESC").First(&last)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, res.Error
	}
	return last.SeqID + 1, nil
}

func (r *BundleRepository) Delete(ctx context.Context, bundleID string) error {
	res := r.db.WithContext(ctx).
		Where("bundle_id = ?", bundleID).
		Delete(&bundleDomain.Bundle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
