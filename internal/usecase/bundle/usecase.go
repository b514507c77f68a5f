package bundle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bundle-backend/internal/domain/bundle"
	"bundle-backend/internal/domain/loan"
	"bundle-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo  bundle.Repository
	loans loan.Repository
}

func NewUsecase(r bundle.Repository, loans loan.Repository) *Usecase {
	return &Usecase{repo: r, loans: loans}
}

type CreateInput struct {
	LoanIDs     []string  `json:"loan_ids"`
	M           float64   `json:"m"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	EndDate     time.Time `json:"end_date"`
}

type UpdateInput struct {
	LoanIDs     []string `json:"loan_ids,omitempty"`
	M           *float64 `json:"m,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type BundleDTO struct {
	BundleID    string    `json:"bundle_id"`
	SeqID       uint64    `json:"seq_id"`
	LoanIDs     []string  `json:"loan_ids"`
	M           float64   `json:"m"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Active      bool      `json:"active"`
	IRate       float64   `json:"i_rate"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(b *bundle.Bundle) *BundleDTO {
	return &BundleDTO{
		BundleID:    b.BundleID,
		SeqID:       b.SeqID,
		LoanIDs:     b.LoanIDs,
		M:           b.M,
		Name:        b.Name,
		Description: b.Description,
		Value:       b.Value,
		Active:      b.Active,
		IRate:       b.IRate,
		EndDate:     b.EndDate,
		CreatedAt:   b.CreatedAt,
	}
}

// rateFor recomputes the bundle's rate from its members' current default
// rates. Every member must exist.
func (u *Usecase) rateFor(ctx context.Context, loanIDs []string, m float64) (float64, error) {
	if len(loanIDs) == 0 {
		return 0, bundle.ErrEmptyLoanSet
	}
	ls, err := u.loans.ListByLoanIDs(ctx, loanIDs)
	if err != nil {
		return 0, err
	}
	if len(ls) != len(loanIDs) {
		return 0, fmt.Errorf("%w: %d of %d resolved", bundle.ErrMissingLoan, len(ls), len(loanIDs))
	}
	rates := make([]float64, 0, len(ls))
	for i := range ls {
		rates = append(rates, ls[i].DefaultRate)
	}
	return bundle.ComputeInterestRate(rates, m)
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*BundleDTO, error) {
	if in.M <= 0 {
		return nil, bundle.ErrInvalidMargin
	}
	if in.Value <= 0 {
		return nil, errors.New("bundle value must be greater than zero")
	}
	if in.Name == "" {
		return nil, errors.New("bundle name is required")
	}

	rate, err := u.rateFor(ctx, in.LoanIDs, in.M)
	if err != nil {
		return nil, err
	}
	seq, err := u.repo.NextSeqID(ctx)
	if err != nil {
		return nil, err
	}

	b := &bundle.Bundle{
		BundleID:    id.NewID32(),
		SeqID:       seq,
		LoanIDs:     in.LoanIDs,
		M:           in.M,
		Name:        in.Name,
		Description: in.Description,
		Value:       in.Value,
		Active:      true,
		IRate:       rate,
		EndDate:     in.EndDate,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Get recomputes the rate on read; the stored snapshot is never trusted.
func (u *Usecase) Get(ctx context.Context, bundleID string) (*BundleDTO, error) {
	b, err := u.repo.GetByBundleID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bundle.ErrNotFound
		}
		return nil, err
	}
	rate, err := u.rateFor(ctx, b.LoanIDs, b.M)
	if err != nil {
		return nil, err
	}
	b.IRate = rate
	return toDTO(b), nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]BundleDTO, error) {
	bs, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return u.withFreshRates(ctx, bs)
}

func (u *Usecase) ListByLoanID(ctx context.Context, loanID string) ([]BundleDTO, error) {
	bs, err := u.repo.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return u.withFreshRates(ctx, bs)
}

func (u *Usecase) withFreshRates(ctx context.Context, bs []bundle.Bundle) ([]BundleDTO, error) {
	out := make([]BundleDTO, 0, len(bs))
	for i := range bs {
		rate, err := u.rateFor(ctx, bs[i].LoanIDs, bs[i].M)
		if err != nil {
			return nil, err
		}
		bs[i].IRate = rate
		out = append(out, *toDTO(&bs[i]))
	}
	return out, nil
}

// Update applies the patch and recomputes the rate whenever the loan set or
// M changed, persisting the fresh snapshot.
func (u *Usecase) Update(ctx context.Context, bundleID string, in UpdateInput) (*BundleDTO, error) {
	b, err := u.repo.GetByBundleID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bundle.ErrNotFound
		}
		return nil, err
	}

	repriced := false
	if in.LoanIDs != nil {
		b.LoanIDs = in.LoanIDs
		repriced = true
	}
	if in.M != nil {
		if *in.M <= 0 {
			return nil, bundle.ErrInvalidMargin
		}
		b.M = *in.M
		repriced = true
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Active != nil {
		b.Active = *in.Active
	}

	if repriced {
		rate, err := u.rateFor(ctx, b.LoanIDs, b.M)
		if err != nil {
			return nil, err
		}
		b.IRate = rate
	}

	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Delete removes the bundle only; member loans are untouched.
func (u *Usecase) Delete(ctx context.Context, bundleID string) error {
	err := u.repo.Delete(ctx, bundleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bundle.ErrNotFound
	}
	return err
}
