package activity

import (
	"context"
	"errors"
	"sort"
	"time"

	"bundle-backend/internal/domain/activity"
	"bundle-backend/pkg/id"
)

type Usecase struct{ repo activity.Repository }

func NewUsecase(r activity.Repository) *Usecase { return &Usecase{repo: r} }

type RecordInput struct {
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
	ReferenceID string  `json:"reference_id,omitempty"`
}

// Record appends one financial event; activities are never mutated after.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*activity.Activity, error) {
	if in.UserID == "" {
		return nil, errors.New("user_id is required")
	}
	if !activity.ValidType(activity.Type(in.Type)) {
		return nil, errors.New("invalid activity type")
	}
	if !activity.ValidStatus(activity.Status(in.Status)) {
		return nil, errors.New("invalid activity status")
	}
	a := &activity.Activity{
		ActivityID:  id.NewID32(),
		UserID:      in.UserID,
		Type:        activity.Type(in.Type),
		Amount:      in.Amount,
		Date:        time.Now().UTC(),
		Status:      activity.Status(in.Status),
		Description: in.Description,
		ReferenceID: in.ReferenceID,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

const DefaultRecentLimit = 10

// Recent returns the newest activities for a user. The store gives no
// ordering guarantee (the composite index may not exist), so sorting
// happens here: date descending.
func (u *Usecase) Recent(ctx context.Context, userID string, limit int) ([]activity.Activity, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	as, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(as, func(i, j int) bool { return as[i].Date.After(as[j].Date) })
	if len(as) > limit {
		as = as[:limit]
	}
	return as, nil
}
