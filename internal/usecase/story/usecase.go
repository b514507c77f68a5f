package story

import (
	"context"
	"errors"
	"strings"

	loanDomain "bundle-backend/internal/domain/loan"
	"bundle-backend/internal/domain/story"
	"bundle-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo  story.Repository
	loans loanDomain.Repository
}

func NewUsecase(r story.Repository, loans loanDomain.Repository) *Usecase {
	return &Usecase{repo: r, loans: loans}
}

type ShareInput struct {
	UserID      string `json:"user_id"`
	LoanID      string `json:"loan_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Share publishes a story about a loan. Purpose, amount and currency are
// denormalized from the loan so the feed renders without joins.
func (u *Usecase) Share(ctx context.Context, in ShareInput) (*story.Story, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}
	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	s := &story.Story{
		StoryID:     id.NewID32(),
		UserID:      in.UserID,
		LoanID:      l.LoanID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Purpose:     string(l.Purpose),
		Amount:      l.LoanedAmount,
		Currency:    string(l.Currency),
		Status:      story.StatusActive,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) Feed(ctx context.Context) ([]story.Story, error) {
	return u.repo.ListActive(ctx)
}

func (u *Usecase) Like(ctx context.Context, storyID string) (*story.Story, error) {
	s, err := u.repo.GetByStoryID(ctx, storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, story.ErrNotFound
		}
		return nil, err
	}
	s.Likes++
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
