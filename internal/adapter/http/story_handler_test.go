package http

import (
	"context"
	stdhttp "net/http"
	"strings"
	"testing"

	loanDomain "bundle-backend/internal/domain/loan"
	storyDomain "bundle-backend/internal/domain/story"
	"bundle-backend/internal/testutil/loanmock"
	"bundle-backend/internal/testutil/storymock"
	uc "bundle-backend/internal/usecase/story"
)

func storyHandlerWith(repo *storymock.Repo, l *loanDomain.Loan) *StoryHandler {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			if l == nil || loanID != l.LoanID {
				return nil, loanDomain.ErrNotFound
			}
			return l, nil
		},
	}
	return NewStoryHandler(uc.NewUsecase(repo, loans))
}

func TestShareStory_Success(t *testing.T) {
	e := newEchoWithValidator()
	l := &loanDomain.Loan{
		LoanID:       strings.Repeat("a", 32),
		Purpose:      loanDomain.PurposeEducation,
		LoanedAmount: 750,
		Currency:     loanDomain.CurrencyUSD,
	}
	e.POST("/stories", storyHandlerWith(&storymock.Repo{}, l).Share)

	rec := serve(e, stdhttp.MethodPost, "/stories", mustJSON(map[string]any{
		"user_id": strings.Repeat("b", 32),
		"loan_id": l.LoanID,
		"title":   "Funded",
	}))
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"purpose":"education"`) {
		t.Errorf("loan fields not denormalized: %s", rec.Body.String())
	}
}

func TestShareStory_UnknownLoanIs404(t *testing.T) {
	e := newEchoWithValidator()
	e.POST("/stories", storyHandlerWith(&storymock.Repo{}, nil).Share)

	rec := serve(e, stdhttp.MethodPost, "/stories", mustJSON(map[string]any{
		"user_id": strings.Repeat("b", 32),
		"loan_id": strings.Repeat("a", 32),
		"title":   "Funded",
	}))
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLikeStory(t *testing.T) {
	e := newEchoWithValidator()
	stored := &storyDomain.Story{StoryID: strings.Repeat("5", 32), Likes: 1, Status: storyDomain.StatusActive}
	repo := &storymock.Repo{
		GetByStoryIDFn: func(ctx context.Context, storyID string) (*storyDomain.Story, error) {
			return stored, nil
		},
	}
	e.POST("/stories/:story_id/like", storyHandlerWith(repo, nil).Like)

	rec := serve(e, stdhttp.MethodPost, "/stories/"+stored.StoryID+"/like", nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"likes":2`) {
		t.Errorf("likes not incremented: %s", rec.Body.String())
	}
}
