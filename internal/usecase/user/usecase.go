package user

import (
	"context"
	"errors"
	"strings"

	"bundle-backend/internal/domain/user"
	"bundle-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Region  string `json:"region"`
	Gender  string `json:"gender"`
}

// Register creates a profile for a freshly authenticated identity. Balance
// and risk score start at zero; identity itself (credentials, OAuth) lives
// with the external auth provider.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, errors.New("invalid email address")
	}
	if in.Country == "" || in.Region == "" {
		return nil, errors.New("country and region are required")
	}
	g := user.Gender(in.Gender)
	if in.Gender == "" {
		g = user.GenderUndisclosed
	} else if !user.ValidGender(g) {
		return nil, errors.New("invalid gender")
	}

	rec := &user.User{
		UserID:  id.NewID32(),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Country: in.Country,
		Region:  in.Region,
		Gender:  g,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*user.User, error) {
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

type UpdateInput struct {
	Name      *string  `json:"name,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	RiskScore *float64 `json:"risk_score,omitempty"`
}

// Update edits the mutable profile fields. Country and region are fixed at
// sign-up; balance only moves through transactions.
func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput) (*user.User, error) {
	rec, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, errors.New("name is required")
		}
		rec.Name = strings.TrimSpace(*in.Name)
	}
	if in.Gender != nil {
		if !user.ValidGender(user.Gender(*in.Gender)) {
			return nil, errors.New("invalid gender")
		}
		rec.Gender = user.Gender(*in.Gender)
	}
	if in.RiskScore != nil {
		if *in.RiskScore < 0 || *in.RiskScore > 100 {
			return nil, errors.New("risk score must be within 0-100")
		}
		rec.RiskScore = *in.RiskScore
	}
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

type PictureInput struct {
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SetPicture stores the object-storage URL and dimensions; the upload
// itself happens against the storage service directly.
func (u *Usecase) SetPicture(ctx context.Context, userID string, in PictureInput) (*user.User, error) {
	if in.URI == "" {
		return nil, errors.New("picture uri is required")
	}
	if in.Width <= 0 || in.Height <= 0 {
		return nil, errors.New("picture dimensions must be positive")
	}
	rec, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.ProfilePictureURI = in.URI
	rec.ProfilePictureWidth = in.Width
	rec.ProfilePictureHeight = in.Height
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
