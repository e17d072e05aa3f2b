package movie

import (
	"context"
	"strings"
)

type Service interface {
	Recommend(ctx context.Context, username string) ([]Movie, error)
}

// Repository is the port to the remote recommendation service.
type Repository interface {
	Recommend(ctx context.Context, username string) ([]Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// Recommend returns the movies in the order the service produced them.
func (uc *Usecase) Recommend(ctx context.Context, username string) ([]Movie, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrInvalidUsername
	}
	return uc.r.Recommend(ctx, username)
}
