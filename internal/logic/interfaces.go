package logic

import (
	"context"
	"net/http"

	"github.com/gridironlab/nfl-leaders/internal/models"
)

// HTTPDoer is the subset of *http.Client used to reach the upstream API
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// LeadersService loads team leader categories from the upstream API
type LeadersService interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

// ColorResolver maps a team nickname to a bar fill color
type ColorResolver interface {
	Resolve(team string) string
}
