package handlers

import (
	"context"
	"sync"

	"github.com/gridironlab/nfl-leaders/internal/models"
)

// MockLeadersService counts fetches so tests can assert the single-fetch rule
type MockLeadersService struct {
	FetchCategoriesFunc func(ctx context.Context) ([]models.Category, error)

	mu    sync.Mutex
	calls int
}

func (m *MockLeadersService) FetchCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.FetchCategoriesFunc != nil {
		return m.FetchCategoriesFunc(ctx)
	}
	return sampleCategories(), nil
}

func (m *MockLeadersService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func sampleCategories() []models.Category {
	return []models.Category{
		{
			Name:        "passingYards",
			DisplayName: "Passing Yards",
			Leaders: []models.TeamLeader{
				{Name: "Kansas City Chiefs", Value: 4839, Team: "Chiefs"},
				{Name: "Buffalo Bills", Value: 4512, Team: "Bills"},
				{Name: "Detroit Lions", Value: 4400, Team: "Lions"},
				{Name: "Miami Dolphins", Value: 4210, Team: "Dolphins"},
				{Name: "Expansion Club", Value: 4105, Team: "Expansion"},
			},
		},
		{
			Name:        "rushingYards",
			DisplayName: "Rushing Yards",
			Leaders: []models.TeamLeader{
				{Name: "Baltimore Ravens", Value: 2101, Team: "Ravens"},
				{Name: "Philadelphia Eagles", Value: 2005, Team: "Eagles"},
			},
		},
		{
			Name:        "sacks",
			DisplayName: "Sacks",
			Leaders:     []models.TeamLeader{},
		},
	}
}
