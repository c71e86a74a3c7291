package models

// MaxLeadersPerCategory is how many ranked teams a category keeps
const MaxLeadersPerCategory = 5

// TeamLeadersResponse is the payload returned by the ESPN teamleaders endpoint
type TeamLeadersResponse struct {
	TeamLeaders TeamLeadersBlock `json:"teamLeaders"`
}

type TeamLeadersBlock struct {
	Categories []RawCategory `json:"categories" validate:"required,min=1,dive"`
}

// RawCategory is a statistical category as ESPN returns it
type RawCategory struct {
	Name        string      `json:"name" validate:"required"`
	DisplayName string      `json:"displayName"`
	Leaders     []RawLeader `json:"leaders" validate:"required,dive"`
}

type RawLeader struct {
	Value FlexFloat `json:"value"`
	Team  *RawTeam  `json:"team" validate:"required"`
}

type RawTeam struct {
	DisplayName string `json:"displayName"`
	Nickname    string `json:"nickname"`
}

// Category is a named metric with its top ranked teams, in upstream order
type Category struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Leaders     []TeamLeader `json:"leaders"`
}

// TeamLeader is a single team's entry within a category
type TeamLeader struct {
	Name  string  `json:"name"`  // team display name, used as row label
	Value float64 `json:"value"`
	Team  string  `json:"team"` // nickname, used as color key
}

// LeadersResponse is served by GET /api/leaders
type LeadersResponse struct {
	Categories []Category `json:"categories"`
	Selected   string     `json:"selected"`
}
