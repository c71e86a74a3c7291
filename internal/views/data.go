//go:generate templ generate

package views

import "github.com/gridironlab/nfl-leaders/internal/models"

// ErrorMessage is the only failure text users ever see
const ErrorMessage = "Error fetching data. Please try again later."

// CategoryChart pairs a category with its resolved chart
type CategoryChart struct {
	Category models.Category
	Chart    models.Chart
}

// LeadersData is everything the ready state needs
type LeadersData struct {
	Charts   []CategoryChart
	Selected string
}
