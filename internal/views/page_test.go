package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/gridironlab/nfl-leaders/internal/logic"
	"github.com/gridironlab/nfl-leaders/internal/models"
)

func renderPage(t *testing.T, data *LeadersData) *goquery.Document {
	t.Helper()
	body := LeadersError()
	if data != nil {
		body = LeadersChart(*data)
	}

	var buf bytes.Buffer
	if err := Page(DefaultMeta("https://leaders.example"), body).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func sampleData(t *testing.T, selected string) *LeadersData {
	t.Helper()
	colors, err := logic.DefaultColorTable()
	if err != nil {
		t.Fatal(err)
	}
	categories := []models.Category{
		{Name: "passingYards", DisplayName: "Passing Yards", Leaders: []models.TeamLeader{
			{Name: "Kansas City Chiefs", Value: 4839, Team: "Chiefs"},
			{Name: "Buffalo Bills", Value: 4512, Team: "Bills"},
		}},
		{Name: "rushingYards", DisplayName: "Rushing & Receiving", Leaders: []models.TeamLeader{
			{Name: "Baltimore Ravens", Value: 2101, Team: "Ravens"},
		}},
	}

	data := &LeadersData{Selected: logic.SelectCategory(categories, selected)}
	for _, c := range categories {
		data.Charts = append(data.Charts, CategoryChart{
			Category: c,
			Chart:    logic.BuildChart(c, colors, logic.DefaultChartLayout),
		})
	}
	return data
}

func TestPage_Metadata(t *testing.T) {
	doc := renderPage(t, sampleData(t, ""))

	if got := doc.Find("head title").Text(); got != "NFL Team Leaders | Statistical Analysis" {
		t.Errorf("title = %q", got)
	}
	checks := map[string]string{
		`meta[name="description"]`:        pageDescription,
		`meta[property="og:type"]`:        "website",
		`meta[property="og:url"]`:         "https://leaders.example/nfl-team-leaders",
		`meta[property="og:image"]`:       "https://leaders.example/images/nfl-team-leaders-og.jpg",
		`meta[property="og:image:width"]`: "1200",
		`meta[name="twitter:card"]`:       "summary_large_image",
		`meta[name="twitter:image"]`:      "https://leaders.example/images/nfl-team-leaders-twitter.jpg",
	}
	for sel, want := range checks {
		if got, _ := doc.Find(sel).Attr("content"); got != want {
			t.Errorf("%s content = %q, want %q", sel, got, want)
		}
	}
	if got := doc.Find("h1").Text(); got != "NFL Team Leaders" {
		t.Errorf("h1 = %q", got)
	}
}

func TestLeadersChart_Selector(t *testing.T) {
	doc := renderPage(t, sampleData(t, ""))

	options := doc.Find("#category-select option")
	if options.Length() != 2 {
		t.Fatalf("options = %d, want 2", options.Length())
	}
	selected := doc.Find("#category-select option[selected]")
	if v, _ := selected.Attr("value"); v != "passingYards" {
		t.Errorf("selected = %q, want passingYards", v)
	}
	if got := selected.Text(); got != "Passing Yards" {
		t.Errorf("selected label = %q", got)
	}
	if got := options.Eq(1).Text(); got != "Rushing & Receiving" {
		t.Errorf("escaped label round trip = %q", got)
	}
}

func TestLeadersChart_OnlySelectedVisible(t *testing.T) {
	doc := renderPage(t, sampleData(t, "rushingYards"))

	charts := doc.Find("[data-category]")
	if charts.Length() != 2 {
		t.Fatalf("charts = %d, want 2", charts.Length())
	}
	visible := charts.Not("[hidden]")
	if visible.Length() != 1 {
		t.Fatalf("visible charts = %d, want 1", visible.Length())
	}
	if v, _ := visible.Attr("data-category"); v != "rushingYards" {
		t.Errorf("visible = %q, want rushingYards", v)
	}

	bars := visible.Find("rect.bar")
	if bars.Length() != 1 {
		t.Errorf("bars = %d, want 1", bars.Length())
	}
	if fill, _ := bars.Attr("fill"); fill != "#241773" {
		t.Errorf("Ravens fill = %s", fill)
	}
}

func TestLeadersChart_ExampleScenario(t *testing.T) {
	doc := renderPage(t, sampleData(t, ""))

	chart := doc.Find(`[data-category="passingYards"]`)
	bars := chart.Find("rect.bar")
	if bars.Length() != 2 {
		t.Fatalf("bars = %d, want 2", bars.Length())
	}
	first := bars.First()
	if fill, _ := first.Attr("fill"); fill != "#E31837" {
		t.Errorf("Chiefs fill = %s, want #E31837", fill)
	}
	if got := first.Find("title").Text(); got != "4839" {
		t.Errorf("tooltip = %q, want 4839", got)
	}
	if !strings.Contains(chart.Find(".y-axis").Text(), "Kansas City Chiefs") {
		t.Error("missing row label")
	}
	if doc.Find(".status-error").Length() != 0 {
		t.Error("ready page shows error")
	}
}

func TestLeadersError(t *testing.T) {
	doc := renderPage(t, nil)

	if got := doc.Find(".status-error").Text(); got != ErrorMessage {
		t.Errorf("error text = %q", got)
	}
	if doc.Find("#category-select").Length() != 0 || doc.Find("svg").Length() != 0 {
		t.Error("error page must not render the chart")
	}
}

func TestPage_SelectorScript(t *testing.T) {
	doc := renderPage(t, sampleData(t, ""))

	script := doc.Find("body script").Text()
	for _, want := range []string{`getElementById("category-select")`, `[data-category]`, `el.hidden`} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
	if doc.Find("head style").Length() != 1 {
		t.Error("expected one inline stylesheet")
	}
}

func TestPage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Page(DefaultMeta("https://leaders.example"), LeadersError()).Render(ctx, &buf)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes after cancellation", buf.Len())
	}
}
