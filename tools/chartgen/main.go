package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gridironlab/nfl-leaders/internal/config"
	"github.com/gridironlab/nfl-leaders/internal/logic"
	"github.com/gridironlab/nfl-leaders/internal/models"
)

// chartgen fetches team leaders once and writes one SVG per category
func main() {
	outDir := flag.String("out", "web/static/img", "directory for generated charts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	colors, err := logic.LoadColorTable(cfg.TeamColorsFile)
	if err != nil {
		log.Fatal(err)
	}

	svc := logic.NewLeadersService(logic.LeadersConfig{
		URL:     cfg.UpstreamURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  zap.NewNop(),
	})

	fmt.Println("Fetching team leaders...")
	categories, err := svc.FetchCategories(context.Background())
	if err != nil {
		log.Fatalf("Failed to fetch team leaders: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}
	for _, c := range categories {
		saveChart(*outDir, c, colors)
	}
}

func saveChart(dir string, c models.Category, colors *logic.ColorTable) {
	svg := logic.RenderSVG(logic.BuildChart(c, colors, logic.DefaultChartLayout))
	path := filepath.Join(dir, filepath.Base(c.Name)+".svg")

	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Chart generated: %s (%d bars)\n", path, len(c.Leaders))
}
