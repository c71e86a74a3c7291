package handlers

import (
	"go.uber.org/zap"

	"github.com/gridironlab/nfl-leaders/internal/logic"
	"github.com/gridironlab/nfl-leaders/internal/views"
)

type Config struct {
	Leaders logic.LeadersService
	Colors  logic.ColorResolver
	Layout  logic.ChartLayout
	Meta    views.PageMeta
	Logger  *zap.Logger
}

type Handler struct {
	leaders logic.LeadersService
	colors  logic.ColorResolver
	layout  logic.ChartLayout
	meta    views.PageMeta
	logger  *zap.SugaredLogger
}

func New(cfg Config) *Handler {
	if cfg.Layout == (logic.ChartLayout{}) {
		cfg.Layout = logic.DefaultChartLayout
	}
	return &Handler{
		leaders: cfg.Leaders,
		colors:  cfg.Colors,
		layout:  cfg.Layout,
		meta:    cfg.Meta,
		logger:  cfg.Logger.Sugar(),
	}
}
