package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/gridironlab/nfl-leaders/internal/models"
)

// maxPayloadSize bounds how much of the upstream body is read (8MB)
const maxPayloadSize = 8 << 20

var (
	ErrUpstreamStatus = errors.New("upstream returned non-success status")
	ErrDecode         = errors.New("upstream payload could not be decoded")
	ErrNoCategories   = errors.New("upstream payload has no usable categories")
)

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nflleaders_upstream_requests_total",
		Help: "Total number of team leader fetches by result",
	}, []string{"result"})

	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nflleaders_upstream_request_duration_seconds",
		Help:    "Duration of team leader fetches",
		Buckets: prometheus.DefBuckets,
	})
)

// LeadersConfig configures the leaders service
type LeadersConfig struct {
	Client  HTTPDoer
	URL     string
	Timeout time.Duration
	Logger  *zap.Logger
}

type leadersService struct {
	client    HTTPDoer
	url       string
	timeout   time.Duration
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func NewLeadersService(cfg LeadersConfig) LeadersService {
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &leadersService{
		client:    cfg.Client,
		url:       cfg.URL,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}

// FetchCategories issues a single GET to the upstream endpoint and projects
// the payload into categories holding at most five leaders each. The request
// dies with ctx, so a caller that goes away cancels the fetch.
func (s *leadersService) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	fetchID := uuid.NewString()
	start := time.Now()

	categories, err := s.fetch(ctx)
	upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(resultLabel(err)).Inc()
		s.logger.Warnw("Team leaders fetch failed", "fetch_id", fetchID, "url", s.url, "error", err)
		return nil, err
	}

	upstreamRequests.WithLabelValues("success").Inc()
	s.logger.Infow("Team leaders fetched",
		"fetch_id", fetchID,
		"categories", len(categories),
		"duration", time.Since(start),
	)
	return categories, nil
}

func (s *leadersService) fetch(ctx context.Context) ([]models.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var payload models.TeamLeadersResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := s.validator.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCategories, err)
	}

	return ProjectCategories(payload), nil
}

// ProjectCategories flattens the upstream payload, keeping upstream order and
// the first MaxLeadersPerCategory leaders of each category.
func ProjectCategories(payload models.TeamLeadersResponse) []models.Category {
	raw := payload.TeamLeaders.Categories
	categories := make([]models.Category, 0, len(raw))

	for _, rc := range raw {
		n := min(len(rc.Leaders), models.MaxLeadersPerCategory)
		leaders := make([]models.TeamLeader, 0, n)
		for _, rl := range rc.Leaders[:n] {
			if rl.Team == nil {
				continue
			}
			leaders = append(leaders, models.TeamLeader{
				Name:  rl.Team.DisplayName,
				Value: rl.Value.Float64(),
				Team:  rl.Team.Nickname,
			})
		}
		categories = append(categories, models.Category{
			Name:        rc.Name,
			DisplayName: rc.DisplayName,
			Leaders:     leaders,
		})
	}
	return categories
}

// SelectCategory returns requested if it names a loaded category, otherwise
// the first category. It returns "" only when categories is empty.
func SelectCategory(categories []models.Category, requested string) string {
	if len(categories) == 0 {
		return ""
	}
	if requested != "" {
		if _, ok := FindCategory(categories, requested); ok {
			return requested
		}
	}
	return categories[0].Name
}

// FindCategory looks a category up by name
func FindCategory(categories []models.Category, name string) (models.Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return "bad_status"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	case errors.Is(err, ErrNoCategories):
		return "no_categories"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "network_error"
	}
}
