package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/fitness"
	"fitnessCheckAPI/middleware"
)

// FitnessProvider reads daily aggregates from the external tracker. Every
// method fails soft: on missing permission or any API error it returns a
// zero value, never an error. The domain predicates rely on this, so a
// failed sync just reads as "nothing recorded".
type FitnessProvider interface {
	GetSteps(ctx context.Context, date time.Time) int
	GetCalories(ctx context.Context, date time.Time) float64
	GetDistance(ctx context.Context, date time.Time) float64
}

// TrackerClient is the HTTP implementation of FitnessProvider against the
// tracker vendor's aggregate API.
type TrackerClient struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

func NewTrackerClient(baseURL, accessToken string) *TrackerClient {
	return &TrackerClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TrackerClient) hasPermissions() bool {
	return c.baseURL != "" && c.accessToken != ""
}

type aggregateResponse struct {
	Steps    int     `json:"steps"`
	Calories float64 `json:"calories"`
	Distance float64 `json:"distance_meters"`
}

// readAggregate fetches one day's bucket. Zero response on any failure.
func (c *TrackerClient) readAggregate(ctx context.Context, date time.Time) aggregateResponse {
	var zero aggregateResponse

	if !c.hasPermissions() {
		log.Println("Tracker sync: no API credentials configured, returning zero values")
		middleware.RecordSyncFailure()
		return zero
	}

	url := fmt.Sprintf("%s/v1/aggregates/daily?date=%s", c.baseURL, date.Format("2006-01-02"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("Tracker sync: failed to build request: %v", err)
		middleware.RecordSyncFailure()
		return zero
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Tracker sync: request failed: %v", err)
		middleware.RecordSyncFailure()
		return zero
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Tracker sync: unexpected status %d", resp.StatusCode)
		middleware.RecordSyncFailure()
		return zero
	}

	var agg aggregateResponse
	if err := json.NewDecoder(resp.Body).Decode(&agg); err != nil {
		log.Printf("Tracker sync: failed to decode response: %v", err)
		middleware.RecordSyncFailure()
		return zero
	}

	return agg
}

func (c *TrackerClient) GetSteps(ctx context.Context, date time.Time) int {
	return c.readAggregate(ctx, date).Steps
}

func (c *TrackerClient) GetCalories(ctx context.Context, date time.Time) float64 {
	return c.readAggregate(ctx, date).Calories
}

func (c *TrackerClient) GetDistance(ctx context.Context, date time.Time) float64 {
	return c.readAggregate(ctx, date).Distance
}

// SyncResult is the sync response shape: the raw aggregates plus the unit
// conversions the app renders next to them.
type SyncResult struct {
	fitness.Data
	DistanceKm    float64 `json:"distance_km"`
	DistanceMiles float64 `json:"distance_miles"`
}

type FitnessSyncService struct {
	db       *pgxpool.Pool
	provider FitnessProvider
}

func NewFitnessSyncService(db *pgxpool.Pool, provider FitnessProvider) *FitnessSyncService {
	return &FitnessSyncService{db: db, provider: provider}
}

// SyncDate pulls a day's aggregates from the tracker and upserts them into
// daily_tracking. The provider never errors, so the only failure path here
// is the local write. Steps are merged with GREATEST so a zero or low read
// never lowers a manually logged value.
func (s *FitnessSyncService) SyncDate(ctx context.Context, date time.Time) (*SyncResult, error) {
	data := fitness.Data{
		Date:         date,
		Steps:        s.provider.GetSteps(ctx, date),
		Calories:     s.provider.GetCalories(ctx, date),
		Distance:     s.provider.GetDistance(ctx, date),
		LastSyncTime: time.Now(),
	}

	query := `
	INSERT INTO daily_tracking (date, steps, calories, distance_meters, logged_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (date)
	DO UPDATE SET
		steps = GREATEST(daily_tracking.steps, $2),
		calories = $3,
		distance_meters = $4,
		logged_at = NOW()
	`

	_, err := s.db.Exec(ctx, query, date, data.Steps, data.Calories, data.Distance)
	if err != nil {
		return nil, fmt.Errorf("failed to store synced data: %w", err)
	}

	log.Printf("Tracker sync: %s steps=%d calories=%.0f distance=%.0fm", date.Format("2006-01-02"), data.Steps, data.Calories, data.Distance)

	return &SyncResult{
		Data:          data,
		DistanceKm:    data.DistanceKm(),
		DistanceMiles: data.DistanceMiles(),
	}, nil
}
