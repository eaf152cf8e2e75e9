package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitnessCheckAPI/internal/calendar"
	"fitnessCheckAPI/internal/tracking"
)

type TrackingService struct {
	db             *pgxpool.Pool
	profileService *ProfileService
}

func NewTrackingService(db *pgxpool.Pool, profileService *ProfileService) *TrackingService {
	return &TrackingService{db: db, profileService: profileService}
}

// TrackingUpdate carries partial measurement edits for one date. Nil fields
// keep their stored values, so the increment buttons can send one field at
// a time.
type TrackingUpdate struct {
	Steps       *int     `json:"steps,omitempty"`
	WaterLiters *float64 `json:"water_liters,omitempty"`
	SleepHours  *float64 `json:"sleep_hours,omitempty"`
	MoodScore   *float64 `json:"mood_score,omitempty"`
}

// UpsertDaily records measurement values for a date, creating the row if it
// does not exist yet. Logging a mood flips mood_logged for good.
func (s *TrackingService) UpsertDaily(ctx context.Context, date time.Time, update *TrackingUpdate) (*tracking.DailyMeasurement, error) {
	if err := tracking.ValidateUpdate(update.Steps, update.WaterLiters, update.SleepHours, update.MoodScore); err != nil {
		return nil, err
	}

	query := `
	INSERT INTO daily_tracking (date, steps, water_liters, sleep_hours, mood_score, mood_logged, logged_at)
	VALUES ($1, COALESCE($2, 0), COALESCE($3, 0), COALESCE($4, 0), $5, $5 IS NOT NULL, NOW())
	ON CONFLICT (date)
	DO UPDATE SET
		steps = COALESCE($2, daily_tracking.steps),
		water_liters = COALESCE($3, daily_tracking.water_liters),
		sleep_hours = COALESCE($4, daily_tracking.sleep_hours),
		mood_score = COALESCE($5, daily_tracking.mood_score),
		mood_logged = daily_tracking.mood_logged OR $5 IS NOT NULL,
		logged_at = NOW()
	RETURNING date, steps, water_liters, sleep_hours, mood_score, mood_logged
	`

	m := &tracking.DailyMeasurement{}
	err := s.db.QueryRow(ctx, query, date, update.Steps, update.WaterLiters, update.SleepHours, update.MoodScore).Scan(
		&m.Date,
		&m.Steps,
		&m.WaterLiters,
		&m.SleepHours,
		&m.MoodScore,
		&m.MoodLogged,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily tracking: %w", err)
	}

	return m, nil
}

// GetDay returns the measurement for a date, or a zeroed measurement when
// nothing was logged yet.
func (s *TrackingService) GetDay(ctx context.Context, date time.Time) (*tracking.DailyMeasurement, error) {
	query := `
	SELECT date, steps, water_liters, sleep_hours, mood_score, mood_logged
	FROM daily_tracking
	WHERE date = $1
	`

	m := &tracking.DailyMeasurement{}
	err := s.db.QueryRow(ctx, query, date).Scan(
		&m.Date,
		&m.Steps,
		&m.WaterLiters,
		&m.SleepHours,
		&m.MoodScore,
		&m.MoodLogged,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &tracking.DailyMeasurement{Date: date}, nil
		}
		return nil, fmt.Errorf("failed to get daily tracking: %w", err)
	}

	return m, nil
}

// GetDayStatus aggregates a day's measurement against the current goals.
func (s *TrackingService) GetDayStatus(ctx context.Context, date time.Time) (*tracking.DayStatus, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}

	status := tracking.Aggregate(*m, profile.Goals)
	return &status, nil
}

// GetHistoryStatuses aggregates the last N days against the current goals,
// ordered by date ascending. The window is today plus the N-1 days before it.
func (s *TrackingService) GetHistoryStatuses(ctx context.Context, days int) ([]tracking.DayStatus, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT date, steps, water_liters, sleep_hours, mood_score, mood_logged
	FROM daily_tracking
	WHERE date >= CURRENT_DATE - ($1::int - 1)
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking history: %w", err)
	}
	defer rows.Close()

	var statuses []tracking.DayStatus
	for rows.Next() {
		var m tracking.DailyMeasurement
		if err := rows.Scan(&m.Date, &m.Steps, &m.WaterLiters, &m.SleepHours, &m.MoodScore, &m.MoodLogged); err != nil {
			return nil, fmt.Errorf("failed to scan tracking row: %w", err)
		}
		statuses = append(statuses, tracking.Aggregate(m, profile.Goals))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracking rows: %w", err)
	}

	return statuses, nil
}

// GetAllStatuses aggregates every recorded day against the current goals,
// ordered by date ascending.
func (s *TrackingService) GetAllStatuses(ctx context.Context) ([]tracking.DayStatus, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT date, steps, water_liters, sleep_hours, mood_score, mood_logged
	FROM daily_tracking
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking history: %w", err)
	}
	defer rows.Close()

	var statuses []tracking.DayStatus
	for rows.Next() {
		var m tracking.DailyMeasurement
		if err := rows.Scan(&m.Date, &m.Steps, &m.WaterLiters, &m.SleepHours, &m.MoodScore, &m.MoodLogged); err != nil {
			return nil, fmt.Errorf("failed to scan tracking row: %w", err)
		}
		statuses = append(statuses, tracking.Aggregate(m, profile.Goals))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracking rows: %w", err)
	}

	return statuses, nil
}

// GetSummary computes the calendar counters over the last N days.
func (s *TrackingService) GetSummary(ctx context.Context, days int) (*calendar.Summary, error) {
	statuses, err := s.GetHistoryStatuses(ctx, days)
	if err != nil {
		return nil, err
	}

	summary := calendar.Summarize(statuses)
	return &summary, nil
}

// GetCalendar builds the month view for the achievement calendar screen:
// one entry per day of the month, achieved flags filled in from tracking.
func (s *TrackingService) GetCalendar(ctx context.Context, year int, month int) (*calendar.Response, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	query := `
	SELECT date, steps, water_liters, sleep_hours, mood_score, mood_logged
	FROM daily_tracking
	WHERE date >= $1
		AND date <= $2
	ORDER BY date
	`

	rows, err := s.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	defer rows.Close()

	statusMap := make(map[string]tracking.DayStatus)
	var statuses []tracking.DayStatus
	for rows.Next() {
		var m tracking.DailyMeasurement
		if err := rows.Scan(&m.Date, &m.Steps, &m.WaterLiters, &m.SleepHours, &m.MoodScore, &m.MoodLogged); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		status := tracking.Aggregate(m, profile.Goals)
		statusMap[m.Date.Format("2006-01-02")] = status
		statuses = append(statuses, status)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	var days []*calendar.Day
	today := time.Now().Format("2006-01-02")

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		status := statusMap[dateStr]
		day := &calendar.Day{
			Date:          d,
			StepsAchieved: status.StepsAchieved,
			WaterAchieved: status.WaterAchieved,
			SleepAchieved: status.SleepAchieved,
			MoodLogged:    status.MoodLogged,
			PerfectDay:    tracking.IsPerfectDay(status),
			IsToday:       dateStr == today,
		}
		days = append(days, day)
	}

	return &calendar.Response{
		Year:    year,
		Month:   month,
		Days:    days,
		Summary: calendar.Summarize(statuses),
	}, nil
}
