package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"journey-report-service/internal/model"
)

const journeyTable = "analytics_journey_report"

type JourneyRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewJourneyRepository(db *gorm.DB, loc *time.Location) *JourneyRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &JourneyRepository{db: db, loc: loc}
}

type journeyRow struct {
	Registration      string
	CreatedAt         time.Time
	IgnitionStartTime *time.Time
	IgnitionEndTime   *time.Time
	DrivingDuration   *float64
	StopDuration      *float64
	DistanceTravelled *float64
	OdoStartReading   *string
	OdoEndReading     *string
	StartLocation     *string
	EndLocation       *string
	Name              *string
}

// FetchJourneys returns completed journeys created within rng, newest first.
func (r *JourneyRepository) FetchJourneys(ctx context.Context, rng model.DateRange) ([]model.JourneyRecord, error) {
	var rows []journeyRow

	err := r.db.WithContext(ctx).
		Table(journeyTable).
		Select(`registration,
			created_at,
			ignition_start_time,
			ignition_end_time,
			driving_duration::float8 AS driving_duration,
			stop_duration::float8 AS stop_duration,
			distance_travelled::float8 AS distance_travelled,
			odo_start_reading::text AS odo_start_reading,
			odo_end_reading::text AS odo_end_reading,
			start_location,
			end_location,
			name`).
		Where("created_at::date BETWEEN ? AND ?", rng.StartLabel(), rng.EndLabel()).
		Where("ignition_end_time IS NOT NULL").
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]model.JourneyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord(r.loc))
	}
	return records, nil
}

// toRecord expects timestamptz columns; naive timestamps arrive as UTC and
// are shifted by any non-UTC loc.
func (row journeyRow) toRecord(loc *time.Location) model.JourneyRecord {
	return model.JourneyRecord{
		Registration:      row.Registration,
		CreatedAt:         row.CreatedAt.In(loc),
		IgnitionStartTime: inLocation(row.IgnitionStartTime, loc),
		IgnitionEndTime:   inLocation(row.IgnitionEndTime, loc),
		DrivingDuration:   row.DrivingDuration,
		StopDuration:      row.StopDuration,
		DistanceTravelled: row.DistanceTravelled,
		OdoStartReading:   row.OdoStartReading,
		OdoEndReading:     row.OdoEndReading,
		StartLocation:     stringValue(row.StartLocation),
		EndLocation:       stringValue(row.EndLocation),
		Name:              stringValue(row.Name),
	}
}

func inLocation(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	local := t.In(loc)
	return &local
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
