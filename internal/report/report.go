package report

import (
	"fmt"

	"journey-report-service/internal/model"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Summary     Summary
}

type Summary struct {
	Range    model.DateRange `json:"range"`
	Journeys int             `json:"journeys"`
	Months   []MonthSummary  `json:"months"`
}

type MonthSummary struct {
	Label    string `json:"label"`
	Vehicles int    `json:"vehicles"`
	Days     int    `json:"days"`
	Journeys int    `json:"journeys"`
	Totals   Totals `json:"totals"`
}

func Filename(rng model.DateRange) string {
	return fmt.Sprintf("journey_report_%s_%s.xlsx", rng.StartLabel(), rng.EndLabel())
}

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders one worksheet per month present in records after filtering
// to rng. It returns ErrNoData instead of an empty workbook.
func (b *Builder) Build(records []model.JourneyRecord, rng model.DateRange) (*Artifact, error) {
	months, err := Group(records, rng)
	if err != nil {
		return nil, err
	}

	data, err := Render(months)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename:    Filename(rng),
		ContentType: ContentType,
		Data:        data,
		Summary:     Summarize(rng, months),
	}, nil
}

func Render(months []MonthGroup) ([]byte, error) {
	if len(months) == 0 {
		return nil, ErrNoData
	}

	wb, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer wb.close()

	for _, month := range months {
		if err := wb.writeMonth(month); err != nil {
			return nil, err
		}
	}

	data, err := wb.bytes()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return data, nil
}

func Summarize(rng model.DateRange, months []MonthGroup) Summary {
	summary := Summary{Range: rng, Months: make([]MonthSummary, 0, len(months))}
	for _, month := range months {
		ms := MonthSummary{Label: month.Label(), Vehicles: len(month.Vehicles), Totals: month.Totals}
		for _, vehicle := range month.Vehicles {
			ms.Days += len(vehicle.Days)
			for _, day := range vehicle.Days {
				ms.Journeys += len(day.Journeys)
			}
		}
		summary.Journeys += ms.Journeys
		summary.Months = append(summary.Months, ms)
	}
	return summary
}
