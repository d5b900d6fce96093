package report

import (
	"errors"
	"testing"
	"time"

	"journey-report-service/internal/model"
)

func at(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &t
}

func num(v float64) *float64 {
	return &v
}

func str(v string) *string {
	return &v
}

func journey(reg string, start *time.Time, distance, driving, stopped float64) model.JourneyRecord {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 23, 0, 0, 0, time.UTC)
	if start != nil {
		created = *start
		end = start.Add(30 * time.Minute)
	}
	return model.JourneyRecord{
		Registration:      reg,
		CreatedAt:         created,
		IgnitionStartTime: start,
		IgnitionEndTime:   &end,
		DistanceTravelled: num(distance),
		DrivingDuration:   num(driving),
		StopDuration:      num(stopped),
		OdoStartReading:   str("1000"),
		OdoEndReading:     str("1010"),
		StartLocation:     "Depot",
		EndLocation:       "Site",
		Name:              "Driver",
	}
}

func march2024() model.DateRange {
	return model.NewDateRange(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	)
}

func TestGroupNoData(t *testing.T) {
	tests := []struct {
		name    string
		records []model.JourneyRecord
	}{
		{name: "empty input", records: nil},
		{name: "all outside range", records: []model.JourneyRecord{
			journey("ABC", at(2024, time.February, 28, 9, 0), 1, 1, 1),
			journey("ABC", at(2024, time.May, 1, 9, 0), 1, 1, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, err := Group(tt.records, march2024())
			if !errors.Is(err, ErrNoData) {
				t.Fatalf("Group() error = %v, want ErrNoData", err)
			}
			if months != nil {
				t.Errorf("Group() months = %v, want nil", months)
			}
		})
	}
}

func TestGroupMalformedRecord(t *testing.T) {
	noDate := journey("ABC", nil, 1, 1, 1)
	noDate.CreatedAt = time.Time{}

	_, err := Group([]model.JourneyRecord{noDate}, march2024())
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Group() error = %v, want ErrMalformedRecord", err)
	}
}

func TestGroupKeepsJourneysWithoutEndTime(t *testing.T) {
	open := journey("ABC", at(2024, time.March, 2, 9, 0), 5, 6, 7)
	open.IgnitionEndTime = nil

	outside := journey("ABC", at(2024, time.February, 20, 9, 0), 1, 1, 1)
	outside.IgnitionEndTime = nil

	months, err := Group([]model.JourneyRecord{open, outside}, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	if len(months) != 1 || months[0].Totals != (Totals{Business: 5, Driving: 6, Stopped: 7}) {
		t.Errorf("months = %+v", months)
	}
}

func TestGroupSameDayTotals(t *testing.T) {
	records := []model.JourneyRecord{
		journey("ABC", at(2024, time.March, 5, 10, 0), 15, 20, 5),
		journey("ABC", at(2024, time.March, 5, 8, 0), 10, 12, 3),
	}

	months, err := Group(records, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	if len(months) != 1 || len(months[0].Vehicles) != 1 || len(months[0].Vehicles[0].Days) != 1 {
		t.Fatalf("unexpected shape: %+v", months)
	}

	day := months[0].Vehicles[0].Days[0]
	want := Totals{Business: 25, Driving: 32, Stopped: 8}
	if day.Totals != want {
		t.Errorf("day totals = %+v, want %+v", day.Totals, want)
	}
	if months[0].Vehicles[0].Totals != want || months[0].Totals != want {
		t.Errorf("rollups = %+v / %+v, want %+v", months[0].Vehicles[0].Totals, months[0].Totals, want)
	}
	if got := day.Journeys[0].IgnitionStartTime.Hour(); got != 8 {
		t.Errorf("first journey starts at %d, want 8", got)
	}
}

func TestGroupOrdering(t *testing.T) {
	records := []model.JourneyRecord{
		journey("ZZZ", at(2024, time.April, 2, 9, 0), 1, 1, 1),
		journey("BBB", at(2024, time.March, 20, 9, 0), 1, 1, 1),
		journey("AAA", at(2024, time.March, 9, 14, 0), 1, 1, 1),
		journey("AAA", nil, 1, 1, 1),
		journey("AAA", at(2024, time.March, 3, 9, 0), 1, 1, 1),
		journey("AAA", at(2024, time.March, 9, 7, 30), 1, 1, 1),
	}
	records[3].CreatedAt = time.Date(2024, time.March, 9, 23, 0, 0, 0, time.UTC)

	months, err := Group(records, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}

	var labels []string
	for _, m := range months {
		labels = append(labels, m.Label())
	}
	if len(labels) != 2 || labels[0] != "March 2024" || labels[1] != "April 2024" {
		t.Fatalf("month labels = %v", labels)
	}

	march := months[0]
	if march.Vehicles[0].Registration != "AAA" || march.Vehicles[1].Registration != "BBB" {
		t.Errorf("vehicle order = %s, %s", march.Vehicles[0].Registration, march.Vehicles[1].Registration)
	}

	days := march.Vehicles[0].Days
	for i := 1; i < len(days); i++ {
		if !days[i-1].Date.Before(days[i].Date) {
			t.Errorf("days not strictly ascending: %v then %v", days[i-1].Date, days[i].Date)
		}
	}

	ninth := days[1]
	if len(ninth.Journeys) != 3 {
		t.Fatalf("March 9 journeys = %d, want 3", len(ninth.Journeys))
	}
	if ninth.Journeys[0].IgnitionStartTime.Hour() != 7 || ninth.Journeys[1].IgnitionStartTime.Hour() != 14 {
		t.Errorf("journeys not in start time order")
	}
	if ninth.Journeys[2].IgnitionStartTime != nil {
		t.Errorf("untimed journey should sort last")
	}
}

func TestGroupDateFallsBackToCreatedAt(t *testing.T) {
	record := journey("ABC", nil, 4, 4, 4)
	record.CreatedAt = time.Date(2024, time.March, 15, 17, 45, 0, 0, time.UTC)

	months, err := Group([]model.JourneyRecord{record}, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	got := months[0].Vehicles[0].Days[0].Date
	if want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("day = %v, want %v", got, want)
	}
}

func TestGroupRollupsAreBottomUpSums(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 1e-9, 12.345, 7.7, 0.05}
	var records []model.JourneyRecord
	for i, v := range values {
		reg := []string{"AAA", "BBB"}[i%2]
		records = append(records, journey(reg, at(2024, time.March, 1+i%3, 8+i, 0), v, v*2, v*3))
	}

	months, err := Group(records, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}

	for _, month := range months {
		var monthSum Totals
		for _, vehicle := range month.Vehicles {
			var vehicleSum Totals
			for _, day := range vehicle.Days {
				var daySum Totals
				for _, j := range day.Journeys {
					daySum.addJourney(j)
				}
				if daySum != day.Totals {
					t.Errorf("%s %v: day totals %+v, want %+v", vehicle.Registration, day.Date, day.Totals, daySum)
				}
				vehicleSum.add(day.Totals)
			}
			if vehicleSum != vehicle.Totals {
				t.Errorf("%s: vehicle totals %+v, want %+v", vehicle.Registration, vehicle.Totals, vehicleSum)
			}
			monthSum.add(vehicle.Totals)
		}
		if monthSum != month.Totals {
			t.Errorf("%s: month totals %+v, want %+v", month.Label(), month.Totals, monthSum)
		}
	}
}

func TestGroupNullNumericsCountAsZero(t *testing.T) {
	record := journey("ABC", at(2024, time.March, 5, 8, 0), 0, 0, 0)
	record.DistanceTravelled = nil
	record.StopDuration = nil
	record.DrivingDuration = num(6)

	months, err := Group([]model.JourneyRecord{record}, march2024())
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}
	if got, want := months[0].Totals, (Totals{Driving: 6}); got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	records := []model.JourneyRecord{
		journey("ABC", at(2024, time.February, 29, 23, 59), 1, 1, 1),
		journey("ABC", at(2024, time.March, 1, 0, 0), 2, 2, 2),
		journey("ABC", at(2024, time.April, 30, 23, 59), 3, 3, 3),
		journey("ABC", at(2024, time.May, 1, 0, 0), 4, 4, 4),
	}

	once, err := filterRecords(records, march2024())
	if err != nil {
		t.Fatalf("filterRecords() error = %v", err)
	}
	kept := make([]model.JourneyRecord, 0, len(once))
	for _, d := range once {
		kept = append(kept, d.record)
	}
	twice, err := filterRecords(kept, march2024())
	if err != nil {
		t.Fatalf("filterRecords() error = %v", err)
	}

	if len(once) != 2 || len(twice) != len(once) {
		t.Fatalf("filter sizes = %d then %d, want 2 then 2", len(once), len(twice))
	}
	for i := range once {
		if *once[i].record.DistanceTravelled != *twice[i].record.DistanceTravelled {
			t.Errorf("record %d changed between passes", i)
		}
	}
}
