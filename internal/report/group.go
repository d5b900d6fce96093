package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"journey-report-service/internal/model"
)

var (
	ErrNoData          = errors.New("no journeys in range")
	ErrMalformedRecord = errors.New("malformed journey record")
)

const monthLayout = "January 2006"

type Totals struct {
	Business float64 `json:"business"`
	Driving  float64 `json:"driving"`
	Stopped  float64 `json:"stopped"`
}

func (t *Totals) addJourney(r model.JourneyRecord) {
	t.Business += r.Distance()
	t.Driving += r.Driving()
	t.Stopped += r.Stopped()
}

func (t *Totals) add(other Totals) {
	t.Business += other.Business
	t.Driving += other.Driving
	t.Stopped += other.Stopped
}

type DayGroup struct {
	Date     time.Time
	Journeys []model.JourneyRecord
	Totals   Totals
}

type VehicleGroup struct {
	Registration string
	Days         []DayGroup
	Totals       Totals
}

type MonthGroup struct {
	Month    time.Time
	Vehicles []VehicleGroup
	Totals   Totals
}

func (m MonthGroup) Label() string {
	return m.Month.Format(monthLayout)
}

type datedRecord struct {
	day    time.Time
	record model.JourneyRecord
}

// Group filters records to rng and partitions them month -> vehicle -> day.
// Months and days are chronological, vehicles are ordered by registration and
// journeys by ignition start time with untimed journeys last. Totals are
// summed bottom-up in that same visiting order.
func Group(records []model.JourneyRecord, rng model.DateRange) ([]MonthGroup, error) {
	dated, err := filterRecords(records, rng)
	if err != nil {
		return nil, err
	}
	if len(dated) == 0 {
		return nil, ErrNoData
	}

	byMonth := make(map[time.Time]map[string]map[time.Time][]model.JourneyRecord)
	for _, d := range dated {
		month := time.Date(d.day.Year(), d.day.Month(), 1, 0, 0, 0, 0, time.UTC)
		vehicles, ok := byMonth[month]
		if !ok {
			vehicles = make(map[string]map[time.Time][]model.JourneyRecord)
			byMonth[month] = vehicles
		}
		days, ok := vehicles[d.record.Registration]
		if !ok {
			days = make(map[time.Time][]model.JourneyRecord)
			vehicles[d.record.Registration] = days
		}
		days[d.day] = append(days[d.day], d.record)
	}

	months := make([]MonthGroup, 0, len(byMonth))
	for _, month := range sortedTimes(byMonth) {
		months = append(months, buildMonth(month, byMonth[month]))
	}
	return months, nil
}

func filterRecords(records []model.JourneyRecord, rng model.DateRange) ([]datedRecord, error) {
	dated := make([]datedRecord, 0, len(records))
	for i, r := range records {
		day, ok := r.Date()
		if !ok {
			return nil, fmt.Errorf("%w: record %d (%q) has neither ignition start time nor created_at", ErrMalformedRecord, i, r.Registration)
		}
		if !rng.Contains(day) {
			continue
		}
		dated = append(dated, datedRecord{day: day, record: r})
	}
	return dated, nil
}

func buildMonth(month time.Time, vehicles map[string]map[time.Time][]model.JourneyRecord) MonthGroup {
	registrations := make([]string, 0, len(vehicles))
	for reg := range vehicles {
		registrations = append(registrations, reg)
	}
	sort.Strings(registrations)

	group := MonthGroup{Month: month, Vehicles: make([]VehicleGroup, 0, len(registrations))}
	for _, reg := range registrations {
		vehicle := buildVehicle(reg, vehicles[reg])
		group.Totals.add(vehicle.Totals)
		group.Vehicles = append(group.Vehicles, vehicle)
	}
	return group
}

func buildVehicle(registration string, days map[time.Time][]model.JourneyRecord) VehicleGroup {
	vehicle := VehicleGroup{Registration: registration, Days: make([]DayGroup, 0, len(days))}
	for _, day := range sortedTimes(days) {
		journeys := days[day]
		sortJourneys(journeys)

		group := DayGroup{Date: day, Journeys: journeys}
		for _, j := range journeys {
			group.Totals.addJourney(j)
		}
		vehicle.Totals.add(group.Totals)
		vehicle.Days = append(vehicle.Days, group)
	}
	return vehicle
}

func sortJourneys(journeys []model.JourneyRecord) {
	sort.SliceStable(journeys, func(i, j int) bool {
		a, b := journeys[i].IgnitionStartTime, journeys[j].IgnitionStartTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

func sortedTimes[V any](m map[time.Time]V) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
