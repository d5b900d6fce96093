package model

import "time"

type JourneyRecord struct {
	Registration      string     `json:"registration"`
	CreatedAt         time.Time  `json:"created_at"`
	IgnitionStartTime *time.Time `json:"ignition_start_time"`
	IgnitionEndTime   *time.Time `json:"ignition_end_time"`
	DrivingDuration   *float64   `json:"driving_duration"`
	StopDuration      *float64   `json:"stop_duration"`
	DistanceTravelled *float64   `json:"distance_travelled"`
	OdoStartReading   *string    `json:"odo_start_reading"`
	OdoEndReading     *string    `json:"odo_end_reading"`
	StartLocation     string     `json:"start_location"`
	EndLocation       string     `json:"end_location"`
	Name              string     `json:"name"`
}

// Date is the grouping day of the journey: the ignition start date when
// present, otherwise the creation date. ok is false when neither is set.
func (r JourneyRecord) Date() (day time.Time, ok bool) {
	if r.IgnitionStartTime != nil && !r.IgnitionStartTime.IsZero() {
		return Day(*r.IgnitionStartTime), true
	}
	if r.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return Day(r.CreatedAt), true
}

func (r JourneyRecord) Distance() float64 {
	return valueOrZero(r.DistanceTravelled)
}

func (r JourneyRecord) Driving() float64 {
	return valueOrZero(r.DrivingDuration)
}

func (r JourneyRecord) Stopped() float64 {
	return valueOrZero(r.StopDuration)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
