package query

import (
	"errors"
	"fmt"
	"time"
)

const (
	FareClassFirst  = 1
	FareClassSecond = 2

	// PassengerTypeAdult is the 26+ years age category
	PassengerTypeAdult = 8
)

// FarePrices asks for priced journeys between two stations
type FarePrices struct {
	OriginStationCode      string
	DestinationStationCode string

	// DateTime is a departure time, or an arrival time when IsArrivalDate is set and Duration is not
	DateTime time.Time

	FareOptions
}

type FareOptions struct {
	Class              int
	SeatReservation    bool
	DirectConnection   bool
	LongerTransferTime bool

	IsArrivalDate bool

	// Duration widens the search to every departure from DateTime to DateTime+Duration
	Duration time.Duration

	IntermediateStations []IntermediateStation
	Travellers           []Traveller
}

type IntermediateStation struct {
	StationCode     string
	MinDwellMinutes int
}

type Traveller struct {
	Type      int
	Discounts []int
}

func DefaultFareOptions() FareOptions {
	return FareOptions{
		Class: FareClassSecond,
		Travellers: []Traveller{
			{Type: PassengerTypeAdult, Discounts: []int{}},
		},
	}
}

// WithDefaults fills in the fields a caller left at their zero value
func (q FarePrices) WithDefaults(now time.Time) FarePrices {
	defaults := DefaultFareOptions()

	if q.DateTime.IsZero() {
		q.DateTime = now
	}
	if q.Class == 0 {
		q.Class = defaults.Class
	}
	if len(q.Travellers) == 0 {
		q.Travellers = defaults.Travellers
	}
	if q.IntermediateStations == nil {
		q.IntermediateStations = []IntermediateStation{}
	}

	return q
}

func (q FarePrices) IsWindowed() bool {
	return q.Duration > 0
}

// SearchesArrival reports whether DateTime is sent to the provider as an arrival time
func (q FarePrices) SearchesArrival() bool {
	return q.IsArrivalDate && !q.IsWindowed()
}

func (q FarePrices) Validate() error {
	var errs []error

	if q.OriginStationCode == "" {
		errs = append(errs, errors.New("origin station code is required"))
	}
	if q.DestinationStationCode == "" {
		errs = append(errs, errors.New("destination station code is required"))
	}
	if q.Class != FareClassFirst && q.Class != FareClassSecond {
		errs = append(errs, fmt.Errorf("class must be %d or %d, got %d", FareClassFirst, FareClassSecond, q.Class))
	}
	if len(q.Travellers) == 0 {
		errs = append(errs, errors.New("at least one traveller is required"))
	}

	for i, station := range q.IntermediateStations {
		if station.StationCode == "" {
			errs = append(errs, fmt.Errorf("intermediate station %d has no station code", i))
		}
		if station.MinDwellMinutes < 0 {
			errs = append(errs, fmt.Errorf("intermediate station %s has a negative dwell time", station.StationCode))
		}
	}

	return errors.Join(errs...)
}

// FareSearch is a FarePrices query answered with search metadata alongside the journeys
type FareSearch struct {
	FarePrices
}
