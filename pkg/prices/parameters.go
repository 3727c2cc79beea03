package prices

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	"github.com/travigo/mavfares/pkg/mav"
)

// Parameters are the raw search options shared by the CLI flags and the API query string
type Parameters struct {
	DateTime        string
	Arrival         bool
	Duration        string
	Class           int
	SeatReservation bool
	Direct          bool
	LongerTransfer  bool
	Via             []string
	Travellers      []string
}

func BuildFareQuery(origin string, destination string, parameters Parameters) (query.FarePrices, error) {
	var errs []error

	q := query.FarePrices{
		OriginStationCode:      origin,
		DestinationStationCode: destination,
		FareOptions: query.FareOptions{
			Class:              parameters.Class,
			SeatReservation:    parameters.SeatReservation,
			DirectConnection:   parameters.Direct,
			LongerTransferTime: parameters.LongerTransfer,
			IsArrivalDate:      parameters.Arrival,
		},
	}

	if parameters.DateTime != "" {
		dateTime, err := time.Parse(time.RFC3339, parameters.DateTime)
		if err != nil {
			errs = append(errs, errors.New("datetime should be an RFC3339/ISO8601 datetime"))
		}

		q.DateTime = dateTime
	}

	if parameters.Duration != "" {
		duration, err := mav.ParseISODuration(parameters.Duration)
		if err != nil || duration < 0 {
			errs = append(errs, errors.New("duration should be an ISO8601 duration such as PT18H"))
		}

		q.Duration = duration
	}

	for _, via := range parameters.Via {
		station, err := ParseIntermediateStation(via)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		q.IntermediateStations = append(q.IntermediateStations, station)
	}

	for _, traveller := range parameters.Travellers {
		parsed, err := ParseTraveller(traveller)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		q.Travellers = append(q.Travellers, parsed)
	}

	return q, errors.Join(errs...)
}

// ParseIntermediateStation reads CODE or CODE:MINUTES
func ParseIntermediateStation(value string) (query.IntermediateStation, error) {
	code, minutesString, hasMinutes := strings.Cut(strings.TrimSpace(value), ":")

	station := query.IntermediateStation{StationCode: code}
	if code == "" {
		return station, fmt.Errorf("via %q has no station code", value)
	}

	if hasMinutes {
		minutes, err := strconv.Atoi(minutesString)
		if err != nil || minutes < 0 {
			return station, fmt.Errorf("via %q should have a whole number of minutes", value)
		}

		station.MinDwellMinutes = minutes
	}

	return station, nil
}

// ParseTraveller reads TYPE or TYPE:DISCOUNT,DISCOUNT
func ParseTraveller(value string) (query.Traveller, error) {
	typeString, discountsString, hasDiscounts := strings.Cut(strings.TrimSpace(value), ":")

	travellerType, err := strconv.Atoi(typeString)
	if err != nil {
		return query.Traveller{}, fmt.Errorf("traveller %q should start with a numeric type", value)
	}

	traveller := query.Traveller{Type: travellerType, Discounts: []int{}}

	if hasDiscounts && discountsString != "" {
		for _, discountString := range strings.Split(discountsString, ",") {
			discount, err := strconv.Atoi(strings.TrimSpace(discountString))
			if err != nil {
				return query.Traveller{}, fmt.Errorf("traveller %q has a non numeric discount", value)
			}

			traveller.Discounts = append(traveller.Discounts, discount)
		}
	}

	return traveller, nil
}
