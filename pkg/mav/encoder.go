package mav

import (
	"errors"
	"fmt"

	"github.com/travigo/mavfares/pkg/dataaggregator/query"
)

// Provider customer type keys by age category
var passengerTypes = map[int]string{
	0: "109_000-004", // child (0-4 years)
	1: "11_004-006",  // child (4-6 years)
	2: "30",          // child (6-12 years)
	3: "11_012-014",  // child (12-14 years)
	4: "107_014-015", // youth (14-15 years)
	5: "107_015-016", // youth (15-16 years)
	6: "59",          // teenager (16-18 years)
	7: "107_18-26",   // young adult (18-26 years)
	8: "44",          // adult (26+ years)
	9: "KUTYA_105",   // dog
}

var discountTypes = map[int]string{
	1:  "BAHNCARD25/RAILPLUS",
	3:  "BAHNCARD50/RAILPLUS",
	5:  "BAHNCARD100/RAILPLUS",
	8:  "VORTEILSCARD/RAILPLUS",
	9:  "Generalabonnement",
	10: "Halbtaxabonnement",
}

const (
	serviceFirstClass                 = 49
	serviceSecondClass                = 50
	serviceFirstClassSeatReservation  = 61
	serviceSecondClassSeatReservation = 62

	searchServiceDirect          = "ATSZALLAS_NELKUL"
	searchServiceSeatReservation = "HELYBIZTOSITASSAL"
	searchServiceLongerTransfer  = "MIN_ATSZALLASI_IDO"
)

type Passenger struct {
	PassengerCount        int      `json:"passengerCount"`
	PassengerID           int      `json:"passengerId"`
	CustomerTypeKey       string   `json:"customerTypeKey"`
	CustomerDiscountsKeys []string `json:"customerDiscountsKeys"`
}

// ValidateTravellers checks every traveller type and discount has a provider code
func ValidateTravellers(travellers []query.Traveller) error {
	var errs []error

	for i, traveller := range travellers {
		if _, ok := passengerTypes[traveller.Type]; !ok {
			errs = append(errs, fmt.Errorf("traveller %d has unknown type %d", i, traveller.Type))
		}

		for _, discount := range traveller.Discounts {
			if _, ok := discountTypes[discount]; !ok {
				errs = append(errs, fmt.Errorf("traveller %d has unknown discount %d", i, discount))
			}
		}
	}

	return errors.Join(errs...)
}

func BuildPassengerList(travellers []query.Traveller) []Passenger {
	passengers := make([]Passenger, 0, len(travellers))

	for i, traveller := range travellers {
		discounts := []string{}
		for _, discount := range traveller.Discounts {
			if key, ok := discountTypes[discount]; ok {
				discounts = append(discounts, key)
			}
		}

		passengers = append(passengers, Passenger{
			PassengerCount:        1,
			PassengerID:           i,
			CustomerTypeKey:       passengerTypes[traveller.Type],
			CustomerDiscountsKeys: discounts,
		})
	}

	return passengers
}

func BuildServiceList(options query.FareOptions) []int {
	services := []int{}

	switch options.Class {
	case query.FareClassFirst:
		services = append(services, serviceFirstClass)
		if options.SeatReservation {
			services = append(services, serviceFirstClassSeatReservation)
		}
	case query.FareClassSecond:
		services = append(services, serviceSecondClass)
		if options.SeatReservation {
			services = append(services, serviceSecondClassSeatReservation)
		}
	}

	return services
}

func BuildSearchServiceList(options query.FareOptions) []string {
	searchServices := []string{}

	if options.DirectConnection {
		searchServices = append(searchServices, searchServiceDirect)
	}
	if options.SeatReservation {
		searchServices = append(searchServices, searchServiceSeatReservation)
	}
	if options.LongerTransferTime {
		searchServices = append(searchServices, searchServiceLongerTransfer)
	}

	return searchServices
}
