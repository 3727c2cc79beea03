package mav

import (
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
)

const (
	offerKindTicket = "4"

	travelDateFormat = "2006-01-02T15:04:05.000Z07:00"
)

// OfferRequest is the body posted to the GetOfferRequest endpoint
type OfferRequest struct {
	OfferKind              string         `json:"offerkind"`
	StartStationCode       string         `json:"startStationCode"`
	InnerStationsCodes     []InnerStation `json:"innerStationsCodes"`
	EndStationCode         string         `json:"endStationCode"`
	Passengers             []Passenger    `json:"passangers"`
	IsOneWayTicket         bool           `json:"isOneWayTicket"`
	IsTravelEndTime        bool           `json:"isTravelEndTime"`
	TravelStartDate        string         `json:"travelStartDate"`
	SelectedServices       []int          `json:"selectedServices"`
	SelectedSearchServices []string       `json:"selectedSearchServices"`
	IsOfDetailedSearch     bool           `json:"isOfDetailedSearch"`
}

type InnerStation struct {
	StationCode    string `json:"stationCode"`
	DurationOfStay int    `json:"durationOfStay"`
}

// NewOfferRequest builds the body for a single provider call at q.DateTime
func NewOfferRequest(q query.FarePrices) *OfferRequest {
	innerStations := make([]InnerStation, 0, len(q.IntermediateStations))
	for _, station := range q.IntermediateStations {
		innerStations = append(innerStations, InnerStation{
			StationCode:    station.StationCode,
			DurationOfStay: station.MinDwellMinutes,
		})
	}

	return &OfferRequest{
		OfferKind:              offerKindTicket,
		StartStationCode:       q.OriginStationCode,
		InnerStationsCodes:     innerStations,
		EndStationCode:         q.DestinationStationCode,
		Passengers:             BuildPassengerList(q.Travellers),
		IsOneWayTicket:         true,
		IsTravelEndTime:        q.SearchesArrival(),
		TravelStartDate:        q.DateTime.UTC().Format(travelDateFormat),
		SelectedServices:       BuildServiceList(q.FareOptions),
		SelectedSearchServices: BuildSearchServiceList(q.FareOptions),
		IsOfDetailedSearch:     true,
	}
}
