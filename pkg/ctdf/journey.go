package ctdf

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"
)

// Journey is one priced offer from origin to destination
type Journey struct {
	PrimaryIdentifier string `groups:"basic"`

	Legs []Leg `groups:"basic"`

	Price Price `groups:"basic"`
}

func (j *Journey) FirstLeg() Leg {
	if len(j.Legs) == 0 {
		return nil
	}

	return j.Legs[0]
}

func (j *Journey) LastLeg() Leg {
	if len(j.Legs) == 0 {
		return nil
	}

	return j.Legs[len(j.Legs)-1]
}

func (j *Journey) DepartureTime() time.Time {
	if leg := j.FirstLeg(); leg != nil {
		return leg.GetDepartureTime()
	}

	return time.Time{}
}

func (j *Journey) ArrivalTime() time.Time {
	if leg := j.LastLeg(); leg != nil {
		return leg.GetArrivalTime()
	}

	return time.Time{}
}

func (j *Journey) Duration() time.Duration {
	return j.ArrivalTime().Sub(j.DepartureTime())
}

// Changes counts vehicle changes, walking legs excluded
func (j *Journey) Changes() int {
	vehicles := 0
	for _, leg := range j.Legs {
		if leg.GetMode() != TransportTypeWalk {
			vehicles++
		}
	}

	if vehicles == 0 {
		return 0
	}

	return vehicles - 1
}

// IsContiguous reports whether every leg starts where the previous one ended
func (j *Journey) IsContiguous() bool {
	for i := 1; i < len(j.Legs); i++ {
		if j.Legs[i-1].GetDestination().Code != j.Legs[i].GetOrigin().Code {
			return false
		}
	}

	return true
}

// GenerateFunctionalHash identifies journeys a traveller could not tell apart by
// departure, arrival, number of legs and price. Intermediate stops are not compared.
func (j *Journey) GenerateFunctionalHash() string {
	hash := sha256.New()

	hash.Write([]byte(j.DepartureTime().UTC().Format(time.RFC3339Nano)))
	hash.Write([]byte(j.ArrivalTime().UTC().Format(time.RFC3339Nano)))
	hash.Write([]byte(strconv.Itoa(len(j.Legs))))
	hash.Write([]byte(strconv.FormatFloat(j.Price.Amount, 'f', -1, 64)))

	return fmt.Sprintf("%x", hash.Sum(nil))
}

// FilterIdenticalJourneys keeps the first of every group of functionally identical journeys
func FilterIdenticalJourneys(journeys []*Journey) []*Journey {
	filtered := []*Journey{}

	matches := map[string]bool{}
	for _, journey := range journeys {
		hash := journey.GenerateFunctionalHash()

		if !matches[hash] {
			filtered = append(filtered, journey)
			matches[hash] = true
		}
	}

	return filtered
}
