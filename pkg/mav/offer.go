package mav

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// OfferResponse is the body returned by the GetOfferRequest endpoint
type OfferResponse struct {
	Route []OfferJourney `json:"route"`
}

type OfferJourney struct {
	SameOfferID   string        `json:"sameOfferId"`
	TravelClasses []TravelClass `json:"travelClasses"`
	Details       OfferDetails  `json:"details"`
}

type TravelClass struct {
	Name  string     `json:"name"`
	Price OfferPrice `json:"price"`
}

type OfferPrice struct {
	Amount   looseFloat    `json:"amount"`
	Currency OfferCurrency `json:"currency"`
}

type OfferCurrency struct {
	Name    string `json:"name"`
	Key     string `json:"key"`
	UICCode string `json:"uicCode"`
}

// ISOCode prefers the ISO 4217 key over the UIC code field
func (c OfferCurrency) ISOCode() string {
	if c.Key != "" {
		return strings.ToUpper(c.Key)
	}

	return strings.ToUpper(c.UICCode)
}

type OfferDetails struct {
	Routes  []OfferLeg    `json:"routes"`
	Tickets []OfferTicket `json:"tickets"`
}

type OfferTicket struct {
	Name string `json:"name"`
}

type OfferLeg struct {
	// Description is a human readable summary, only set for legs that are not mainline trains
	Description string `json:"description"`

	StartStation       OfferStation `json:"startStation"`
	DestinationStation OfferStation `json:"destionationStation"`

	Departure OfferTime `json:"departure"`
	Arrival   OfferTime `json:"arrival"`

	DepartureTrack *OfferTrack `json:"departureTrack"`
	ArrivalTrack   *OfferTrack `json:"arrivalTrack"`

	TrainDetails *OfferTrainDetails `json:"trainDetails"`
}

type OfferStation struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OfferTime struct {
	Time     string   `json:"time"`
	DelayMin looseInt `json:"delayMin"`
}

type OfferTrack struct {
	Name string `json:"name"`
}

func (t *OfferTrack) PlatformName() string {
	if t == nil {
		return ""
	}

	return strings.TrimSpace(t.Name)
}

type OfferTrainDetails struct {
	TrainID     string         `json:"trainId"`
	TrainNumber looseString    `json:"trainNumber"`
	TrainKind   OfferTrainKind `json:"trainKind"`
	ScheduleID  looseString    `json:"jeId"`
}

type OfferTrainKind struct {
	Name     string `json:"name"`
	SortName string `json:"sortName"`
}

// DisplayName is the provider's short product name, or the long one when no short name is given
func (k OfferTrainKind) DisplayName() string {
	if sortName := strings.TrimSpace(k.SortName); sortName != "" {
		return sortName
	}

	return strings.TrimSpace(k.Name)
}

// looseInt accepts a JSON number, a numeric string or null. Anything else is left unset.
type looseInt struct {
	Value int
	Valid bool
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	*l = looseInt{}

	number, ok := parseLooseNumber(data)
	if !ok || number != math.Trunc(number) || number < math.MinInt32 || number > math.MaxInt32 {
		return nil
	}

	l.Value = int(number)
	l.Valid = true

	return nil
}

func (l looseInt) Ptr() *int {
	if !l.Valid {
		return nil
	}

	value := l.Value
	return &value
}

type looseFloat struct {
	Value float64
	Valid bool
}

func (l *looseFloat) UnmarshalJSON(data []byte) error {
	*l = looseFloat{}

	number, ok := parseLooseNumber(data)
	if !ok {
		return nil
	}

	l.Value = number
	l.Valid = true

	return nil
}

// looseString accepts either a JSON string or a number
type looseString string

func (l *looseString) UnmarshalJSON(data []byte) error {
	*l = ""

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*l = looseString(strings.TrimSpace(text))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*l = looseString(number.String())
	}

	return nil
}

func parseLooseNumber(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	return number, true
}

var providerLocation = loadProviderLocation()

func loadProviderLocation() *time.Location {
	location, err := time.LoadLocation("Europe/Budapest")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load Europe/Budapest timezone, falling back to UTC")
		return time.UTC
	}

	return location
}

// parseOfferTime reads provider timestamps, which usually carry an offset but not always
func parseOfferTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if parsed, err := time.ParseInLocation(layout, value, providerLocation); err == nil {
			return parsed
		}
	}

	log.Debug().Str("value", value).Msg("Unparseable MAV timestamp")

	return time.Time{}
}
