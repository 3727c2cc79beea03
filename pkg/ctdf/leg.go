package ctdf

import "time"

// Leg is one contiguous section of a Journey, either on foot or on a single vehicle
type Leg interface {
	GetMode() TransportType
	GetOrigin() Station
	GetDestination() Station
	GetDepartureTime() time.Time
	GetArrivalTime() time.Time
	GetLine() *Line
}

type Station struct {
	Code string `groups:"basic"`
	Name string `groups:"basic"`
}

type Line struct {
	PrimaryIdentifier string        `groups:"basic"`
	Name              string        `groups:"basic"`
	TransportType     TransportType `groups:"basic"`
}

type LegBase struct {
	Mode TransportType `groups:"basic"`

	Origin      Station `groups:"basic"`
	Destination Station `groups:"basic"`

	Departure time.Time `groups:"basic"`
	Arrival   time.Time `groups:"basic"`
}

func (l LegBase) GetMode() TransportType      { return l.Mode }
func (l LegBase) GetOrigin() Station          { return l.Origin }
func (l LegBase) GetDestination() Station     { return l.Destination }
func (l LegBase) GetDepartureTime() time.Time { return l.Departure }
func (l LegBase) GetArrivalTime() time.Time   { return l.Arrival }

type WalkingLeg struct {
	LegBase `groups:"basic"`
}

func NewWalkingLeg(base LegBase) *WalkingLeg {
	base.Mode = TransportTypeWalk

	return &WalkingLeg{LegBase: base}
}

func (l *WalkingLeg) GetLine() *Line { return nil }

type BusLeg struct {
	LegBase `groups:"basic"`

	Line Line `groups:"basic"`
}

func NewBusLeg(base LegBase, lineName string) *BusLeg {
	base.Mode = TransportTypeBus

	return &BusLeg{
		LegBase: base,
		Line: Line{
			PrimaryIdentifier: GenerateLineIdentifier(TransportTypeBus, base.Origin, base.Destination, lineName),
			Name:              lineName,
			TransportType:     TransportTypeBus,
		},
	}
}

func (l *BusLeg) GetLine() *Line { return &l.Line }

// LocalRailLeg covers urban rail such as metro and U-Bahn
type LocalRailLeg struct {
	LegBase `groups:"basic"`

	Line Line `groups:"basic"`
}

func NewLocalRailLeg(base LegBase, lineName string) *LocalRailLeg {
	base.Mode = TransportTypeMetro

	return &LocalRailLeg{
		LegBase: base,
		Line: Line{
			PrimaryIdentifier: GenerateLineIdentifier(TransportTypeMetro, base.Origin, base.Destination, lineName),
			Name:              lineName,
			TransportType:     TransportTypeMetro,
		},
	}
}

func (l *LocalRailLeg) GetLine() *Line { return &l.Line }

type TrainLeg struct {
	LegBase `groups:"basic"`

	DepartureDelay    *int   `groups:"basic" json:",omitempty"`
	DeparturePlatform string `groups:"basic" json:",omitempty"`
	ArrivalDelay      *int   `groups:"basic" json:",omitempty"`
	ArrivalPlatform   string `groups:"basic" json:",omitempty"`

	Line    Line   `groups:"basic"`
	Product string `groups:"basic"`

	ScheduleIdentifier string `groups:"detailed" json:",omitempty"`
}

func (l *TrainLeg) GetLine() *Line { return &l.Line }

// GenerateLineIdentifier builds a stable identifier for lines the provider does not identify itself
func GenerateLineIdentifier(transportType TransportType, origin Station, destination Station, lineName string) string {
	return "HU:MAV:" + string(transportType) + ":" + origin.Code + ":" + destination.Code + ":" + lineName
}
