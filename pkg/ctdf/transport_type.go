package ctdf

type TransportType string

const (
	TransportTypeWalk  TransportType = "Walk"
	TransportTypeBus   TransportType = "Bus"
	TransportTypeMetro TransportType = "Metro"
	TransportTypeRail  TransportType = "Rail"
)
