package mav

import (
	"regexp"
	"strings"

	"github.com/travigo/mavfares/pkg/ctdf"
)

// Description prefixes the offer API uses for legs that are not mainline trains
const (
	WalkingMarker = "On foot"
	BusMarker     = "By bus line"
	SubwayMarker  = "with U-Bahn"
	MetroMarker   = "By metro line"
)

// ClassificationRule turns a raw leg into a typed leg when Match accepts its description
type ClassificationRule struct {
	Name  string
	Match func(description string) bool
	Build func(base ctdf.LegBase, leg OfferLeg) ctdf.Leg
}

// Classifier evaluates its rules in order. The first match wins, otherwise the leg is a mainline train.
type Classifier struct {
	Rules    []ClassificationRule
	Products ProductTable
}

func NewClassifier(products ProductTable) *Classifier {
	return &Classifier{
		Rules:    DefaultClassificationRules(),
		Products: products,
	}
}

func DefaultClassificationRules() []ClassificationRule {
	return []ClassificationRule{
		{
			Name:  "walking",
			Match: hasPrefix(WalkingMarker),
			Build: func(base ctdf.LegBase, _ OfferLeg) ctdf.Leg {
				return ctdf.NewWalkingLeg(base)
			},
		},
		{
			Name:  "bus",
			Match: hasPrefix(BusMarker),
			Build: func(base ctdf.LegBase, leg OfferLeg) ctdf.Leg {
				return ctdf.NewBusLeg(base, extractBusLineName(leg.Description))
			},
		},
		{
			Name:  "subway",
			Match: hasPrefix(SubwayMarker),
			Build: func(base ctdf.LegBase, leg OfferLeg) ctdf.Leg {
				return ctdf.NewLocalRailLeg(base, extractSubwayLineName(leg.Description))
			},
		},
		{
			Name:  "metro",
			Match: hasPrefix(MetroMarker),
			Build: func(base ctdf.LegBase, leg OfferLeg) ctdf.Leg {
				return ctdf.NewLocalRailLeg(base, extractMetroLineName(leg.Description))
			},
		},
	}
}

func hasPrefix(marker string) func(string) bool {
	return func(description string) bool {
		return strings.HasPrefix(description, marker)
	}
}

func (c *Classifier) Classify(leg OfferLeg) ctdf.Leg {
	base := ctdf.LegBase{
		Origin: ctdf.Station{
			Code: leg.StartStation.Code,
			Name: leg.StartStation.Name,
		},
		Destination: ctdf.Station{
			Code: leg.DestinationStation.Code,
			Name: leg.DestinationStation.Name,
		},
		Departure: parseOfferTime(leg.Departure.Time),
		Arrival:   parseOfferTime(leg.Arrival.Time),
	}

	description := strings.TrimSpace(leg.Description)
	if description != "" {
		for _, rule := range c.Rules {
			if rule.Match(description) {
				return rule.Build(base, leg)
			}
		}
	}

	return c.buildTrainLeg(base, leg)
}

func (c *Classifier) buildTrainLeg(base ctdf.LegBase, leg OfferLeg) ctdf.Leg {
	base.Mode = ctdf.TransportTypeRail

	var details OfferTrainDetails
	if leg.TrainDetails != nil {
		details = *leg.TrainDetails
	}

	product := c.Products.ProductName(details.TrainKind)

	return &ctdf.TrainLeg{
		LegBase: base,

		DepartureDelay:    leg.Departure.DelayMin.Ptr(),
		DeparturePlatform: leg.DepartureTrack.PlatformName(),
		ArrivalDelay:      leg.Arrival.DelayMin.Ptr(),
		ArrivalPlatform:   leg.ArrivalTrack.PlatformName(),

		Line: ctdf.Line{
			PrimaryIdentifier: details.TrainID,
			Name:              strings.TrimSpace(product + " " + string(details.TrainNumber)),
			TransportType:     ctdf.TransportTypeRail,
		},
		Product: product,

		ScheduleIdentifier: string(details.ScheduleID),
	}
}

var (
	busDestinationSuffix = regexp.MustCompile(` to .*$`)
	durationSuffix       = regexp.MustCompile(`\s*\[[^\]]*\]\s*$`)
	alternativeLine      = regexp.MustCompile(`\s+or\b`)
)

// "By bus line 5, 7 or 7E to Zugló vasútállomás [20 minutes]" becomes "5/7/7E"
func extractBusLineName(description string) string {
	label := strings.TrimPrefix(description, BusMarker)
	label = busDestinationSuffix.ReplaceAllString(label, "")
	label = durationSuffix.ReplaceAllString(label, "")
	label = alternativeLine.ReplaceAllString(label, ",")

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(label), ",") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "/")
}

// "with U-Bahn (U5)." becomes "U5"
func extractSubwayLineName(description string) string {
	start := strings.Index(description, "(")
	end := strings.Index(description, ")")
	if start < 0 || end <= start {
		return ""
	}

	return strings.TrimSpace(description[start+1 : end])
}

// "By metro line M3 to Kálvin tér, change for metro line M4 to ..." becomes "M3+M4"
func extractMetroLineName(description string) string {
	var lines []string

	for _, clause := range strings.Split(description, ", ") {
		words := strings.Split(clause, " ")
		for i, word := range words {
			if word == "line" && i+1 < len(words) && words[i+1] != "" {
				lines = append(lines, words[i+1])
				break
			}
		}
	}

	return strings.Join(lines, "+")
}
