package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/travigo/mavfares/pkg/ctdf"
	"golang.org/x/exp/slices"
)

const (
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatPretty = "pretty"
)

var Formats = []string{FormatJSON, FormatCSV, FormatPretty}

type journeyRow struct {
	Offer       string  `csv:"offer"`
	Origin      string  `csv:"origin"`
	Destination string  `csv:"destination"`
	Departure   string  `csv:"departure"`
	Arrival     string  `csv:"arrival"`
	Duration    string  `csv:"duration"`
	Changes     int     `csv:"changes"`
	Lines       string  `csv:"lines"`
	Price       float64 `csv:"price"`
	Currency    string  `csv:"currency"`
	Ticket      string  `csv:"ticket"`
}

func newJourneyRow(journey *ctdf.Journey) *journeyRow {
	row := &journeyRow{
		Offer:     journey.PrimaryIdentifier,
		Departure: journey.DepartureTime().Format(time.RFC3339),
		Arrival:   journey.ArrivalTime().Format(time.RFC3339),
		Duration:  journey.Duration().String(),
		Changes:   journey.Changes(),
		Price:     journey.Price.Amount,
		Currency:  journey.Price.Currency,
		Ticket:    journey.Price.Name,
	}

	if firstLeg := journey.FirstLeg(); firstLeg != nil {
		row.Origin = firstLeg.GetOrigin().Name
	}
	if lastLeg := journey.LastLeg(); lastLeg != nil {
		row.Destination = lastLeg.GetDestination().Name
	}

	lines := []string{}
	for _, leg := range journey.Legs {
		if line := leg.GetLine(); line != nil && line.Name != "" {
			lines = append(lines, line.Name)
		} else {
			lines = append(lines, string(leg.GetMode()))
		}
	}
	row.Lines = strings.Join(lines, " > ")

	return row
}

// Reduce strips the fields outside the requested sheriff groups
func Reduce(results *ctdf.FareSearchResults, detailed bool) (interface{}, error) {
	groups := []string{"basic"}
	if detailed {
		groups = append(groups, "detailed")
	}

	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, results)
}

func WriteResults(w io.Writer, format string, results *ctdf.FareSearchResults) error {
	switch format {
	case FormatJSON:
		reduced, err := Reduce(results, true)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reduced)
	case FormatCSV:
		rows := make([]*journeyRow, 0, len(results.Journeys))
		for _, journey := range results.Journeys {
			rows = append(rows, newJourneyRow(journey))
		}

		return gocsv.Marshal(rows, w)
	case FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", results)
		return err
	default:
		return fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
}

func IsFormat(format string) bool {
	return slices.Contains(Formats, format)
}
