package prices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mavfares/pkg/ctdf"
)

var testDeparture = time.Date(2026, 10, 19, 8, 42, 0, 0, time.UTC)

func testLegBase(origin string, destination string, departure time.Time, minutes int) ctdf.LegBase {
	return ctdf.LegBase{
		Origin:      ctdf.Station{Code: origin, Name: "Station " + origin},
		Destination: ctdf.Station{Code: destination, Name: "Station " + destination},
		Departure:   departure,
		Arrival:     departure.Add(time.Duration(minutes) * time.Minute),
	}
}

func testTrainLeg(base ctdf.LegBase, product string, number string) *ctdf.TrainLeg {
	base.Mode = ctdf.TransportTypeRail

	return &ctdf.TrainLeg{
		LegBase: base,
		Line:    ctdf.Line{PrimaryIdentifier: product + "-" + number, Name: product + " " + number, TransportType: ctdf.TransportTypeRail},
		Product: product,
	}
}

func testJourneys() []*ctdf.Journey {
	direct := &ctdf.Journey{
		PrimaryIdentifier: "DIRECT",
		Legs: []ctdf.Leg{
			testTrainLeg(testLegBase("A", "B", testDeparture, 157), "RJX", "165"),
		},
		Price: ctdf.Price{Amount: 12990, Currency: "HUF", Name: "Vienna - Budapest Special"},
	}

	changing := &ctdf.Journey{
		PrimaryIdentifier: "CHANGE",
		Legs: []ctdf.Leg{
			testTrainLeg(testLegBase("A", "C", testDeparture.Add(time.Hour), 60), "REX", "5417"),
			ctdf.NewWalkingLeg(testLegBase("C", "D", testDeparture.Add(2*time.Hour), 5)),
			ctdf.NewBusLeg(testLegBase("D", "B", testDeparture.Add(2*time.Hour+10*time.Minute), 20), "15/115"),
		},
		Price: ctdf.Price{Amount: 7490, Currency: "HUF"},
	}

	return []*ctdf.Journey{direct, changing}
}

func TestNewJourneyView(t *testing.T) {
	journeys := testJourneys()

	view := NewJourneyView(journeys[1])

	assert.Equal(t, 7490.0, view.Price)
	assert.Equal(t, "HUF", view.Currency)
	assert.Equal(t, 3, view.Legs)
	assert.Equal(t, 1, view.Changes)
	assert.Equal(t, 90.0, view.DurationMinutes)
	assert.Equal(t, []string{"Rail", "Walk", "Bus"}, view.Modes)
	assert.Equal(t, []string{"REX"}, view.Products)
}

func TestJourneyFilter(t *testing.T) {
	tests := []struct {
		expression string
		expected   []string
	}{
		{"Changes == 0", []string{"DIRECT"}},
		{"Price < 10000", []string{"CHANGE"}},
		{`"Bus" in Modes`, []string{"CHANGE"}},
		{`"RJX" in Products && DurationMinutes < 180`, []string{"DIRECT"}},
		{"Departure.Hour() >= 9", []string{"CHANGE"}},
		{"Currency == 'EUR'", []string{}},
		{"true", []string{"DIRECT", "CHANGE"}},
	}

	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			journeyFilter, err := CompileFilter(test.expression)
			require.NoError(t, err)

			filtered, err := journeyFilter.Apply(testJourneys())
			require.NoError(t, err)

			ids := []string{}
			for _, journey := range filtered {
				ids = append(ids, journey.PrimaryIdentifier)
			}
			assert.Equal(t, test.expected, ids)
		})
	}
}

func TestCompileFilter(t *testing.T) {
	journeyFilter, err := CompileFilter("   ")
	require.NoError(t, err)
	assert.Nil(t, journeyFilter)

	journeys := testJourneys()
	unfiltered, err := journeyFilter.Apply(journeys)
	require.NoError(t, err)
	assert.Equal(t, journeys, unfiltered)

	_, err = CompileFilter("Price + 1")
	assert.Error(t, err)

	_, err = CompileFilter("Platform == '8A'")
	assert.Error(t, err)
}
