package prices

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/mavfares/pkg/ctdf"
	"github.com/travigo/mavfares/pkg/dataaggregator"
	"github.com/travigo/mavfares/pkg/dataaggregator/global"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	"github.com/urfave/cli/v2"
)

func SearchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "datetime",
			Usage: "RFC3339 departure time, or arrival time with --arrival (defaults to now)",
		},
		&cli.BoolFlag{
			Name:  "arrival",
			Usage: "treat --datetime as the latest arrival time (ignored with --duration)",
		},
		&cli.StringFlag{
			Name:  "duration",
			Usage: "ISO8601 duration of departures to cover, e.g. PT18H",
		},
		&cli.IntFlag{
			Name:  "class",
			Value: query.FareClassSecond,
			Usage: "travel class, 1 or 2",
		},
		&cli.BoolFlag{
			Name:  "seat-reservation",
			Usage: "include a seat reservation",
		},
		&cli.BoolFlag{
			Name:  "direct",
			Usage: "only direct connections",
		},
		&cli.BoolFlag{
			Name:  "longer-transfer",
			Usage: "ask for longer minimum transfer times",
		},
		&cli.StringSliceFlag{
			Name:  "via",
			Usage: "intermediate station as CODE or CODE:MINUTES, repeatable",
		},
		&cli.StringSliceFlag{
			Name:  "traveller",
			Usage: "traveller as TYPE or TYPE:DISCOUNT,DISCOUNT, repeatable (defaults to one adult)",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "expression journeys must satisfy, e.g. 'Changes == 0 && Price < 10000'",
		},
	}
}

func ParametersFromCLI(c *cli.Context) Parameters {
	return Parameters{
		DateTime:        c.String("datetime"),
		Arrival:         c.Bool("arrival"),
		Duration:        c.String("duration"),
		Class:           c.Int("class"),
		SeatReservation: c.Bool("seat-reservation"),
		Direct:          c.Bool("direct"),
		LongerTransfer:  c.Bool("longer-transfer"),
		Via:             c.StringSlice("via"),
		Travellers:      c.StringSlice("traveller"),
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "prices",
		Usage:     "Query priced journeys between two stations",
		ArgsUsage: "<origin> <destination>",
		Flags: append(SearchFlags(), &cli.StringFlag{
			Name:  "format",
			Value: FormatJSON,
			Usage: "output format: json, csv or pretty",
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("expected an origin and a destination station code")
			}

			format := c.String("format")
			if !IsFormat(format) {
				return errors.New("format must be one of json, csv or pretty")
			}

			fareQuery, err := BuildFareQuery(c.Args().Get(0), c.Args().Get(1), ParametersFromCLI(c))
			if err != nil {
				return err
			}

			journeyFilter, err := CompileFilter(c.String("filter"))
			if err != nil {
				return err
			}

			if err := global.Setup(); err != nil {
				return err
			}

			searchResults, err := dataaggregator.Lookup[*ctdf.FareSearchResults](c.Context, query.FareSearch{FarePrices: fareQuery})
			if err != nil {
				return err
			}

			searchResults.Journeys, err = journeyFilter.Apply(searchResults.Journeys)
			if err != nil {
				return err
			}

			log.Info().
				Int("journeys", len(searchResults.Journeys)).
				Int("windowsfailed", searchResults.Metadata.WindowsFailed).
				Msg("Fare search complete")

			return WriteResults(os.Stdout, format, searchResults)
		},
	}
}
