package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mavfares/pkg/ctdf"
	"github.com/travigo/mavfares/pkg/dataaggregator"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	"github.com/travigo/mavfares/pkg/dataaggregator/source/mav"
	"github.com/travigo/mavfares/pkg/prices"
)

func PricesRouter(router fiber.Router) {
	router.Get("/:origin/:destination", getPricesBetweenStations)
}

func queryValues(c *fiber.Ctx, key string) []string {
	values := []string{}
	for _, value := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(value))
	}

	return values
}

func getPricesBetweenStations(c *fiber.Ctx) error {
	class, err := strconv.Atoi(c.Query("class", strconv.Itoa(query.FareClassSecond)))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter class should be an integer",
		})
	}

	parameters := prices.Parameters{
		DateTime:        c.Query("datetime"),
		Arrival:         c.QueryBool("arrival", false),
		Duration:        c.Query("duration"),
		Class:           class,
		SeatReservation: c.QueryBool("seat_reservation", false),
		Direct:          c.QueryBool("direct", false),
		LongerTransfer:  c.QueryBool("longer_transfer", false),
		Via:             queryValues(c, "via"),
		Travellers:      queryValues(c, "traveller"),
	}

	fareQuery, err := prices.BuildFareQuery(c.Params("origin"), c.Params("destination"), parameters)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	journeyFilter, err := prices.CompileFilter(c.Query("filter"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	searchResults, err := dataaggregator.Lookup[*ctdf.FareSearchResults](c.UserContext(), query.FareSearch{FarePrices: fareQuery})
	if err != nil {
		switch {
		case errors.Is(err, mav.InvalidQueryError):
			c.SendStatus(fiber.StatusBadRequest)
		case errors.Is(err, dataaggregator.NoMatchingSourceError):
			c.SendStatus(fiber.StatusInternalServerError)
		default:
			c.SendStatus(fiber.StatusBadGateway)
		}

		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	searchResults.Journeys, err = journeyFilter.Apply(searchResults.Journeys)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	searchResultsReduced, err := prices.Reduce(searchResults, c.QueryBool("detailed", false))
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce searchResults",
		})
	}

	return c.JSON(searchResultsReduced)
}
