package mav

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/mavfares/pkg/ctdf"
)

// Normalizer converts offer API journeys into ctdf Journeys
type Normalizer struct {
	Classifier *Classifier
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		Classifier: NewClassifier(DefaultProductTable()),
	}
}

// Journeys normalizes every journey in the response, skipping journeys without legs
func (n *Normalizer) Journeys(response *OfferResponse) []*ctdf.Journey {
	journeys := []*ctdf.Journey{}
	if response == nil {
		return journeys
	}

	for _, offerJourney := range response.Route {
		if len(offerJourney.Details.Routes) == 0 {
			log.Debug().Str("offer", offerJourney.SameOfferID).Msg("Skipping MAV offer without legs")
			continue
		}

		journeys = append(journeys, n.Journey(offerJourney))
	}

	return journeys
}

func (n *Normalizer) Journey(offerJourney OfferJourney) *ctdf.Journey {
	legs := make([]ctdf.Leg, 0, len(offerJourney.Details.Routes))
	for _, offerLeg := range offerJourney.Details.Routes {
		legs = append(legs, n.Classifier.Classify(offerLeg))
	}

	journey := &ctdf.Journey{
		PrimaryIdentifier: offerJourney.SameOfferID,
		Legs:              legs,
		Price:             normalizePrice(offerJourney),
	}

	if !journey.IsContiguous() {
		log.Debug().Str("offer", offerJourney.SameOfferID).Msg("MAV offer legs do not connect")
	}

	return journey
}

func normalizePrice(offerJourney OfferJourney) ctdf.Price {
	price := ctdf.Price{}

	if len(offerJourney.TravelClasses) > 0 {
		offerPrice := offerJourney.TravelClasses[0].Price

		if offerPrice.Amount.Valid && offerPrice.Amount.Value > 0 {
			price.Amount = offerPrice.Amount.Value
		}
		price.Currency = offerPrice.Currency.ISOCode()
	}

	if len(offerJourney.Details.Tickets) > 0 {
		price.Name = offerJourney.Details.Tickets[0].Name
	}

	return price
}
