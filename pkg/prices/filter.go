package prices

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/mavfares/pkg/ctdf"
)

// JourneyView is the flattened journey that filter expressions are evaluated against
type JourneyView struct {
	Price           float64
	Currency        string
	Ticket          string
	Legs            int
	Changes         int
	DurationMinutes float64
	Departure       time.Time
	Arrival         time.Time
	Modes           []string
	Products        []string
}

func NewJourneyView(journey *ctdf.Journey) JourneyView {
	view := JourneyView{
		Price:           journey.Price.Amount,
		Currency:        journey.Price.Currency,
		Ticket:          journey.Price.Name,
		Legs:            len(journey.Legs),
		Changes:         journey.Changes(),
		DurationMinutes: journey.Duration().Minutes(),
		Departure:       journey.DepartureTime(),
		Arrival:         journey.ArrivalTime(),
		Modes:           []string{},
		Products:        []string{},
	}

	for _, leg := range journey.Legs {
		view.Modes = append(view.Modes, string(leg.GetMode()))

		if trainLeg, ok := leg.(*ctdf.TrainLeg); ok && trainLeg.Product != "" {
			view.Products = append(view.Products, trainLeg.Product)
		}
	}

	return view
}

// JourneyFilter keeps the journeys a compiled boolean expression accepts
type JourneyFilter struct {
	Expression string

	program *vm.Program
}

// CompileFilter returns nil for an empty expression
func CompileFilter(expression string) (*JourneyFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression, expr.Env(JourneyView{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	return &JourneyFilter{
		Expression: expression,
		program:    program,
	}, nil
}

func (f *JourneyFilter) Apply(journeys []*ctdf.Journey) ([]*ctdf.Journey, error) {
	if f == nil {
		return journeys, nil
	}

	filtered := []*ctdf.Journey{}

	for _, journey := range journeys {
		output, err := expr.Run(f.program, NewJourneyView(journey))
		if err != nil {
			return nil, fmt.Errorf("filter %q failed on journey %s: %w", f.Expression, journey.PrimaryIdentifier, err)
		}

		if output.(bool) {
			filtered = append(filtered, journey)
		}
	}

	return filtered, nil
}
