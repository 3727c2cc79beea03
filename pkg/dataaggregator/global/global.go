package global

import (
	"github.com/travigo/mavfares/pkg/dataaggregator"
	"github.com/travigo/mavfares/pkg/dataaggregator/source/mav"
)

func Setup() error {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	mavSource, err := mav.NewSourceFromEnvironment()
	if err != nil {
		return err
	}

	dataaggregator.GlobalAggregator.RegisterSource(mavSource)

	return nil
}
