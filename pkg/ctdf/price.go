package ctdf

type Price struct {
	Amount   float64 `groups:"basic"`
	Currency string  `groups:"basic"`
	Name     string  `groups:"basic" json:",omitempty"`
}
