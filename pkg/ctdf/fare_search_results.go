package ctdf

type FareSearchResults struct {
	Journeys []*Journey `groups:"basic"`

	Metadata SearchMetadata `groups:"basic"`
}

// SearchMetadata reports how many of the planned provider requests produced results
type SearchMetadata struct {
	WindowsQueried   int `groups:"basic"`
	WindowsSucceeded int `groups:"basic"`
	WindowsFailed    int `groups:"basic"`
}
