package rcdf

// RestrictionRecord is a commercial-vehicle routing restriction owned by the
// spatial store. Limit fields are nil when the source feed did not report them.
type RestrictionRecord struct {
	PrimaryIdentifier string `groups:"basic"`

	DataSource *DataSource `groups:"internal"`

	Location *Location `groups:"basic"`

	WeightLimitKg *int `groups:"basic"`
	HeightLimitCm *int `groups:"basic"`
	LengthLimitCm *int `groups:"basic"`

	HazmatRestricted   bool `groups:"basic"`
	OversizeRestricted bool `groups:"basic"`

	Note string `groups:"basic"`
}
