package rcdf

type ParkingFacility struct {
	PrimaryIdentifier string `groups:"basic"`

	DataSource *DataSource `groups:"internal"`

	Name     string    `groups:"basic"`
	Location *Location `groups:"basic"`

	Capacity        int `groups:"basic"` // total truck spaces
	AvailableSpaces int `groups:"basic"`

	Amenities    []string `groups:"basic"`
	FacilityType string   `groups:"basic"`
}
