package rcdf

type DataSource struct {
	OriginalFormat string `groups:"internal"` // or enum (eg. CARS, WZDx)
	Provider       string `groups:"internal"`
	Dataset        string `groups:"internal"`
	Identifier     string `groups:"internal"`
}
