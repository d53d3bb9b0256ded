package dataimporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/rcdf"
)

// Column names follow the state truck parking export
type truckParkingCSVRecord struct {
	SiteID    string  `csv:"SiteId"`
	SiteName  string  `csv:"SiteName"`
	Latitude  float64 `csv:"Latitude"`
	Longitude float64 `csv:"Longitude"`

	Capacity      int `csv:"Capacity"`
	TrueAvailable int `csv:"TrueAvailable"`

	Amenities    string `csv:"Amenities"` // pipe separated
	FacilityType string `csv:"FacilityType"`
}

func ImportTruckParking(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var csvRecords []truckParkingCSVRecord
	if err := gocsv.UnmarshalFile(file, &csvRecords); err != nil {
		return err
	}

	truckParkingCollection := database.GetCollection("truck_parking")
	replaceOptions := options.Replace().SetUpsert(true)

	for _, csvRecord := range csvRecords {
		var amenities []string
		for _, amenity := range strings.Split(csvRecord.Amenities, "|") {
			if amenity != "" {
				amenities = append(amenities, amenity)
			}
		}

		facility := rcdf.ParkingFacility{
			PrimaryIdentifier: csvRecord.SiteID,

			DataSource: &rcdf.DataSource{
				OriginalFormat: "csv",
				Dataset:        filepath.Base(path),
				Identifier:     csvRecord.SiteID,
			},

			Name:     csvRecord.SiteName,
			Location: rcdf.NewPointLocation(csvRecord.Latitude, csvRecord.Longitude),

			Capacity:        csvRecord.Capacity,
			AvailableSpaces: csvRecord.TrueAvailable,

			Amenities:    amenities,
			FacilityType: csvRecord.FacilityType,
		}

		_, err := truckParkingCollection.ReplaceOne(
			context.Background(),
			bson.M{"primaryidentifier": facility.PrimaryIdentifier},
			facility,
			replaceOptions,
		)
		if err != nil {
			log.Error().Err(err).Str("identifier", facility.PrimaryIdentifier).Msg("Failed to upsert Parking Facility")
		}
	}

	log.Info().Int("count", len(csvRecords)).Msg("Imported truck parking facilities")

	return nil
}
