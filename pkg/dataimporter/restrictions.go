package dataimporter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/rcdf"
)

type restrictionCSVRecord struct {
	RestrictionID string  `csv:"RestrictionId"`
	Latitude      float64 `csv:"Latitude"`
	Longitude     float64 `csv:"Longitude"`

	WeightLimitKg *int `csv:"WeightLimitKg"`
	HeightLimitCm *int `csv:"HeightLimitCm"`
	LengthLimitCm *int `csv:"LengthLimitCm"`

	HazmatRestricted   bool `csv:"HazmatRestricted"`
	OversizeRestricted bool `csv:"OversizeRestricted"`

	Note string `csv:"Note"`
}

func ImportRestrictions(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var csvRecords []restrictionCSVRecord
	if err := gocsv.UnmarshalFile(file, &csvRecords); err != nil {
		return err
	}

	restrictionsCollection := database.GetCollection("restrictions")
	replaceOptions := options.Replace().SetUpsert(true)

	for _, csvRecord := range csvRecords {
		record := rcdf.RestrictionRecord{
			PrimaryIdentifier: csvRecord.RestrictionID,

			DataSource: &rcdf.DataSource{
				OriginalFormat: "csv",
				Dataset:        filepath.Base(path),
				Identifier:     csvRecord.RestrictionID,
			},

			Location: rcdf.NewPointLocation(csvRecord.Latitude, csvRecord.Longitude),

			WeightLimitKg: csvRecord.WeightLimitKg,
			HeightLimitCm: csvRecord.HeightLimitCm,
			LengthLimitCm: csvRecord.LengthLimitCm,

			HazmatRestricted:   csvRecord.HazmatRestricted,
			OversizeRestricted: csvRecord.OversizeRestricted,

			Note: csvRecord.Note,
		}

		_, err := restrictionsCollection.ReplaceOne(
			context.Background(),
			bson.M{"primaryidentifier": record.PrimaryIdentifier},
			record,
			replaceOptions,
		)
		if err != nil {
			log.Error().Err(err).Str("identifier", record.PrimaryIdentifier).Msg("Failed to upsert Restriction Record")
		}
	}

	log.Info().Int("count", len(csvRecords)).Msg("Imported restriction records")

	return nil
}
