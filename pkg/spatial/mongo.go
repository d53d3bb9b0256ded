package spatial

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/rcdf"
)

// MongoFinder serves radius queries from the restrictions and truck_parking
// collections using their 2dsphere indexes.
type MongoFinder struct {
}

func radiusQuery(location *rcdf.Location, radiusKm float64) bson.M {
	// $centerSphere takes the radius in radians
	return bson.M{
		"location.coordinates": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{location.Longitude(), location.Latitude()},
					radiusKm / rcdf.EarthRadiusKm,
				},
			},
		},
	}
}

// FindRestrictions returns every restriction within the radius, ordered by
// record identifier so note aggregation is reproducible across runs
func (f MongoFinder) FindRestrictions(ctx context.Context, location *rcdf.Location, radiusKm float64) ([]rcdf.RestrictionRecord, error) {
	restrictionsCollection := database.GetCollection("restrictions")

	findOptions := options.Find().SetSort(bson.D{{Key: "primaryidentifier", Value: 1}})
	cursor, err := restrictionsCollection.Find(ctx, radiusQuery(location, radiusKm), findOptions)
	if err != nil {
		return nil, err
	}

	var restrictions []rcdf.RestrictionRecord

	for cursor.Next(ctx) {
		var restriction rcdf.RestrictionRecord
		if err := cursor.Decode(&restriction); err != nil {
			log.Error().Err(err).Msg("Failed to decode Restriction Record")
			continue
		}

		restrictions = append(restrictions, restriction)
	}

	return restrictions, cursor.Err()
}

func (f MongoFinder) FindParkingFacilities(ctx context.Context, location *rcdf.Location, radiusKm float64) ([]rcdf.ParkingFacility, error) {
	parkingCollection := database.GetCollection("truck_parking")

	cursor, err := parkingCollection.Find(ctx, radiusQuery(location, radiusKm))
	if err != nil {
		return nil, err
	}

	var facilities []rcdf.ParkingFacility

	for cursor.Next(ctx) {
		var facility rcdf.ParkingFacility
		if err := cursor.Decode(&facility); err != nil {
			log.Error().Err(err).Msg("Failed to decode Parking Facility")
			continue
		}

		facilities = append(facilities, facility)
	}

	return facilities, cursor.Err()
}
