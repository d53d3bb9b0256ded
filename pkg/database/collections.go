package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createEventsIndexes()
	createRestrictionsIndexes()
	createTruckParkingIndexes()
}

func createEventsIndexes() {
	eventsCollection := GetCollection("events")
	eventsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
		},
		{
			Keys:    bson.D{{Key: "modificationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(48 * 3600), // Expire after 48 hours
		},
	}

	opts := options.CreateIndexes()
	_, err := eventsCollection.Indexes().CreateMany(context.Background(), eventsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createRestrictionsIndexes() {
	restrictionsCollection := GetCollection("restrictions")
	restrictionsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := restrictionsCollection.Indexes().CreateMany(context.Background(), restrictionsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createTruckParkingIndexes() {
	truckParkingCollection := GetCollection("truck_parking")
	truckParkingIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := truckParkingCollection.Indexes().CreateMany(context.Background(), truckParkingIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
