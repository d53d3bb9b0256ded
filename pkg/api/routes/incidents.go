package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	iso8601 "github.com/senseyeio/duration"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/encoder"
	"github.com/roadcast/roadcast/pkg/rcdf"
	"github.com/roadcast/roadcast/pkg/util"
)

func IncidentsRouter(router fiber.Router, messageEncoder *encoder.Encoder) {
	router.Get("/", listIncidents)
	router.Get("/:identifier/tim", func(c *fiber.Ctx) error {
		return getIncidentTIM(c, messageEncoder)
	})
	router.Get("/:identifier/cvtim", func(c *fiber.Ctx) error {
		return getIncidentCVTIM(c, messageEncoder)
	})
}

// listIncidents serves the CIFS feed for events modified within the requested
// window (ISO-8601 duration, default PT24H)
func listIncidents(c *fiber.Ctx) error {
	windowQuery := c.Query("window", "PT24H")

	windowDuration, err := iso8601.ParseISO8601(windowQuery)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "window must be an ISO-8601 duration",
		})
	}

	now := time.Now()
	windowLength := windowDuration.Shift(now).Sub(now)
	cutoff := now.Add(-windowLength)

	eventsCollection := database.GetCollection("events")
	cursor, err := eventsCollection.Find(context.Background(), bson.M{"modificationdatetime": bson.M{"$gt": cutoff}})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var events []*rcdf.SourceEvent

	for cursor.Next(context.Background()) {
		var event *rcdf.SourceEvent
		if err := cursor.Decode(&event); err != nil {
			log.Error().Err(err).Msg("Failed to decode Source Event")
			continue
		}

		events = append(events, event)
	}

	// Drop incidents that have already ended
	util.InPlaceFilter(&events, func(event *rcdf.SourceEvent) bool {
		return event.EndDateTime.IsZero() || event.EndDateTime.After(now)
	})

	incidents := make([]*rcdf.CIFSIncident, 0, len(events))
	for _, event := range events {
		incidents = append(incidents, encoder.EncodeCIFS(event))
	}

	data, err := sheriff.Marshal(&sheriff.Options{Groups: []string{"basic"}}, incidents)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"incidents": data,
	})
}

func lookupEvent(c *fiber.Ctx) (*rcdf.SourceEvent, error) {
	identifier := c.Params("identifier")

	eventsCollection := database.GetCollection("events")

	var event *rcdf.SourceEvent
	eventsCollection.FindOne(context.Background(), bson.M{"primaryidentifier": identifier}).Decode(&event)

	if event == nil {
		c.SendStatus(fiber.StatusNotFound)
		return nil, c.JSON(fiber.Map{
			"error": "could not find a matching Source Event",
		})
	}

	return event, nil
}

func getIncidentTIM(c *fiber.Ctx, messageEncoder *encoder.Encoder) error {
	event, err := lookupEvent(c)
	if event == nil {
		return err
	}

	return c.JSON(messageEncoder.EncodeEventTIM(event))
}

func getIncidentCVTIM(c *fiber.Ctx, messageEncoder *encoder.Encoder) error {
	event, err := lookupEvent(c)
	if event == nil {
		return err
	}

	message, err := messageEncoder.EncodeEventCVTIM(c.Context(), event)
	if err != nil {
		// The extension degraded to defaults; the message is still valid
		log.Warn().Err(err).Str("event", event.PrimaryIdentifier).Msg("Commercial vehicle lookup degraded")
	}

	return c.JSON(message)
}
