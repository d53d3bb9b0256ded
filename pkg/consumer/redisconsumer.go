package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/eko/gocache/lib/v4/cache"
	lib_store "github.com/eko/gocache/lib/v4/store"
	redis_store "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"

	"github.com/roadcast/roadcast/pkg/elastic_client"
	"github.com/roadcast/roadcast/pkg/encoder"
	"github.com/roadcast/roadcast/pkg/rcdf"
	"github.com/roadcast/roadcast/pkg/redis_client"
	"github.com/roadcast/roadcast/pkg/spatial"
)

const numConsumers = 5
const numEncodeWorkers = 8

var cifsCache *cache.Cache[string]
var cacheExpirationTime = 90 * time.Minute

func createCIFSCache() {
	redisStore := redis_store.NewRedis(redis_client.Client, lib_store.WithExpiration(cacheExpirationTime))

	cifsCache = cache.New[string](redisStore)
}

func StartConsumers() {
	createCIFSCache()

	log.Info().Msg("Starting event encode consumers")

	queue, err := redis_client.QueueConnection.OpenQueue("events-queue")
	if err != nil {
		panic(err)
	}
	if err := queue.StartConsuming(numConsumers*200, 1*time.Second); err != nil {
		panic(err)
	}

	messageEncoder := encoder.NewEncoder(encoder.NewSequencer())
	messageEncoder.CVResolver = encoder.NewCVExtensionResolver(spatial.MongoFinder{})

	for i := 0; i < numConsumers; i++ {
		go startEventConsumer(queue, i, messageEncoder)
	}
}

func startEventConsumer(queue rmq.Queue, id int, messageEncoder *encoder.Encoder) {
	log.Info().Msgf("Starting event consumer %d", id)

	if _, err := queue.AddBatchConsumer(fmt.Sprintf("events-queue-%d", id), 200, 2*time.Second, NewBatchConsumer(id, messageEncoder)); err != nil {
		panic(err)
	}
}

type BatchConsumer struct {
	id int

	encoder *encoder.Encoder
}

func NewBatchConsumer(id int, messageEncoder *encoder.Encoder) *BatchConsumer {
	return &BatchConsumer{id: id, encoder: messageEncoder}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	ctx := context.Background()

	var events []*rcdf.SourceEvent

	for _, delivery := range batch {
		var event *rcdf.SourceEvent
		if err := json.Unmarshal([]byte(delivery.Payload()), &event); err != nil {
			log.Error().Err(err).Msg("Failed to decode queued event")

			if err := delivery.Reject(); err != nil {
				log.Error().Err(err).Msg("Failed to reject queued event")
			}

			continue
		}

		events = append(events, event)

		if err := delivery.Ack(); err != nil {
			log.Error().Err(err).Msg("Failed to ack queued event")
		}
	}

	result := consumer.encoder.EncodeBatchCVTIM(ctx, events, numEncodeWorkers)

	for _, failure := range result.Failures {
		log.Error().
			Str("event", failure.EventID).
			Str("reason", failure.Reason).
			Msg("Commercial vehicle lookup degraded to defaults")
	}

	for i, event := range events {
		consumer.cacheCIFSRecord(ctx, event)
		indexMessageSummary(event, result.Messages[i])
	}

	log.Debug().
		Int("events", len(events)).
		Int("degraded", len(result.Failures)).
		Msgf("Consumer %d encoded batch", consumer.id)
}

func (consumer *BatchConsumer) cacheCIFSRecord(ctx context.Context, event *rcdf.SourceEvent) {
	cifsRecord := encoder.EncodeCIFS(event)

	cifsJSON, err := json.Marshal(cifsRecord)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal CIFS record")
		return
	}

	if err := cifsCache.Set(ctx, fmt.Sprintf("cifs/%s", event.PrimaryIdentifier), string(cifsJSON)); err != nil {
		log.Error().Err(err).Msg("Failed to cache CIFS record")
	}
}

type messageSummaryDocument struct {
	EventID   string
	MsgCnt    int
	PacketID  string
	Priority  int
	FrameType rcdf.FrameType
	ITISCodes []int
	Timestamp time.Time
}

func indexMessageSummary(event *rcdf.SourceEvent, message *rcdf.TravelerMessage) {
	if message == nil || len(message.DataFrames) == 0 {
		return
	}

	frame := message.DataFrames[0]

	summary := messageSummaryDocument{
		EventID:   event.PrimaryIdentifier,
		MsgCnt:    message.MsgCnt,
		PacketID:  message.PacketID,
		Priority:  frame.Priority,
		FrameType: frame.FrameType,
		ITISCodes: frame.Content.ITISCodes,
		Timestamp: message.Timestamp,
	}

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message summary")
		return
	}

	elastic_client.IndexRequest("roadcast-messages-1", bytes.NewReader(summaryJSON))
}
