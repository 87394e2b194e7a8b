package events

import (
	"context"

	"checklist/config"
	"checklist/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type kafkaBroker struct {
	client kafka.Client
	topic  string
	group  string
}

// NewKafka returns a broker that routes events through the configured topic.
// Each subscription is its own consumer in the configured group.
func NewKafka(config *config.Config) Broker {
	return &kafkaBroker{
		client: kafka.New(config),
		topic:  config.Events.Kafka.Topic,
		group:  config.Events.Kafka.ConsumerGroup,
	}
}

func (b *kafkaBroker) Publish(ctx context.Context, event Event) {
	err := b.client.SendMessages(ctx, b.topic, kafka.Message{
		Key:   event.UserID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to publish app event")
	}
}

func (b *kafkaBroker) Subscribe(handler Handler) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go b.client.Consume(ctx, b.group, b.topic, func(message kafkaGo.Message) {
		event, err := kafka.DecodeKafkaMessage[Event](message)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode app event")

			return
		}

		handler(event)
	})

	return cancel
}
