package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-strategy-agent-be/internal/dto"
	"ai-strategy-agent-be/pkg/events"
	pktNats "ai-strategy-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process agent event topic and republishes to
// the NATS bus so external systems (CRM sync, analytics) see interview
// progress. When NATS is not configured events are consumed and dropped.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AgentEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal agent event: %v", err)
		msg.Ack() // malformed messages would loop forever on Nack
		return
	}

	if cs.eventPublisher == nil {
		msg.Ack()
		return
	}

	event := events.NewEvent(payload.EventType, map[string]interface{}{
		"session_id": payload.SessionId.String(),
		"user_id":    payload.UserId.String(),
		"agent_key":  payload.AgentKey,
		"section_id": payload.SectionId,
		"export_url": payload.ExportURL,
	})

	if err := cs.eventPublisher.Publish(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to forward agent event %s: %v", payload.EventType, err)
		msg.Nack() // retriable, NATS may be temporarily down
		return
	}

	msg.Ack()
}
