package service

import (
	"context"
	"encoding/json"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/logger"
	"visa-casework-be/internal/websocket"
	"visa-casework-be/pkg/cache"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	progressTopic   string
	invalidateTopic string
	hub             *websocket.Hub
	responseCache   *cache.ChecklistCache
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	progressTopic string,
	invalidateTopic string,
	hub *websocket.Hub,
	responseCache *cache.ChecklistCache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		progressTopic:   progressTopic,
		invalidateTopic: invalidateTopic,
		hub:             hub,
		responseCache:   responseCache,
		logger:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	progressMessages, err := cs.pubSub.Subscribe(ctx, cs.progressTopic)
	if err != nil {
		return err
	}
	invalidateMessages, err := cs.pubSub.Subscribe(ctx, cs.invalidateTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range progressMessages {
			cs.processProgress(msg)
		}
	}()
	go func() {
		for msg := range invalidateMessages {
			cs.processInvalidate(ctx, msg)
		}
	}()

	return nil
}

// processProgress fans an analysis checkpoint out to the websocket watchers of
// the application.
func (cs *consumerService) processProgress(msg *message.Message) {
	var event dto.AnalysisProgressEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal progress event", map[string]interface{}{"error": err})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.hub != nil {
		cs.hub.Send(event.ApplicationId, "analysis_progress", event)
	}
	msg.Ack()
}

// processInvalidate drops the cached checklist response of the application.
func (cs *consumerService) processInvalidate(ctx context.Context, msg *message.Message) {
	var payload dto.ChecklistInvalidateMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal invalidate message", map[string]interface{}{"error": err})
		msg.Ack()
		return
	}

	cs.responseCache.Invalidate(ctx, payload.ApplicationId.String())
	msg.Ack()
}
