// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}

// publishUsageEvent emits the usage audit trail event after a recorded AI
// request. Failures are logged, never surfaced: the request itself already
// succeeded.
func publishUsageEvent(ctx context.Context, publisher IPublisherService, log logger.ILogger, module string, user *entity.User, feature string) {
	if publisher == nil || user.AiCycleStartedAt == nil {
		return
	}

	payload, err := json.Marshal(dto.PublishUsageMessage{
		UserId:         user.Id,
		Feature:        feature,
		CycleStartedAt: *user.AiCycleStartedAt,
	})
	if err != nil {
		return
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		log.Warn(module, "Failed to publish usage event", map[string]interface{}{"error": err.Error(), "user_id": user.Id})
	}
}
