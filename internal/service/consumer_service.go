package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/events"
	pktNats "imbewu-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the verification pipeline: every completed lookup
// becomes a durable history row, and interested parties are told over NATS.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
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
	var payload dto.RecordVerificationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal verification message: %v", err)
		msg.Ack() // malformed messages would retry forever otherwise
		return
	}

	record := &entity.VerificationRecord{
		Id:              uuid.New(),
		Barcode:         payload.Barcode,
		UserId:          payload.UserId,
		Status:          entity.VerificationStatus(payload.Status),
		VerifiedBy:      payload.VerifiedBy,
		ComplianceScore: payload.ComplianceScore,
		Payload: map[string]any{
			"product_name": payload.ProductName,
		},
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VerificationRecordRepository().Create(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to persist verification record for %s: %v", payload.Barcode, err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.New(string(entity.NotificationVerificationRecorded), map[string]interface{}{
			"user_id":      payload.UserId.String(),
			"barcode":      payload.Barcode,
			"status":       payload.Status,
			"product_name": payload.ProductName,
		})
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish verification event: %v", err)
		}
	}

	msg.Ack()
}
