package service

import (
	"context"
	"fmt"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/logger"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/internal/websocket"
	"imbewu-be/pkg/events"

	"github.com/google/uuid"
)

type INotificationService interface {
	// HandleEvent turns a bus event into a stored notification and pushes
	// it to the user's live connections.
	HandleEvent(ctx context.Context, event events.Event) error
	List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.NotificationResponse, int64, error)
	UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Broadcast(ctx context.Context, req *dto.BroadcastRequest) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, hub *websocket.Hub, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		hub:        hub,
		logger:     log,
	}
}

func (s *notificationService) HandleEvent(ctx context.Context, event events.Event) error {
	data := event.Payload()

	userIdStr, _ := data["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		// Events without a target user are dropped, not retried.
		s.logger.Warn("Notification", "Event without usable user_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	title, body := describeEvent(entity.NotificationType(event.EventType()), data)

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      entity.NotificationType(event.EventType()),
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Send(userId, notification)
	}
	return nil
}

func describeEvent(eventType entity.NotificationType, data map[string]interface{}) (title, body string) {
	productName, _ := data["product_name"].(string)
	contributorName, _ := data["contributor_name"].(string)

	switch eventType {
	case entity.NotificationCertificateIssued:
		certId, _ := data["certificate_id"].(string)
		return "Certificate issued", fmt.Sprintf("A food safety certificate (%s) was issued for %s.", certId, productName)
	case entity.NotificationVerificationRecorded:
		return "Product verification recorded", fmt.Sprintf("Your verification of %s was recorded.", productName)
	case entity.NotificationAppointmentBooked:
		return "Appointment booked", fmt.Sprintf("Your appointment with %s is scheduled.", contributorName)
	case entity.NotificationAppointmentCancelled:
		return "Appointment cancelled", "One of your appointments was cancelled."
	default:
		return string(eventType), ""
	}
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.NotificationResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.NotificationRepository().Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, 0, err
	}

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Data:      n.Data,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, total, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Filter("read", false),
	)
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}

func (s *notificationService) Broadcast(ctx context.Context, req *dto.BroadcastRequest) error {
	notification := &entity.Notification{
		Id:        uuid.New(),
		Type:      "system.broadcast",
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if s.hub != nil {
		s.hub.Broadcast(notification)
	}
	return nil
}
