package service

import (
	"context"
	"fmt"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/events"
	pktNats "imbewu-be/pkg/nats"

	"github.com/google/uuid"
)

type AppointmentFilter struct {
	Status   string
	Upcoming bool
	Past     bool
}

type IAppointmentService interface {
	ListContributors(ctx context.Context, affiliation, search string) ([]dto.ContributorResponse, error)
	CheckAvailability(ctx context.Context, contributorId uuid.UUID, start, end time.Time) (*dto.AvailabilityResponse, error)
	Create(ctx context.Context, seekerId uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, userId uuid.UUID, filter AppointmentFilter) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) error
}

type appointmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAppointmentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAppointmentService {
	return &appointmentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *appointmentService) ListContributors(ctx context.Context, affiliation, search string) ([]dto.ContributorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByRole{Role: string(entity.UserRoleContributor)},
		specification.FilterBy{Field: "status", Value: string(entity.UserStatusActive)},
		specification.OrderBy{Field: "full_name"},
	}
	if affiliation != "" {
		specs = append(specs, specification.ByCulturalAffiliation{Affiliation: affiliation})
	}
	if search != "" {
		specs = append(specs, specification.SearchUsers{Term: search})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ContributorResponse, 0, len(users))
	for _, u := range users {
		avatar := ""
		if u.AvatarURL != nil {
			avatar = *u.AvatarURL
		}
		out = append(out, dto.ContributorResponse{
			Id:                  u.Id,
			FullName:            u.FullName,
			CulturalAffiliation: u.CulturalAffiliation,
			AvatarURL:           avatar,
			Initials:            u.Initials(),
		})
	}
	return out, nil
}

// CheckAvailability reports whether a contributor's slot is free, along with
// the windows that block it.
func (s *appointmentService) CheckAvailability(ctx context.Context, contributorId uuid.UUID, start, end time.Time) (*dto.AvailabilityResponse, error) {
	if !end.After(start) {
		return nil, apperrors.Validation("End time must be after start time")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conflicting, err := uow.AppointmentRepository().FindAll(ctx,
		specification.ByContributorID{ContributorID: contributorId},
		specification.ByStatuses{Statuses: []string{
			string(entity.AppointmentStatusScheduled),
			string(entity.AppointmentStatusConfirmed),
		}},
		specification.Overlapping{Start: start, End: end},
		specification.OrderBy{Field: "start_time"},
	)
	if err != nil {
		return nil, err
	}

	windows := make([]dto.AppointmentWindow, 0, len(conflicting))
	for _, a := range conflicting {
		windows = append(windows, dto.AppointmentWindow{StartTime: a.StartTime, EndTime: a.EndTime})
	}
	return &dto.AvailabilityResponse{
		Available: len(windows) == 0,
		Conflicts: windows,
	}, nil
}

func (s *appointmentService) Create(ctx context.Context, seekerId uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.Validation("End time must be after start time")
	}
	if req.StartTime.Before(time.Now()) {
		return nil, apperrors.Validation("Appointments cannot be booked in the past")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	contributor, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: req.ContributorId},
		specification.ByRole{Role: string(entity.UserRoleContributor)},
	)
	if err != nil {
		return nil, err
	}
	if contributor == nil {
		return nil, apperrors.NotFound("Contributor not found")
	}

	// Availability check: any scheduled or confirmed appointment whose
	// window intersects the requested one blocks the slot.
	conflicts, err := uow.AppointmentRepository().Count(ctx,
		specification.ByContributorID{ContributorID: req.ContributorId},
		specification.ByStatuses{Statuses: []string{
			string(entity.AppointmentStatusScheduled),
			string(entity.AppointmentStatusConfirmed),
		}},
		specification.Overlapping{Start: req.StartTime, End: req.EndTime},
	)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, apperrors.Conflict("This time slot is not available. Please choose a different time.")
	}

	appointment := &entity.Appointment{
		Id:            uuid.New(),
		SeekerId:      seekerId,
		ContributorId: req.ContributorId,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Type:          entity.AppointmentType(req.Type),
		Notes:         req.Notes,
		Status:        entity.AppointmentStatusScheduled,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.AppointmentRepository().Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entity.NotificationAppointmentBooked, appointment, contributor.FullName)

	resp := toAppointmentResponse(appointment, contributor.FullName)
	return &resp, nil
}

func (s *appointmentService) List(ctx context.Context, userId uuid.UUID, filter AppointmentFilter) ([]dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.BySeekerID{SeekerID: userId},
		specification.OrderBy{Field: "start_time"},
	}
	if filter.Status != "" {
		specs = append(specs, specification.ByStatus{Status: filter.Status})
	}
	if filter.Upcoming {
		specs = append(specs, specification.Upcoming{Now: time.Now()})
	} else if filter.Past {
		specs = append(specs, specification.Upcoming{Now: time.Now(), Past: true})
	}

	appointments, err := uow.AppointmentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		name := ""
		if contributor, findErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: a.ContributorId}); findErr == nil && contributor != nil {
			name = contributor.FullName
		}
		out = append(out, toAppointmentResponse(a, name))
	}
	return out, nil
}

func (s *appointmentService) Get(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) (*dto.AppointmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: appointmentId})
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperrors.NotFound("Appointment not found")
	}
	if appointment.SeekerId != userId && appointment.ContributorId != userId {
		return nil, apperrors.Forbidden("You can only view your own appointments")
	}

	name := ""
	if contributor, findErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: appointment.ContributorId}); findErr == nil && contributor != nil {
		name = contributor.FullName
	}
	resp := toAppointmentResponse(appointment, name)
	return &resp, nil
}

func (s *appointmentService) Cancel(ctx context.Context, userId uuid.UUID, appointmentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: appointmentId})
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperrors.NotFound("Appointment not found")
	}
	if appointment.SeekerId != userId && appointment.ContributorId != userId {
		return apperrors.Forbidden("You can only cancel your own appointments")
	}
	if !appointment.Cancellable() {
		return apperrors.Conflict("This appointment can no longer be cancelled")
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now()
	if err := uow.AppointmentRepository().Update(ctx, appointment); err != nil {
		return err
	}

	s.publishEvent(ctx, entity.NotificationAppointmentCancelled, appointment, "")
	return nil
}

func (s *appointmentService) publishEvent(ctx context.Context, eventType entity.NotificationType, appointment *entity.Appointment, contributorName string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.New(string(eventType), map[string]interface{}{
		"user_id":          appointment.SeekerId.String(),
		"appointment_id":   appointment.Id.String(),
		"contributor_id":   appointment.ContributorId.String(),
		"contributor_name": contributorName,
		"title":            appointment.Title,
		"start_time":       appointment.StartTime.Format(time.RFC3339),
	})
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("Failed to publish appointment event: %v\n", err)
	}
}

func toAppointmentResponse(a *entity.Appointment, contributorName string) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		Id:              a.Id,
		SeekerId:        a.SeekerId,
		ContributorId:   a.ContributorId,
		ContributorName: contributorName,
		Title:           a.Title,
		Type:            string(a.Type),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Notes:           a.Notes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}
