package service

import (
	"context"
	"strings"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/repository/contract"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// culturalGreetings maps a cultural affiliation to its greeting. The
// dashboard falls back to "Hello" for unknown or empty affiliations.
var culturalGreetings = map[string]string{
	"zulu":     "Sawubona",
	"xhosa":    "Molo",
	"pedi":     "Thobela",
	"tswana":   "Dumela",
	"sotho":    "Lumela",
	"tsonga":   "Avuxeni",
	"swazi":    "Sawubona",
	"venda":    "Ndaa",
	"ndebele":  "Lotjhani",
	"other":    "Hello",
	"global":   "Welcome",
	"multiple": "Greetings",
	"ally":     "Welcome",
}

// CulturalGreeting resolves the dashboard salutation for an affiliation.
func CulturalGreeting(affiliation string) string {
	if affiliation == "" {
		return "Hello"
	}
	if greeting, ok := culturalGreetings[strings.ToLower(affiliation)]; ok {
		return greeting
	}
	return culturalGreetings["other"]
}

// memberDays counts whole days since the account was created, never
// negative.
func memberDays(createdAt, now time.Time) int64 {
	days := int64(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	recentRepo contract.RecentVerificationRepository
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, recentRepo contract.RecentVerificationRepository) IUserService {
	return &userService{
		uowFactory: uowFactory,
		recentRepo: recentRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.CulturalAffiliation = req.CulturalAffiliation
	user.UpdatedAt = time.Now()

	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	verifiedCount, err := uow.VerificationRecordRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.VerificationStatusVerified)},
	)
	if err != nil {
		return nil, err
	}

	certCount, err := uow.CertificateRepository().Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upcomingCount, err := uow.AppointmentRepository().Count(ctx,
		specification.BySeekerID{SeekerID: userId},
		specification.Upcoming{Now: now},
		specification.ByStatuses{Statuses: []string{
			string(entity.AppointmentStatusScheduled),
			string(entity.AppointmentStatusConfirmed),
		}},
	)
	if err != nil {
		return nil, err
	}

	unreadCount, err := uow.NotificationRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Filter("read", false),
	)
	if err != nil {
		return nil, err
	}

	upcoming, err := uow.AppointmentRepository().FindAll(ctx,
		specification.BySeekerID{SeekerID: userId},
		specification.Upcoming{Now: now},
		specification.ByStatuses{Statuses: []string{
			string(entity.AppointmentStatusScheduled),
			string(entity.AppointmentStatusConfirmed),
		}},
		specification.OrderBy{Field: "start_time"},
		specification.Pagination{Limit: 3},
	)
	if err != nil {
		return nil, err
	}

	recents, err := s.recentRepo.Load(ctx, userId)
	if err != nil {
		return nil, err
	}

	appointments := make([]dto.AppointmentResponse, 0, len(upcoming))
	for _, a := range upcoming {
		appointments = append(appointments, toAppointmentResponse(a, ""))
	}

	return &dto.DashboardResponse{
		Greeting:             CulturalGreeting(user.CulturalAffiliation),
		FullName:             user.FullName,
		Stats: dto.DashboardStats{
			VerifiedProducts:     verifiedCount,
			CertificatesEarned:   certCount,
			UpcomingAppointments: upcomingCount,
			MemberDays:           memberDays(user.CreatedAt, now),
			UnreadNotifications:  unreadCount,
		},
		UpcomingAppointments: appointments,
		RecentVerifications:  recents,
	}, nil
}
