package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/mailer"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/events"
	pktNats "imbewu-be/pkg/nats"
	"imbewu-be/pkg/offclient"
	"imbewu-be/pkg/scoring"

	"github.com/google/uuid"
)

type ICertificateService interface {
	Issue(ctx context.Context, userId uuid.UUID, req *dto.IssueCertificateRequest) (*dto.CertificateResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.CertificateResponse, error)
	Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CertificateResponse, error)
}

type certificateService struct {
	uowFactory     unitofwork.RepositoryFactory
	client         offclient.Client
	compliance     scoring.ComplianceEvaluator
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewCertificateService(
	uowFactory unitofwork.RepositoryFactory,
	client offclient.Client,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) ICertificateService {
	return &certificateService{
		uowFactory:     uowFactory,
		client:         client,
		compliance:     scoring.NewComplianceEvaluator(),
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

const certificateIdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateCertificateId returns "CERT-" followed by nine uppercase
// alphanumerics.
func generateCertificateId() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = certificateIdAlphabet[int(b)%len(certificateIdAlphabet)]
	}
	return fmt.Sprintf("CERT-%s", buf), nil
}

// Issue creates a new certificate for a verified product. Issuance is
// append-only: re-certifying the same barcode yields an independent record.
func (s *certificateService) Issue(ctx context.Context, userId uuid.UUID, req *dto.IssueCertificateRequest) (*dto.CertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CertificateRepository().FindOne(ctx, specification.ByBarcode{Barcode: req.Barcode})
	if err != nil {
		return nil, err
	}

	if existing == nil {
		// No prior certificate: the product must pass the compliance bar
		// right now.
		record, err := s.client.FetchProduct(ctx, req.Barcode)
		if err != nil {
			if errors.Is(err, offclient.ErrProductNotFound) {
				return nil, apperrors.NotFound("Product not found in the database.")
			}
			return nil, apperrors.Network("Failed to fetch product data. Please try again.", err)
		}
		if s.compliance.Evaluate(record).Score < complianceVerifiedThreshold {
			return nil, apperrors.Forbidden("Only verified products can receive a certificate")
		}
	}

	certId, err := generateCertificateId()
	if err != nil {
		return nil, err
	}

	cert := &entity.Certificate{
		Id:            uuid.New(),
		UserId:        userId,
		CertificateId: certId,
		ProductName:   req.ProductName,
		Brand:         req.Brand,
		Barcode:       req.Barcode,
		IssuedBy:      entity.CertificateIssuer,
		IssuedAt:      time.Now(),
	}

	if err := uow.CertificateRepository().Create(ctx, cert); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.New(string(entity.NotificationCertificateIssued), map[string]interface{}{
			"user_id":        userId.String(),
			"certificate_id": cert.CertificateId,
			"product_name":   cert.ProductName,
			"barcode":        cert.Barcode,
		})
		if pubErr := s.eventPublisher.Publish(ctx, evt); pubErr != nil {
			fmt.Printf("Failed to publish certificate event: %v\n", pubErr)
		}
	}

	go func() {
		user, findErr := s.uowFactory.NewUnitOfWork(context.Background()).
			UserRepository().FindOne(context.Background(), specification.ByID{ID: userId})
		if findErr != nil || user == nil {
			return
		}
		if mailErr := s.emailService.SendCertificateIssued(user.Email, cert.ProductName, cert.CertificateId); mailErr != nil {
			fmt.Printf("Error sending certificate email: %v\n", mailErr)
		}
	}()

	resp := toCertificateResponse(cert)
	return &resp, nil
}

func (s *certificateService) List(ctx context.Context, userId uuid.UUID) ([]dto.CertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	certs, err := uow.CertificateRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "issued_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CertificateResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, toCertificateResponse(c))
	}
	return out, nil
}

func (s *certificateService) Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.CertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cert, err := uow.CertificateRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, apperrors.NotFound("Certificate not found")
	}
	resp := toCertificateResponse(cert)
	return &resp, nil
}

func toCertificateResponse(cert *entity.Certificate) dto.CertificateResponse {
	return dto.CertificateResponse{
		Id:            cert.Id,
		CertificateId: cert.CertificateId,
		ProductName:   cert.ProductName,
		Brand:         cert.Brand,
		Barcode:       cert.Barcode,
		IssuedBy:      cert.IssuedBy,
		IssuedAt:      cert.IssuedAt,
	}
}
