package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/logger"
	"imbewu-be/internal/repository/contract"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/offclient"
	"imbewu-be/pkg/scoring"

	"github.com/google/uuid"
)

// complianceVerifiedThreshold marks a product verified on compliance score
// alone, without an issued certificate.
const complianceVerifiedThreshold = 80

var numericBarcode = regexp.MustCompile(`^\d+$`)

type IVerificationService interface {
	LookupProduct(ctx context.Context, userId uuid.UUID, barcode string) (*dto.VerificationReportResponse, error)
	ManualLookup(ctx context.Context, userId uuid.UUID, req *dto.ManualLookupRequest) (*dto.VerificationReportResponse, error)
	SearchProducts(ctx context.Context, terms string) (*dto.SearchResponse, error)
	PreviewNewProduct(ctx context.Context, req *dto.NewProductPreviewRequest) (*dto.VerificationReportResponse, error)
	GetRecent(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error)
}

type verificationService struct {
	client     offclient.Client
	compliance scoring.ComplianceEvaluator
	scanner    scoring.IngredientScanner
	safety     scoring.SafetyEvaluator
	uowFactory unitofwork.RepositoryFactory
	recentRepo contract.RecentVerificationRepository
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewVerificationService(
	client offclient.Client,
	uowFactory unitofwork.RepositoryFactory,
	recentRepo contract.RecentVerificationRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IVerificationService {
	return &verificationService{
		client:     client,
		compliance: scoring.NewComplianceEvaluator(),
		scanner:    scoring.NewIngredientScanner(),
		safety:     scoring.NewSafetyEvaluator(),
		uowFactory: uowFactory,
		recentRepo: recentRepo,
		publisher:  publisher,
		logger:     log,
	}
}

// LookupProduct fetches the product, assembles the full report, updates the
// user's recent list and queues a history record. The report itself is
// stateless: nothing from a previous lookup leaks into this one.
func (s *verificationService) LookupProduct(ctx context.Context, userId uuid.UUID, barcode string) (*dto.VerificationReportResponse, error) {
	record, err := s.client.FetchProduct(ctx, barcode)
	if err != nil {
		if errors.Is(err, offclient.ErrProductNotFound) {
			return nil, apperrors.NotFound("Product not found in the database.")
		}
		s.logger.Error("Verification", "Product fetch failed", map[string]interface{}{"barcode": barcode, "error": err.Error()})
		return nil, apperrors.Network("Failed to fetch product data. Please try again.", err)
	}

	report, err := s.assembleReport(ctx, userId, record)
	if err != nil {
		return nil, err
	}

	s.recordLookup(ctx, userId, record, report)
	return report, nil
}

func (s *verificationService) ManualLookup(ctx context.Context, userId uuid.UUID, req *dto.ManualLookupRequest) (*dto.VerificationReportResponse, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return nil, apperrors.Validation("Please enter a barcode")
	}
	if !numericBarcode.MatchString(barcode) {
		return nil, apperrors.Validation("Barcode must contain only numbers")
	}
	return s.LookupProduct(ctx, userId, barcode)
}

func (s *verificationService) SearchProducts(ctx context.Context, terms string) (*dto.SearchResponse, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return nil, apperrors.Validation("Please enter a search term")
	}

	hits, err := s.client.SearchProducts(ctx, terms)
	if err != nil {
		s.logger.Error("Verification", "Product search failed", map[string]interface{}{"terms": terms, "error": err.Error()})
		return nil, apperrors.Network("Failed to search for products. Please try again.", err)
	}

	return &dto.SearchResponse{Hits: hits}, nil
}

// PreviewNewProduct runs the report over a vendor-entered record. The
// preview is ephemeral: it is not added to the recent list and produces no
// history row.
func (s *verificationService) PreviewNewProduct(ctx context.Context, req *dto.NewProductPreviewRequest) (*dto.VerificationReportResponse, error) {
	record := entity.NewSyntheticRecord(req.Name, req.Brand, req.Barcode, req.Category, req.Ingredients, "", time.Now())

	compliance := s.compliance.Evaluate(record)
	return &dto.VerificationReportResponse{
		Product:     toProductResponse(record),
		Verified:    false,
		Compliance:  compliance,
		Ingredients: s.scanner.Scan(record),
		Safety:      s.safety.Assess(record),
		History:     []dto.VerificationHistoryItem{},
	}, nil
}

func (s *verificationService) GetRecent(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error) {
	return s.recentRepo.Load(ctx, userId)
}

func (s *verificationService) assembleReport(ctx context.Context, userId uuid.UUID, record *entity.ProductRecord) (*dto.VerificationReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	compliance := s.compliance.Evaluate(record)

	cert, err := uow.CertificateRepository().FindOne(ctx, specification.ByBarcode{Barcode: record.Code})
	if err != nil {
		return nil, err
	}
	verified := cert != nil || compliance.Score >= complianceVerifiedThreshold

	history, err := s.loadHistory(ctx, uow, record.Code)
	if err != nil {
		return nil, err
	}

	return &dto.VerificationReportResponse{
		Product:     toProductResponse(record),
		Verified:    verified,
		Compliance:  compliance,
		Ingredients: s.scanner.Scan(record),
		Safety:      s.safety.Assess(record),
		History:     history,
	}, nil
}

func (s *verificationService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, barcode string) ([]dto.VerificationHistoryItem, error) {
	records, err := uow.VerificationRecordRepository().FindAll(ctx,
		specification.ByBarcode{Barcode: barcode},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VerificationHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, dto.VerificationHistoryItem{
			Date:   r.CreatedAt.Format("2006-01-02"),
			Status: historyLabel(r.Status),
			By:     r.VerifiedBy,
		})
	}
	return items, nil
}

func historyLabel(status entity.VerificationStatus) string {
	switch status {
	case entity.VerificationStatusVerified:
		return "Verified"
	case entity.VerificationStatusReviewRequested:
		return "Review Requested"
	default:
		return "Unverified"
	}
}

// recordLookup pushes the product onto the user's recent list and hands a
// history record to the pipeline. Failures here never break the lookup.
func (s *verificationService) recordLookup(ctx context.Context, userId uuid.UUID, record *entity.ProductRecord, report *dto.VerificationReportResponse) {
	list, err := s.recentRepo.Load(ctx, userId)
	if err != nil {
		s.logger.Warn("Verification", "Failed to load recent list", map[string]interface{}{"user_id": userId, "error": err.Error()})
	} else {
		list = entity.PushRecent(list, entity.RecentVerificationEntry{
			Code:     record.Code,
			Name:     record.Name,
			Brand:    record.Brands,
			Image:    record.ImageURL,
			Verified: report.Verified,
		})
		if err := s.recentRepo.Save(ctx, userId, list); err != nil {
			s.logger.Warn("Verification", "Failed to save recent list", map[string]interface{}{"user_id": userId, "error": err.Error()})
		}
	}

	status := entity.VerificationStatusUnverified
	if report.Verified {
		status = entity.VerificationStatusVerified
	}
	msg := dto.RecordVerificationMessage{
		Barcode:         record.Code,
		UserId:          userId,
		Status:          string(status),
		VerifiedBy:      "System Auto-Check",
		ComplianceScore: report.Compliance.Score,
		ProductName:     record.Name,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("Verification", "Failed to marshal history message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("Verification", "Failed to queue history record", map[string]interface{}{"barcode": record.Code, "error": err.Error()})
	}
}

func toProductResponse(record *entity.ProductRecord) dto.ProductResponse {
	return dto.ProductResponse{
		Code:           record.Code,
		Name:           record.Name,
		Brands:         record.Brands,
		Categories:     record.Categories,
		Image:          record.ImageURL,
		NutritionGrade: record.NutritionGrade,
		EcoScoreGrade:  record.EcoScoreGrade,
		Synthetic:      record.Synthetic,
	}
}
