package implementation

import (
	"context"
	"errors"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/mapper"
	"imbewu-be/internal/model"
	"imbewu-be/internal/repository/contract"
	"imbewu-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CertificateMapper
}

func NewCertificateRepository(db *gorm.DB) contract.CertificateRepository {
	return &CertificateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCertificateMapper(),
	}
}

func (r *CertificateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, cert *entity.Certificate) error {
	m := r.mapper.ToModel(cert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cert = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error) {
	var m model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CertificateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error) {
	var models []*model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CertificateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Certificate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
