package implementation

import (
	"context"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/mapper"
	"imbewu-be/internal/model"
	"imbewu-be/internal/repository/contract"
	"imbewu-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VerificationRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VerificationMapper
}

func NewVerificationRecordRepository(db *gorm.DB) contract.VerificationRecordRepository {
	return &VerificationRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewVerificationMapper(),
	}
}

func (r *VerificationRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VerificationRecordRepositoryImpl) Create(ctx context.Context, record *entity.VerificationRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *VerificationRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRecord, error) {
	var models []*model.VerificationRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VerificationRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VerificationRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
