package mapper

import (
	"encoding/json"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/model"

	"gorm.io/datatypes"
)

type VerificationMapper struct{}

func NewVerificationMapper() *VerificationMapper {
	return &VerificationMapper{}
}

func (m *VerificationMapper) ToEntity(r *model.VerificationRecord) *entity.VerificationRecord {
	if r == nil {
		return nil
	}
	var payload map[string]any
	if len(r.Payload) > 0 {
		_ = json.Unmarshal(r.Payload, &payload)
	}
	return &entity.VerificationRecord{
		Id:              r.Id,
		Barcode:         r.Barcode,
		UserId:          r.UserId,
		Status:          entity.VerificationStatus(r.Status),
		VerifiedBy:      r.VerifiedBy,
		ComplianceScore: r.ComplianceScore,
		Payload:         payload,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *VerificationMapper) ToModel(r *entity.VerificationRecord) *model.VerificationRecord {
	if r == nil {
		return nil
	}
	var payload datatypes.JSON
	if r.Payload != nil {
		raw, _ := json.Marshal(r.Payload)
		payload = datatypes.JSON(raw)
	}
	return &model.VerificationRecord{
		Id:              r.Id,
		Barcode:         r.Barcode,
		UserId:          r.UserId,
		Status:          string(r.Status),
		VerifiedBy:      r.VerifiedBy,
		ComplianceScore: r.ComplianceScore,
		Payload:         payload,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *VerificationMapper) ToEntities(records []*model.VerificationRecord) []*entity.VerificationRecord {
	entities := make([]*entity.VerificationRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
