package mapper

import (
	"imbewu-be/internal/entity"
	"imbewu-be/internal/model"
)

type CertificateMapper struct{}

func NewCertificateMapper() *CertificateMapper {
	return &CertificateMapper{}
}

func (m *CertificateMapper) ToEntity(c *model.Certificate) *entity.Certificate {
	if c == nil {
		return nil
	}
	return &entity.Certificate{
		Id:            c.Id,
		UserId:        c.UserId,
		CertificateId: c.CertificateId,
		ProductName:   c.ProductName,
		Brand:         c.Brand,
		Barcode:       c.Barcode,
		IssuedBy:      c.IssuedBy,
		IssuedAt:      c.IssuedAt,
	}
}

func (m *CertificateMapper) ToModel(c *entity.Certificate) *model.Certificate {
	if c == nil {
		return nil
	}
	return &model.Certificate{
		Id:            c.Id,
		UserId:        c.UserId,
		CertificateId: c.CertificateId,
		ProductName:   c.ProductName,
		Brand:         c.Brand,
		Barcode:       c.Barcode,
		IssuedBy:      c.IssuedBy,
		IssuedAt:      c.IssuedAt,
	}
}

func (m *CertificateMapper) ToEntities(certs []*model.Certificate) []*entity.Certificate {
	entities := make([]*entity.Certificate, len(certs))
	for i, c := range certs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
