package mapper

import (
	"imbewu-be/internal/entity"
	"imbewu-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		FullName:            u.FullName,
		Phone:               u.Phone,
		Role:                entity.UserRole(u.Role),
		Status:              entity.UserStatus(u.Status),
		CulturalAffiliation: u.CulturalAffiliation,
		AvatarURL:           u.AvatarURL,
		TermsAgreed:         u.TermsAgreed,
		EthicsAgreed:        u.EthicsAgreed,
		NewsletterAgreed:    u.NewsletterAgreed,
		IsVerified:          u.IsVerified,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		FullName:            u.FullName,
		Phone:               u.Phone,
		Role:                string(u.Role),
		Status:              string(u.Status),
		CulturalAffiliation: u.CulturalAffiliation,
		AvatarURL:           u.AvatarURL,
		TermsAgreed:         u.TermsAgreed,
		EthicsAgreed:        u.EthicsAgreed,
		NewsletterAgreed:    u.NewsletterAgreed,
		IsVerified:          u.IsVerified,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
