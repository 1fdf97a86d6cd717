package mapper

import (
	"imbewu-be/internal/entity"
	"imbewu-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:            a.Id,
		SeekerId:      a.SeekerId,
		ContributorId: a.ContributorId,
		Title:         a.Title,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Type:          entity.AppointmentType(a.Type),
		Notes:         a.Notes,
		Status:        entity.AppointmentStatus(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:            a.Id,
		SeekerId:      a.SeekerId,
		ContributorId: a.ContributorId,
		Title:         a.Title,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Type:          string(a.Type),
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToEntities(appointments []*model.Appointment) []*entity.Appointment {
	entities := make([]*entity.Appointment, len(appointments))
	for i, a := range appointments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
