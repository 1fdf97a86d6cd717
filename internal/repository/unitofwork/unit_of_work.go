package unitofwork

import (
	"context"

	"imbewu-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CertificateRepository() contract.CertificateRepository
	AppointmentRepository() contract.AppointmentRepository
	VerificationRecordRepository() contract.VerificationRecordRepository
	NotificationRepository() contract.NotificationRepository
}
