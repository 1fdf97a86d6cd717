// FILE: internal/service/fakes_test.go
package service

import (
	"context"
	"fmt"
	"sync"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/logger"
	"imbewu-be/internal/repository/contract"
	"imbewu-be/internal/repository/specification"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/pkg/barcode"
	"imbewu-be/pkg/offclient"

	"github.com/google/uuid"
)

// nopLogger satisfies logger.ILogger without writing anywhere.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// fakeEngine records every engine call in order so tests can assert the
// stop-settle-start sequencing.
type fakeEngine struct {
	mu    sync.Mutex
	calls []string

	initErr  error
	startErr error
}

func (e *fakeEngine) record(call string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call)
}

func (e *fakeEngine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.calls))
	copy(out, e.calls)
	return out
}

func (e *fakeEngine) Init(ctx context.Context, cfg barcode.Config) error {
	e.record(fmt.Sprintf("init:%s", cfg.Facing))
	return e.initErr
}

func (e *fakeEngine) Start(ctx context.Context, sessionId string) error {
	e.record("start")
	return e.startErr
}

func (e *fakeEngine) Capture(ctx context.Context, sessionId string) error {
	e.record("capture")
	return nil
}

func (e *fakeEngine) Stop(ctx context.Context, sessionId string) error {
	e.record("stop")
	return nil
}

// fakeProductClient counts upstream calls; rejected requests must never
// reach it.
type fakeProductClient struct {
	fetchCalls  int
	searchCalls int

	record    *entity.ProductRecord
	fetchErr  error
	hits      []offclient.SearchHit
	searchErr error
}

func (c *fakeProductClient) FetchProduct(ctx context.Context, barcode string) (*entity.ProductRecord, error) {
	c.fetchCalls++
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	return c.record, nil
}

func (c *fakeProductClient) SearchProducts(ctx context.Context, terms string) ([]offclient.SearchHit, error) {
	c.searchCalls++
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	return c.hits, nil
}

// fakeRecentRepo is an in-memory stand-in for the Redis recent list.
type fakeRecentRepo struct {
	lists map[uuid.UUID][]entity.RecentVerificationEntry
}

func newFakeRecentRepo() *fakeRecentRepo {
	return &fakeRecentRepo{lists: make(map[uuid.UUID][]entity.RecentVerificationEntry)}
}

func (r *fakeRecentRepo) Load(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error) {
	return r.lists[userId], nil
}

func (r *fakeRecentRepo) Save(ctx context.Context, userId uuid.UUID, list []entity.RecentVerificationEntry) error {
	r.lists[userId] = list
	return nil
}

// fakePublisher collects queued payloads.
type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// fakeMailer records recipients instead of sending anything. Welcome mails
// go out on a goroutine, hence the mutex.
type fakeMailer struct {
	mu       sync.Mutex
	welcomes []string
}

func (m *fakeMailer) SendWelcome(toEmail, fullName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomes = append(m.welcomes, toEmail)
	return nil
}

func (m *fakeMailer) SendCertificateIssued(toEmail, productName, certificateId string) error {
	return nil
}

// fakeUowFactory hands out one shared unit of work so tests can pre-seed
// certificates and history rows.
type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: &fakeUow{
		users:   &fakeUserRepo{},
		certs:   &fakeCertificateRepo{},
		records: &fakeVerificationRecordRepo{},
	}}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	users   *fakeUserRepo
	certs   *fakeCertificateRepo
	records *fakeVerificationRecordRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) CertificateRepository() contract.CertificateRepository { return u.certs }
func (u *fakeUow) AppointmentRepository() contract.AppointmentRepository { return nil }
func (u *fakeUow) VerificationRecordRepository() contract.VerificationRecordRepository {
	return u.records
}
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return nil }

// barcodeFilter pulls the barcode out of a spec list; the fakes only
// understand that one filter.
func barcodeFilter(specs []specification.Specification) (string, bool) {
	for _, s := range specs {
		if byBarcode, ok := s.(specification.ByBarcode); ok {
			return byBarcode.Barcode, true
		}
	}
	return "", false
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		match := true
		for _, s := range specs {
			if byEmail, ok := s.(specification.ByEmail); ok && u.Email != byEmail.Email {
				match = false
			}
			if byId, ok := s.(specification.ByID); ok && u.Id != byId.ID {
				match = false
			}
		}
		if match {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeCertificateRepo struct {
	certs []*entity.Certificate
}

func (r *fakeCertificateRepo) Create(ctx context.Context, cert *entity.Certificate) error {
	r.certs = append(r.certs, cert)
	return nil
}

func (r *fakeCertificateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error) {
	code, filtered := barcodeFilter(specs)
	for _, c := range r.certs {
		if !filtered || c.Barcode == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCertificateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error) {
	return r.certs, nil
}

func (r *fakeCertificateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.certs)), nil
}

type fakeVerificationRecordRepo struct {
	records []*entity.VerificationRecord
}

func (r *fakeVerificationRecordRepo) Create(ctx context.Context, record *entity.VerificationRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeVerificationRecordRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationRecord, error) {
	code, filtered := barcodeFilter(specs)
	out := make([]*entity.VerificationRecord, 0, len(r.records))
	for _, rec := range r.records {
		if !filtered || rec.Barcode == code {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeVerificationRecordRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	records, _ := r.FindAll(ctx, specs...)
	return int64(len(records)), nil
}
