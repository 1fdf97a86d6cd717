package memory

import (
	"time"

	"imbewu-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ScannerRepository keeps live scanner sessions in process memory. Sessions
// are transient by nature: if the server restarts the client simply starts a
// new one, so there is no reason to persist them.
type ScannerRepository struct {
	cache *cache.Cache
}

func NewScannerRepository(ttl time.Duration) *ScannerRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &ScannerRepository{
		cache: c,
	}
}

func userKey(userId uuid.UUID) string {
	return "user:" + userId.String()
}

func (r *ScannerRepository) Save(session *entity.ScannerSession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
	r.cache.Set(userKey(session.UserId), session.Id.String(), cache.DefaultExpiration)
}

func (r *ScannerRepository) Get(sessionId uuid.UUID) (*entity.ScannerSession, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*entity.ScannerSession), true
	}
	return nil, false
}

// GetByUser returns the user's active session, if any.
func (r *ScannerRepository) GetByUser(userId uuid.UUID) (*entity.ScannerSession, bool) {
	x, found := r.cache.Get(userKey(userId))
	if !found {
		return nil, false
	}
	id, err := uuid.Parse(x.(string))
	if err != nil {
		return nil, false
	}
	return r.Get(id)
}

func (r *ScannerRepository) Delete(session *entity.ScannerSession) {
	r.cache.Delete(session.Id.String())
	r.cache.Delete(userKey(session.UserId))
}
