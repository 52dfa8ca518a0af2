package credstore

import (
	"sync"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
)

// MemStore keeps the pair in memory. Used in tests and wherever persistence
// across restarts is not wanted.
type MemStore struct {
	sync.RWMutex
	token   string
	teacher session.Teacher
	set     bool
}

var _ session.TokenStore = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(token string, tchr session.Teacher) error {
	s.Lock()
	defer s.Unlock()
	s.token, s.teacher, s.set = token, tchr, true
	return nil
}

func (s *MemStore) Read() (string, session.Teacher, bool, error) {
	s.RLock()
	defer s.RUnlock()
	if !s.set {
		return "", session.Teacher{}, false, nil
	}
	return s.token, s.teacher, true, nil
}

func (s *MemStore) Clear() error {
	s.Lock()
	defer s.Unlock()
	s.token, s.teacher, s.set = "", session.Teacher{}, false
	return nil
}
