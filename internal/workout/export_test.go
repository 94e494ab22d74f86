package workout

import "time"

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) SetIDGenerator(newID func() string) {
	s.newID = newID
}

func (s *Service) HeldSessionLocks() int {
	return s.locks.size()
}
