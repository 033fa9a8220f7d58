package progress

import "time"

// SetNow overrides the service clock in tests.
func SetNow(s *Service, now func() time.Time) {
	s.now = now
}

// SubmitRetryAttempts exposes the optimistic-lock retry bound to tests.
const SubmitRetryAttempts = submitRetryAttempts
