package dispatch

import (
	"math/rand/v2"
	"time"
)

// backoff returns the pause before the next attempt: BaseBackoff doubled per
// completed attempt with +-50% jitter, capped at MaxBackoff. A sane
// Retry-After from the push service overrides a shorter computed wait.
func (s *Service) backoff(attempt int, retryAfter time.Duration) time.Duration {
	wait := s.cfg.BaseBackoff << (attempt - 1)
	if wait > s.cfg.MaxBackoff || wait <= 0 {
		wait = s.cfg.MaxBackoff
	}
	wait = wait/2 + rand.N(wait)

	if retryAfter > wait {
		wait = min(retryAfter, s.cfg.MaxBackoff)
	}
	return wait
}
