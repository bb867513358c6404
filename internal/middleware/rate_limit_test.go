package middleware

import (
	"testing"
)

func TestRateLimiter_BurstThenBlocked(t *testing.T) {
	rl := newRateLimiter(60) // 1 req/s, burst 6

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("1.2.3.4") {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Fatalf("allowed = %d, want burst admitted then blocked", allowed)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := newRateLimiter(60)

	for i := 0; i < 20; i++ {
		rl.Allow("1.1.1.1")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("a fresh client must not inherit another client's exhaustion")
	}
}

func TestRateLimiter_ZeroConfigFallsBack(t *testing.T) {
	rl := newRateLimiter(0)
	if !rl.Allow("3.3.3.3") {
		t.Fatal("fallback limiter should admit the first request")
	}
}
