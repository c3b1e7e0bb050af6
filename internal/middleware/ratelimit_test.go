package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	r := NewInMemoryRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !r.Allow("1.2.3.4") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if r.Allow("1.2.3.4") {
		t.Fatal("request over limit allowed")
	}
	// A different key has its own window.
	if !r.Allow("5.6.7.8") {
		t.Fatal("independent key denied")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	r := NewInMemoryRateLimiter(1, 10*time.Millisecond)
	if !r.Allow("k") {
		t.Fatal("first request denied")
	}
	if r.Allow("k") {
		t.Fatal("second request in same window allowed")
	}
	time.Sleep(15 * time.Millisecond)
	if !r.Allow("k") {
		t.Fatal("request after window reset denied")
	}
}
