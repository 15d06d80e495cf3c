package middleware

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToRate(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute, "test-limit")

	for i := 0; i < 3; i++ {
		if allowed, _ := limiter.isAllowed("1.2.3.4"); !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.isAllowed("1.2.3.4")
	if allowed {
		t.Error("request over the limit should be rejected")
	}
	if retryAfter < 1 {
		t.Errorf("expected positive retry-after, got %d", retryAfter)
	}

	// A different IP has its own budget
	if allowed, _ := limiter.isAllowed("5.6.7.8"); !allowed {
		t.Error("a fresh IP should be allowed")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond, "test-reset")

	if allowed, _ := limiter.isAllowed("1.2.3.4"); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := limiter.isAllowed("1.2.3.4"); allowed {
		t.Fatal("second request in the same window should be rejected")
	}

	time.Sleep(30 * time.Millisecond)

	if allowed, _ := limiter.isAllowed("1.2.3.4"); !allowed {
		t.Error("request after the window elapsed should be allowed")
	}
}

// TestRateLimiterConcurrentAccess verifies the rate limiter is safe under concurrent access.
// Run with: go test -race -count=1 ./internal/middleware/ -run TestRateLimiterConcurrentAccess
func TestRateLimiterConcurrentAccess(t *testing.T) {
	limiter := NewRateLimiter(100, time.Minute, "test-concurrent")

	var wg sync.WaitGroup
	// 50 goroutines each making 20 requests with varying IPs
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				// Mix of same IP and different IPs to stress both paths
				ip := "192.168.1.1"
				if j%3 == 0 {
					ip = "10.0.0." + string(rune('0'+goroutineID%10))
				}
				allowed, retryAfter := limiter.isAllowed(ip)
				_ = allowed
				_ = retryAfter
			}
		}(i)
	}
	wg.Wait()
}

// TestRateLimiterConcurrentWithCleanup verifies no race between request handling and cleanup.
func TestRateLimiterConcurrentWithCleanup(t *testing.T) {
	// Use a very short window so cleanup runs during the test
	limiter := NewRateLimiter(5, 50*time.Millisecond, "test-cleanup-race")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ip := "10.0.0." + string(rune('0'+id%10))
				limiter.isAllowed(ip)
				if j%10 == 0 {
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()
}
