package worker

import (
	"context"
	"testing"
)

func TestLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(1, 2)
	endpoint := "https://parser.example.com/v1"

	if !limiter.Allow(endpoint) || !limiter.Allow(endpoint) {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if limiter.Allow(endpoint) {
		t.Error("expected third request denied")
	}
}

func TestLimiter_SeparateBucketPerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://a.example.com/v1") {
		t.Fatal("expected first host allowed")
	}
	if !limiter.Allow("https://b.example.com/v1") {
		t.Error("expected second host to have its own bucket")
	}
	if limiter.Allow("https://a.example.com/v1") {
		t.Error("expected first host exhausted")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetHostRate("fast.example.com", 100, 50)

	for i := 0; i < 10; i++ {
		if !limiter.Allow("https://fast.example.com/v1") {
			t.Fatalf("request %d: expected override burst to allow", i)
		}
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(1, 1)
	endpoint := "https://parser.example.com/v1"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx, endpoint); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestLimiter_BadEndpoint(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if limiter.Allow("http://bad host/") {
		t.Error("expected unparsable endpoint denied")
	}
	if err := limiter.Wait(context.Background(), "http://bad host/"); err == nil {
		t.Error("expected error for unparsable endpoint")
	}
}
