package api

import (
	"sync"
)

// computeLimiter tracks in-flight envelope computations per IP and globally.
// The solve is CPU-bound, so unbounded concurrent requests from one client
// could monopolize the host; the limiter sheds the excess with 429s.
type computeLimiter struct {
	mu       sync.Mutex
	inFlight map[string]int
	total    int
	maxPerIP int
	maxTotal int
}

func newComputeLimiter(maxPerIP int) *computeLimiter {
	return &computeLimiter{
		inFlight: make(map[string]int),
		maxPerIP: maxPerIP,
		maxTotal: 256, // Default global cap.
	}
}

// acquire attempts to register a new computation for the given IP.
// Returns false if the IP or global limit has been reached.
func (l *computeLimiter) acquire(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.total >= l.maxTotal {
		return false
	}
	if l.inFlight[ip] >= l.maxPerIP {
		return false
	}

	l.inFlight[ip]++
	l.total++
	return true
}

// release decrements the in-flight count for the given IP.
func (l *computeLimiter) release(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inFlight[ip]--
	l.total--
	if l.inFlight[ip] <= 0 {
		delete(l.inFlight, ip)
	}
}

// count returns the number of in-flight computations for the given IP.
func (l *computeLimiter) count(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight[ip]
}
