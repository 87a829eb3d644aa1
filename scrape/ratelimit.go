package scrape

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/scrapeview"
	"golang.org/x/time/rate"
)

var _ scrapeview.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out the Orchestrator's fetches and renders per host.
// Hosts never wait on each other, and a host gets no burst.
type DomainLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	every rate.Limit
}

// NewDomainLimiter allows rps requests per second to each host.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		hosts: make(map[string]*rate.Limiter),
		every: rate.Limit(rps),
	}
}

// Wait returns once a request to domain may start, or with the context's
// error.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.forHost(domain).Wait(ctx)
}

func (d *DomainLimiter) forHost(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[host]
	if !ok {
		l = rate.NewLimiter(d.every, 1)
		d.hosts[host] = l
	}
	return l
}

// domainOf is the limiter key for rawURL: its host, or rawURL itself when
// it has none.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
