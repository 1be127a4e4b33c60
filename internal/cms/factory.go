package cms

import (
	"sync"
	"time"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/catalog"
	"github.com/avstrong/stayhotel/internal/idgen/stamp"
	"github.com/avstrong/stayhotel/internal/logger"
	"github.com/avstrong/stayhotel/internal/storage/memory"
)

type FactoryConfig struct {
	L       *logger.Logger
	UseMock bool
	APIURL  string
	APIKey  string
	Timeout time.Duration
	// MockLatency enables the mock adapter's artificial delays.
	MockLatency bool
	// Now and Rooms default to the wall clock and the static catalog.
	Now   func() time.Time
	Rooms func() []booking.Room
}

// Provider builds one adapter on first use and hands out the same instance
// until it is renewed or reset. The app owns a single Provider and passes it to
// whoever needs the backend.
type Provider struct {
	mu        sync.Mutex
	conf      FactoryConfig
	adapter   Adapter
	usingMock bool
}

func NewProvider(conf FactoryConfig) *Provider {
	if conf.Rooms == nil {
		conf.Rooms = catalog.Rooms
	}

	if conf.Now == nil {
		conf.Now = time.Now
	}

	return &Provider{conf: conf}
}

func (p *Provider) build() (Adapter, bool) {
	if !p.conf.UseMock {
		if p.conf.APIURL != "" && p.conf.APIKey != "" {
			p.conf.L.LogInfo("Using remote booking backend at %v", p.conf.APIURL)

			return NewRemote(RemoteConfig{
				L:       p.conf.L,
				BaseURL: p.conf.APIURL,
				APIKey:  p.conf.APIKey,
				Timeout: p.conf.Timeout,
			}), false
		}

		p.conf.L.LogWarnf("Remote backend selected but CMS_API_URL or CMS_API_KEY is empty, falling back to mock adapter")
	}

	p.conf.L.LogInfo("Using mock booking backend")

	return NewMock(MockConfig{
		L:       p.conf.L,
		Rooms:   p.conf.Rooms(),
		Store:   memory.New(memory.Config{L: p.conf.L}),
		IDGen:   stamp.New(p.conf.Now),
		Now:     p.conf.Now,
		Latency: p.conf.MockLatency,
	}), true
}

// Adapter returns the cached adapter, building it on first call.
func (p *Provider) Adapter() Adapter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.adapter == nil {
		p.adapter, p.usingMock = p.build()
	}

	return p.adapter
}

// Renew replaces the cached adapter with a freshly built one.
func (p *Provider) Renew() Adapter {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.adapter, p.usingMock = p.build()

	return p.adapter
}

// Reset drops the cached adapter; the next Adapter call builds a new one.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.adapter = nil
	p.usingMock = false
}

// UsingMock reports whether the effective adapter is the mock one.
func (p *Provider) UsingMock() bool {
	p.Adapter()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.usingMock
}

// Backend adapts the provider to the booking manager's view of it.
func (p *Provider) Backend() booking.Backend {
	return p.Adapter()
}
