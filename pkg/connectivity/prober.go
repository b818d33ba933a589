package connectivity

import (
	"context"
	"net/http"
	"time"
)

// ProberConfig holds the configuration for the HTTP reachability prober.
type ProberConfig struct {
	ProbeURL      string        `env:"NOTIFY_PROBE_URL" envDefault:"https://www.gstatic.com/generate_204"`
	ProbeInterval time.Duration `env:"NOTIFY_PROBE_INTERVAL" envDefault:"15s"`
	ProbeTimeout  time.Duration `env:"NOTIFY_PROBE_TIMEOUT" envDefault:"5s"`
}

// Prober is a Monitor that derives connectivity by periodically
// issuing HEAD requests against a well-known endpoint. Any HTTP
// response counts as online; transport errors count as offline.
type Prober struct {
	*Manual
	cfg    ProberConfig
	client *http.Client
	cancel context.CancelFunc
	done   chan struct{}
}

// NewProber creates and starts a probing monitor. The initial state is
// optimistic (online) until the first probe completes.
func NewProber(ctx context.Context, cfg ProberConfig) (*Prober, error) {
	if cfg.ProbeURL == "" {
		return nil, ErrProbeURLEmpty
	}
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = 15 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Prober{
		Manual: NewManual(true),
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.ProbeTimeout},
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run(ctx)
	return p, nil
}

func (p *Prober) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.cfg.ProbeInterval)
	defer ticker.Stop()

	p.SetOnline(p.probe(ctx))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.SetOnline(p.probe(ctx))
		}
	}
}

func (p *Prober) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.cfg.ProbeURL, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

// Close stops the probe loop and closes all subscriber channels.
func (p *Prober) Close() error {
	p.cancel()
	<-p.done
	return p.Manual.Close()
}
