package newsapi

import (
	"context"
	"log"
	"net"
	"sync/atomic"
	"time"
)

// Monitor keeps an online/offline flag current by periodically dialing a
// probe address. It stands in for the OS-level reachability APIs mobile
// platforms provide.
type Monitor struct {
	addr     string
	interval time.Duration
	timeout  time.Duration
	online   atomic.Bool
}

// MonitorConfig holds connectivity monitor configuration
type MonitorConfig struct {
	ProbeAddr string        // host:port dialed to test reachability
	Interval  time.Duration // time between probes
	Timeout   time.Duration // per-probe dial timeout
}

// NewMonitor creates a connectivity monitor, the first probe runs on Run
func NewMonitor(cfg MonitorConfig) *Monitor {
	if cfg.ProbeAddr == "" {
		cfg.ProbeAddr = "1.1.1.1:53"
	}
	if cfg.Interval == 0 {
		cfg.Interval = 15 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Monitor{addr: cfg.ProbeAddr, interval: cfg.Interval, timeout: cfg.Timeout}
}

// Online reports the result of the most recent probe
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Run probes immediately and then on every interval tick until the context
// is canceled
func (m *Monitor) Run(ctx context.Context) error {
	m.probe()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probe()
		}
	}
}

func (m *Monitor) probe() {
	conn, err := net.DialTimeout("tcp", m.addr, m.timeout)
	if err != nil {
		if m.online.Swap(false) {
			log.Printf("[WARN] connectivity lost: %v", err)
		}
		return
	}
	conn.Close()
	if !m.online.Swap(true) {
		log.Printf("[INFO] connectivity restored")
	}
}

// StaticConnectivity is a fixed connectivity state, useful for tests and for
// running without the background monitor
type StaticConnectivity bool

// Online reports the fixed state
func (s StaticConnectivity) Online() bool { return bool(s) }
