// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/drake/tally/internal/logger"
	"github.com/drake/tally/session"
)

// Enabled returns true if debug mode is active (TALLY_DEBUG=1).
func Enabled() bool {
	return os.Getenv("TALLY_DEBUG") == "1"
}

// StatsSource is anything that can report session counters.
type StatsSource interface {
	Stats() session.Stats
}

// Monitor periodically logs session statistics when debug mode is enabled.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	ctx      context.Context
	log      arbor.ILogger
}

// NewMonitor creates a new monitor for the given source.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, src StatsSource) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		source:   src,
		interval: 5 * time.Second,
		ctx:      ctx,
		log:      logger.GetLogger(),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.log.Debug().Msg("Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.log.Debug().Msg("Monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.source.Stats()
	m.log.Info().
		Str("events", strconv.FormatUint(s.EventsProcessed, 10)).
		Str("tape", strconv.Itoa(s.TapeEntries)).
		Str("timers", strconv.Itoa(s.ActiveTimers)).
		Str("goroutines", strconv.Itoa(s.Goroutines)).
		Msg("Session stats")
}
