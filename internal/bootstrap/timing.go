package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/fruitwm/internal/logging"
)

// StartupTimer records how long each startup phase took.
// Startup runs on one goroutine, so the timer is not synchronised.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
	now    func() time.Time
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	start := now()
	return &StartupTimer{
		start:  start,
		last:   start,
		phases: make(map[string]time.Duration),
		now:    now,
	}
}

// Mark records the duration since the previous mark (or start) for phase.
func (t *StartupTimer) Mark(phase string) {
	now := t.now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = now.Sub(t.last)
	t.last = now
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) (time.Duration, bool) {
	d, ok := t.phases[phase]
	return d, ok
}

// Total returns the elapsed time since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	return t.now().Sub(t.start)
}

// Log writes every phase in mark order as one debug event.
func (t *StartupTimer) Log(ctx context.Context) {
	log := logging.FromContext(ctx)
	t.write(log.Debug())
}

func (t *StartupTimer) write(event *zerolog.Event) {
	event = event.Dur("total", t.Total())
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
