// Package cooldown implements a cancellable countdown that gates an action
// behind a short waiting period. The gate is clock-agnostic: the owner drives
// it by calling Tick once per second (the TUI uses tea.Tick, tests call it
// directly), which keeps the firing rule deterministic and testable.
package cooldown

// DefaultTicks is the number of whole seconds the gate counts down.
const DefaultTicks = 5

// Gate counts down from a fixed number of ticks and invokes its action
// exactly once when the countdown reaches zero. Cancel before then and the
// action never runs. Starting while a countdown is active replaces it: the
// earlier action is dropped and the timer restarts from the full duration.
type Gate struct {
	action    func()
	remaining int
	ticks     int
}

// New returns a gate that counts down the given number of ticks. Values
// below one fall back to DefaultTicks.
func New(ticks int) *Gate {
	if ticks < 1 {
		ticks = DefaultTicks
	}
	return &Gate{ticks: ticks}
}

// Start arms the gate with the action to invoke when the countdown expires.
// Any countdown already in progress is replaced.
func (g *Gate) Start(action func()) {
	g.action = action
	g.remaining = g.ticks
}

// Tick advances the countdown by one second. It returns the seconds left and
// whether the action fired on this tick. Ticks on an inactive gate are
// ignored.
func (g *Gate) Tick() (remaining int, fired bool) {
	if g.action == nil {
		return 0, false
	}

	g.remaining--
	if g.remaining > 0 {
		return g.remaining, false
	}

	action := g.action
	g.action = nil
	g.remaining = 0
	action()
	return 0, true
}

// Cancel stops an active countdown without invoking the action.
func (g *Gate) Cancel() {
	g.action = nil
	g.remaining = 0
}

// Active reports whether a countdown is in progress.
func (g *Gate) Active() bool { return g.action != nil }

// Remaining returns the seconds left on the active countdown, zero when
// inactive.
func (g *Gate) Remaining() int { return g.remaining }
