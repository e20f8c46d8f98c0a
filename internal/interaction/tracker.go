package interaction

import (
	"time"

	"explore3d/internal/engine"

	"github.com/sirupsen/logrus"
)

type Phase int

const (
	Idle Phase = iota
	Holding
	Completed
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Holding:
		return "holding"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// GestureState is the live long-press. Target is set exactly while Holding.
type GestureState struct {
	Phase    Phase
	Target   *Entry
	Elapsed  time.Duration
	Required time.Duration
}

type Transition struct {
	From   Phase
	To     Phase
	Target *Entry
}

// Tracker turns a held input level into long-press callbacks on one target.
//
// Completed and Cancelled are passed through within a single Update; between
// calls the phase is only ever Idle or Holding. After a completion the input
// must be released before another hold can begin.
type Tracker struct {
	Transitions engine.EventWithArg[Transition]

	state        GestureState
	awaitRelease bool
	log          logrus.FieldLogger
}

func NewTracker(log logrus.FieldLogger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{log: log.WithField("component", "gesture")}
}

func (t *Tracker) State() GestureState {
	return t.state
}

// Update advances the gesture by dt. focused is the entry under the cast;
// entries without CapLongPress are treated as no target.
func (t *Tracker) Update(focused *Entry, held bool, dt time.Duration) {
	if !held {
		t.awaitRelease = false
	}
	if focused != nil && !focused.Caps.Has(CapLongPress) {
		focused = nil
	}
	if t.state.Phase == Holding && (focused != t.state.Target || !held) {
		t.Cancel()
	}
	if focused == nil || !held || t.awaitRelease {
		return
	}

	lp := focused.LongPress
	if t.state.Phase == Idle {
		t.state = GestureState{Phase: Holding, Target: focused, Required: lp.RequiredHoldTime()}
		t.publish(Idle, Holding, focused)
		guard(t.log, focused.Name, "OnLongPressStart", lp.OnLongPressStart)
	}

	t.state.Elapsed += dt
	progress := clamp01(float32(t.state.Elapsed) / float32(t.state.Required))
	if t.state.Required <= 0 {
		progress = 1
	}
	guard(t.log, focused.Name, "OnLongPressUpdate", func() { lp.OnLongPressUpdate(progress) })

	if t.state.Elapsed < t.state.Required {
		return
	}

	t.state.Phase = Completed
	t.publish(Holding, Completed, focused)
	guard(t.log, focused.Name, "OnLongPressComplete", lp.OnLongPressComplete)
	guard(t.log, focused.Name, "Interact", lp.Interact)
	t.awaitRelease = true
	t.reset(Completed)
}

// Cancel aborts a live hold. It does nothing when Idle.
func (t *Tracker) Cancel() {
	if t.state.Phase != Holding {
		return
	}
	target := t.state.Target
	t.state.Phase = Cancelled
	t.publish(Holding, Cancelled, target)
	guard(t.log, target.Name, "OnLongPressCancel", target.LongPress.OnLongPressCancel)
	t.reset(Cancelled)
}

// abandon drops a hold on a target that no longer exists, without calling it.
func (t *Tracker) abandon() {
	if t.state.Phase != Holding {
		return
	}
	target := t.state.Target
	t.state.Phase = Cancelled
	t.publish(Holding, Cancelled, target)
	t.reset(Cancelled)
}

func (t *Tracker) reset(from Phase) {
	target := t.state.Target
	t.state = GestureState{}
	t.publish(from, Idle, target)
}

func (t *Tracker) publish(from, to Phase, target *Entry) {
	t.log.WithFields(logrus.Fields{"from": from, "to": to, "target": target.Name}).Debug("Gesture transition")
	t.Transitions.Invoke(Transition{From: from, To: to, Target: target})
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
