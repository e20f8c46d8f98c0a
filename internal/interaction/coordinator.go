package interaction

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Metrics receives interaction counters. A nil Metrics is allowed.
type Metrics interface {
	FocusChanged()
	GestureTransition(from, to Phase)
	Interacted(kind string)
}

// Interaction kinds reported to Metrics.
const (
	KindInstant   = "instant"
	KindLongPress = "long_press"
	KindDestroy   = "destroy"
)

// Coordinator runs one interaction tick: focus, gesture or press dispatch,
// prompt, then proximity sensors.
type Coordinator struct {
	Detector *Detector
	Tracker  *Tracker

	sensors []Sensor
	metrics Metrics
	log     logrus.FieldLogger
}

func NewCoordinator(detector *Detector, tracker *Tracker, metrics Metrics, log logrus.FieldLogger) *Coordinator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := &Coordinator{
		Detector: detector,
		Tracker:  tracker,
		metrics:  metrics,
		log:      log.WithField("component", "coordinator"),
	}

	// A hold never survives a focus change; this runs before OnExit/OnEnter
	detector.FocusChanged.AddListener(func(fc FocusChange) {
		if st := tracker.State(); st.Phase == Holding && st.Target == fc.Previous {
			if fc.PreviousLive {
				tracker.Cancel()
			} else {
				tracker.abandon()
			}
		}
		if c.metrics != nil {
			c.metrics.FocusChanged()
		}
	})
	tracker.Transitions.AddListener(func(tr Transition) {
		if c.metrics == nil {
			return
		}
		c.metrics.GestureTransition(tr.From, tr.To)
		if tr.To == Completed {
			c.metrics.Interacted(KindLongPress)
		}
	})
	return c
}

func (c *Coordinator) AddSensor(s Sensor) {
	if s != nil {
		c.sensors = append(c.sensors, s)
	}
}

// Tick advances interaction by dt.
func (c *Coordinator) Tick(dt time.Duration, view View, in Input) {
	focused := c.Detector.Tick(view)

	if focused != nil && focused.Caps.Has(CapInstant) {
		c.Tracker.Update(nil, in.Held, dt)
		if in.Pressed {
			if guard(c.log, focused.Name, "Interact", focused.Target.Interact) && c.metrics != nil {
				c.metrics.Interacted(KindInstant)
			}
		}
	} else {
		c.Tracker.Update(focused, in.Held, dt)
	}

	c.Detector.PushPrompt()

	sense := SenseInput{
		Player:         view.Position,
		DestroyPressed: in.DestroyPressed,
		Focused:        c.Detector.Current() != nil,
	}
	for _, s := range c.sensors {
		var acted bool
		guard(c.log, s.Name(), "Sense", func() { acted = s.Sense(sense) })
		if acted && c.metrics != nil {
			c.metrics.Interacted(KindDestroy)
		}
	}
}

// Sensors returns the registered sensors.
func (c *Coordinator) Sensors() []Sensor {
	return append([]Sensor(nil), c.sensors...)
}
