package trainer

import (
	"time"
)

type (
	// Alerts is a queue of short messages shown over the current screen.
	// Each alert fades in, stays for its duration and fades out.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name     string
		Priority AlertPriority
		Message  string
		Duration time.Duration

		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

// Iterate yields the alerts from the oldest to the newest.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			break
		}
	}
}

// Update advances the alerts by d and drops the ones that have faded out.
// It returns true while any alert is still animating.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if m.alerts[i].Duration >= d {
			m.alerts[i].Duration -= d
			if m.alerts[i].FadeLevel < 1 {
				animating = true
				m.alerts[i].FadeLevel += float64(d) / float64(alertFadeTime)
				m.alerts[i].FadeLevel = min(m.alerts[i].FadeLevel, 1)
			}
		} else {
			m.alerts[i].Duration = 0
			m.alerts[i].FadeLevel -= float64(d) / float64(alertFadeTime)
			animating = true
			if m.alerts[i].FadeLevel < 0 {
				m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			}
		}
	}
	return
}

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

// AddNamed replaces the alert with the same name, if any, instead of
// stacking another one.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

func (m *Alerts) Len() int { return len(m.alerts) }
