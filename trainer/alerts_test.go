package trainer_test

import (
	"testing"
	"time"

	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
)

func TestAlertsFadeInAndOut(t *testing.T) {
	var a trainer.Alerts
	a.Add("hello", trainer.Info)
	assert.Equal(t, 1, a.Len())
	assert.True(t, a.Update(100*time.Millisecond), "fading in")
	assert.True(t, a.Update(100*time.Millisecond))
	a.Iterate(func(_ int, alert trainer.Alert) bool {
		assert.Equal(t, 1.0, alert.FadeLevel)
		return true
	})
	assert.False(t, a.Update(time.Second), "fully visible")
	assert.True(t, a.Update(5*time.Second), "fading out")
	assert.Zero(t, a.Len())
	assert.False(t, a.Update(time.Second))
}

func TestNamedAlertsReplaceEachOther(t *testing.T) {
	var a trainer.Alerts
	a.AddNamed("midi", "first", trainer.Info)
	a.AddNamed("midi", "second", trainer.Warning)
	a.Add("other", trainer.Error)
	assert.Equal(t, 2, a.Len())
	var messages []string
	a.Iterate(func(_ int, alert trainer.Alert) bool {
		messages = append(messages, alert.Message)
		return true
	})
	assert.Equal(t, []string{"second", "other"}, messages)
}
