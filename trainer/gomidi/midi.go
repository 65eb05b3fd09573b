package gomidi

import (
	"errors"
	"fmt"

	"github.com/pianoear/pianoear/trainer"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver *rtmididrv.Driver
		broker *trainer.Broker
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
		stop    func()
	}
)

// NewContext opens the rtmidi driver. If that fails, the context lists no
// inputs and reports that there is no driver.
func NewContext(broker *trainer.Broker) *RTMIDIContext {
	m := RTMIDIContext{broker: broker}
	var err error
	if m.driver, err = rtmididrv.New(); err != nil {
		logrus.WithError(err).Warn("MIDI driver unavailable")
		m.driver = nil
	}
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(trainer.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		logrus.WithError(err).Warn("listing MIDI inputs failed")
		return
	}
	for i := 0; i < len(ins); i++ {
		if !yield(&RTMIDIDevice{context: m, in: ins[i]}) {
			break
		}
	}
}

func (m *RTMIDIContext) Support() trainer.MIDISupport {
	if m.driver == nil {
		return trainer.MIDISupportNoDriver
	}
	return trainer.MIDISupported
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.driver.Close()
}

// HandleMessage forwards note on messages to the model. It runs on the
// driver's goroutine; when the model is busy, messages are dropped.
func (m *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) {
		return
	}
	e := trainer.MIDINoteOn{Key: int(key), Velocity: int(velocity)}
	if !trainer.TrySend(m.broker.ToModel, trainer.MsgToModel{Data: e}) {
		logrus.WithField("key", e.Key).Debug("model busy, MIDI note dropped")
	}
}

func (d *RTMIDIDevice) Open() error {
	if d.context.driver == nil {
		return errors.New("no driver available")
	}
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, d.context.HandleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	d.stop = stop
	return nil
}

func (d *RTMIDIDevice) Close() error {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	return d.in.Close()
}

func (d *RTMIDIDevice) IsOpen() bool   { return d.in.IsOpen() }
func (d *RTMIDIDevice) String() string { return d.in.String() }
