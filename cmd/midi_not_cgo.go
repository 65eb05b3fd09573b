//go:build !cgo

package cmd

import (
	"github.com/pianoear/pianoear/trainer"
)

func NewMidiContext(broker *trainer.Broker) trainer.MIDIContext {
	// rtmidi needs cgo
	return trainer.NullMIDIContext{}
}
