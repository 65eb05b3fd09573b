//go:build cgo

package cmd

import (
	"github.com/pianoear/pianoear/trainer"
	"github.com/pianoear/pianoear/trainer/gomidi"
)

func NewMidiContext(broker *trainer.Broker) trainer.MIDIContext {
	return gomidi.NewContext(broker)
}
