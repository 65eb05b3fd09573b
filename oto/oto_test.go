package oto

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatBufferTo16BitLE(t *testing.T) {
	out := FloatBufferTo16BitLE([]float32{0, 1, -1, 2, -2, 0.5}, nil)
	assert.Len(t, out, 12)
	get := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[2*i:])) }
	assert.Equal(t, int16(0), get(0))
	assert.Equal(t, int16(math.MaxInt16), get(1))
	assert.Equal(t, int16(-math.MaxInt16), get(2))
	assert.Equal(t, int16(math.MaxInt16), get(3), "clipped")
	assert.Equal(t, int16(-math.MaxInt16), get(4), "clipped")
	assert.Equal(t, int16(math.MaxInt16/2), get(5))
}

func TestFloatBufferTo16BitLEAppends(t *testing.T) {
	dst := []byte{0xAA}
	out := FloatBufferTo16BitLE([]float32{0}, dst)
	assert.Equal(t, []byte{0xAA, 0, 0}, out)
}

type fakeVoice bool

func (f fakeVoice) IsPlaying() bool { return bool(f) }

func TestPruneVoices(t *testing.T) {
	voices := []fakeVoice{true, false, true, false, false}
	got := pruneVoices(voices)
	assert.Equal(t, []fakeVoice{true, true}, got)
	assert.Empty(t, pruneVoices([]fakeVoice{false}))
}
