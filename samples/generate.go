package samples

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pianoear/pianoear"
	"github.com/sirupsen/logrus"
)

const (
	generatedBitDepth = 16
	wavPCMFormat      = 1
	fadeOutSeconds    = 0.05
)

// Generator writes synthesized placeholder samples, one mono WAV file per
// note, for installations without recorded piano samples.
type Generator struct {
	SampleRate int
	Seconds    float64
}

// Generate writes the samples of notes into dir, creating it if needed.
func (g Generator) Generate(dir string, notes []pianoear.Note) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create sample directory: %w", err)
	}
	d := Dir{Path: dir, Format: WAV}
	for _, n := range notes {
		if err := g.writeNote(d.File(n), n); err != nil {
			return err
		}
		logrus.WithField("note", n.ShortName()).Debug("sample generated")
	}
	return nil
}

func (g Generator) writeNote(path string, n pianoear.Note) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not close %s: %w", filepath.Base(path), cerr)
		}
	}()
	enc := wav.NewEncoder(f, g.SampleRate, generatedBitDepth, 1, wavPCMFormat)
	buf := &audio.IntBuffer{
		Data:           Synthesize(n.Frequency, g.SampleRate, g.Seconds),
		Format:         &audio.Format{SampleRate: g.SampleRate, NumChannels: 1},
		SourceBitDepth: generatedBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not finish %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Synthesize renders a decaying piano-like tone as 16-bit sample values:
// four octave partials with faster decay for the higher ones, a soft
// saturation and a short fade out at the end.
func Synthesize(freq float64, sampleRate int, seconds float64) []int {
	num := int(float64(sampleRate) * seconds)
	fade := int(float64(sampleRate) * fadeOutSeconds)
	ret := make([]int, num)
	for i := range ret {
		t := float64(i) / float64(sampleRate)
		w := 2 * math.Pi * freq * t
		v := math.Sin(w)*math.Exp(-3*t)/2 +
			math.Sin(2*w)*math.Exp(-4*t)/4 +
			math.Sin(4*w)*math.Exp(-6*t)/8 +
			math.Sin(8*w)*math.Exp(-8*t)/16
		v += v * v * v
		v *= 0.5
		if left := num - i; left < fade {
			v *= float64(left) / float64(fade)
		}
		ret[i] = int(v * math.MaxInt16)
	}
	return ret
}
