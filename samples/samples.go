// Package samples finds, decodes and generates the per-note piano samples.
package samples

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pianoear/pianoear"
	"github.com/sirupsen/logrus"
	"github.com/viterin/vek/vek32"
)

type (
	Format int

	// Dir is a directory of samples named after the short note code, e.g.
	// C4.wav.
	Dir struct {
		Path   string
		Format Format
	}

	// Loader decodes the samples of a Dir and resamples them to the output
	// sample rate.
	Loader struct {
		Dir        Dir
		SampleRate int
		// Peak is the absolute peak every sample is normalized to. Zero
		// leaves the levels as they are.
		Peak float32
	}
)

const (
	WAV Format = iota
	MP3
)

const (
	MP3DirName = "samples_mp3"
	WAVDirName = "samples"

	resampleQuality = 4
	decodeChunk     = 4096
)

var ErrUnknownFormat = errors.New("unknown sample format")

func (f Format) Ext() string {
	if f == MP3 {
		return "mp3"
	}
	return "wav"
}

func (f Format) String() string { return f.Ext() }

// Resolve picks the sample directory under assetsDir: the MP3 directory wins
// if it exists, otherwise the WAV directory is used whether it exists or not.
func Resolve(assetsDir string) Dir {
	mp3Dir := filepath.Join(assetsDir, MP3DirName)
	if info, err := os.Stat(mp3Dir); err == nil && info.IsDir() {
		return Dir{Path: mp3Dir, Format: MP3}
	}
	return Dir{Path: filepath.Join(assetsDir, WAVDirName), Format: WAV}
}

// Explicit returns a Dir for a directory given by the user. The format is MP3
// if the directory has any .mp3 files, WAV otherwise.
func Explicit(path string) Dir {
	if m, _ := filepath.Glob(filepath.Join(path, "*.mp3")); len(m) > 0 {
		return Dir{Path: path, Format: MP3}
	}
	return Dir{Path: path, Format: WAV}
}

func (d Dir) File(n pianoear.Note) string {
	return filepath.Join(d.Path, n.SampleFile(d.Format.Ext()))
}

// Load decodes the sample of n. A missing file is reported with an error
// wrapping fs.ErrNotExist.
func (l Loader) Load(n pianoear.Note) (pianoear.AudioBuffer, error) {
	path := l.Dir.File(n)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sample %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("could not open sample: %w", err)
	}
	buf, srcRate, err := l.Decode(f, l.Dir.Format)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"note":    n.ShortName(),
		"path":    path,
		"frames":  len(buf),
		"srcRate": srcRate,
	}).Debug("sample decoded")
	return buf, nil
}

// Decode reads a whole sample in the given format from rc, resampled and
// normalized as configured, and returns it with its original sample rate. rc
// is closed in every case.
func (l Loader) Decode(rc io.ReadCloser, f Format) (pianoear.AudioBuffer, int, error) {
	var streamer beep.StreamSeekCloser
	var format beep.Format
	var err error
	switch f {
	case MP3:
		streamer, format, err = mp3.Decode(rc)
	case WAV:
		streamer, format, err = wav.Decode(rc)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if err != nil {
		rc.Close()
		return nil, 0, err
	}
	defer streamer.Close()
	var s beep.Streamer = streamer
	rate := beep.SampleRate(l.SampleRate)
	if l.SampleRate > 0 && format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	buf := readAll(s)
	if err := streamer.Err(); err != nil {
		return nil, 0, err
	}
	if l.Peak > 0 {
		Normalize(buf, l.Peak)
	}
	return buf, int(format.SampleRate), nil
}

func readAll(s beep.Streamer) pianoear.AudioBuffer {
	var ret pianoear.AudioBuffer
	chunk := make([][2]float64, decodeChunk)
	for {
		n, ok := s.Stream(chunk)
		for _, f := range chunk[:n] {
			ret = append(ret, [2]float32{float32(f[0]), float32(f[1])})
		}
		if !ok {
			return ret
		}
	}
}

// Normalize scales buf in place so that its absolute peak equals peak.
// Silent buffers are left alone.
func Normalize(buf pianoear.AudioBuffer, peak float32) {
	if len(buf) == 0 {
		return
	}
	flat := buf.Interleaved(make([]float32, 0, 2*len(buf)))
	abs := vek32.Abs_Into(make([]float32, len(flat)), flat)
	current := vek32.Max(abs)
	if current <= 0 {
		return
	}
	vek32.MulNumber_Inplace(flat, peak/current)
	for i := range buf {
		buf[i] = [2]float32{flat[2*i], flat[2*i+1]}
	}
}
