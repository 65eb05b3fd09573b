package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"github.com/pianoear/pianoear/cmd"
	"github.com/pianoear/pianoear/oto"
	"github.com/pianoear/pianoear/samples"
	"github.com/pianoear/pianoear/trainer"
	"github.com/pianoear/pianoear/trainer/gioui"
	"github.com/pianoear/pianoear/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	samplesDir string
	assetsDir  string
	recordPath string
	language   string
	midiInput  string
	logLevel   string
)

// samplePeak leaves some headroom for overlapping notes.
const samplePeak = 0.8

var rootCmd = &cobra.Command{
	Use:           "pianoear",
	Short:         "Piano ear trainer",
	Long:          `Plays a random piano note and lets you find it on an on-screen keyboard.`,
	Version:       version.VersionOrHash,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		prefsPath := trainer.PreferencesPath()
		prefs, err := trainer.LoadPreferences(prefsPath)
		if err != nil {
			logrus.WithError(err).WithField("path", prefsPath).Warn("using default preferences")
		}
		if c.Flags().Changed("lang") {
			prefs.Language = language
		}
		if c.Flags().Changed("midi-input") {
			prefs.MIDIInput = midiInput
		}

		audioContext, err := oto.NewContext(oto.DefaultSampleRate, oto.DefaultVoices)
		if err != nil {
			return err
		}
		dir := samples.Resolve(assetsDir)
		if samplesDir != "" {
			dir = samples.Explicit(samplesDir)
		}
		logrus.WithFields(logrus.Fields{"path": dir.Path, "format": dir.Format}).Info("using samples")
		loader := samples.Loader{Dir: dir, SampleRate: audioContext.SampleRate(), Peak: samplePeak}

		broker := trainer.NewBroker()
		midiContext := cmd.NewMidiContext(broker)
		model := trainer.NewModel(trainer.Config{
			Player:          trainer.NewPlayer(loader, audioContext),
			Records:         trainer.RecordStore{Path: recordPath},
			Preferences:     prefs,
			PreferencesPath: prefsPath,
			MIDI:            midiContext,
			Broker:          broker,
		})
		if prefs.MIDIInput != "" && !model.MIDI().OpenByPrefix(prefs.MIDIInput) {
			logrus.WithField("prefix", prefs.MIDIInput).Warn("no MIDI input device found")
		}

		trainerUi := gioui.NewTrainer(model)
		go func() {
			trainerUi.Main()
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	f = rootCmd.Flags()
	f.StringVar(&samplesDir, "samples", "", "directory of note samples, overrides the assets lookup")
	f.StringVar(&assetsDir, "assets", defaultAssetsDir(), "directory containing samples_mp3/ or samples/")
	f.StringVar(&recordPath, "record", trainer.DefaultRecordPath(), "file the best streak is stored in")
	f.StringVar(&language, "lang", "", "user interface language ("+languageNames()+")")
	f.StringVar(&midiInput, "midi-input", "", "connect MIDI input to matching device name prefix")
}

// defaultAssetsDir is the directory of the executable, falling back to the
// working directory.
func defaultAssetsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func languageNames() string {
	names := make([]string, len(trainer.Languages))
	for i, tag := range trainer.Languages {
		names[i] = tag.String()
	}
	return strings.Join(names, ", ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
