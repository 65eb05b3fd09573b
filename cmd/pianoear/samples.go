package main

import (
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/samples"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	generateOut     string
	generateSeconds float64
	generateRate    int
)

func init() {
	samplesCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(samplesCmd)

	f := generateCmd.Flags()
	f.StringVar(&generateOut, "out", "samples", "directory the WAV files are written to")
	f.Float64Var(&generateSeconds, "seconds", 2, "length of each sample in seconds")
	f.IntVar(&generateRate, "rate", 44100, "sample rate in Hz")
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Manage note samples",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Writes synthesized placeholder samples",
	Long:  `Writes one synthesized WAV file per piano key, named after the note code (A0.wav ... C8.wav).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := samples.Generator{SampleRate: generateRate, Seconds: generateSeconds}
		if err := g.Generate(generateOut, pianoear.Notes); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"path": generateOut, "notes": len(pianoear.Notes)}).Info("samples generated")
		return nil
	},
}
