package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sam "github.com/ieee0824/sam-go"
	"github.com/ieee0824/sam-go/audio"
	"github.com/ieee0824/sam-go/config"
)

func newRootCmd(vp *viper.Viper, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sam [flags] PHONEMES...",
		Short:        "Speak phonetic input with the Software Automatic Mouth voice",
		Example:      `  sam -o hello.wav "/HEHLOW5 WERLD."`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path := vp.GetString("config"); path != "" {
				vp.SetConfigFile(path)
				if err := vp.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return run(vp, explicit(vp, cmd), stdout, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.Int("speed", 72, "oscillator calls per frame")
	f.Int("pitch", 64, "base pitch, lower is higher")
	f.Int("mouth", 128, "mouth formant scale")
	f.Int("throat", 128, "throat formant scale")
	f.Bool("sing", false, "keep formant wobble out of the pitch")
	f.StringP("output", "o", "sam.wav", "WAV file to write")
	f.Bool("raw", false, "write raw unsigned 8-bit PCM to stdout")
	f.String("env-file", ".env", "file with SAM_* variables")
	f.String("config", "", "YAML file with a voice section")
	f.Bool("debug", false, "log phoneme and frame tables")

	for _, k := range voiceFlags {
		_ = vp.BindPFlag("voice."+k, f.Lookup(k))
	}
	for _, k := range []string{"output", "raw", "env-file", "config", "debug"} {
		_ = vp.BindPFlag(k, f.Lookup(k))
	}
	return cmd
}

// run resolves the voice (defaults, then env, then config file and flags),
// synthesizes input and writes it out.
func run(vp, voiceKeys *viper.Viper, stdout io.Writer, input string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sam"})
	if vp.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	base, err := config.Load(vp.GetString("env-file"))
	if err != nil {
		return err
	}
	voice, err := config.FromViper(voiceKeys, base)
	if err != nil {
		return err
	}
	logger.Debug("voice", "speed", voice.Speed, "pitch", voice.Pitch,
		"mouth", voice.Mouth, "throat", voice.Throat, "sing", voice.Sing)

	s, err := sam.New(sam.WithVoice(voice), sam.WithLogger(logger))
	if err != nil {
		return err
	}
	pcm, err := s.Synthesize(input)
	if err != nil {
		return err
	}

	if vp.GetBool("raw") {
		_, err := stdout.Write(pcm)
		return err
	}
	path := vp.GetString("output")
	if err := audio.WriteWAVFile(path, pcm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("wrote", "path", path, "samples", len(pcm))
	return nil
}

var voiceFlags = []string{"speed", "pitch", "mouth", "throat", "sing"}

// explicit copies the voice keys set by a flag or the config file, so flag
// defaults do not mask values taken from the environment.
func explicit(vp *viper.Viper, cmd *cobra.Command) *viper.Viper {
	out := viper.New()
	for _, name := range voiceFlags {
		k := "voice." + name
		if cmd.Flags().Changed(name) || vp.InConfig(k) {
			out.Set(k, vp.Get(k))
		}
	}
	return out
}

func main() {
	if err := newRootCmd(viper.New(), os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
