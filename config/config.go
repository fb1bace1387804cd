// Package config resolves the voice parameters from defaults, the
// environment, an optional .env file and viper-bound flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Voice holds the parameters that shape synthesized speech.
type Voice struct {
	// Speed is the number of oscillator calls per frame.
	Speed byte `yaml:"speed" env:"SAM_SPEED" envDefault:"72"`
	// Pitch is the base glottal pulse length; lower is higher.
	Pitch  byte `yaml:"pitch" env:"SAM_PITCH" envDefault:"64"`
	Mouth  byte `yaml:"mouth" env:"SAM_MOUTH" envDefault:"128"`
	Throat byte `yaml:"throat" env:"SAM_THROAT" envDefault:"128"`
	// Sing keeps the formant-induced pitch wobble out of the contour.
	Sing bool `yaml:"sing" env:"SAM_SING" envDefault:"false"`
}

var (
	ErrZeroSpeed = errors.New("speed must be at least 1")
	ErrZeroPitch = errors.New("pitch must be at least 1")
)

// Default returns the classic voice.
func Default() Voice {
	return Voice{Speed: 72, Pitch: 64, Mouth: 128, Throat: 128}
}

// Validate reports parameters that would stall the renderer.
func (v Voice) Validate() error {
	if v.Speed == 0 {
		return ErrZeroSpeed
	}
	if v.Pitch == 0 {
		return ErrZeroPitch
	}
	return nil
}

// FromEnv reads SAM_* variables, falling back to the defaults.
func FromEnv() (Voice, error) {
	v, err := env.ParseAs[Voice]()
	if err != nil {
		return Voice{}, fmt.Errorf("parse environment: %w", err)
	}
	return v, nil
}

// Load reads the given .env files into the environment, when present, and
// then parses it. A missing file is not an error.
func Load(files ...string) (Voice, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Voice{}, fmt.Errorf("load env files: %w", err)
		}
	}
	v, err := FromEnv()
	if err != nil {
		return Voice{}, err
	}
	if err := v.Validate(); err != nil {
		return Voice{}, fmt.Errorf("invalid voice: %w", err)
	}
	return v, nil
}

// FromViper overrides base with every voice key set in vp.
func FromViper(vp *viper.Viper, base Voice) (Voice, error) {
	v := base
	for _, k := range []struct {
		key string
		dst *byte
	}{
		{"voice.speed", &v.Speed},
		{"voice.pitch", &v.Pitch},
		{"voice.mouth", &v.Mouth},
		{"voice.throat", &v.Throat},
	} {
		if !vp.IsSet(k.key) {
			continue
		}
		n := vp.GetInt(k.key)
		if n < 0 || n > 255 {
			return Voice{}, fmt.Errorf("%s = %d, want 0..255", k.key, n)
		}
		*k.dst = byte(n)
	}
	if vp.IsSet("voice.sing") {
		v.Sing = vp.GetBool("voice.sing")
	}
	if err := v.Validate(); err != nil {
		return Voice{}, fmt.Errorf("invalid voice: %w", err)
	}
	return v, nil
}
