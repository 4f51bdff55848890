package tween

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the engine-wide defaults. Tweens read the Default* fields
// once, when they are constructed.
type Settings struct {
	DefaultEaseType         EaseType              `yaml:"defaultEaseType"`
	DefaultLoopType         LoopType              `yaml:"defaultLoopType"`
	DefaultUpdateType       UpdateType            `yaml:"defaultUpdateType"`
	DuplicatePropertyRule   DuplicatePropertyRule `yaml:"duplicatePropertyRule"`
	LogLevel                LogLevel              `yaml:"logLevel"`
	ValidateTargetsEachTick bool                  `yaml:"validateTargetsEachTick"`
	TimeScale               float32               `yaml:"timeScale"`
	Presets                 map[string]Preset     `yaml:"presets,omitempty"`
}

// DefaultSettings returns linear easing, restart looping, the Update phase,
// no duplicate checking, warnings logged and targets validated every tick.
func DefaultSettings() Settings {
	return Settings{
		DefaultEaseType:         EaseLinear,
		DefaultLoopType:         LoopRestartFromBeginning,
		DefaultUpdateType:       Update,
		DuplicatePropertyRule:   DuplicateNone,
		LogLevel:                LogWarn,
		ValidateTargetsEachTick: true,
		TimeScale:               1,
	}
}

// Preset is a named set of tween options defined in a settings file.
// Zero fields leave the corresponding option unset.
type Preset struct {
	Ease       string      `yaml:"ease,omitempty"`
	Loop       *LoopType   `yaml:"loop,omitempty"`
	Iterations int         `yaml:"iterations,omitempty"`
	Delay      float32     `yaml:"delay,omitempty"`
	Update     *UpdateType `yaml:"update,omitempty"`
	TimeScale  float32     `yaml:"timeScale,omitempty"`
	Relative   bool        `yaml:"relative,omitempty"`
	Tag        string      `yaml:"tag,omitempty"`
}

// Config builds a fresh TweenConfig carrying the preset's options. Ease
// accepts preset names ("quadOut") and curves ("curve:OutBack").
func (p Preset) Config() (*TweenConfig, error) {
	cfg := NewConfig()
	if p.Ease != "" {
		fn, ok := LookupEase(p.Ease)
		if !ok {
			return nil, fmt.Errorf("unknown ease %q: %w", p.Ease, ErrInvalidSettings)
		}
		cfg.SetEase(fn)
	}
	if p.Loop != nil {
		cfg.SetLoopType(*p.Loop)
	}
	if p.Iterations != 0 {
		cfg.SetIterations(p.Iterations)
	}
	if p.Update != nil {
		cfg.SetUpdateType(*p.Update)
	}
	if p.TimeScale != 0 {
		cfg.SetTimeScale(p.TimeScale)
	}
	return cfg.SetDelay(p.Delay).SetRelative(p.Relative).SetTag(p.Tag), nil
}

// ParseSettings decodes YAML on top of DefaultSettings, so omitted keys keep
// their defaults.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// LoadSettings reads and parses a settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseSettings(data)
}

// Validate checks ranges the YAML decoder cannot.
func (s Settings) Validate() error {
	if s.TimeScale < 0 {
		return fmt.Errorf("timeScale must not be negative, got %v: %w", s.TimeScale, ErrInvalidSettings)
	}
	if int(s.DefaultEaseType) >= int(easeTypeCount) {
		return fmt.Errorf("defaultEaseType out of range: %w", ErrInvalidSettings)
	}
	for name, p := range s.Presets {
		if name == "" {
			return fmt.Errorf("preset name cannot be empty: %w", ErrInvalidSettings)
		}
		if p.Iterations < -1 {
			return fmt.Errorf("preset %q: iterations must be -1 or positive, got %d: %w", name, p.Iterations, ErrInvalidSettings)
		}
		if p.Delay < 0 {
			return fmt.Errorf("preset %q: delay must not be negative: %w", name, ErrInvalidSettings)
		}
		if p.Ease != "" {
			if _, ok := LookupEase(p.Ease); !ok {
				return fmt.Errorf("preset %q: unknown ease %q: %w", name, p.Ease, ErrInvalidSettings)
			}
		}
	}
	return nil
}

// Marshal encodes the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}
