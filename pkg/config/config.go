// Package config loads transition settings from transit.yaml or
// transit.toml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/transit/pkg/animation"
	transiterrors "github.com/go-drift/transit/pkg/errors"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/logging"
	"github.com/go-drift/transit/pkg/transition"
)

// SchemaVersion is the newest configuration schema this package reads.
// Files carrying a different major version are rejected.
const SchemaVersion = "v1.0.0"

// FileNames are the names LoadOptional looks for, in order.
var FileNames = []string{"transit.yaml", "transit.yml", "transit.toml"}

// File is the on-disk configuration.
type File struct {
	Version    string           `yaml:"version,omitempty" toml:"version,omitempty"`
	Transition TransitionConfig `yaml:"transition" toml:"transition"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Metrics    MetricsConfig    `yaml:"metrics" toml:"metrics"`

	// source is the path the file was read from.
	source string
}

// TransitionConfig mirrors transition.Options. Zero values take defaults.
type TransitionConfig struct {
	Kind                    string   `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Edges                   []string `yaml:"edges,omitempty" toml:"edges,omitempty"`
	MinimumScaleFactor      float64  `yaml:"minimum_scale_factor,omitempty" toml:"minimum_scale_factor,omitempty"`
	PrimaryFriction         float64  `yaml:"primary_friction,omitempty" toml:"primary_friction,omitempty"`
	SecondaryFriction       float64  `yaml:"secondary_friction,omitempty" toml:"secondary_friction,omitempty"`
	FrictionDistance        float64  `yaml:"friction_distance,omitempty" toml:"friction_distance,omitempty"`
	CommitThreshold         float64  `yaml:"commit_threshold,omitempty" toml:"commit_threshold,omitempty"`
	FlingVelocity           float64  `yaml:"fling_velocity,omitempty" toml:"fling_velocity,omitempty"`
	MatchedGeometryDistance float64  `yaml:"matched_geometry_distance,omitempty" toml:"matched_geometry_distance,omitempty"`
	CornerRadius            float64  `yaml:"corner_radius,omitempty" toml:"corner_radius,omitempty"`
	PresentingScale         float64  `yaml:"presenting_scale,omitempty" toml:"presenting_scale,omitempty"`
	Duration                string   `yaml:"duration,omitempty" toml:"duration,omitempty"`
	Curve                   string   `yaml:"curve,omitempty" toml:"curve,omitempty"`
}

// LoggingConfig selects the log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// InputConfig names the touch device read by the evdev input package.
type InputConfig struct {
	Device string `yaml:"device,omitempty" toml:"device,omitempty"`
	// Width and Height are the logical size touch coordinates are scaled
	// to. Zero keeps device units.
	Width  float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" toml:"height,omitempty"`
}

// MetricsConfig configures the prometheus collector.
type MetricsConfig struct {
	Namespace string `yaml:"namespace,omitempty" toml:"namespace,omitempty"`
}

// Resolved is a validated configuration.
type Resolved struct {
	Kind      transition.Kind
	Options   transition.Options
	Level     slog.Level
	Format    logging.Format
	Input     InputConfig
	Namespace string
}

// Load reads the file at path. Files ending in .toml are decoded as TOML,
// anything else as YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	f, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	f.source = path
	return f, nil
}

// Parse decodes data as TOML or YAML.
func Parse(data []byte, isTOML bool) (*File, error) {
	var f File
	if isTOML {
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadOptional reads the first of FileNames present in dir. A directory
// without one yields an empty File.
func LoadOptional(dir string) (*File, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		f, err := Load(path)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return &File{}, nil
}

// Resolve validates f and converts it into engine values.
func (f *File) Resolve() (*Resolved, error) {
	if err := f.checkVersion(); err != nil {
		return nil, err
	}
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	kind := transition.KindSlide
	if raw := strings.TrimSpace(f.Transition.Kind); raw != "" {
		kind, err = transition.ParseKind(raw)
		if err != nil {
			return nil, f.invalid("transition.kind", raw, err)
		}
	}
	format := logging.FormatText
	switch strings.ToLower(strings.TrimSpace(f.Logging.Format)) {
	case "", "text":
	case "json":
		format = logging.FormatJSON
	default:
		return nil, f.invalid("logging.format", f.Logging.Format, nil)
	}
	return &Resolved{
		Kind:      kind,
		Options:   opts,
		Level:     logging.ParseLevel(f.Logging.Level),
		Format:    format,
		Input:     f.Input,
		Namespace: f.Metrics.Namespace,
	}, nil
}

// Options converts the transition section. Zero values take their
// defaults.
func (f *File) Options() (transition.Options, error) {
	t := f.Transition
	opts := transition.Options{
		MinimumScaleFactor:      t.MinimumScaleFactor,
		PrimaryFriction:         t.PrimaryFriction,
		SecondaryFriction:       t.SecondaryFriction,
		FrictionDistance:        t.FrictionDistance,
		CommitThreshold:         t.CommitThreshold,
		FlingVelocity:           t.FlingVelocity,
		MatchedGeometryDistance: t.MatchedGeometryDistance,
		CornerRadius:            t.CornerRadius,
		PresentingScale:         t.PresentingScale,
	}
	for _, raw := range t.Edges {
		edge, err := graphics.ParseEdge(strings.TrimSpace(raw))
		if err != nil {
			return transition.Options{}, f.invalid("transition.edges", raw, err)
		}
		opts.Edges |= graphics.EdgeSetOf(edge)
	}
	if t.Duration != "" {
		d, err := time.ParseDuration(t.Duration)
		if err != nil || d <= 0 {
			return transition.Options{}, f.invalid("transition.duration", t.Duration, err)
		}
		opts.Duration = d
	}
	if t.Curve != "" {
		curve, err := ParseCurve(t.Curve)
		if err != nil {
			return transition.Options{}, f.invalid("transition.curve", t.Curve, err)
		}
		opts.Curve = curve
	}
	if t.CommitThreshold < 0 || t.CommitThreshold > 1 {
		return transition.Options{}, f.invalid("transition.commit_threshold", t.CommitThreshold, nil)
	}
	return opts.Normalize(), nil
}

// ParseCurve resolves a curve name. "spring" takes an optional stiffness,
// as in "spring:12".
func ParseCurve(name string) (animation.Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(name, "spring"); ok {
		stiffness := 10.0
		if rest != "" {
			v, err := strconv.ParseFloat(strings.TrimPrefix(rest, ":"), 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("invalid spring stiffness %q", rest)
			}
			stiffness = v
		}
		return animation.CriticallyDampedSpring(stiffness), nil
	}
	switch name {
	case "linear":
		return animation.LinearCurve, nil
	case "ease":
		return animation.Ease, nil
	case "ease-in":
		return animation.EaseIn, nil
	case "ease-out":
		return animation.EaseOut, nil
	case "ease-in-out":
		return animation.EaseInOut, nil
	case "ios", "ios-navigation":
		return animation.IOSNavigationCurve, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

func (f *File) checkVersion() error {
	if f.Version == "" {
		return nil
	}
	v := f.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return f.invalid("version", f.Version, errors.New("not a semantic version"))
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return f.invalid("version", f.Version, fmt.Errorf("unsupported schema %s, want %s", semver.Major(v), semver.Major(SchemaVersion)))
	}
	return nil
}

func (f *File) invalid(field string, got any, err error) error {
	source := f.source
	if source == "" {
		source = "config"
	}
	return &transiterrors.ParseError{Source: source, Field: field, Got: got, Err: err}
}
