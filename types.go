package tween

import (
	"fmt"
	"image/color"
	"math"

	"gopkg.in/yaml.v3"
)

// Vec2 is a 2D vector used for positions, scales and path samples.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Vec3 is a 3D vector. Nodes use the Z component as a depth value.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts c to an 8-bit color for image.Fill and friends.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// State is the lifecycle state of a tween or collection.
type State uint8

const (
	StateRunning   State = iota // advanced by the engine every tick of its phase
	StatePaused                 // registered but not advanced
	StateComplete               // reached the end of its final iteration
	StateDestroyed              // terminal; purged from the registry on the next sweep
)

var stateNames = [...]string{"running", "paused", "complete", "destroyed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// UpdateType selects the per-frame phase that advances a tween.
type UpdateType uint8

const (
	Update                     UpdateType = iota // main frame update
	LateUpdate                                   // after the frame is drawn
	FixedUpdate                                  // fixed-timestep update
	TimeScaleIndependentUpdate                   // wall-clock time, ignores the engine time scale
)

var updateTypeNames = [...]string{"update", "lateUpdate", "fixedUpdate", "timeScaleIndependentUpdate"}

func (u UpdateType) String() string {
	if int(u) < len(updateTypeNames) {
		return updateTypeNames[u]
	}
	return fmt.Sprintf("UpdateType(%d)", u)
}

// LoopType controls what happens between iterations of a looping tween.
type LoopType uint8

const (
	LoopNone                 LoopType = iota // play once
	LoopRestartFromBeginning                 // jump back to the start values each iteration
	LoopPingPong                             // play every odd iteration backwards
)

var loopTypeNames = [...]string{"none", "restartFromBeginning", "pingPong"}

func (l LoopType) String() string {
	if int(l) < len(loopTypeNames) {
		return loopTypeNames[l]
	}
	return fmt.Sprintf("LoopType(%d)", l)
}

// DuplicatePropertyRule decides what happens when a new tween drives a
// property that a registered tween on the same target already drives.
type DuplicatePropertyRule uint8

const (
	DuplicateNone                   DuplicatePropertyRule = iota // no checking, both tweens write the property
	DuplicateDontAddCurrentProperty                              // refuse the new tween
	DuplicateRemoveRunningProperty                               // strip the property from the running tween
)

var duplicateRuleNames = [...]string{"none", "dontAddCurrentProperty", "removeRunningProperty"}

func (d DuplicatePropertyRule) String() string {
	if int(d) < len(duplicateRuleNames) {
		return duplicateRuleNames[d]
	}
	return fmt.Sprintf("DuplicatePropertyRule(%d)", d)
}

// parseEnum maps a yaml scalar onto an index into names.
func parseEnum(value *yaml.Node, kind string, names []string) (int, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return 0, fmt.Errorf("decode %s: %w", kind, err)
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q: %w", kind, s, ErrInvalidSettings)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *UpdateType) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseEnum(value, "update type", updateTypeNames[:])
	if err != nil {
		return err
	}
	*u = UpdateType(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (u UpdateType) MarshalYAML() (any, error) { return u.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LoopType) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseEnum(value, "loop type", loopTypeNames[:])
	if err != nil {
		return err
	}
	*l = LoopType(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l LoopType) MarshalYAML() (any, error) { return l.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DuplicatePropertyRule) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseEnum(value, "duplicate property rule", duplicateRuleNames[:])
	if err != nil {
		return err
	}
	*d = DuplicatePropertyRule(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d DuplicatePropertyRule) MarshalYAML() (any, error) { return d.String(), nil }

// Channel is a bitmask of the components a property writes. Two properties
// with the same name collide when their channels overlap.
type Channel uint8

const (
	ChannelX Channel = 1 << iota
	ChannelY
	ChannelZ
	ChannelA // alpha, for colors

	ChannelR   = ChannelX
	ChannelG   = ChannelY
	ChannelB   = ChannelZ
	ChannelAll = ChannelX | ChannelY | ChannelZ | ChannelA
)
