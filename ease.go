package tween

import (
	"fmt"
	"strings"

	curve "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// EaseFunc maps elapsed time t within a duration d onto a value that starts at
// b and changes by c. It is the signature used by gween's ease package.
type EaseFunc = ease.TweenFunc

// EaseType names one of the built-in easing presets.
type EaseType uint8

const (
	EaseLinear EaseType = iota
	EaseSineIn
	EaseSineOut
	EaseSineInOut
	EaseQuadIn
	EaseQuadOut
	EaseQuadInOut
	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut
	EaseQuartIn
	EaseQuartOut
	EaseQuartInOut
	EaseQuintIn
	EaseQuintOut
	EaseQuintInOut
	EaseExpoIn
	EaseExpoOut
	EaseExpoInOut
	EaseCircIn
	EaseCircOut
	EaseCircInOut
	EaseElasticIn
	EaseElasticOut
	EaseElasticInOut
	EaseBackIn
	EaseBackOut
	EaseBackInOut
	EaseBounceIn
	EaseBounceOut
	EaseBounceInOut

	easeTypeCount
)

var easeNames = [easeTypeCount]string{
	"linear",
	"sineIn", "sineOut", "sineInOut",
	"quadIn", "quadOut", "quadInOut",
	"cubicIn", "cubicOut", "cubicInOut",
	"quartIn", "quartOut", "quartInOut",
	"quintIn", "quintOut", "quintInOut",
	"expoIn", "expoOut", "expoInOut",
	"circIn", "circOut", "circInOut",
	"elasticIn", "elasticOut", "elasticInOut",
	"backIn", "backOut", "backInOut",
	"bounceIn", "bounceOut", "bounceInOut",
}

var easeFuncs = [easeTypeCount]EaseFunc{
	ease.Linear,
	ease.InSine, ease.OutSine, ease.InOutSine,
	ease.InQuad, ease.OutQuad, ease.InOutQuad,
	ease.InCubic, ease.OutCubic, ease.InOutCubic,
	ease.InQuart, ease.OutQuart, ease.InOutQuart,
	ease.InQuint, ease.OutQuint, ease.InOutQuint,
	ease.InExpo, ease.OutExpo, ease.InOutExpo,
	ease.InCirc, ease.OutCirc, ease.InOutCirc,
	ease.InElastic, ease.OutElastic, ease.InOutElastic,
	ease.InBack, ease.OutBack, ease.InOutBack,
	ease.InBounce, ease.OutBounce, ease.InOutBounce,
}

func (e EaseType) String() string {
	if e < easeTypeCount {
		return easeNames[e]
	}
	return fmt.Sprintf("EaseType(%d)", e)
}

// Func returns the easing function for e. Unknown values fall back to linear.
func (e EaseType) Func() EaseFunc {
	if e < easeTypeCount {
		return easeFuncs[e]
	}
	return ease.Linear
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EaseType) UnmarshalYAML(value *yaml.Node) error {
	i, err := parseEnum(value, "ease type", easeNames[:])
	if err != nil {
		return err
	}
	*e = EaseType(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e EaseType) MarshalYAML() (any, error) { return e.String(), nil }

// curves are normalized easing curves from fogleman/ease, keyed by name.
var curves = map[string]func(float64) float64{
	"Linear":       curve.Linear,
	"InQuad":       curve.InQuad,
	"OutQuad":      curve.OutQuad,
	"InOutQuad":    curve.InOutQuad,
	"InCubic":      curve.InCubic,
	"OutCubic":     curve.OutCubic,
	"InOutCubic":   curve.InOutCubic,
	"InQuart":      curve.InQuart,
	"OutQuart":     curve.OutQuart,
	"InOutQuart":   curve.InOutQuart,
	"InQuint":      curve.InQuint,
	"OutQuint":     curve.OutQuint,
	"InOutQuint":   curve.InOutQuint,
	"InSine":       curve.InSine,
	"OutSine":      curve.OutSine,
	"InOutSine":    curve.InOutSine,
	"InExpo":       curve.InExpo,
	"OutExpo":      curve.OutExpo,
	"InOutExpo":    curve.InOutExpo,
	"InCirc":       curve.InCirc,
	"OutCirc":      curve.OutCirc,
	"InOutCirc":    curve.InOutCirc,
	"InElastic":    curve.InElastic,
	"OutElastic":   curve.OutElastic,
	"InOutElastic": curve.InOutElastic,
	"InBack":       curve.InBack,
	"OutBack":      curve.OutBack,
	"InOutBack":    curve.InOutBack,
	"InBounce":     curve.InBounce,
	"OutBounce":    curve.OutBounce,
	"InOutBounce":  curve.InOutBounce,
}

// Curve returns the named fogleman/ease curve.
func Curve(name string) (func(float64) float64, bool) {
	fn, ok := curves[name]
	return fn, ok
}

// EaseFromCurve adapts a normalized curve (0 -> 0, 1 -> 1) to an EaseFunc.
func EaseFromCurve(fn func(float64) float64) EaseFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}

// LookupEase resolves an easing function by name. Preset names ("quadOut")
// resolve to the gween functions; "curve:" names ("curve:OutBounce") resolve
// to fogleman/ease curves.
func LookupEase(name string) (EaseFunc, bool) {
	if rest, ok := strings.CutPrefix(name, "curve:"); ok {
		fn, ok := curves[rest]
		if !ok {
			return nil, false
		}
		return EaseFromCurve(fn), true
	}
	for i, n := range easeNames {
		if n == name {
			return easeFuncs[i], true
		}
	}
	return nil, false
}

// evaluate runs fn for a float64 channel, pinning the boundaries so every
// easing function starts exactly at start and ends exactly at end.
func evaluate(fn EaseFunc, t, d float32, start, diff, end float64) float64 {
	if t >= d {
		return end
	}
	if t <= 0 {
		return start
	}
	return float64(fn(t, float32(start), float32(diff), d))
}

// progress returns the eased fraction of the way from 0 to 1.
func progress(fn EaseFunc, t, d float32) float64 {
	return evaluate(fn, t, d, 0, 1, 1)
}
