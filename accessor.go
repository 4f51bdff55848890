package tween

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when a tween target is nil or no longer valid.
	ErrInvalidTarget = errors.New("tween: invalid target")
	// ErrUnknownProperty is returned when no accessor resolves a property name.
	ErrUnknownProperty = errors.New("tween: unknown property")
	// ErrInvalidSettings is returned for malformed engine settings.
	ErrInvalidSettings = errors.New("tween: invalid settings")
)

// Target is an opaque, identity-comparable handle to the object being
// animated, usually a pointer. The engine never owns it.
type Target = any

// Validator is implemented by targets that can become invalid, such as
// disposed nodes or destroyed entities.
type Validator interface {
	Valid() bool
}

// targetValid reports whether t may still be written to.
func targetValid(t Target) bool {
	if t == nil {
		return false
	}
	if v, ok := t.(Validator); ok {
		return v.Valid()
	}
	return true
}

// Value is the set of value shapes a property can drive.
type Value interface {
	float64 | int | Vec2 | Vec3 | Color
}

// Accessor is a bound getter/setter pair for one property of one target.
type Accessor[T Value] struct {
	Get func() T
	Set func(T)
}

// Resolver binds a property on target, or reports false if target is not a
// type it understands.
type Resolver[T Value] func(target Target) (Accessor[T], bool)

type shape uint8

const (
	shapeFloat shape = iota
	shapeInt
	shapeVec2
	shapeVec3
	shapeColor
)

func shapeOf[T Value]() shape {
	var zero T
	switch any(zero).(type) {
	case float64:
		return shapeFloat
	case int:
		return shapeInt
	case Vec2:
		return shapeVec2
	case Vec3:
		return shapeVec3
	default:
		return shapeColor
	}
}

type accessorKey struct {
	shape shape
	name  string
}

// Registry maps (value shape, property name) to resolvers. Several resolvers
// may share a key; the first one that accepts the target wins.
type Registry struct {
	resolvers map[accessorKey][]any
}

// NewRegistry creates a registry with the Node accessors registered.
func NewRegistry() *Registry {
	r := &Registry{resolvers: make(map[accessorKey][]any)}
	registerNodeAccessors(r)
	return r
}

// RegisterAccessor adds a resolver for the named property of shape T.
func RegisterAccessor[T Value](r *Registry, name string, fn Resolver[T]) {
	key := accessorKey{shapeOf[T](), name}
	r.resolvers[key] = append(r.resolvers[key], fn)
}

// ResolveAccessor binds the named property of shape T on target.
func ResolveAccessor[T Value](r *Registry, target Target, name string) (Accessor[T], error) {
	if !targetValid(target) {
		return Accessor[T]{}, ErrInvalidTarget
	}
	for _, fn := range r.resolvers[accessorKey{shapeOf[T](), name}] {
		if acc, ok := fn.(Resolver[T])(target); ok {
			return acc, nil
		}
	}
	return Accessor[T]{}, fmt.Errorf("%w: %q on %T", ErrUnknownProperty, name, target)
}
