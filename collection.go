package tween

// CollectionKind selects how a collection schedules its children.
type CollectionKind uint8

const (
	KindSequence CollectionKind = iota // one child after another, in order
	KindParallel                       // all children at once
)

type collectionItem struct {
	start   float32
	child   Tweener
	last    float32
	touched bool
}

// Collection is a tweener made of other tweeners. It runs through the same
// state machine as a Tween (loops, ping-pong, reverse, callbacks) and drives
// its children by seeking them to their local time each tick.
type Collection struct {
	tweenCore

	kind   CollectionKind
	items  []*collectionItem
	cursor float32

	// lastElapsed is the iteration time of the previous apply. Children are
	// sought last to first when time moves back below it.
	lastElapsed float32
}

// NewSequence creates an empty sequence. cfg supplies the collection's own
// timing options; its properties are ignored.
func (e *Engine) NewSequence(cfg *TweenConfig) *Collection {
	return e.newCollection(KindSequence, cfg)
}

// NewParallel creates an empty parallel group.
func (e *Engine) NewParallel(cfg *TweenConfig) *Collection {
	return e.newCollection(KindParallel, cfg)
}

func (e *Engine) newCollection(kind CollectionKind, cfg *TweenConfig) *Collection {
	if cfg == nil {
		cfg = NewConfig()
	}
	c := &Collection{kind: kind}
	c.tweenCore.init(c, c, e, 0, cfg)
	return c
}

// Kind reports whether c is a sequence or a parallel group.
func (c *Collection) Kind() CollectionKind { return c.kind }

// Children returns the child tweeners in scheduling order.
func (c *Collection) Children() []Tweener {
	out := make([]Tweener, len(c.items))
	for i, it := range c.items {
		out[i] = it.child
	}
	return out
}

// Append adds child after the last child of a sequence, or at time zero of
// a parallel group. A child that is scheduled on the engine is unscheduled.
func (c *Collection) Append(child Tweener) *Collection {
	start := float32(0)
	if c.kind == KindSequence {
		start = c.cursor
	}
	return c.Insert(start, child)
}

// AppendDelay leaves a gap of seconds before the next appended child of a
// sequence. It has no effect on a parallel group.
func (c *Collection) AppendDelay(seconds float32) *Collection {
	if c.kind != KindSequence || seconds <= 0 {
		return c
	}
	c.cursor += seconds
	c.duration = max(c.duration, c.cursor)
	return c
}

// Insert adds child at an explicit start time within the collection.
func (c *Collection) Insert(start float32, child Tweener) *Collection {
	switch {
	case child == nil:
		return c
	case child.State() == StateDestroyed:
		c.engine.log.Warnf("cannot add a destroyed tween to a collection")
		return c
	case child.core().iterations < 0:
		c.engine.log.Warnf("cannot add an infinitely looping tween to a collection")
		return c
	case Tweener(c) == child:
		return c
	case child.core().parent != nil:
		c.engine.log.Warnf("cannot add a tween that already belongs to a collection")
		return c
	}
	c.engine.RemoveTween(child)
	child.core().parent = c
	start = max(start, 0)
	end := start + child.core().span()
	c.items = append(c.items, &collectionItem{start: start, child: child})
	if c.kind == KindSequence {
		c.cursor = max(c.cursor, end)
	}
	c.duration = max(c.duration, end)
	return c
}

// TweensWithTarget returns the tweens in this collection, at any depth,
// that animate target.
func (c *Collection) TweensWithTarget(target Target) []*Tween {
	var out []*Tween
	for _, it := range c.items {
		switch child := it.child.(type) {
		case *Tween:
			if child.target == target {
				out = append(out, child)
			}
		case *Collection:
			out = append(out, child.TweensWithTarget(target)...)
		}
	}
	return out
}

// IsValid reports whether every child is valid.
func (c *Collection) IsValid() bool {
	if c.state == StateDestroyed {
		return false
	}
	for _, it := range c.items {
		if it.child.State() != StateDestroyed && !it.child.IsValid() {
			return false
		}
	}
	return true
}

func (c *Collection) initialize() {}

func (c *Collection) apply(elapsed float32) {
	backwards := elapsed < c.lastElapsed
	c.lastElapsed = elapsed
	n := len(c.items)
	for i := range n {
		it := c.items[i]
		if backwards {
			it = c.items[n-1-i]
		}
		if !it.touched && elapsed < it.start {
			continue
		}
		local := min(max(elapsed-it.start, 0), it.child.core().span())
		if it.touched && local == it.last {
			continue
		}
		it.touched = true
		it.last = local
		it.child.core().seek(local)
		if c.state == StateDestroyed {
			return
		}
	}
}

func (c *Collection) destroyed() {
	for _, it := range c.items {
		it.child.Destroy()
	}
}
