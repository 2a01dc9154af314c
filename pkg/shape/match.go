package shape

// Predicate reports whether a candidate value satisfies a shape.
type Predicate func(candidate any) bool

// Option configures predicate construction.
type Option func(*options)

type options struct {
	registry *Registry
	maxDepth int
}

// WithRegistry consults r for string descriptors in addition to the runtime
// type name of the value.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithMaxDepth limits how many levels of nested shapes are followed. Nested
// shapes past the limit never match. Without it the shape must be acyclic.
// Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// Matches returns a predicate that reports whether a candidate satisfies s.
// Every property declared in s must accept the candidate's value for it; other
// properties of the candidate are ignored. An empty shape accepts anything.
func Matches(s Shape, opts ...Option) Predicate {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	c := compile(s, o, 0)
	return func(candidate any) bool {
		return c.match(candidate, o.registry)
	}
}

// MatchesForAll returns a predicate that reports whether every element of a
// slice satisfies s. It is true for an empty slice.
func MatchesForAll(s Shape, opts ...Option) func(candidates []any) bool {
	return MatchesEach[any](s, opts...)
}

// MatchesEach is MatchesForAll for typed slices.
func MatchesEach[T any](s Shape, opts ...Option) func(candidates []T) bool {
	match := Matches(s, opts...)
	return func(candidates []T) bool {
		for _, c := range candidates {
			if !match(c) {
				return false
			}
		}
		return true
	}
}

type compiledShape struct {
	props []compiledProp
}

type compiledProp struct {
	name string
	alts []node
}

type node struct {
	kind  Kind
	name  string // case-folded
	ref   Ref
	shape *compiledShape
}

func compile(s Shape, o *options, depth int) *compiledShape {
	c := &compiledShape{props: make([]compiledProp, 0, len(s))}
	for name, entry := range s {
		d := Classify(entry)
		alts := []Descriptor{d}
		if d.Kind == KindAlternatives {
			alts = d.Alternatives
		}
		p := compiledProp{name: name, alts: make([]node, 0, len(alts))}
		for _, alt := range alts {
			p.alts = append(p.alts, compileNode(alt, o, depth))
		}
		c.props = append(c.props, p)
	}
	return c
}

// compileNode turns one alternative into a node. Alternatives nested inside
// alternatives never match.
func compileNode(d Descriptor, o *options, depth int) node {
	switch d.Kind {
	case KindUndefined, KindNull:
		return node{kind: d.Kind}
	case KindTypeName:
		return node{kind: d.Kind, name: foldName(d.Name)}
	case KindTypeRef:
		return node{kind: d.Kind, ref: d.Ref}
	case KindShape:
		if o.maxDepth > 0 && depth >= o.maxDepth {
			return node{kind: KindInvalid}
		}
		return node{kind: d.Kind, shape: compile(d.Shape, o, depth+1)}
	}
	return node{kind: KindInvalid}
}

func (c *compiledShape) match(candidate any, reg *Registry) bool {
	for _, p := range c.props {
		if !p.match(property(candidate, p.name), reg) {
			return false
		}
	}
	return true
}

func (p compiledProp) match(v any, reg *Registry) bool {
	for _, n := range p.alts {
		if n.match(v, reg) {
			return true
		}
	}
	return false
}

func (n node) match(v any, reg *Registry) bool {
	switch n.kind {
	case KindUndefined:
		return isUndefinedValue(v)
	case KindNull:
		return isAbsent(v) && !isUndefinedValue(v)
	case KindTypeRef:
		return n.ref.Match(v)
	case KindTypeName:
		if isAbsent(v) {
			return false
		}
		if foldName(TypeName(v)) == n.name {
			return true
		}
		if check, ok := reg.lookupFolded(n.name); ok {
			return safeCheck(check, v)
		}
		return false
	case KindShape:
		if isAbsent(v) {
			return false
		}
		return n.shape.match(v, reg)
	}
	return false
}

// safeCheck runs a caller-supplied check, treating a panic as a mismatch.
func safeCheck(check Check, v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return check(v)
}
