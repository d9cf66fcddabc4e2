package parse

// Lazy defers to a Matcher built by f, calling f anew on every Match. It
// exists to let mutually- or self-recursive grammar productions (a term
// that can contain another term) refer to themselves without the
// package-level matcher tree trying to build itself infinitely at
// construction time.
type Lazy struct {
	f func() Matcher
}
// NewLazy returns a Lazy matcher backed by f.
func NewLazy(f func() Matcher) *Lazy {
	return &Lazy{f: f}
}

func (l *Lazy) Match(a *Assembly) []*Assembly {
	return l.f().Match(a)
}
