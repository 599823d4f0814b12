package untyped

// Binding classifies a context entry. The untyped calculus has a single
// class, a bare name binding; typed calculi would hang more information
// off of it.
type Binding struct{}

type entry struct {
	name string
	bind Binding
}

// Context is the naming context used to render terms: an ordered sequence
// of binder names, outermost first. It exists purely for display and
// plays no part in evaluation.
type Context struct {
	entries []entry
}

// NewContext builds a context from free-variable names, outermost to
// innermost.
func NewContext(names ...string) Context {
	entries := make([]entry, len(names))
	for i, name := range names {
		entries[i] = entry{name: name}
	}
	return Context{entries: entries}
}

// Len is the number of names in scope.
func (c Context) Len() int {
	return len(c.entries)
}

// indexToName resolves a de Bruijn index to a display name. Indices count
// from the innermost binder while entries are appended outermost-first,
// so lookup runs against the reversed sequence.
func (c Context) indexToName(n int) string {
	return c.entries[len(c.entries)-1-n].name
}

// nameToIndex is the inverse lookup: the de Bruijn index of the innermost
// entry with the given name, if any.
func (c Context) nameToIndex(name string) (int, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].name == name {
			return len(c.entries) - 1 - i, true
		}
	}
	return 0, false
}

func (c Context) isNameBound(name string) bool {
	for _, e := range c.entries {
		if e.name == name {
			return true
		}
	}
	return false
}

// pickFreshName primes name until it collides with nothing in scope, then
// returns the extended context and the chosen name. The receiver is never
// mutated; the extension owns its own backing array so sibling extensions
// cannot clobber each other.
func (c Context) pickFreshName(name string) (Context, string) {
	for c.isNameBound(name) {
		name += "'"
	}
	entries := make([]entry, len(c.entries), len(c.entries)+1)
	copy(entries, c.entries)
	return Context{entries: append(entries, entry{name: name})}, name
}
