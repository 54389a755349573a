package explorer

// Expansion is the set of directory paths currently shown expanded.
// It is scoped to one tree root: changing the root clears it.
type Expansion struct {
	paths map[string]struct{}
}

func NewExpansion() *Expansion {
	return &Expansion{paths: make(map[string]struct{})}
}

// Toggle inserts the path if absent and removes it if present,
// reporting whether the path is expanded afterwards.
func (e *Expansion) Toggle(path string) bool {
	if e.Contains(path) {
		delete(e.paths, path)
		return false
	}
	e.paths[path] = struct{}{}
	return true
}

// Contains reports whether the path is expanded.
func (e *Expansion) Contains(path string) bool {
	_, ok := e.paths[path]
	return ok
}

// Remove collapses the path; removing an absent path is a no-op.
func (e *Expansion) Remove(path string) {
	delete(e.paths, path)
}

// Clear collapses everything.
func (e *Expansion) Clear() {
	clear(e.paths)
}

// Len returns the number of expanded directories.
func (e *Expansion) Len() int {
	return len(e.paths)
}
