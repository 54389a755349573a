package explorer

import (
	"errors"
	"path/filepath"

	"github.com/llehouerou/arbor/internal/icons"
)

// Row is one visible line of the flattened tree.
type Row struct {
	Label string // connector prefix + marker + glyph + name
	Path  string // absolute path (for the ".." row, the parent itself)
	IsDir bool
	Depth int // nesting level; the root's direct children are depth 0
}

// Tree-drawing pieces. A subtree under a last sibling extends the
// prefix with blanks, anything else with a vertical continuation.
const (
	connectorTee    = "├─"
	connectorCorner = "└─"
	prefixContinue  = "│  "
	prefixBlank     = "   "
)

// item is one pending entry on the traversal work stack.
type item struct {
	path   string
	name   string
	prefix string
	depth  int
	isDir  bool
	isLast bool
}

// Flatten renders the subtree rooted at root into the ordered row
// sequence of an outline: depth-first, pre-order, directories sorted
// before files. Only directories present in exp are descended into.
//
// Access-denied listings degrade to a no-access leaf; any other
// listing error aborts and is returned to the caller. Two calls with
// an unchanged filesystem and expansion set yield identical rows.
func Flatten(root string, exp *Expansion, lister DirLister) ([]Row, error) {
	var rows []Row

	if parent := filepath.Dir(root); parent != root {
		rows = append(rows, Row{
			Label: connectorTee + " " + icons.FormatDir(".."),
			Path:  parent,
			IsDir: true,
			Depth: 0,
		})
	}

	// Explicit work stack instead of recursion: the traversal depth is
	// bounded by the user's expansions, not the Go stack. Children are
	// pushed in reverse so they pop in display order, directly after
	// their parent and before its later siblings.
	var stack []item

	push := func(children []Entry, parent, prefix string, depth int) {
		SortEntries(children)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			stack = append(stack, item{
				path:   filepath.Join(parent, c.Name),
				name:   c.Name,
				prefix: prefix,
				depth:  depth,
				isDir:  c.IsDir,
				isLast: i == len(children)-1,
			})
		}
	}

	rootChildren, err := lister.List(root)
	if err != nil && !errors.Is(err, ErrAccessDenied) {
		return nil, err
	}
	push(rootChildren, root, "", 0)

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := connectorTee
		if it.isLast {
			connector = connectorCorner
		}

		var label string
		var descend []Entry
		recurse := false

		if it.isDir {
			children, err := lister.List(it.path)
			switch {
			case errors.Is(err, ErrAccessDenied):
				// Unreadable: render as a leaf, even if expanded.
				label = it.prefix + connector + icons.NoAccess() + icons.FormatDir(it.name)
			case err != nil:
				return nil, err
			case exp.Contains(it.path):
				// Expanded dirs always recurse, even when they have
				// become empty since the user expanded them.
				label = it.prefix + connector + " " + icons.FormatDir(it.name)
				descend = children
				recurse = true
			case len(children) > 0:
				label = it.prefix + connector + icons.Collapsed() + icons.FormatDir(it.name)
			default:
				label = it.prefix + connector + " " + icons.FormatDir(it.name)
			}
		} else {
			label = it.prefix + connector + " " + icons.FormatFile(it.name)
		}

		rows = append(rows, Row{Label: label, Path: it.path, IsDir: it.isDir, Depth: it.depth})

		if recurse {
			ext := prefixContinue
			if it.isLast {
				ext = prefixBlank
			}
			push(descend, it.path, it.prefix+ext, it.depth+1)
		}
	}

	return rows, nil
}
