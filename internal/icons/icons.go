// Package icons provides the glyph set used to decorate tree entries.
// Three styles are supported: nerd fonts, plain unicode/emoji, and a
// pure-ASCII fallback for terminals without either.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Folder    string
	File      string
	Collapsed string // marker on a directory with hidden children
	NoAccess  string // marker on an unreadable directory
}

var (
	nerdIcons = Icons{
		Folder:    " ", // nf-fa-folder
		File:      " ", // nf-fa-file
		Collapsed: "+",
		NoAccess:  "", // nf-fa-lock
	}

	unicodeIcons = Icons{
		Folder:    "📁 ",
		File:      "📄 ",
		Collapsed: "+",
		NoAccess:  "Θ",
	}

	noneIcons = Icons{
		Folder:    "/",
		File:      "",
		Collapsed: "+",
		NoAccess:  "!",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon style. Call once at startup with the config
// value; unknown styles fall back to ASCII.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatDir formats a directory name with the folder glyph.
// For the ASCII style the glyph is a "/" suffix instead of a prefix.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatFile formats a file name with the file glyph.
func FormatFile(name string) string {
	if current == noneIcons {
		return name
	}
	return current.File + name
}

// Collapsed returns the marker for a directory with hidden children.
func Collapsed() string {
	return current.Collapsed
}

// NoAccess returns the marker for an unreadable directory.
func NoAccess() string {
	return current.NoAccess
}
