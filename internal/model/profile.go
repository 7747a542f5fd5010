package model

// Profile describes how to read one source dialect: which files to review,
// which line prefixes are comments, and which statement keywords open the
// block and impl scopes the scanner tracks.
type Profile struct {
	Name            string
	Include         []string // path globs selecting reviewable files
	Exclude         []string // path globs carved out of Include
	EntryFiles      []string // base names exempt from module encapsulation
	CommentPrefixes []string // line prefixes that disable scanning for that line
	BlockMarkers    []string // keywords opening a named block scope
	ImplMarkers     []string // keywords opening an impl scope
	FilePattern     string   // regex a source file base name must match
}

// DefaultProfile reviews Rust-shaped sources. It is the profile used when
// configuration names no other.
func DefaultProfile() Profile {
	return Profile{
		Name:            "rust",
		Include:         []string{"**/*.rs"},
		Exclude:         []string{"**/target/**"},
		EntryFiles:      []string{"lib.rs", "main.rs", "mod.rs"},
		CommentPrefixes: []string{"//", "/*", "*", "#!"},
		BlockMarkers:    []string{"mod"},
		ImplMarkers:     []string{"impl", "trait"},
		FilePattern:     "^[A-Z]",
	}
}
