// Package langtree stores default language names
// for regions of a site's path hierarchy.
//
// A language set for a path applies to every page below it
// unless a deeper path sets its own:
//
//	t.Set("posts", "go")
//	t.Set("posts/parsing", "antlr")
//	t.Lookup("posts/intro.html")         // == "go"
//	t.Lookup("posts/parsing/lexer.html") // == "antlr"
package langtree

import "strings"

// Tree maps /-separated site paths to language names.
// The zero value is an empty tree.
type Tree struct {
	root node
}

type node struct {
	lang     string
	set      bool
	children map[string]*node
}

// Set assigns a default language to a path.
// Descendant paths without their own language inherit it.
// Setting a path twice overwrites the earlier value.
func (t *Tree) Set(p, lang string) {
	n := &t.root
	for _, part := range splitPath(p) {
		if n.children == nil {
			n.children = make(map[string]*node)
		}
		child, ok := n.children[part]
		if !ok {
			child = new(node)
			n.children[part] = child
		}
		n = child
	}
	n.lang, n.set = lang, true
}

// Lookup reports the default language for a path,
// taking the deepest language set on the path or any of its ancestors.
func (t *Tree) Lookup(p string) (lang string, ok bool) {
	n := &t.root
	if n.set {
		lang, ok = n.lang, true
	}
	for _, part := range splitPath(p) {
		n = n.children[part]
		if n == nil {
			break
		}
		if n.set {
			lang, ok = n.lang, true
		}
	}
	return lang, ok
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
