// Package sitehtml rewrites the code blocks of rendered HTML pages.
//
// Pages are scanned for pre-formatted code blocks,
// each block is tokenized and its text replaced with classified spans,
// and the block is marked as processed
// so that running the tool again leaves it untouched.
package sitehtml

import (
	"bytes"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"go.abhg.dev/hilite/internal/errdefer"
	"go.abhg.dev/hilite/internal/highlight"
	"go.abhg.dev/hilite/internal/langtree"
	"go.abhg.dev/hilite/internal/relative"
)

var (
	_codeBlocks  = cascadia.MustCompile("pre > code")
	_head        = cascadia.MustCompile("head")
	_stylesheets = cascadia.MustCompile(`link[rel="stylesheet"]`)
)

const (
	// A block carrying this attribute has already been highlighted
	// and is skipped on later passes.
	_processedAttr  = "data-highlighted"
	_processedValue = "yes"

	_chromaClass = "chroma"

	_filePerm = 0o644
	_dirPerm  = 0o755
)

// Highlighter renders a token stream into an HTML fragment.
type Highlighter interface {
	Highlight([]chroma.Token) (string, error)
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// LexerPicker picks the lexer for a code block.
type LexerPicker interface {
	Lexer(lang string, src []byte) highlight.Lexer
}

var _ LexerPicker = (*highlight.Detector)(nil)

// Rewriter highlights the code blocks of rendered pages.
type Rewriter struct {
	// Highlighter renders tokens into HTML.
	Highlighter Highlighter

	// Picker resolves each block's language to a lexer.
	Picker LexerPicker

	// Languages optionally maps site paths
	// to a default language for unlabeled blocks.
	Languages *langtree.Tree

	// StylesheetPath is the site-relative path to the highlight
	// stylesheet. If set, rewritten pages get a link tag
	// referencing it, with the href made relative to the page.
	StylesheetPath string

	// Log reports warnings about blocks that could not be processed.
	Log *log.Logger
}

// RewriteFile highlights the code blocks of the page at src
// and writes the result to dst.
// pagePath is the page's /-separated path within the site,
// used for language defaults and stylesheet hrefs.
//
// When rewriting in place (src == dst),
// a page with nothing to highlight is not touched at all.
func (rw *Rewriter) RewriteFile(pagePath, src, dst string) (changed bool, err error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return false, errtrace.Wrap(err)
	}

	var buf bytes.Buffer
	changed, err = rw.Rewrite(pagePath, bytes.NewReader(data), &buf)
	if err != nil {
		return false, errtrace.Errorf("%v: %w", src, err)
	}

	if !changed && src == dst {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), _dirPerm); err != nil {
		return false, errtrace.Wrap(err)
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, _filePerm)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	_, err = f.Write(buf.Bytes())
	return changed, errtrace.Wrap(err)
}

// Rewrite reads one page from r and writes it to w,
// highlighting any code blocks not already processed.
// It reports whether any block changed.
func (rw *Rewriter) Rewrite(pagePath string, r io.Reader, w io.Writer) (changed bool, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return false, errtrace.Wrap(err)
	}

	for _, code := range cascadia.QueryAll(doc, _codeBlocks) {
		ok, err := rw.rewriteBlock(pagePath, code)
		if err != nil {
			return false, err
		}
		changed = changed || ok
	}

	if changed && rw.StylesheetPath != "" {
		rw.injectStylesheet(doc, pagePath)
	}

	if err := html.Render(w, doc); err != nil {
		return false, errtrace.Wrap(err)
	}
	return changed, nil
}

func (rw *Rewriter) rewriteBlock(pagePath string, code *html.Node) (bool, error) {
	if attr(code, _processedAttr) == _processedValue {
		return false, nil
	}

	src := textContent(code)
	if src == "" {
		return false, nil
	}

	lang := blockLanguage(code)
	if lang == "" && rw.Languages != nil {
		lang, _ = rw.Languages.Lookup(pagePath)
	}

	lexer := rw.Picker.Lexer(lang, []byte(src))
	tokens, err := lexer.Lex([]byte(src))
	if err != nil {
		// Highlighting is cosmetic. Leave the block as-is.
		rw.Log.Printf("warning: %v: tokenizing code block: %v", pagePath, err)
		return false, nil
	}

	frag, err := rw.Highlighter.Highlight(tokens)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	nodes, err := html.ParseFragment(strings.NewReader(frag), &html.Node{
		Type:     html.ElementNode,
		Data:     "code",
		DataAtom: atom.Code,
	})
	if err != nil {
		return false, errtrace.Wrap(err)
	}

	for c := code.FirstChild; c != nil; {
		next := c.NextSibling
		code.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		code.AppendChild(n)
	}

	setAttr(code, _processedAttr, _processedValue)
	addClass(code, _chromaClass)
	if pre := code.Parent; pre != nil && pre.DataAtom == atom.Pre {
		addClass(pre, _chromaClass)
	}
	return true, nil
}

func (rw *Rewriter) injectStylesheet(doc *html.Node, pagePath string) {
	head := _head.MatchFirst(doc)
	if head == nil {
		return
	}

	dir := path.Dir(pagePath)
	if dir == "." {
		dir = ""
	}
	href := relative.Path(dir, rw.StylesheetPath)

	for _, link := range cascadia.QueryAll(head, _stylesheets) {
		if attr(link, "href") == href {
			return
		}
	}

	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     "link",
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: href},
		},
	})
}

// blockLanguage reads the block's declared language
// from a language-* or lang-* class
// on the <code> element or its enclosing <pre>.
func blockLanguage(code *html.Node) string {
	nodes := []*html.Node{code}
	if code.Parent != nil {
		nodes = append(nodes, code.Parent)
	}

	for _, n := range nodes {
		for _, class := range strings.Fields(attr(n, "class")) {
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				return lang
			}
			if lang, ok := strings.CutPrefix(class, "lang-"); ok {
				return lang
			}
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func addClass(n *html.Node, class string) {
	classes := strings.Fields(attr(n, "class"))
	for _, c := range classes {
		if c == class {
			return
		}
	}
	setAttr(n, "class", strings.Join(append(classes, class), " "))
}
