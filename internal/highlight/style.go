package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a restrained style suited to prose-heavy pages.
// It fades comments, bolds keywords,
// and tints literals without turning the block into a rainbow.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:           "italic #777777",
	chroma.Keyword:           "bold #222222",
	chroma.LiteralString:     "#47701c",
	chroma.LiteralNumber:     "#916319",
	chroma.NameClass:         "#0b5394",
	chroma.NameFunction:      "#674ea7",
	chroma.NameDecorator:     "#85200c",
	chroma.LiteralStringChar: "#47701c",
	chroma.PreWrapper:        "bg:#f4f4f4",
	chroma.Background:        "bg:#f4f4f4",
})

func init() {
	styles.Register(PlainStyle)
}
