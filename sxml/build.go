package sxml

import "strings"

// IndentChar selects the character used for indentation.
type IndentChar uint8

const (
	IndentTabs IndentChar = iota
	IndentSpaces
)

// String returns the indent character name.
func (c IndentChar) String() string {
	switch c {
	case IndentTabs:
		return "tabs"
	case IndentSpaces:
		return "spaces"
	default:
		return "unknown"
	}
}

func (c IndentChar) unit() byte {
	if c == IndentSpaces {
		return ' '
	}
	return '\t'
}

// BuildOptions configures the text builder.
type BuildOptions struct {
	// IndentSize is the number of indent characters per depth level.
	IndentSize int

	// IndentChar selects tabs or spaces.
	IndentChar IndentChar

	// Separator is emitted after every opening tag, text node, and closing
	// tag. An empty separator produces single-line output.
	Separator string

	// SelfClose renders childless elements as <tag/>. When disabled they
	// render as <tag></tag> on one line.
	SelfClose bool
}

// DefaultBuildOptions returns the defaults: one tab per level, newline
// separator, self-closing empty tags.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		IndentSize: 1,
		IndentChar: IndentTabs,
		Separator:  "\n",
		SelfClose:  true,
	}
}

// Build renders a tree back to text with the default options.
func Build(root *Node) string {
	return BuildWithOptions(root, DefaultBuildOptions())
}

// BuildWithOptions renders a tree back to text. The tree is only read, never
// mutated, and building always succeeds: no validation of tag names or
// escaping of content is performed, so a tree holding raw markup characters
// produces output that will not parse back.
func BuildWithOptions(root *Node, opts BuildOptions) string {
	if root == nil {
		return ""
	}
	b := &builder{opts: opts}
	root.Walk(b.enter, b.exit)
	return b.sb.String()
}

type builder struct {
	sb   strings.Builder
	opts BuildOptions
}

func (b *builder) enter(n *Node, depth int) {
	b.writeIndent(depth)

	if n.kind == KindText {
		b.sb.WriteString(n.text)
		b.sb.WriteString(b.opts.Separator)
		return
	}

	b.sb.WriteByte('<')
	b.sb.WriteString(n.tag)
	for _, a := range n.attrs {
		b.sb.WriteByte(' ')
		b.sb.WriteString(a.Key)
		b.sb.WriteString(`="`)
		b.sb.WriteString(a.Value)
		b.sb.WriteByte('"')
	}

	if len(n.children) == 0 {
		if b.opts.SelfClose {
			b.sb.WriteByte('/')
		} else {
			b.sb.WriteString("></")
			b.sb.WriteString(n.tag)
		}
	}
	b.sb.WriteByte('>')
	b.sb.WriteString(b.opts.Separator)
}

func (b *builder) exit(n *Node, depth int) {
	// Childless elements were fully terminated on entry.
	if n.kind == KindText || len(n.children) == 0 {
		return
	}
	b.writeIndent(depth)
	b.sb.WriteString("</")
	b.sb.WriteString(n.tag)
	b.sb.WriteByte('>')
	b.sb.WriteString(b.opts.Separator)
}

func (b *builder) writeIndent(depth int) {
	count := b.opts.IndentSize * depth
	unit := b.opts.IndentChar.unit()
	for i := 0; i < count; i++ {
		b.sb.WriteByte(unit)
	}
}
