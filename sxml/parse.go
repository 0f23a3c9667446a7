package sxml

// Parse parses a complete document into its root node.
//
// The document must contain exactly one top-level element; character data is
// only legal inside an open element. Comments are consumed and produce no
// node. CDATA sections become text nodes with their content kept verbatim.
// Entity references are not decoded. On failure the returned error is a
// *ParseError wrapping one of the package sentinel errors.
func Parse(input string) (*Node, error) {
	p := &parser{s: newScanner(input)}
	return p.parse()
}

// parser holds the state of one parse call: the scan cursor and the stack of
// currently open elements, innermost last. The stack depth is the nesting
// depth; closing a tag pops exactly one frame.
type parser struct {
	s     *scanner
	stack []*Node
}

func (p *parser) top() *Node {
	return p.stack[len(p.stack)-1]
}

func (p *parser) parse() (*Node, error) {
	for {
		p.s.skipSpace()

		if p.s.eof() {
			if len(p.stack) > 0 {
				return nil, parseErrorf(ErrUnexpectedEOF, p.s.pos(),
					"unexpected end of input: element <%s> opened at %s is never closed",
					p.top().tag, p.top().pos)
			}
			return nil, parseErrorf(ErrNoRootElement, p.s.pos(), "no root element found")
		}

		// Character data runs up to the next tag opener.
		if p.s.peek(0, 1) != "<" {
			if len(p.stack) == 0 {
				return nil, parseErrorf(ErrNoRootElement, p.s.pos(),
					"character data before any element")
			}
			text, err := p.s.untilAny("<")
			if err != nil {
				return nil, err
			}
			p.top().AppendText(text)
			continue
		}

		start := p.s.pos()
		p.s.skip(1) // consume <

		switch {
		case p.s.peek(0, 3) == "!--":
			p.s.skip(3)
			if _, err := p.s.untilLiteral("-->"); err != nil {
				return nil, parseErrorf(ErrUnexpectedEOF, start, "unterminated comment")
			}

		case p.s.peek(0, 8) == "![CDATA[":
			p.s.skip(8)
			content, err := p.s.untilLiteral("]]>")
			if err != nil {
				return nil, parseErrorf(ErrUnexpectedEOF, start, "unterminated CDATA section")
			}
			if len(p.stack) == 0 {
				return nil, parseErrorf(ErrNoRootElement, start, "CDATA section before any element")
			}
			p.top().AppendText(content)

		case p.s.peek(0, 1) == "/":
			p.s.skip(1)
			root, err := p.closingTag(start)
			if err != nil {
				return nil, err
			}
			if root != nil {
				return p.finish(root)
			}

		default:
			root, err := p.openingTag(start)
			if err != nil {
				return nil, err
			}
			if root != nil {
				return p.finish(root)
			}
		}
	}
}

// closingTag consumes "name >" after "</", pops the matching element, and
// returns it if it was the root.
func (p *parser) closingTag(start Position) (*Node, error) {
	name, err := p.s.untilAny(" \t\n\r>")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, p.unexpectedChar("element name")
	}
	p.s.skipSpace()
	if err := p.require('>'); err != nil {
		return nil, err
	}

	if len(p.stack) == 0 {
		return nil, parseErrorf(ErrMismatchedTag, start,
			"closing tag </%s> with no open element", name)
	}
	top := p.top()
	if name != top.tag {
		return nil, parseErrorf(ErrMismatchedTag, start,
			"closing tag </%s> does not match open element <%s>", name, top.tag)
	}
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.stack) == 0 {
		return top, nil // root closed
	}
	return nil, nil
}

// openingTag consumes "name attrs... >" or "name attrs... />" after "<",
// attaches the new element, and returns it if a self-closing tag completed
// the document.
func (p *parser) openingTag(start Position) (*Node, error) {
	name, err := p.s.untilAny(" \t\n\r/>")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, p.unexpectedChar("element name")
	}

	node := Element(name)
	node.pos = start

	if err := p.attributes(node); err != nil {
		return nil, err
	}

	endPos := p.s.pos()
	b, err := p.s.next()
	if err != nil {
		return nil, err
	}
	selfClosing := false
	switch b {
	case '/':
		if err := p.require('>'); err != nil {
			return nil, err
		}
		selfClosing = true
	case '>':
	default:
		// attributes() stops only at / or >
		return nil, parseErrorf(ErrUnexpectedChar, endPos,
			"unexpected character %q: expected \"/\" or \">\"", b)
	}

	if len(p.stack) > 0 {
		p.top().Append(node)
	}
	if selfClosing {
		if len(p.stack) == 0 {
			return node, nil // self-closing root
		}
		return nil, nil
	}
	p.stack = append(p.stack, node)
	return nil, nil
}

// attributes parses zero or more key="value" pairs, stopping with the cursor
// on the / or > that ends the tag. Either quote character delimits a value;
// the opening quote picks the closing one. Duplicate keys overwrite.
func (p *parser) attributes(node *Node) error {
	for {
		p.s.skipSpace()
		switch p.s.peek(0, 1) {
		case "":
			return parseErrorf(ErrUnexpectedEOF, p.s.pos(),
				"unexpected end of input inside tag <%s", node.tag)
		case "/", ">":
			return nil
		}

		key, err := p.s.untilAny(" \t\n\r=")
		if err != nil {
			return err
		}
		if key == "" {
			return p.unexpectedChar("attribute name")
		}
		p.s.skipSpace()
		if err := p.require('='); err != nil {
			return err
		}
		p.s.skipSpace()

		quotePos := p.s.pos()
		quote, err := p.s.next()
		if err != nil {
			return err
		}
		if quote != '"' && quote != '\'' {
			return parseErrorf(ErrUnexpectedChar, quotePos,
				"unexpected character %q: expected \"\\\"\" or \"'\"", quote)
		}
		value, err := p.s.untilLiteral(string(quote))
		if err != nil {
			return err
		}
		node.SetAttr(key, value)
	}
}

// finish verifies nothing but whitespace follows the closed root.
func (p *parser) finish(root *Node) (*Node, error) {
	p.s.skipSpace()
	if !p.s.eof() {
		return nil, parseErrorf(ErrTrailingContent, p.s.pos(),
			"content after root element </%s> closed", root.tag)
	}
	return root, nil
}

// require consumes one byte and checks it is want.
func (p *parser) require(want byte) error {
	pos := p.s.pos()
	b, err := p.s.next()
	if err != nil {
		return err
	}
	if b != want {
		return parseErrorf(ErrUnexpectedChar, pos,
			"unexpected character %q: expected %q", b, string(want))
	}
	return nil
}

// unexpectedChar reports the byte at the cursor where a token of the given
// kind was required.
func (p *parser) unexpectedChar(expected string) error {
	pos := p.s.pos()
	found := p.s.peek(0, 1)
	if found == "" {
		return parseErrorf(ErrUnexpectedEOF, pos, "unexpected end of input: expected %s", expected)
	}
	return parseErrorf(ErrUnexpectedChar, pos,
		"unexpected character %q: expected %s", found, expected)
}
