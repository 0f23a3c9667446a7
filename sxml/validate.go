package sxml

// Valid reports whether input parses as a well-formed document. It runs the
// full parser and discards the tree; any input, including empty strings and
// byte sequences that are not valid UTF-8, yields a boolean rather than an
// error.
func Valid(input string) bool {
	_, err := Parse(input)
	return err == nil
}
