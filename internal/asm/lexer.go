package asm

import "strings"

// maxTokens is the number of whitespace/comma-separated tokens the lexer
// will acquire from a single source line; mnemonics take at most three
// operands, so five still lets the encoder see a surplus operand and
// report an arity error.
const maxTokens = 5

// isDelimiter reports whether b separates tokens: space, tab, comma, CR, or LF.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', ',', '\r', '\n':
		return true
	default:
		return false
	}
}

// tokenize splits one source line into at most maxTokens tokens. A token
// whose first byte is '#' — whether it is the first token on the line or
// a later one — terminates acquisition; that token and everything after it
// is discarded. Blank and whitespace-only lines yield zero tokens.
func tokenize(line string) []string {
	var toks []string
	i := 0
	for i < len(line) && len(toks) < maxTokens {
		for i < len(line) && isDelimiter(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		for i < len(line) && !isDelimiter(line[i]) {
			i++
		}
		tok := line[start:i]
		if strings.HasPrefix(tok, "#") {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

// splitLines breaks a full source stream into lines, the way fgets would
// hand the assembler one line at a time; the trailing newline is stripped
// and a final unterminated line is still returned.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
