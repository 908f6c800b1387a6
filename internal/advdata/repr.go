package advdata

import (
	"bytes"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Repr renders raw bytes as a quoted byte-string literal, e.g. b'\x01AB'.
// Printable ASCII is kept as is; everything else is escaped.
func Repr(data []byte) string {
	quote := byte('\'')
	if bytes.IndexByte(data, '\'') >= 0 && bytes.IndexByte(data, '"') < 0 {
		quote = '"'
	}
	var sb strings.Builder
	sb.Grow(len(data)*2 + 3)
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range data {
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < 0x20 || c >= 0x7F:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0F])
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
