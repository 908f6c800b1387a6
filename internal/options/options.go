package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/d21d3q/gobleadv/internal/assigned"
)

type contextKey struct{}

// WithTables stores the assigned-number tables inside the context.
func WithTables(ctx context.Context, tables *assigned.Tables) context.Context {
	if tables == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, tables)
}

// Tables retrieves the assigned-number tables from context if present.
func Tables(ctx context.Context) *assigned.Tables {
	if v := ctx.Value(contextKey{}); v != nil {
		if tables, ok := v.(*assigned.Tables); ok {
			return tables
		}
	}
	return nil
}

// ParseHex decodes an advertising data payload written as hex. Whitespace and
// the separators '|', '_', ':' and '-' are ignored, as is a leading 0x.
func ParseHex(input string) ([]byte, error) {
	clean := StripSeparators(input)
	if len(clean) >= 2 && (clean[:2] == "0x" || clean[:2] == "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	dst := make([]byte, len(clean)/2)
	if _, err := hex.Decode(dst, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return dst, nil
}

// StripSeparators removes whitespace and byte separators from a hex string.
func StripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune("|_:-", r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
