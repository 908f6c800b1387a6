package advdata

import "unicode/utf8"

// localName is shared by the shortened and complete local name records.
type localName struct{ base }

// Name returns the payload as text when it is valid UTF-8.
func (r localName) Name() (string, bool) {
	if !utf8.Valid(r.data) {
		return "", false
	}
	return string(r.data), true
}

func (r localName) String() string {
	name, ok := r.Name()
	if !ok {
		name = Repr(r.data) + " (Invalid UTF-8)"
	}
	return r.header() + ": " + name
}
