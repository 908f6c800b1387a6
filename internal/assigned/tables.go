package assigned

import "fmt"

// Tables holds the Bluetooth SIG assigned numbers used to label decoded
// advertising data. A Tables value is never modified after construction.
type Tables struct {
	adTypes    map[byte]string
	services16 map[uint16]string
	companies  map[uint16]string
}

var builtin = &Tables{
	adTypes:    adTypes,
	services16: serviceUUIDs16,
	companies:  companyIdentifiers,
}

// Default returns the tables compiled into the binary.
func Default() *Tables {
	return builtin
}

// New builds tables from the provided maps. The maps are copied.
func New(adTypes map[byte]string, services16, companies map[uint16]string) *Tables {
	return &Tables{
		adTypes:    copyMap(adTypes),
		services16: copyMap(services16),
		companies:  copyMap(companies),
	}
}

// ADType returns the registry name of an AD type code.
func (t *Tables) ADType(code byte) (string, bool) {
	name, ok := t.resolve().adTypes[code]
	return name, ok
}

// Service16 returns the registry name of a 16-bit service UUID.
func (t *Tables) Service16(uuid uint16) (string, bool) {
	name, ok := t.resolve().services16[uuid]
	return name, ok
}

// Company returns the registry name of a company identifier.
func (t *Tables) Company(id uint16) (string, bool) {
	name, ok := t.resolve().companies[id]
	return name, ok
}

// ServiceString renders a 16-bit service UUID with its name when known.
func (t *Tables) ServiceString(uuid uint16) string {
	if name, ok := t.Service16(uuid); ok {
		return fmt.Sprintf("0x%04X (%s)", uuid, name)
	}
	return fmt.Sprintf("0x%04X", uuid)
}

// CompanyString renders a company identifier with its name when known.
func (t *Tables) CompanyString(id uint16) string {
	if name, ok := t.Company(id); ok {
		return fmt.Sprintf("0x%04X (%s)", id, name)
	}
	return fmt.Sprintf("0x%04X", id)
}

// Len reports the number of entries in each table.
func (t *Tables) Len() (adTypes, services16, companies int) {
	r := t.resolve()
	return len(r.adTypes), len(r.services16), len(r.companies)
}

func (t *Tables) resolve() *Tables {
	if t == nil {
		return builtin
	}
	return t
}

func (t *Tables) merge(o overlay) *Tables {
	r := t.resolve()
	merged := New(r.adTypes, r.services16, r.companies)
	for k, v := range o.ADTypes {
		merged.adTypes[k] = v
	}
	for k, v := range o.ServiceUUIDs16 {
		merged.services16[k] = v
	}
	for k, v := range o.CompanyIdentifiers {
		merged.companies[k] = v
	}
	return merged
}

func copyMap[K comparable](src map[K]string) map[K]string {
	dst := make(map[K]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
