package advdata

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/d21d3q/gobleadv/internal/assigned"
)

// Kind identifies the record variant selected for an AD type code.
type Kind int

const (
	KindGeneric Kind = iota
	KindFlags
	KindServiceList16
	KindServiceList32
	KindServiceList128
	KindShortenedLocalName
	KindCompleteLocalName
	KindTXPowerLevel
	KindServiceData16
	KindServiceData32
	KindServiceData128
	KindManufacturerSpecificData
)

var kindNames = [...]string{
	KindGeneric:                  "generic",
	KindFlags:                    "flags",
	KindServiceList16:            "service_list16",
	KindServiceList32:            "service_list32",
	KindServiceList128:           "service_list128",
	KindShortenedLocalName:       "shortened_local_name",
	KindCompleteLocalName:        "complete_local_name",
	KindTXPowerLevel:             "tx_power_level",
	KindServiceData16:            "service_data16",
	KindServiceData32:            "service_data32",
	KindServiceData128:           "service_data128",
	KindManufacturerSpecificData: "manufacturer_specific_data",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Record is one decoded AD structure. The set of implementations is closed;
// use a type switch on the concrete record types for variant details.
type Record interface {
	// Type returns the raw AD type code.
	Type() byte
	// Data returns the payload without the length and type prefix bytes.
	Data() []byte
	Kind() Kind
	// TypeName returns the registry name of the type code, or a placeholder
	// naming the code when it is not assigned.
	TypeName() string
	// String renders the record for terminal display. It never fails;
	// malformed payloads are described inline.
	String() string

	header() string
}

type base struct {
	typ    byte
	data   []byte
	tables *assigned.Tables
}

func (b base) Type() byte   { return b.typ }
func (b base) Data() []byte { return b.data }

func (b base) TypeName() string { return b.header() }

func (b base) header() string {
	if name, ok := b.tables.ADType(b.typ); ok {
		return name
	}
	return fmt.Sprintf("Unknown Advertising Data Type: 0x%02X", b.typ)
}

func (b base) generic() string {
	return fmt.Sprintf("%s\n    Length: %d\n    Value: %s", b.header(), len(b.data), Repr(b.data))
}

func (b base) malformedLines() []string {
	return []string{
		b.header(),
		"    Malformed",
		fmt.Sprintf("    Length: %d", len(b.data)),
		fmt.Sprintf("    Value: %s", Repr(b.data)),
	}
}

// GenericRecord covers every AD type without a dedicated decoder.
type GenericRecord struct{ base }

func (GenericRecord) Kind() Kind       { return KindGeneric }
func (r GenericRecord) String() string { return r.generic() }

// FlagsRecord is AD type 0x01.
type FlagsRecord struct{ base }

func (FlagsRecord) Kind() Kind { return KindFlags }

// Value returns the flags byte when the payload is exactly one byte long.
func (r FlagsRecord) Value() (byte, bool) {
	if len(r.data) != 1 {
		return 0, false
	}
	return r.data[0], true
}

func (r FlagsRecord) String() string {
	if v, ok := r.Value(); ok {
		return fmt.Sprintf("%s: 0x%02X", r.header(), v)
	}
	return r.header() + ": Malformed"
}

// ServiceList16Record is AD type 0x03.
type ServiceList16Record struct{ base }

func (ServiceList16Record) Kind() Kind { return KindServiceList16 }

// UUIDs splits the payload into little-endian 16-bit UUIDs. It reports false
// when the payload length is odd.
func (r ServiceList16Record) UUIDs() ([]uint16, bool) {
	if len(r.data)%2 != 0 {
		return nil, false
	}
	uuids := make([]uint16, 0, len(r.data)/2)
	for i := 0; i+1 < len(r.data); i += 2 {
		uuids = append(uuids, binary.LittleEndian.Uint16(r.data[i:i+2]))
	}
	return uuids, true
}

func (r ServiceList16Record) String() string {
	uuids, ok := r.UUIDs()
	if !ok {
		return strings.Join(r.malformedLines(), "\n")
	}
	lines := []string{r.header()}
	for _, u := range uuids {
		lines = append(lines, "    "+r.tables.ServiceString(u))
	}
	return strings.Join(lines, "\n")
}

// ServiceList32Record is AD type 0x05. It renders like GenericRecord.
type ServiceList32Record struct{ base }

func (ServiceList32Record) Kind() Kind       { return KindServiceList32 }
func (r ServiceList32Record) String() string { return r.generic() }

// ServiceList128Record is AD type 0x07. It renders like GenericRecord.
type ServiceList128Record struct{ base }

func (ServiceList128Record) Kind() Kind       { return KindServiceList128 }
func (r ServiceList128Record) String() string { return r.generic() }

// UUIDs splits the payload into 128-bit UUIDs. Each UUID is sent
// little-endian over the air and is returned in canonical byte order.
func (r ServiceList128Record) UUIDs() ([]uuid.UUID, bool) {
	if len(r.data)%16 != 0 {
		return nil, false
	}
	uuids := make([]uuid.UUID, 0, len(r.data)/16)
	for i := 0; i+16 <= len(r.data); i += 16 {
		var u uuid.UUID
		for j := 0; j < 16; j++ {
			u[j] = r.data[i+15-j]
		}
		uuids = append(uuids, u)
	}
	return uuids, true
}

// ShortenedLocalNameRecord is AD type 0x08.
type ShortenedLocalNameRecord struct{ localName }

func (ShortenedLocalNameRecord) Kind() Kind { return KindShortenedLocalName }

// CompleteLocalNameRecord is AD type 0x09.
type CompleteLocalNameRecord struct{ localName }

func (CompleteLocalNameRecord) Kind() Kind { return KindCompleteLocalName }

// TXPowerLevelRecord is AD type 0x0A.
type TXPowerLevelRecord struct{ base }

func (TXPowerLevelRecord) Kind() Kind { return KindTXPowerLevel }

// Power returns the signed transmit power in dBm.
func (r TXPowerLevelRecord) Power() (int8, bool) {
	if len(r.data) != 1 {
		return 0, false
	}
	return int8(r.data[0]), true
}

func (r TXPowerLevelRecord) String() string {
	if p, ok := r.Power(); ok {
		return fmt.Sprintf("%s: %d dBm", r.header(), p)
	}
	return r.header() + ": Malformed"
}

// ServiceData16Record is AD type 0x16.
type ServiceData16Record struct{ base }

func (ServiceData16Record) Kind() Kind { return KindServiceData16 }

// Service splits the payload into the service UUID and its data.
func (r ServiceData16Record) Service() (uint16, []byte, bool) {
	return splitID(r.data)
}

func (r ServiceData16Record) String() string {
	u, d, ok := r.Service()
	if !ok {
		return strings.Join(r.malformedLines(), "\n")
	}
	return r.withID("Service", r.tables.ServiceString(u), d)
}

// ServiceData32Record is AD type 0x20. It renders like GenericRecord.
type ServiceData32Record struct{ base }

func (ServiceData32Record) Kind() Kind       { return KindServiceData32 }
func (r ServiceData32Record) String() string { return r.generic() }

// ServiceData128Record is AD type 0x21. It renders like GenericRecord.
type ServiceData128Record struct{ base }

func (ServiceData128Record) Kind() Kind       { return KindServiceData128 }
func (r ServiceData128Record) String() string { return r.generic() }

// ManufacturerSpecificDataRecord is AD type 0xFF.
type ManufacturerSpecificDataRecord struct{ base }

func (ManufacturerSpecificDataRecord) Kind() Kind { return KindManufacturerSpecificData }

// Company splits the payload into the company identifier and vendor data.
func (r ManufacturerSpecificDataRecord) Company() (uint16, []byte, bool) {
	return splitID(r.data)
}

func (r ManufacturerSpecificDataRecord) String() string {
	id, d, ok := r.Company()
	if !ok {
		return strings.Join(r.malformedLines(), "\n")
	}
	return r.withID("Company", r.tables.CompanyString(id), d)
}

func (b base) withID(label, resolved string, d []byte) string {
	return strings.Join([]string{
		b.header(),
		fmt.Sprintf("    %s: %s", label, resolved),
		fmt.Sprintf("    Data Length: %d", len(d)),
		fmt.Sprintf("    Data: %s", Repr(d)),
	}, "\n")
}

func splitID(data []byte) (uint16, []byte, bool) {
	if len(data) < 2 {
		return 0, nil, false
	}
	return binary.LittleEndian.Uint16(data[:2]), data[2:], true
}
