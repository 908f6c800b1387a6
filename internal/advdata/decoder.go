// Package advdata splits Bluetooth LE advertising data into typed records.
package advdata

import (
	"iter"

	"github.com/d21d3q/gobleadv/internal/assigned"
)

// Advertising data types with a dedicated record variant.
const (
	TypeFlags                    = 0x01
	TypeServiceList16            = 0x03
	TypeServiceList32            = 0x05
	TypeServiceList128           = 0x07
	TypeShortenedLocalName       = 0x08
	TypeCompleteLocalName        = 0x09
	TypeTXPowerLevel             = 0x0A
	TypeServiceData16            = 0x16
	TypeServiceData32            = 0x20
	TypeServiceData128           = 0x21
	TypeManufacturerSpecificData = 0xFF
)

var constructors = map[byte]func(base) Record{
	TypeFlags:                    func(b base) Record { return FlagsRecord{b} },
	TypeServiceList16:            func(b base) Record { return ServiceList16Record{b} },
	TypeServiceList32:            func(b base) Record { return ServiceList32Record{b} },
	TypeServiceList128:           func(b base) Record { return ServiceList128Record{b} },
	TypeShortenedLocalName:       func(b base) Record { return ShortenedLocalNameRecord{localName{b}} },
	TypeCompleteLocalName:        func(b base) Record { return CompleteLocalNameRecord{localName{b}} },
	TypeTXPowerLevel:             func(b base) Record { return TXPowerLevelRecord{b} },
	TypeServiceData16:            func(b base) Record { return ServiceData16Record{b} },
	TypeServiceData32:            func(b base) Record { return ServiceData32Record{b} },
	TypeServiceData128:           func(b base) Record { return ServiceData128Record{b} },
	TypeManufacturerSpecificData: func(b base) Record { return ManufacturerSpecificDataRecord{b} },
}

// New builds the record variant for typ, labelled with the built-in tables.
func New(typ byte, data []byte) Record {
	return NewWithTables(typ, data, nil)
}

// NewWithTables builds the record variant for typ. Unknown type codes yield a
// GenericRecord. A nil tables value selects the built-in tables.
func NewWithTables(typ byte, data []byte, tables *assigned.Tables) Record {
	b := base{typ: typ, data: data, tables: tables}
	if ctor, ok := constructors[typ]; ok {
		return ctor(b)
	}
	return GenericRecord{b}
}

// Decoder splits advertising data into records.
type Decoder struct {
	// Tables labels the records. Nil selects the built-in tables.
	Tables *assigned.Tables
}

// Decode returns the records found in buf in over-the-air order.
func Decode(buf []byte) []Record {
	return Decoder{}.Decode(buf)
}

// Records yields the records found in buf in over-the-air order.
func Records(buf []byte) iter.Seq[Record] {
	return Decoder{}.Records(buf)
}

// Decode returns the records found in buf in over-the-air order.
func (d Decoder) Decode(buf []byte) []Record {
	records, _ := d.Scan(buf)
	return records
}

// Scan decodes buf and also reports how many bytes the returned records
// cover. The count never exceeds len(buf).
func (d Decoder) Scan(buf []byte) ([]Record, int) {
	var records []Record
	consumed := walk(buf, func(typ byte, data []byte) bool {
		records = append(records, NewWithTables(typ, data, d.Tables))
		return true
	})
	return records, consumed
}

// Records yields the records found in buf lazily.
func (d Decoder) Records(buf []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		walk(buf, func(typ byte, data []byte) bool {
			return yield(NewWithTables(typ, data, d.Tables))
		})
	}
}

// walk visits each length-prefixed field of buf. Decoding stops without
// error at the first field whose length or type byte lies past the end of
// buf. A payload that runs past the end is clipped to the bytes that remain.
func walk(buf []byte, visit func(typ byte, data []byte) bool) int {
	i := 0
	for i < len(buf) {
		if i+1 >= len(buf) {
			break
		}
		length := int(buf[i])
		typ := buf[i+1]
		start := i + 2
		end := min(i+1+length, len(buf))
		end = max(end, start)
		next := i + 1 + length
		if !visit(typ, buf[start:end:end]) {
			return min(next, len(buf))
		}
		i = next
	}
	return min(i, len(buf))
}
