package bleadv

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/d21d3q/gobleadv/internal/advdata"
)

// Summary returns a structured view of the result, suitable for JSON output.
func (r Result) Summary() map[string]any {
	records := make([]map[string]any, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, recordSummary(rec))
	}
	return map[string]any{
		"raw_hex":    r.RawHex,
		"byte_count": r.ByteCount,
		"consumed":   r.Consumed,
		"records":    records,
	}
}

// MarshalJSON implements json.Marshaler using Summary.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Summary())
}

func recordSummary(rec advdata.Record) map[string]any {
	rendered := rec.String()
	fields := map[string]any{
		"type":      fmt.Sprintf("0x%02X", rec.Type()),
		"kind":      rec.Kind().String(),
		"name":      rec.TypeName(),
		"length":    len(rec.Data()),
		"value_hex": strings.ToUpper(hex.EncodeToString(rec.Data())),
		"rendered":  rendered,
	}
	malformed := false
	switch r := rec.(type) {
	case advdata.FlagsRecord:
		if v, ok := r.Value(); ok {
			fields["flags"] = fmt.Sprintf("0x%02X", v)
		} else {
			malformed = true
		}
	case advdata.ServiceList16Record:
		if uuids, ok := r.UUIDs(); ok {
			list := make([]string, 0, len(uuids))
			for _, u := range uuids {
				list = append(list, fmt.Sprintf("0x%04X", u))
			}
			fields["uuids"] = list
		} else {
			malformed = true
		}
	case advdata.ServiceList128Record:
		if uuids, ok := r.UUIDs(); ok {
			list := make([]string, 0, len(uuids))
			for _, u := range uuids {
				list = append(list, u.String())
			}
			fields["uuids"] = list
		}
	case advdata.ShortenedLocalNameRecord:
		fields["local_name"], fields["valid_utf8"] = r.Name()
	case advdata.CompleteLocalNameRecord:
		fields["local_name"], fields["valid_utf8"] = r.Name()
	case advdata.TXPowerLevelRecord:
		if p, ok := r.Power(); ok {
			fields["tx_power_dbm"] = int(p)
		} else {
			malformed = true
		}
	case advdata.ServiceData16Record:
		if u, d, ok := r.Service(); ok {
			fields["service"] = fmt.Sprintf("0x%04X", u)
			fields["data_hex"] = strings.ToUpper(hex.EncodeToString(d))
		} else {
			malformed = true
		}
	case advdata.ManufacturerSpecificDataRecord:
		if id, d, ok := r.Company(); ok {
			fields["company"] = fmt.Sprintf("0x%04X", id)
			fields["data_hex"] = strings.ToUpper(hex.EncodeToString(d))
		} else {
			malformed = true
		}
	}
	if malformed {
		fields["malformed"] = true
	}
	return fields
}
