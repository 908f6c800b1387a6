// Package bleadv decodes Bluetooth Low Energy advertising data into records
// suitable for display.
package bleadv

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/d21d3q/gobleadv/internal/advdata"
	internalopts "github.com/d21d3q/gobleadv/internal/options"
)

// Result captures the outcome of AnalyzeHex.
type Result struct {
	RawHex    string
	ByteCount int
	// Consumed is the number of leading bytes covered by Records.
	Consumed int
	Records  []advdata.Record
}

// String renders every record, one after another, for terminal display.
func (r Result) String() string {
	parts := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		parts = append(parts, rec.String())
	}
	return strings.Join(parts, "\n")
}

// Truncated reports whether bytes at the end of the payload were left
// undecoded.
func (r Result) Truncated() bool {
	return r.Consumed < r.ByteCount
}

// AnalyzeHex decodes a hex-encoded advertising data payload.
func AnalyzeHex(ctx context.Context, raw string) (Result, error) {
	return AnalyzeHexWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeHexWithOptions decodes a hex-encoded payload with custom options.
func AnalyzeHexWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	data, err := internalopts.ParseHex(raw)
	if err != nil {
		return Result{}, err
	}
	return AnalyzeBytes(ctx, data), nil
}

// AnalyzeBytes decodes a raw advertising data payload. Tables stored in ctx
// by AnalyzeHexWithOptions are used for labels; otherwise the built-in
// tables apply. It never fails.
func AnalyzeBytes(ctx context.Context, data []byte) Result {
	dec := advdata.Decoder{Tables: internalopts.Tables(ctx)}
	records, consumed := dec.Scan(data)
	result := Result{
		RawHex:    strings.ToUpper(hex.EncodeToString(data)),
		ByteCount: len(data),
		Consumed:  consumed,
		Records:   records,
	}
	if result.Truncated() {
		logrus.WithFields(logrus.Fields{
			"byte_count": result.ByteCount,
			"consumed":   result.Consumed,
			"records":    len(records),
		}).Debug("advertising data ends inside a field")
	}
	return result
}
