package advdata

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/gobleadv/internal/assigned"
)

func TestDecodeBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		buf      []byte
		types    []byte
		payloads [][]byte
		consumed int
	}{
		{name: "nil", buf: nil},
		{name: "empty", buf: []byte{}},
		{name: "length byte only", buf: []byte{0x00}},
		{name: "declared length without type byte", buf: []byte{0x05}},
		{
			name:     "zero length field",
			buf:      []byte{0x00, 0x01},
			types:    []byte{0x01},
			payloads: [][]byte{{}},
			consumed: 1,
		},
		{
			name:     "single field",
			buf:      []byte{0x02, 0x01, 0x06},
			types:    []byte{0x01},
			payloads: [][]byte{{0x06}},
			consumed: 3,
		},
		{
			name:     "payload clipped at end of buffer",
			buf:      []byte{0x05, 0xFF, 0x4C, 0x00},
			types:    []byte{0xFF},
			payloads: [][]byte{{0x4C, 0x00}},
			consumed: 4,
		},
		{
			name:     "trailing length byte without type",
			buf:      []byte{0x02, 0x01, 0x06, 0x03},
			types:    []byte{0x01},
			payloads: [][]byte{{0x06}},
			consumed: 3,
		},
		{
			name:     "trailing field with type but no payload",
			buf:      []byte{0x02, 0x01, 0x06, 0x03, 0x09},
			types:    []byte{0x01, 0x09},
			payloads: [][]byte{{0x06}, {}},
			consumed: 5,
		},
		{
			name:     "zero length field followed by data",
			buf:      []byte{0x00, 0x02, 0x01, 0x06},
			types:    []byte{0x02, 0x01},
			payloads: [][]byte{{}, {0x06}},
			consumed: 4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, consumed := Decoder{}.Scan(tc.buf)
			require.Len(t, records, len(tc.types))
			for i, rec := range records {
				require.Equal(t, tc.types[i], rec.Type(), "record %d", i)
				require.Equal(t, tc.payloads[i], rec.Data(), "record %d", i)
			}
			require.Equal(t, tc.consumed, consumed)
			require.LessOrEqual(t, consumed, len(tc.buf))
		})
	}
}

func TestDecodeZeroLengthFlags(t *testing.T) {
	records := Decode([]byte{0x00, 0x01})
	require.Len(t, records, 1)
	require.Equal(t, KindFlags, records[0].Kind())
	require.Empty(t, records[0].Data())
	require.Equal(t, "Flags: Malformed", records[0].String())
}

func TestDecodeMultipleRecordsKeepOrder(t *testing.T) {
	buf := []byte{
		0x06, 0x09, 'H', 'e', 'l', 'l', 'o',
		0x02, 0x01, 0x06,
		0x02, 0x01, 0x1A,
	}
	records := Decode(buf)
	require.Len(t, records, 3)
	require.Equal(t, "Complete Local Name: Hello", records[0].String())
	require.Equal(t, "Flags: 0x06", records[1].String())
	require.Equal(t, "Flags: 0x1A", records[2].String())
}

func TestDecodeRoundTripShape(t *testing.T) {
	for typ := 0; typ <= 0xFF; typ++ {
		payload := []byte{0xDE, 0xAD, byte(typ)}
		buf := append([]byte{byte(len(payload) + 1), byte(typ)}, payload...)
		records := Decode(buf)
		require.Len(t, records, 1)
		require.Equal(t, byte(typ), records[0].Type())
		require.Equal(t, payload, records[0].Data())
	}
}

func TestDecodePayloadDoesNotGrowIntoBuffer(t *testing.T) {
	buf := []byte{0x02, 0x01, 0x06, 0x02, 0x0A, 0x00}
	records := Decode(buf)
	require.Len(t, records, 2)

	_ = append(records[0].Data(), 0xEE)
	require.Equal(t, byte(0x02), buf[3])
}

func TestDecoderUsesTables(t *testing.T) {
	tables := assigned.New(map[byte]string{0x01: "Custom Flags"}, nil, map[uint16]string{0x1234: "Vendor"})
	records := Decoder{Tables: tables}.Decode([]byte{
		0x02, 0x01, 0x05,
		0x03, 0xFF, 0x34, 0x12,
	})
	require.Len(t, records, 2)
	require.Equal(t, "Custom Flags: 0x05", records[0].String())
	require.Equal(t, "Unknown Advertising Data Type: 0xFF\n"+
		"    Company: 0x1234 (Vendor)\n"+
		"    Data Length: 0\n"+
		"    Data: b''", records[1].String())
}

func TestRecordsStopsEarly(t *testing.T) {
	buf := []byte{0x02, 0x01, 0x06, 0x02, 0x0A, 0xF4, 0x02, 0x0A, 0x00}
	var seen []byte
	for rec := range Records(buf) {
		seen = append(seen, rec.Type())
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []byte{0x01, 0x0A}, seen)
}

func TestDecodeRandomBuffersAreTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 2000; n++ {
		buf := make([]byte, rng.Intn(64))
		rng.Read(buf)
		checkTotal(t, buf)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x05})
	f.Add([]byte{0x00, 0x01})
	f.Add([]byte{0x02, 0x01, 0x06, 0x03, 0x03, 0x0F, 0x18})
	f.Add([]byte{0x05, 0xFF, 0x4C, 0x00, 0x01, 0x02})
	f.Fuzz(func(t *testing.T, buf []byte) {
		checkTotal(t, buf)
	})
}

func checkTotal(t *testing.T, buf []byte) {
	t.Helper()
	records, consumed := Decoder{}.Scan(buf)
	require.LessOrEqual(t, consumed, len(buf))
	payloadBytes := 0
	for _, rec := range records {
		payloadBytes += len(rec.Data())
		require.NotEmpty(t, rec.String())
	}
	require.LessOrEqual(t, payloadBytes+len(records), len(buf))
}
