package encoding

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTripSequence(t *testing.T) {
	enc := NewMetadataEncoder()
	dec := NewMetadataDecoder()

	// Exercises format jumps in both directions, timestamp regressions,
	// exact repeats, and both extremes.
	records := []struct {
		fmtID uint32
		ts    uint64
	}{
		{fmtID: 1, ts: 1000},
		{fmtID: 1, ts: 1010},
		{fmtID: 7, ts: 1020},
		{fmtID: 2, ts: 1015},
		{fmtID: 2, ts: 1015},
		{fmtID: 0, ts: 0},
		{fmtID: math.MaxUint32, ts: math.MaxUint64},
	}

	var stream []byte
	for _, r := range records {
		stream = enc.Encode(stream, r.fmtID, r.ts)
	}

	offset := 0
	for i, r := range records {
		fmtID, ts, n, err := dec.Decode(stream[offset:])
		require.NoError(t, err, "record %d", i)
		require.Equal(t, r.fmtID, fmtID, "record %d format id", i)
		require.Equal(t, r.ts, ts, "record %d timestamp", i)
		offset += n
	}
	require.Equal(t, len(stream), offset)
}

func TestMetadataRepeatedRecordsStayTiny(t *testing.T) {
	enc := NewMetadataEncoder()

	// Same format id with a constant small timestamp step: after the first
	// record, each pair costs one byte for the format delta and at most two
	// for the timestamp delta.
	stream := enc.Encode(nil, 42, 1_000_000)
	first := len(stream)
	for i := 1; i < 100; i++ {
		stream = enc.Encode(stream, 42, 1_000_000+uint64(i)*100)
	}

	perRecord := float64(len(stream)-first) / 99.0
	require.LessOrEqual(t, perRecord, 3.0)
}

func TestMetadataEncodeBounded(t *testing.T) {
	enc := NewMetadataEncoder()

	// Worst case: maximal jumps in both fields on every record.
	var prev []byte
	stream := enc.Encode(nil, 0, 0)
	prev = stream
	stream = enc.Encode(stream, math.MaxUint32, math.MaxUint64)
	require.LessOrEqual(t, len(stream)-len(prev), MaxMetadataSize)
}

func TestMetadataDecodeTruncated(t *testing.T) {
	enc := NewMetadataEncoder()
	stream := enc.Encode(nil, 5, 500)

	dec := NewMetadataDecoder()
	_, _, _, err := dec.Decode(stream[:1])
	require.Error(t, err)

	_, _, _, err = dec.Decode(nil)
	require.Error(t, err)
}

// TestMetadataRoundTripProperty verifies the delta state machine on random
// record sequences: decoding always reproduces the encoded values exactly,
// in order, regardless of jumps, repeats, or wraparound.
func TestMetadataRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("decode reproduces every encoded pair", prop.ForAll(
		func(fmtIDs []uint32, timestamps []uint64) bool {
			n := len(fmtIDs)
			if len(timestamps) < n {
				n = len(timestamps)
			}

			enc := NewMetadataEncoder()
			var stream []byte
			for i := 0; i < n; i++ {
				stream = enc.Encode(stream, fmtIDs[i], timestamps[i])
			}

			dec := NewMetadataDecoder()
			offset := 0
			for i := 0; i < n; i++ {
				fmtID, ts, read, err := dec.Decode(stream[offset:])
				if err != nil || fmtID != fmtIDs[i] || ts != timestamps[i] {
					return false
				}
				offset += read
			}

			return offset == len(stream)
		},
		gen.SliceOf(gen.UInt32()),
		gen.SliceOf(gen.UInt64()),
	))

	properties.TestingRun(t)
}
