package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
)

func TestAppendParseRecordEntry(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		args := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
		data := AppendRecordEntry(nil, engine, 42, 123456789, args, 7)
		require.Len(t, data, RecordHeaderSize+len(args))

		entry, err := ParseRecordEntry(data, engine)
		require.NoError(t, err)
		require.Equal(t, uint32(RecordHeaderSize+len(args)), entry.EntrySize)
		require.Equal(t, uint32(7), entry.ArgMetaBytes)
		require.Equal(t, uint32(42), entry.FmtID)
		require.Equal(t, uint64(123456789), entry.Timestamp)
		require.Equal(t, args, entry.Args)
	}
}

func TestParseRecordEntryEmptyArgs(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := AppendRecordEntry(nil, engine, 1, 99, nil, 0)
	require.Len(t, data, RecordHeaderSize)

	entry, err := ParseRecordEntry(data, engine)
	require.NoError(t, err)
	require.Equal(t, uint32(RecordHeaderSize), entry.EntrySize)
	require.Empty(t, entry.Args)
}

func TestParseRecordEntryTruncatedHeader(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	_, err := ParseRecordEntry(make([]byte, RecordHeaderSize-1), engine)
	require.ErrorIs(t, err, errs.ErrTruncatedEntry)
}

func TestParseRecordEntryInvalidSize(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := make([]byte, RecordHeaderSize)
	engine.PutUint32(data[0:4], RecordHeaderSize-1)

	_, err := ParseRecordEntry(data, engine)
	require.ErrorIs(t, err, errs.ErrInvalidEntrySize)
}

func TestParseRecordEntrySpanBeyondRegion(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := AppendRecordEntry(nil, engine, 3, 5, []byte{1, 2, 3, 4}, 0)

	// Declared span intact, readable region cut short.
	_, err := ParseRecordEntry(data[:len(data)-1], engine)
	require.ErrorIs(t, err, errs.ErrTruncatedEntry)
}

func TestRecordEntryWorstCaseSize(t *testing.T) {
	entry := RecordEntry{EntrySize: 120, ArgMetaBytes: 11}
	require.Equal(t, 131, entry.WorstCaseSize())
}
