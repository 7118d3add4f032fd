package codec

// Codec compresses and decompresses the argument payload of one record
// format.
//
// Compress and Decompress are append-style: they extend dst and return the
// extended slice, so callers control allocation. For any valid payload,
// len(Compress output) <= len(args) + MetaBytes().
type Codec interface {
	// Compress appends the compressed form of args to dst and returns the
	// extended slice.
	//
	// args must be a complete, well-formed payload for this codec's format.
	// A payload that does not match the format is a producer-side contract
	// violation and panics; codecs have no error path on the compress side.
	Compress(dst []byte, args []byte) []byte

	// Decompress reads one compressed payload from the start of src,
	// appends the reconstructed raw argument bytes to dst, and returns the
	// extended slice plus the number of bytes consumed from src.
	Decompress(dst []byte, src []byte) ([]byte, int, error)

	// MetaBytes returns the worst-case number of extra bytes Compress may
	// emit beyond the raw argument length. Producers record it in the
	// ArgMetaBytes header field of every record using this codec.
	MetaBytes() int
}
