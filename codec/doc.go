// Package codec defines the per-format argument codecs and the registry the
// engine dispatches through.
//
// Every record format id maps to one Codec that knows how to shrink that
// format's argument payload and how to expand it back. The engine looks the
// codec up by format id for each record it compresses; readers do the same
// to decode. Registries are populated once at startup, before the engine
// starts, and are read-only afterwards.
//
// Two implementations cover the common cases:
//
//   - Raw passes argument bytes through with only a varint length prefix.
//     Use it for formats whose arguments are opaque or already dense.
//   - Schema walks a declared field list (integers, floats, strings, raw
//     bytes) and narrows each field: unsigned integers become varints,
//     signed integers become zigzag varints, strings trade their fixed
//     length prefix for a varint one, floats pass through verbatim.
//
// A codec also declares its worst-case growth through MetaBytes: the most
// extra bytes its output can need beyond the raw argument length (varints
// can expand adversarial values). Producers store that number in the
// record's ArgMetaBytes header field, which is what makes the engine's
// worst-case space reservation safe.
package codec
