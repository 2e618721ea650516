// Package mot implements a decoder for motion (.mot) files.
//
// A motion describes how an animated actor moves: a step count, per-frame
// offsets of the actor's root, and per-frame channels for each of its parts
// (direction, distance, angle, picture index and scale). The file is a flat
// sequence of big-endian records, each introduced by a one-byte opcode, and
// ends with an opcode of 255 or when the data runs out.
//
// There is no header, magic number or checksum. Opcodes the decoder does not
// know about are skipped without consuming a payload, so such streams can only
// carry unknown opcodes that have no payload.
//
// Decoding is a single synchronous pass. Every call produces its own Motion,
// so independent streams may be decoded concurrently.
package mot
