package mot

// This file contains the fixed-width integer reader used by the motion
// decoder. All multi-byte values are big-endian on the wire.

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Bias constants for the signed encodings. A signed value v is stored as
// (v + bias) modulo 2^width.
const (
	Bias16 = 0x7FF
	Bias32 = 0x7FFFFFF
)

// ErrUnexpectedEndOfStream is returned (wrapped) when a fixed-width value
// needs more bytes than remain in the stream.
var ErrUnexpectedEndOfStream = errors.New("unexpected end of motion stream")

// Unbias16 converts a biased 16-bit wire value into its signed value.
func Unbias16(raw uint16) int16 {
	return int16(raw - Bias16)
}

// Unbias32 converts a biased 32-bit wire value into its signed value.
func Unbias32(raw uint32) int32 {
	return int32(raw - Bias32)
}

// Reader reads the primitive values of the motion format from an underlying
// io.Reader, keeping track of how many bytes were consumed.
type Reader struct {
	r   io.Reader
	off int64
	buf [8]byte
}

// NewReader returns a Reader consuming r from its current position.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// fill reads exactly n bytes into r.buf.
func (r *Reader) fill(n int) ([]byte, error) {
	b := r.buf[:n]
	got, err := io.ReadFull(r.r, b)
	r.off += int64(got)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrUnexpectedEndOfStream, "at offset %d: want %d bytes, got %d", r.off, n, got)
		}
		return nil, errors.Wrapf(err, "reading %d bytes at offset %d", n, r.off)
	}
	return b, nil
}

// ReadByte reads one raw byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUInt16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadUInt32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt64 reads a plain two's complement 64-bit value. No opcode carries
// one at the moment.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadBiasedInt16 reads a 16-bit value and removes Bias16, wrapping around.
// For example 0x0000 is -2047, 0x07FF is 0 and 0x0800 is 1.
func (r *Reader) ReadBiasedInt16() (int16, error) {
	v, err := r.ReadUInt16()
	if err != nil {
		return 0, err
	}
	return Unbias16(v), nil
}

// ReadBiasedInt32 reads a 32-bit value and removes Bias32, wrapping around
// the same way ReadBiasedInt16 does.
func (r *Reader) ReadBiasedInt32() (int32, error) {
	v, err := r.ReadUInt32()
	if err != nil {
		return 0, err
	}
	return Unbias32(v), nil
}
