package mot

import (
	"bytes"
	"math"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
)

func TestUnbias16(t *testing.T) {
	for _, tc := range []struct {
		raw  uint16
		want int16
	}{
		{0x0000, -2047},
		{0x07FF, 0},
		{0x0800, 1},
		{0x07FE, -1},
		{0x7FFF, 30720},
		{0xFFFF, -2048}, // 0xFFFF - 0x7FF wraps past int16 max
	} {
		if got := Unbias16(tc.raw); got != tc.want {
			t.Errorf("Unbias16(0x%04x) = %d; want %d", tc.raw, got, tc.want)
		}
	}
}

func TestUnbias32(t *testing.T) {
	for _, tc := range []struct {
		raw  uint32
		want int32
	}{
		{0x00000000, -0x7FFFFFF},
		{0x07FFFFFF, 0},
		{0x08000000, 1},
		{0x7FFFFFFF, 0x78000000},
		{0xFFFFFFFF, -0x8000000},
	} {
		if got := Unbias32(tc.raw); got != tc.want {
			t.Errorf("Unbias32(0x%08x) = %d; want %d", tc.raw, got, tc.want)
		}
	}
}

func TestReaderBigEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{
		0x00, 0x01, // uint16
		0x00, 0x00, 0x01, 0x00, // uint32
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // int64
		0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // int64
		0x08, 0x00, // biased int16
		0x0F, 0xFF, 0xFF, 0xFE, // biased int32
		0x2A, // byte
	}))

	u16, err := r.ReadUInt16()
	if err != nil || u16 != 1 {
		t.Errorf("ReadUInt16() = %d, %v; want 1, nil", u16, err)
	}
	u32, err := r.ReadUInt32()
	if err != nil || u32 != 256 {
		t.Errorf("ReadUInt32() = %d, %v; want 256, nil", u32, err)
	}
	i64, err := r.ReadInt64()
	if err != nil || i64 != -1 {
		t.Errorf("ReadInt64() = %d, %v; want -1, nil", i64, err)
	}
	i64, err = r.ReadInt64()
	if err != nil || i64 != math.MinInt64 {
		t.Errorf("ReadInt64() = %d, %v; want %d, nil", i64, err, int64(math.MinInt64))
	}
	b16, err := r.ReadBiasedInt16()
	if err != nil || b16 != 1 {
		t.Errorf("ReadBiasedInt16() = %d, %v; want 1, nil", b16, err)
	}
	b32, err := r.ReadBiasedInt32()
	if err != nil || b32 != 0x7FFFFFF {
		t.Errorf("ReadBiasedInt32() = %d, %v; want %d, nil", b32, err, 0x7FFFFFF)
	}
	b, err := r.ReadByte()
	if err != nil || b != 0x2A {
		t.Errorf("ReadByte() = %d, %v; want 42, nil", b, err)
	}
	if got, want := r.Offset(), int64(29); got != want {
		t.Errorf("Offset() = %d; want %d", got, want)
	}
}

func TestReaderShortRead(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{"byte", nil, func(r *Reader) error { _, err := r.ReadByte(); return err }},
		{"uint16", []byte{0x01}, func(r *Reader) error { _, err := r.ReadUInt16(); return err }},
		{"uint32", []byte{0x01, 0x02, 0x03}, func(r *Reader) error { _, err := r.ReadUInt32(); return err }},
		{"int64", []byte{0x01, 0x02, 0x03, 0x04}, func(r *Reader) error { _, err := r.ReadInt64(); return err }},
		{"biased int16", nil, func(r *Reader) error { _, err := r.ReadBiasedInt16(); return err }},
		{"biased int32", []byte{0x00, 0x00}, func(r *Reader) error { _, err := r.ReadBiasedInt32(); return err }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.data))
			err := tc.read(r)
			if !errors.Is(err, ErrUnexpectedEndOfStream) {
				t.Fatalf("got error %v; want ErrUnexpectedEndOfStream", err)
			}
			if got, want := r.Offset(), int64(len(tc.data)); got != want {
				t.Errorf("Offset() = %d; want %d", got, want)
			}
		})
	}
}

func TestReaderPassesThroughIOErrors(t *testing.T) {
	ioErr := errors.New("disk on fire")
	r := NewReader(iotest.ErrReader(ioErr))
	_, err := r.ReadUInt32()
	if !errors.Is(err, ioErr) {
		t.Errorf("got error %v; want it to wrap %v", err, ioErr)
	}
	if errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Errorf("got ErrUnexpectedEndOfStream for a non-EOF error: %v", err)
	}
}
