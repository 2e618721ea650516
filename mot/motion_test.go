package mot

import (
	"reflect"
	"testing"
)

func TestPartIsIdempotent(t *testing.T) {
	m := NewMotion()
	a := m.Part(7)
	a.Angles[0] = 5
	b := m.Part(7)
	if a != b {
		t.Fatalf("Part(7) returned two different parts")
	}
	if b.ID != 7 {
		t.Errorf("part id = %d; want 7", b.ID)
	}
	if len(m.Parts) != 1 {
		t.Errorf("got %d parts; want 1", len(m.Parts))
	}
	if !m.Part(8).Empty() {
		t.Errorf("new part is not empty")
	}
}

func TestPartOnZeroMotion(t *testing.T) {
	var m Motion
	if p := m.Part(3); p == nil || p.ID != 3 {
		t.Fatalf("Part(3) on zero motion = %+v", p)
	}
}

func TestFramesSorted(t *testing.T) {
	got := Frames(map[uint8]int16{200: 1, 3: 2, 0: 3, 17: 4})
	want := []uint8{0, 3, 17, 200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frames() = %v; want %v", got, want)
	}
}

func TestFrameSpan(t *testing.T) {
	m := NewMotion()
	if got := m.FrameSpan(); got != 0 {
		t.Errorf("empty FrameSpan() = %d; want 0", got)
	}
	m.PosX[4] = 1
	m.Part(9).ScaleY[255] = 1
	if got := m.FrameSpan(); got != 256 {
		t.Errorf("FrameSpan() = %d; want 256", got)
	}
	if got, want := m.PartIDs(), []uint8{9}; !reflect.DeepEqual(got, want) {
		t.Errorf("PartIDs() = %v; want %v", got, want)
	}
}

func TestOpcodeString(t *testing.T) {
	for op, want := range map[Opcode]string{
		OP_STEP_COUNT:   "step count",
		OP_PART_SCALE_Y: "part scale y",
		OP_END:          "end",
		Opcode(42):      "unknown opcode 42",
	} {
		if got := op.String(); got != want {
			t.Errorf("Opcode(%d).String() = %q; want %q", uint8(op), got, want)
		}
	}
	if Opcode(10).Known() {
		t.Errorf("opcode 10 reported as known")
	}
}
