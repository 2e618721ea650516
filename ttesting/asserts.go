// Package ttesting contains assertion helpers shared by the tests of this
// module.
package ttesting

import (
	"sort"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

// AssertChannel checks that a frame-indexed channel holds exactly the wanted
// values.
func AssertChannel[V int16 | int32 | uint16](t *testing.T, name string, got, want map[uint8]V) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(got) != len(want) {
			t.Errorf("got %d frames %v; want %d frames %v", len(got), got, len(want), want)
			return
		}
		frames := make([]int, 0, len(want))
		for frame := range want {
			frames = append(frames, int(frame))
		}
		sort.Ints(frames)
		for _, f := range frames {
			frame := uint8(f)
			g, ok := got[frame]
			if !ok {
				t.Errorf("frame %d: missing; want %d", frame, want[frame])
				continue
			}
			if g != want[frame] {
				t.Errorf("frame %d: got %d; want %d", frame, g, want[frame])
			}
		}
	})
}
