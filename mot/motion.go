package mot

import (
	"fmt"
	"sort"
)

// Motion is a decoded motion file.
//
// All maps are keyed by frame index, except Parts, which is keyed by part ID.
// A later write to the same key replaces the earlier value.
type Motion struct {
	// StepCount is the number of steps the motion runs for. Zero unless the
	// stream sets it.
	StepCount int

	KeyFrames map[uint8]uint16
	PosX      map[uint8]int16
	PosY      map[uint8]int16

	Parts map[uint8]*Part
}

// Part holds the channels of one addressable sub-element of the actor, such
// as a limb or an attachment.
type Part struct {
	ID uint8

	Directions map[uint8]int32
	Distances  map[uint8]int32
	Angles     map[uint8]int16
	// Pictures are indexes into an external picture table.
	Pictures map[uint8]int16
	ScaleX   map[uint8]int16
	ScaleY   map[uint8]int16
}

// NewMotion returns an empty motion with all maps allocated.
func NewMotion() *Motion {
	return &Motion{
		KeyFrames: make(map[uint8]uint16),
		PosX:      make(map[uint8]int16),
		PosY:      make(map[uint8]int16),
		Parts:     make(map[uint8]*Part),
	}
}

func newPart(id uint8) *Part {
	return &Part{
		ID:         id,
		Directions: make(map[uint8]int32),
		Distances:  make(map[uint8]int32),
		Angles:     make(map[uint8]int16),
		Pictures:   make(map[uint8]int16),
		ScaleX:     make(map[uint8]int16),
		ScaleY:     make(map[uint8]int16),
	}
}

// Part returns the part with the passed ID, creating and storing an empty one
// if the motion does not have it yet. Repeated calls with the same ID return
// the same *Part.
func (m *Motion) Part(id uint8) *Part {
	if p, ok := m.Parts[id]; ok {
		return p
	}
	if m.Parts == nil {
		m.Parts = make(map[uint8]*Part)
	}
	p := newPart(id)
	m.Parts[id] = p
	return p
}

// PartIDs returns the IDs of all parts in ascending order.
func (m *Motion) PartIDs() []uint8 {
	return Frames(m.Parts)
}

// FrameSpan returns one past the highest frame index used by any channel of
// the motion or its parts. It is 0 for a motion without frame data.
func (m *Motion) FrameSpan() int {
	span := 0
	grow := func(frames []uint8) {
		if n := len(frames); n > 0 && int(frames[n-1])+1 > span {
			span = int(frames[n-1]) + 1
		}
	}
	grow(Frames(m.KeyFrames))
	grow(Frames(m.PosX))
	grow(Frames(m.PosY))
	for _, p := range m.Parts {
		grow(Frames(p.Directions))
		grow(Frames(p.Distances))
		grow(Frames(p.Angles))
		grow(Frames(p.Pictures))
		grow(Frames(p.ScaleX))
		grow(Frames(p.ScaleY))
	}
	return span
}

// String implements the stringer interface.
func (m *Motion) String() string {
	return fmt.Sprintf("<motion: %d steps, %d key frames, %d parts, %d frames>", m.StepCount, len(m.KeyFrames), len(m.Parts), m.FrameSpan())
}

// Empty reports whether the part has no channel data.
func (p *Part) Empty() bool {
	return len(p.Directions) == 0 && len(p.Distances) == 0 && len(p.Angles) == 0 &&
		len(p.Pictures) == 0 && len(p.ScaleX) == 0 && len(p.ScaleY) == 0
}

// Frames returns the keys of a frame-indexed channel in ascending order.
func Frames[V any](ch map[uint8]V) []uint8 {
	keys := make([]uint8, 0, len(ch))
	for k := range ch {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
