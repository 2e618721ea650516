package mot_test

import (
	"fmt"

	"badc0de.net/pkg/go-afteralive/mot"
)

// ExampleDecodeBytes decodes a short motion and prints some of its channels.
func ExampleDecodeBytes() {
	m, err := mot.DecodeBytes([]byte{
		0, 0x00, 0x08, // 8 steps
		2, 0x00, 0x08, 0x09, // x offset of frame 0
		6, 0x00, 0x01, 0x07, 0xE1, // angle of part 1 in frame 0
		255,
	})
	if err != nil {
		fmt.Printf("failed to decode motion: %s", err)
		return
	}
	fmt.Printf("steps: %d\n", m.StepCount)
	fmt.Printf("x: %d\n", m.PosX[0])
	fmt.Printf("part 1 angle: %d\n", m.Part(1).Angles[0])
	// Output:
	// steps: 8
	// x: 10
	// part 1 angle: -30
}
