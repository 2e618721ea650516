package mot

import "fmt"

// Opcode is the one-byte tag introducing each record of a motion stream.
type Opcode uint8

// Recognized opcodes.
//
// Implementation detail: iota is not used so the numeric value of an opcode
// can be looked up directly when a stream fails to decode.
const (
	OP_STEP_COUNT     = Opcode(0) // uint16 step count.
	OP_KEY_FRAME      = Opcode(1) // frame, uint16.
	OP_POS_X          = Opcode(2) // frame, biased int16.
	OP_POS_Y          = Opcode(3) // frame, biased int16.
	OP_PART_DIRECTION = Opcode(4) // frame, part, biased int32.
	OP_PART_DISTANCE  = Opcode(5) // frame, part, biased int32.
	OP_PART_ANGLE     = Opcode(6) // frame, part, biased int16.
	OP_PART_PICTURE   = Opcode(7) // frame, part, biased int16.
	OP_PART_SCALE_X   = Opcode(8) // frame, part, biased int16.
	OP_PART_SCALE_Y   = Opcode(9) // frame, part, biased int16.

	OP_END = Opcode(255) // Terminates the stream. Anything after it is ignored.
)

// Known reports whether the decoder assigns a meaning to the opcode.
func (op Opcode) Known() bool {
	return op <= OP_PART_SCALE_Y || op == OP_END
}

// String implements the stringer interface.
func (op Opcode) String() string {
	switch op {
	case OP_STEP_COUNT:
		return "step count"
	case OP_KEY_FRAME:
		return "key frame"
	case OP_POS_X:
		return "position x"
	case OP_POS_Y:
		return "position y"
	case OP_PART_DIRECTION:
		return "part direction"
	case OP_PART_DISTANCE:
		return "part distance"
	case OP_PART_ANGLE:
		return "part angle"
	case OP_PART_PICTURE:
		return "part picture"
	case OP_PART_SCALE_X:
		return "part scale x"
	case OP_PART_SCALE_Y:
		return "part scale y"
	case OP_END:
		return "end"
	default:
		return fmt.Sprintf("unknown opcode %d", uint8(op))
	}
}
