package mot

import (
	"bytes"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Decode reads a motion stream from r until an OP_END opcode or the end of
// the data, and returns the decoded motion.
//
// Unknown opcodes are skipped without consuming any payload. If a record is
// cut short, the returned error satisfies errors.Is(err,
// ErrUnexpectedEndOfStream) and no motion is returned.
func Decode(r io.Reader) (*Motion, error) {
	rd := NewReader(r)
	m := NewMotion()
	commands := 0
	for {
		op, ok, err := rd.readOpcode()
		if err != nil {
			return nil, errors.Wrap(err, "reading motion opcode")
		}
		if !ok || op == OP_END {
			break
		}
		start := rd.Offset() - 1
		if err := decodeCommand(op, rd, m); err != nil {
			return nil, errors.Wrapf(err, "decoding %s record at offset %d", op, start)
		}
		commands++
	}
	if glog.V(2) {
		glog.Infof("decoded %d motion records in %d bytes: %v", commands, rd.Offset(), m)
	}
	return m, nil
}

// DecodeBytes decodes a motion held in memory.
func DecodeBytes(b []byte) (*Motion, error) {
	return Decode(bytes.NewReader(b))
}

// readOpcode reads the next opcode. ok is false when the stream ended
// cleanly before it.
func (r *Reader) readOpcode() (op Opcode, ok bool, err error) {
	n, err := io.ReadFull(r.r, r.buf[:1])
	r.off += int64(n)
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return Opcode(r.buf[0]), true, nil
}

// decodeCommand consumes the payload of a single record and stores it in m.
func decodeCommand(op Opcode, r *Reader, m *Motion) error {
	if op >= OP_PART_DIRECTION && op <= OP_PART_SCALE_Y {
		return decodePartCommand(op, r, m)
	}

	switch op {
	case OP_STEP_COUNT:
		v, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		glog.V(3).Infof("step count %d", v)
		m.StepCount = int(v)
	case OP_KEY_FRAME:
		frame, err := r.ReadByte()
		if err != nil {
			return err
		}
		v, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		glog.V(3).Infof("key frame %d: %d", frame, v)
		m.KeyFrames[frame] = v
	case OP_POS_X, OP_POS_Y:
		frame, err := r.ReadByte()
		if err != nil {
			return err
		}
		v, err := r.ReadBiasedInt16()
		if err != nil {
			return err
		}
		glog.V(3).Infof("%s %d: %d", op, frame, v)
		if op == OP_POS_X {
			m.PosX[frame] = v
		} else {
			m.PosY[frame] = v
		}
	default:
		// Unknown opcodes carry no payload as far as we can tell.
		glog.V(1).Infof("skipping %s at offset %d", op, r.Offset()-1)
	}
	return nil
}

// decodePartCommand handles the records addressing a part. The frame index
// comes before the part ID on the wire.
func decodePartCommand(op Opcode, r *Reader, m *Motion) error {
	frame, err := r.ReadByte()
	if err != nil {
		return err
	}
	id, err := r.ReadByte()
	if err != nil {
		return err
	}

	switch op {
	case OP_PART_DIRECTION, OP_PART_DISTANCE:
		v, err := r.ReadBiasedInt32()
		if err != nil {
			return err
		}
		glog.V(3).Infof("part %d %s %d: %d", id, op, frame, v)
		p := m.Part(id)
		if op == OP_PART_DIRECTION {
			p.Directions[frame] = v
		} else {
			p.Distances[frame] = v
		}
	default:
		v, err := r.ReadBiasedInt16()
		if err != nil {
			return err
		}
		glog.V(3).Infof("part %d %s %d: %d", id, op, frame, v)
		p := m.Part(id)
		switch op {
		case OP_PART_ANGLE:
			p.Angles[frame] = v
		case OP_PART_PICTURE:
			p.Pictures[frame] = v
		case OP_PART_SCALE_X:
			p.ScaleX[frame] = v
		case OP_PART_SCALE_Y:
			p.ScaleY[frame] = v
		}
	}
	return nil
}
