package bf

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Machine executes a Program against a fixed-size circular tape. The zero
// value is ready to use: all cells zero, cursor at address 0, standard
// input and output.
type Machine struct {
	Tape [TapeSize]Cell
	Ptr  Address

	// Input supplies one byte per Read. If nil, os.Stdin is used.
	Input io.Reader
	// Output receives one byte per Write. If nil, os.Stdout is used.
	Output io.Writer

	// Trace, when set, is called before each instruction executes,
	// on the goroutine running the machine. Front-ends use it to
	// observe tape and cursor state at safe points.
	Trace func(op Op)
}

func NewMachine() *Machine {
	return &Machine{}
}

// Run walks prog depth-first in sequence order, to completion or until the
// first I/O failure. The tree is read-only; all mutation happens on the
// tape and cursor.
func (m *Machine) Run(prog *Program) error {
	for _, op := range prog.Ops {
		if err := m.eval(op); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) eval(op Op) error {
	if m.Trace != nil {
		m.Trace(op)
	}

	switch op := op.(type) {
	case *Add:
		m.Tape[m.Ptr] = m.Tape[m.Ptr].Add(op.Delta)

	case *Move:
		m.Ptr = m.Ptr.Move(op.Delta)

	case *Set:
		m.Tape[m.Ptr] = op.Value

	case *Loop:
		for m.Tape[m.Ptr] != 0 {
			for _, inner := range op.Body.Ops {
				if err := m.eval(inner); err != nil {
					return err
				}
			}
		}

	case *Read:
		var buf [1]byte
		if _, err := io.ReadFull(m.in(), buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				// Exhausted input stores zero, matching readcell()
				// in the generated C.
				m.Tape[m.Ptr] = 0
				return nil
			}
			return fmt.Errorf("read failed: %w", err)
		}
		m.Tape[m.Ptr] = Cell(buf[0])

	case *Write:
		if _, err := m.out().Write([]byte{byte(m.Tape[m.Ptr])}); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}
	return nil
}

func (m *Machine) in() io.Reader {
	if m.Input != nil {
		return m.Input
	}
	return os.Stdin
}

func (m *Machine) out() io.Writer {
	if m.Output != nil {
		return m.Output
	}
	return os.Stdout
}
