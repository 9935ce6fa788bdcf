package bf

import (
	"fmt"
	"strings"
)

// Op is implemented by every executable instruction. Ops are immutable once
// constructed; the parser is the only producer.
type Op interface {
	opNode()
	String() string
}

// Add adds a wrapping delta to the cell under the cursor.
//
//	+++
//	^^^  Add{Delta: 3}
type Add struct {
	Delta int
}

func (*Add) opNode()          {}
func (a *Add) String() string { return fmt.Sprintf("Add(%d)", a.Delta) }

// Move adds a wrapping delta to the cursor itself.
//
//	>><
//	^^^  Move{Delta: 1}
type Move struct {
	Delta int
}

func (*Move) opNode()          {}
func (m *Move) String() string { return fmt.Sprintf("Move(%d)", m.Delta) }

// Set overwrites the cell under the cursor with a literal value. The parser
// produces it by folding, never directly from a source character: [-] and
// [+] canonicalize to Set{0}, and Set absorbs adjacent Adds and Sets.
type Set struct {
	Value Cell
}

func (*Set) opNode()          {}
func (s *Set) String() string { return fmt.Sprintf("Set(%d)", s.Value) }

// Loop executes Body while the cell under the cursor is nonzero, re-testing
// after each full pass. Body is owned outright; the tree has no sharing.
type Loop struct {
	Body Program
}

func (*Loop) opNode()          {}
func (l *Loop) String() string { return fmt.Sprintf("Loop%s", l.Body.String()) }

// Read replaces the cell under the cursor with one byte of input.
type Read struct{}

func (*Read) opNode()        {}
func (*Read) String() string { return "Read" }

// Write emits the cell under the cursor as one byte of output.
type Write struct{}

func (*Write) opNode()        {}
func (*Write) String() string { return "Write" }

// Program is an ordered instruction sequence. Order is execution order.
type Program struct {
	Ops []Op
}

func (p Program) String() string {
	parts := make([]string, len(p.Ops))
	for i, op := range p.Ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
