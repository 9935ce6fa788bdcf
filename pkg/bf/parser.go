package bf

// Parse converts source text into an optimized Program.
//
// The eight control characters map directly to instructions:
//
//	,  Read        .  Write
//	+  Add(1)      -  Add(-1)
//	>  Move(1)     <  Move(-1)
//	[  open loop   ]  close loop
//
// Everything else is a comment and is skipped. Folding happens inline as
// each instruction is emitted (see Program.emit), so the returned tree is
// already at its fold fixed point: no adjacent pair in any sequence can be
// merged further.
//
// Structural failures return *UnbalancedRightBracketError or
// *UnbalancedLeftBracketsError and no tree.
func Parse(source string) (*Program, error) {
	b := &builder{}

	for index, ch := range []rune(source) {
		switch ch {
		case ',':
			b.emit(&Read{})
		case '.':
			b.emit(&Write{})
		case '+':
			b.emit(&Add{Delta: 1})
		case '-':
			b.emit(&Add{Delta: -1})
		case '>':
			b.emit(&Move{Delta: 1})
		case '<':
			b.emit(&Move{Delta: -1})
		case '[':
			b.begin()
		case ']':
			if err := b.end(index); err != nil {
				return nil, err
			}
		}
	}

	if len(b.loops) > 0 {
		return nil, &UnbalancedLeftBracketsError{Depth: len(b.loops)}
	}
	return &b.root, nil
}

// builder accumulates the tree during the single pass over the source. One
// Program per open bracket sits on the loops stack; instructions go to the
// top of the stack, or to root when no loop is open.
type builder struct {
	root  Program
	loops []Program
}

// current returns the sequence under construction.
func (b *builder) current() *Program {
	if n := len(b.loops); n > 0 {
		return &b.loops[n-1]
	}
	return &b.root
}

func (b *builder) emit(op Op) {
	b.current().emit(op)
}

// begin opens a loop body for a '['.
func (b *builder) begin() {
	b.loops = append(b.loops, Program{})
}

// end closes the innermost loop for a ']' at the given character index,
// canonicalizes it and emits it into the enclosing sequence.
func (b *builder) end(index int) error {
	n := len(b.loops)
	if n == 0 {
		return &UnbalancedRightBracketError{Index: index}
	}
	body := b.loops[n-1]
	b.loops = b.loops[:n-1]
	b.emit(body.intoLoop())
	return nil
}
