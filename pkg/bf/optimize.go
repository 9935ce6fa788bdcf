package bf

// merge collapses the adjacent pair (a, b) — a older, b newer — into one
// equivalent instruction where the pair has one. It reports false when the
// pair must stay as two elements.
//
// The table, in match order:
//
//	Add(a)  Add(b)  -> Add(a+b)
//	Add(_)  Set(b)  -> Set(b)      (the add is overwritten)
//	Add(_)  Read    -> Read        (likewise)
//	Add(0)  b       -> b
//	Move(a) Move(b) -> Move(a+b)
//	Move(0) b       -> b
//	Set(a)  Add(b)  -> Set(a+b)
//	Set(_)  Set(b)  -> Set(b)
//	Set(_)  Read    -> Read
//	Loop(a) Loop(_) -> Loop(a)     (cell is zero after a loop; the second never runs)
//	Loop([]) b      -> b           (an empty loop is a no-op)
func merge(a, b Op) (Op, bool) {
	switch a := a.(type) {
	case *Add:
		switch b := b.(type) {
		case *Add:
			return &Add{Delta: a.Delta + b.Delta}, true
		case *Set:
			return b, true
		case *Read:
			return b, true
		}
		if a.Delta == 0 {
			return b, true
		}
	case *Move:
		if b, ok := b.(*Move); ok {
			return &Move{Delta: a.Delta + b.Delta}, true
		}
		if a.Delta == 0 {
			return b, true
		}
	case *Set:
		switch b := b.(type) {
		case *Add:
			return &Set{Value: a.Value.Add(b.Delta)}, true
		case *Set:
			return b, true
		case *Read:
			return b, true
		}
	case *Loop:
		if _, ok := b.(*Loop); ok {
			return a, true
		}
		if len(a.Body.Ops) == 0 {
			return b, true
		}
	}
	return nil, false
}

// isNoop reports whether op has no effect at all. Such ops are dropped at
// append time instead of waiting for a later merge to absorb them, so a
// sequence like +++--- leaves the Program empty.
func isNoop(op Op) bool {
	switch op := op.(type) {
	case *Add:
		return op.Delta == 0
	case *Move:
		return op.Delta == 0
	}
	return false
}

// emit appends op with folding: as long as op merges with the tail element,
// the tail is replaced by the merged result and the attempt repeats, so a
// single append can cascade through several prior instructions.
func (p *Program) emit(op Op) {
	for len(p.Ops) > 0 {
		merged, ok := merge(p.Ops[len(p.Ops)-1], op)
		if !ok {
			break
		}
		p.Ops = p.Ops[:len(p.Ops)-1]
		op = merged
	}
	if isNoop(op) {
		return
	}
	p.Ops = append(p.Ops, op)
}

// intoLoop wraps a just-closed body as a Loop, canonicalizing the zeroing
// idioms [-] and [+] to Set(0).
func (p Program) intoLoop() Op {
	if len(p.Ops) == 1 {
		if add, ok := p.Ops[0].(*Add); ok && (add.Delta == 1 || add.Delta == -1) {
			return &Set{Value: 0}
		}
	}
	return &Loop{Body: p}
}
