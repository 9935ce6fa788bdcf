package bf

import (
	"fmt"
	"strings"
)

// cPrelude declares the tape, the cursor and the input helper. readcell
// maps end-of-input to 0 so the compiled program agrees with the
// interpreter's Read semantics; a bare getchar() would store 255.
const cPrelude = `#include <stdio.h>

unsigned char mem[65536];
int p = 0;

static unsigned char readcell(void) {
	int c = getchar();
	return c == EOF ? 0 : (unsigned char)c;
}

int main(void) {
`

// GenerateC renders prog as a complete, self-contained C program. The
// mapping is 1:1 — one statement per instruction, a while loop per Loop —
// and the output is deterministic: equal trees render to identical text.
//
// Cursor moves are masked with TapeSize-1 so the pointer wraps exactly as
// the interpreter's address arithmetic does.
func GenerateC(prog *Program) string {
	g := &cgen{}
	g.buf.WriteString(cPrelude)
	g.tabs = 1
	g.gen(prog)
	g.buf.WriteString("\treturn 0;\n}\n")
	return g.buf.String()
}

type cgen struct {
	buf  strings.Builder
	tabs int
}

func (g *cgen) indent() {
	for i := 0; i < g.tabs; i++ {
		g.buf.WriteByte('\t')
	}
}

func (g *cgen) gen(p *Program) {
	for _, op := range p.Ops {
		g.indent()
		switch op := op.(type) {
		case *Add:
			if op.Delta >= 0 {
				fmt.Fprintf(&g.buf, "mem[p] += %d;\n", op.Delta)
			} else {
				fmt.Fprintf(&g.buf, "mem[p] -= %d;\n", -op.Delta)
			}

		case *Move:
			if op.Delta >= 0 {
				fmt.Fprintf(&g.buf, "p = (p + %d) & %d;\n", op.Delta, TapeSize-1)
			} else {
				fmt.Fprintf(&g.buf, "p = (p - %d) & %d;\n", -op.Delta, TapeSize-1)
			}

		case *Set:
			fmt.Fprintf(&g.buf, "mem[p] = %d;\n", op.Value)

		case *Loop:
			g.buf.WriteString("while (mem[p]) {\n")
			g.tabs++
			g.gen(&op.Body)
			g.tabs--
			g.indent()
			g.buf.WriteString("}\n")

		case *Read:
			g.buf.WriteString("mem[p] = readcell();\n")

		case *Write:
			g.buf.WriteString("putchar(mem[p]);\n")
		}
	}
}
