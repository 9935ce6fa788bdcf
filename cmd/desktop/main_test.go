package main

import (
	"io"
	"strings"
	"testing"

	"gobf/pkg/bf"
)

func TestConsoleTail(t *testing.T) {
	c := &console{}
	for i := 0; i < 5; i++ {
		if _, err := c.Write([]byte("line\n")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	// Five newline-terminated lines plus the empty trailing segment.
	if got := c.Tail(10); len(got) != 6 {
		t.Errorf("Tail(10) returned %d lines; want 6", len(got))
	}
	if got := c.Tail(2); len(got) != 2 {
		t.Errorf("Tail(2) returned %d lines; want 2", len(got))
	}
}

func TestKeyReaderFeedsMachine(t *testing.T) {
	keys := make(chan byte, 8)
	for _, b := range []byte("ok") {
		keys <- b
	}
	close(keys)

	prog, err := bf.Parse(",[.,]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out := &console{}
	m := bf.NewMachine()
	m.Input = &keyReader{keys: keys}
	m.Output = out

	if err := m.Run(prog); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := strings.Join(out.Tail(1), ""); got != "ok" {
		t.Errorf("echoed output = %q; want %q", got, "ok")
	}
}

func TestTapeViewPublishSnapshot(t *testing.T) {
	m := bf.NewMachine()
	m.Tape[0] = 7
	m.Tape[tapeCells-1] = 9
	m.Ptr = 3

	v := &tapeView{}
	v.publish(m)

	cells, cursor := v.snapshot()
	if cursor != 3 {
		t.Errorf("cursor = %d; want 3", cursor)
	}
	if cells[0] != 7 || cells[tapeCells-1] != 9 {
		t.Errorf("cells[0]=%d cells[%d]=%d; want 7 and 9", cells[0], tapeCells-1, cells[tapeCells-1])
	}

	// The snapshot is a copy: later machine writes must not leak in.
	m.Tape[0] = 200
	if cells[0] != 7 {
		t.Errorf("snapshot aliases the live tape")
	}
}

// TestTraceSnapshotsDuringRun drives the renderer handoff the way main
// wires it: the machine publishes through its Trace hook while running,
// and the final published state matches the finished machine.
func TestTraceSnapshotsDuringRun(t *testing.T) {
	prog, err := bf.Parse("+++[>++++[>++++++<-]<-]>>.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	view := &tapeView{}
	out := &console{}
	m := bf.NewMachine()
	m.Output = out
	traceSnapshots(m, view)

	if err := m.Run(prog); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	view.publish(m)

	cells, cursor := view.snapshot()
	if cursor != 2 {
		t.Errorf("published cursor = %d; want 2", cursor)
	}
	if cells[2] != 72 {
		t.Errorf("published cells[2] = %d; want 72", cells[2])
	}
	if got := strings.Join(out.Tail(1), ""); got != "H" {
		t.Errorf("console output = %q; want %q", got, "H")
	}
}

func TestKeyReaderEOFAfterClose(t *testing.T) {
	keys := make(chan byte)
	close(keys)

	r := &keyReader{keys: keys}
	var buf [1]byte
	if _, err := r.Read(buf[:]); err != io.EOF {
		t.Errorf("Read after close = %v; want io.EOF", err)
	}
}
