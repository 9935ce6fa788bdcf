package bf

// TapeSize is the number of cells on the tape and the modulus for cursor
// arithmetic. The same size is used by the interpreter and by the generated
// C, so both backends wrap at the same boundary.
const TapeSize = 64 * 1024

// Cell is one 8-bit tape cell. All arithmetic on it wraps modulo 256.
type Cell uint8

// Address is a cursor position on the circular tape.
type Address int

// addSigned returns (lhs + rhs) mod max, normalized to be non-negative for
// negative rhs. The native % operator keeps the sign of the dividend, so the
// reduce step is spelled out instead of left to the language.
func addSigned(lhs, rhs, max int) int {
	r := (lhs + rhs) % max
	r += max
	r %= max
	return r
}

// Add returns the cell shifted by delta, wrapping modulo 256.
func (c Cell) Add(delta int) Cell {
	return Cell(addSigned(int(c), delta, 256))
}

// Move returns the address shifted by delta, wrapping modulo TapeSize.
func (a Address) Move(delta int) Address {
	return Address(addSigned(int(a), delta, TapeSize))
}
