package bf

import "fmt"

// UnbalancedLeftBracketsError reports input that ended with loops still
// open. Depth is the number of unmatched '[' contexts.
type UnbalancedLeftBracketsError struct {
	Depth int
}

func (e *UnbalancedLeftBracketsError) Error() string {
	return fmt.Sprintf("found %d unclosed left brackets", e.Depth)
}

// UnbalancedRightBracketError reports a ']' with no matching '['. Index is
// the character position of the offending bracket, counted in runes.
type UnbalancedRightBracketError struct {
	Index int
}

func (e *UnbalancedRightBracketError) Error() string {
	return fmt.Sprintf("found unbalanced right bracket at %d", e.Index)
}
