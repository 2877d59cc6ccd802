package drill

// DecisionKind enumerates what to do about a rejected answer.
type DecisionKind int

const (
	// DecideNothing accepts the verdict; the answer really was wrong.
	DecideNothing DecisionKind = iota

	// DecideAdd records the given answer as a new valid translation.
	DecideAdd

	// DecideReset drops every prior correction for the word.
	DecideReset

	// DecideReplace swaps one existing translation for the answer.
	DecideReplace
)

// Decision is the trainee's choice for a missed word. Target names the
// translation to replace and is only meaningful for DecideReplace.
type Decision struct {
	Kind   DecisionKind
	Target string
}
