package core

// Outcome is the state of a run. Running is the only non-terminal value and
// there is no transition out of a terminal one.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeDraw
	OutcomeAborted // invariant violation or external interrupt
)

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeDraw:
		return "draw"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Verdict is a run outcome plus the message shown on the display.
type Verdict struct {
	Outcome Outcome
	Message string
}

// Running is the verdict of a run that has not finished.
var Running = Verdict{Outcome: OutcomeRunning}

// Terminal reports whether the verdict ends the run.
func (v Verdict) Terminal() bool {
	return v.Outcome.Terminal()
}
