package entity

type OutcomeKind string

const (
	OutcomeNone OutcomeKind = "none"
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome is the result of evaluating a board. Winner and Line are set only for a win.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Cell        `json:"winner,omitempty"`
	Line   *Line       `json:"line,omitempty"`
}

func NoOutcome() Outcome {
	return Outcome{Kind: OutcomeNone}
}

func DrawOutcome() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func WinOutcome(player Cell, line Line) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player, Line: &line}
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

func (that Outcome) IsFinished() bool {
	return that.IsWin() || that.IsDraw()
}
