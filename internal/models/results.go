package models

// DayResult is what a finished lesson or diagnostic contributes to the
// progress record. Consumed once by CompleteDay, then discarded.
type DayResult struct {
	CorrectAnswers int      `json:"correctAnswers"`
	KnownLetters   []string `json:"knownLetters"`
	UnknownLetters []string `json:"unknownLetters"`
}

// RewardKind classifies the celebration shown after a completed day.
type RewardKind string

const (
	RewardNone       RewardKind = "none"
	RewardCheckpoint RewardKind = "checkpoint"
	RewardStage      RewardKind = "stage"
	RewardFinal      RewardKind = "final"
)

// LessonResult is the aggregated outcome of one lesson session.
type LessonResult struct {
	DayResult
	Day             int        `json:"day"`
	CompletedPhases []string   `json:"completedPhases"`
	Reward          RewardKind `json:"reward"`
	Achievement     string     `json:"achievement,omitempty"`
}

// DiagnosticResult is the aggregated outcome of the day-0 letter
// check: the tested letters partitioned into known and unknown. A
// letter never appears in both lists.
type DiagnosticResult struct {
	KnownLetters   []string `json:"knownLetters"`
	UnknownLetters []string `json:"unknownLetters"`
}

// DayResult converts the diagnostic outcome into the shape CompleteDay
// consumes. Correct answers count the letters recognised.
func (r DiagnosticResult) DayResult() DayResult {
	return DayResult{
		CorrectAnswers: len(r.KnownLetters),
		KnownLetters:   r.KnownLetters,
		UnknownLetters: r.UnknownLetters,
	}
}
