package figures

import "fmt"

// ParticipantCountError reports that a figure was invoked with a participant
// count it cannot handle. The orchestrator matches it with errors.As and
// retries the figure once per resolved pair.
type ParticipantCountError struct {
	Figure string
	Want   string // human description, e.g. "exactly 2"
	Got    int
}

func (e *ParticipantCountError) Error() string {
	return fmt.Sprintf("%s needs %s participants, got %d", e.Figure, e.Want, e.Got)
}

// needExactly builds the error for figures with a fixed participant count.
func needExactly(figure string, want, got int) *ParticipantCountError {
	return &ParticipantCountError{Figure: figure, Want: fmt.Sprintf("exactly %d", want), Got: got}
}
