package quiz

type QuizMode string

const (
	ModeStandard QuizMode = "STANDARD"
	ModeAdaptive QuizMode = "ADAPTIVE"
	ModeReview   QuizMode = "REVIEW"
)

func (m QuizMode) Valid() bool {
	switch m {
	case ModeStandard, ModeAdaptive, ModeReview:
		return true
	}
	return false
}
