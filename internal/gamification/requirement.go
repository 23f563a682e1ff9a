package gamification

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// RequirementParams are the numeric knobs of a badge requirement. Which
// fields matter depends on the requirement type.
type RequirementParams struct {
	Threshold int `json:"threshold,omitempty"`
	Count     int `json:"count,omitempty"`
	Areas     int `json:"areas,omitempty"`
}

func (p RequirementParams) JSON() datatypes.JSON {
	raw, _ := json.Marshal(p)
	return datatypes.JSON(raw)
}

func parseParams(raw datatypes.JSON) (RequirementParams, error) {
	var p RequirementParams
	if len(raw) == 0 {
		return p, nil
	}
	err := json.Unmarshal(raw, &p)
	return p, err
}

// statsSnapshot is everything the evaluator needs about one user, gathered
// once per evaluation so every badge check sees the same data.
type statsSnapshot struct {
	QuizScores     []int
	CompletedCount int
	ReviewSessions int
	StudyGuides    int
	CurrentStreak  int
	TopicAverages  []int
}

// checkRequirement decides whether a requirement is satisfied and how far
// along the user is (0..100). Unknown requirement types are never satisfied;
// one malformed catalog entry must not fail the whole evaluation.
func checkRequirement(reqType RequirementType, params RequirementParams, snap statsSnapshot) (bool, int) {
	switch reqType {
	case RequirementQuizCompleted:
		return thresholdCheck(snap.CompletedCount, params.Count)

	case RequirementPerfectScore:
		perfect := 0
		for _, score := range snap.QuizScores {
			if score == 100 {
				perfect++
			}
		}
		return thresholdCheck(perfect, params.Count)

	case RequirementHighScore:
		high := 0
		for _, score := range snap.QuizScores {
			if score >= params.Threshold {
				high++
			}
		}
		return thresholdCheck(high, params.Count)

	case RequirementAvgScore:
		if params.Count < 1 || snap.CompletedCount < params.Count {
			_, progress := thresholdCheck(snap.CompletedCount, params.Count)
			return false, progress
		}
		sum := 0
		for _, score := range snap.QuizScores {
			sum += score
		}
		avg := sum / len(snap.QuizScores)
		return avg >= params.Threshold, clampProgress(avg, params.Threshold)

	case RequirementDailyStreak:
		return thresholdCheck(snap.CurrentStreak, params.Count)

	case RequirementMasteryScore:
		best := 0
		for _, avg := range snap.TopicAverages {
			if avg > best {
				best = avg
			}
		}
		return best >= params.Threshold, clampProgress(best, params.Threshold)

	case RequirementMultiMastery:
		areas := 0
		for _, avg := range snap.TopicAverages {
			if avg >= params.Threshold {
				areas++
			}
		}
		return thresholdCheck(areas, params.Areas)

	case RequirementStudyGuide:
		return thresholdCheck(snap.StudyGuides, params.Count)

	case RequirementReviewSessions:
		return thresholdCheck(snap.ReviewSessions, params.Count)

	default:
		return false, 0
	}
}

func thresholdCheck(have, need int) (bool, int) {
	if need < 1 {
		return false, 0
	}
	return have >= need, clampProgress(have, need)
}

func clampProgress(have, need int) int {
	if need < 1 {
		return 0
	}
	progress := 100 * have / need
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}
	return progress
}
