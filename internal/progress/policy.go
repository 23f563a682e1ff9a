package progress

// AdaptivePolicy holds the tuning constants of the adaptive controller.
// They are injected rather than read from the environment so the engine has
// no ambient behavior switches.
type AdaptivePolicy struct {
	// WindowSize bounds how many trailing outcomes of a submission are
	// inspected.
	WindowSize int
	// RaiseStreak is the trailing correct run that raises difficulty.
	RaiseStreak int
	// LowerStreak is the trailing wrong run that lowers difficulty.
	LowerStreak int
	MinDifficulty int
	MaxDifficulty int
	// WeakMinAnswers is the minimum batch answers a subcategory needs before
	// it can be flagged weak; WeakAccuracy is the flagging threshold.
	WeakMinAnswers int
	WeakAccuracy   float64
	// Sizing bonuses; both can stack and the result is capped at
	// MaxSizeFactor times the base count.
	WrongStreakBonus   float64
	LowDifficultyBonus float64
	LowDifficultyMax   int
	MaxSizeFactor      float64
}

func DefaultAdaptivePolicy() AdaptivePolicy {
	return AdaptivePolicy{
		WindowSize:         10,
		RaiseStreak:        5,
		LowerStreak:        3,
		MinDifficulty:      1,
		MaxDifficulty:      5,
		WeakMinAnswers:     3,
		WeakAccuracy:       0.6,
		WrongStreakBonus:   0.5,
		LowDifficultyBonus: 0.3,
		LowDifficultyMax:   2,
		MaxSizeFactor:      2.0,
	}
}
