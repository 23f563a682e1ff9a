package gamification

// LevelThreshold returns the cumulative points needed to reach a level:
// sum(i*100 for i in 1..level-1), so level 2 opens at 100, level 3 at 300,
// level 4 at 600.
func LevelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return 100 * level * (level - 1) / 2
}

// CalculateLevel returns the greatest level whose threshold is within the
// given points. Non-decreasing in points; 0 points is level 1.
func CalculateLevel(points int) int {
	level := 1
	for LevelThreshold(level+1) <= points {
		level++
	}
	return level
}

// NextLevelPoints returns the cumulative threshold of the level after the
// given one.
func NextLevelPoints(level int) int {
	return LevelThreshold(level + 1)
}
