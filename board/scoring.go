package board

import "time"

const (
	// LockDelay is how long a grounded piece may rest before it is forced to lock.
	LockDelay = 500 * time.Millisecond

	baseDropInterval = 1000 * time.Millisecond
	dropStep         = 50 * time.Millisecond
	minDropInterval  = 50 * time.Millisecond

	linesPerLevel      = 10
	comboScoreStep     = 50
	perfectClearFactor = 10
	hardDropPerCell    = 2

	maxComboAttack     = 4
	perfectClearAttack = 10
)

var (
	clearScores = [5]int{0, 100, 300, 500, 800}
	spinScores  = [5]int{400, 800, 1200, 1600, 1600}

	clearAttacks = [5]int{0, 0, 1, 2, 4}
	spinAttacks  = [5]int{0, 2, 4, 6, 6}
)

func clampLines(lines int) int {
	return max(0, min(lines, 4))
}

// BaseScore is the score of a lock before combo, perfect clear and level are applied.
func BaseScore(lines int, spin bool) int {
	if spin {
		return spinScores[clampLines(lines)]
	}
	return clearScores[clampLines(lines)]
}

// LockScore is the full score awarded for one lock.
func LockScore(lines int, spin bool, combo, level int, perfect bool) int {
	score := BaseScore(lines, spin)
	if combo > 1 {
		score += comboScoreStep * (combo - 1)
	}
	if perfect {
		score *= perfectClearFactor
	}
	return score * level
}

// AttackTable converts a clear into garbage lines ignoring combo and perfect clear.
func AttackTable(lines int, spin bool) int {
	if spin {
		return spinAttacks[clampLines(lines)]
	}
	return clearAttacks[clampLines(lines)]
}

// AttackLines is the number of garbage lines a clear sends.
func AttackLines(lines int, spin bool, combo int, perfect bool) int {
	attack := AttackTable(lines, spin)
	if lines <= 0 {
		return attack
	}
	if combo > 1 {
		attack += min(combo-1, maxComboAttack)
	}
	if perfect {
		attack += perfectClearAttack
	}
	return attack
}

// LevelFor returns the level reached after clearing totalLines lines.
func LevelFor(totalLines int) int {
	return totalLines/linesPerLevel + 1
}

// DropInterval is the gravity period at the given level.
func DropInterval(level int) time.Duration {
	return max(minDropInterval, baseDropInterval-time.Duration(level-1)*dropStep)
}
