package validate

// Strength scores a password 0-100: 25 points each for length >= 8, an
// uppercase letter, a lowercase letter, a digit, and a non-alphanumeric
// character, capped at 100. The score is advisory only; it never blocks
// submission (the Password rule does).
func Strength(password string) int {
	if password == "" {
		return 0
	}
	score := 0
	if len(password) >= 8 {
		score += 25
	}
	if upperRe.MatchString(password) {
		score += 25
	}
	if lowerRe.MatchString(password) {
		score += 25
	}
	if numberRe.MatchString(password) {
		score += 25
	}
	if containsNonAlphanumeric(password) {
		score += 25
	}
	if score > 100 {
		score = 100
	}
	return score
}

// StrengthLabel maps a score to one of the four advisory bands.
func StrengthLabel(score int) string {
	switch {
	case score < 25:
		return "Weak"
	case score < 50:
		return "Fair"
	case score < 75:
		return "Good"
	default:
		return "Strong"
	}
}

func containsNonAlphanumeric(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return true
		}
	}
	return false
}
