package media

// RotationIntervalSeconds is the fixed hero rotation cadence.
const RotationIntervalSeconds = 5

// HeroImages returns the hero candidates in display order: the configured
// hero first, then the curated fallbacks, with empty entries dropped.
func HeroImages(primary string, curated []string) []string {
	out := make([]string, 0, len(curated)+1)
	for _, src := range append([]string{primary}, curated...) {
		if src != "" {
			out = append(out, src)
		}
	}
	return out
}

// NextIndex advances the hero selection, wrapping modulo count. With zero or
// one candidate the selection never moves (and the caller starts no timer).
func NextIndex(current, count int) int {
	if count <= 1 {
		return current
	}
	return (current + 1) % count
}
