package services

import (
	"math"
	"strings"
)

// MatchScore computes the percentage of required tags covered by the owned
// tags, case-insensitive. An empty required set always scores 100.
func MatchScore(owned, required []string) int {
	if len(required) == 0 {
		return 100
	}

	ownedSet := make(map[string]struct{}, len(owned))
	for _, tag := range owned {
		ownedSet[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	matched := 0
	for _, tag := range required {
		if _, ok := ownedSet[strings.ToLower(strings.TrimSpace(tag))]; ok {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}
