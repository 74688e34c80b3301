// Package matching implements the compatibility scorer and the match
// lifecycle (request, respond, list, suggest).
package matching

import (
	"strings"

	"mentorgo/backend/internal/config"
	"mentorgo/backend/internal/models"
)

// Score computes the compatibility score between a student and a mentor from
// profile attribute overlap. It is a pure function of the two profiles:
// repeated calls with the same inputs always produce the same value in
// [0, MaxMatchScore].
func Score(student, mentor *models.User) float64 {
	score := 0

	if student.Major != "" && equalFold(student.Major, mentor.Major) {
		score += config.MajorMatchScore
	}

	interestOverlap := overlapCount(student.CareerInterests, mentor.ExpertiseAreas)
	score += capped(interestOverlap*config.InterestOverlapScore, config.InterestOverlapCap)

	skillOverlap := overlapCount(student.Skills, mentor.Skills)
	score += capped(skillOverlap*config.SkillOverlapScore, config.SkillOverlapCap)

	if mentor.Industry != "" && containsFold(student.CareerInterests, mentor.Industry) {
		score += config.IndustryInterestScore
	}

	if score > config.MaxMatchScore {
		score = config.MaxMatchScore
	}
	return float64(score)
}

// overlapCount counts distinct tags present in both lists, ignoring case and
// surrounding whitespace.
func overlapCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(a))
	for _, tag := range a {
		if norm := normalize(tag); norm != "" {
			seen[norm] = struct{}{}
		}
	}

	counted := make(map[string]struct{})
	for _, tag := range b {
		norm := normalize(tag)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			counted[norm] = struct{}{}
		}
	}
	return len(counted)
}

func containsFold(tags []string, value string) bool {
	norm := normalize(value)
	for _, tag := range tags {
		if normalize(tag) == norm {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func capped(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}
