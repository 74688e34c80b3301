package config

// Compatibility scoring weights. The exact numbers are tuning parameters;
// the scorer contract is determinism, the [0,100] range, and the mentor-id
// tie-break in suggestion ranking.
const (
	// Scoring
	MajorMatchScore       = 30
	InterestOverlapScore  = 10
	InterestOverlapCap    = 40
	SkillOverlapScore     = 5
	SkillOverlapCap       = 20
	IndustryInterestScore = 10
	MaxMatchScore         = 100
)
