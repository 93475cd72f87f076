package extract

import (
	"regexp"
	"strings"

	"github.com/poiesic/matchpoint/core"
)

var yearsRE = regexp.MustCompile(`(\d+)\s*anos`)

// seniorityKeywords in precedence order; a direct keyword always beats the
// years-of-experience heuristic.
var seniorityKeywords = []struct {
	keyword string
	level   core.SeniorityLevel
}{
	{"sênior", core.SenioritySenior},
	{"senior", core.SenioritySenior},
	{"pleno", core.SeniorityMid},
	{"júnior", core.SeniorityJunior},
	{"junior", core.SeniorityJunior},
	{"estagiário", core.SeniorityIntern},
	{"estagio", core.SeniorityIntern},
	{"estágio", core.SeniorityIntern},
}

// InferSeniority determines the professional level from text. Direct level
// keywords take precedence; otherwise sentences mentioning experience are
// scanned for a year count, bucketed at >5 senior, >2 mid, >0 junior.
func InferSeniority(text string) core.SeniorityLevel {
	if text == "" {
		return core.SeniorityUnknown
	}

	lowered := strings.ToLower(text)

	for _, entry := range seniorityKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.level
		}
	}

	for _, sentence := range sentences(lowered) {
		if !strings.Contains(sentence, "anos") {
			continue
		}
		if !strings.Contains(sentence, "experiência") && !strings.Contains(sentence, "experiencia") {
			continue
		}
		match := yearsRE.FindStringSubmatch(sentence)
		if match == nil {
			continue
		}
		return bucketYears(match[1])
	}

	return core.SeniorityUnknown
}

func bucketYears(digits string) core.SeniorityLevel {
	years := 0
	for _, r := range digits {
		years = years*10 + int(r-'0')
	}
	switch {
	case years > 5:
		return core.SenioritySenior
	case years > 2:
		return core.SeniorityMid
	case years > 0:
		return core.SeniorityJunior
	default:
		return core.SeniorityUnknown
	}
}

// ParseSeniority maps a declared professional level onto the hierarchy.
func ParseSeniority(declared string) core.SeniorityLevel {
	if declared == "" {
		return core.SeniorityUnknown
	}

	lowered := strings.ToLower(declared)
	for _, entry := range seniorityKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.level
		}
	}
	return core.SeniorityUnknown
}
