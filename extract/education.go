package extract

import (
	"strings"

	"github.com/poiesic/matchpoint/core"
)

// educationKeywords maps level descriptions to canonical education levels.
// Order matters twice over: higher levels are listed first so "mestrado"
// wins over an incidental "graduação" later in the text, and
// "pós-graduação" must be tested before its substring "graduação".
var educationKeywords = []struct {
	keyword string
	level   core.EducationLevel
}{
	{"doutorado", core.EducationDoctorate},
	{"doutor", core.EducationDoctorate},
	{"phd", core.EducationDoctorate},
	{"mestrado", core.EducationMaster},
	{"mestre", core.EducationMaster},
	{"mba", core.EducationSpecialization},
	{"especialização", core.EducationSpecialization},
	{"pós-graduação", core.EducationSpecialization},
	{"pós graduação", core.EducationSpecialization},
	{"graduação", core.EducationCompleteHigher},
	{"bacharelado", core.EducationCompleteHigher},
	{"bacharel", core.EducationCompleteHigher},
	{"licenciatura", core.EducationCompleteHigher},
	{"superior completo", core.EducationCompleteHigher},
	{"superior incompleto", core.EducationIncompleteHigher},
	{"cursando", core.EducationIncompleteHigher},
	{"curso técnico", core.EducationTechnical},
	{"técnico", core.EducationTechnical},
	{"ensino médio", core.EducationSecondary},
	{"ensino fundamental", core.EducationFundamental},
}

// InferEducation finds the highest-precedence education keyword in the text.
//
// A complete-higher match co-occurring with "cursando" or "incompleto"
// anywhere in the same document is downgraded to incomplete higher. The
// document-wide co-occurrence check is a known heuristic weakness on long
// resumes (any unrelated "cursando" triggers the downgrade), kept because
// ranked output depends on it; see the pinning test before changing it.
func InferEducation(text string) core.EducationLevel {
	if text == "" {
		return core.EducationUnknown
	}

	lowered := strings.ToLower(text)

	for _, entry := range educationKeywords {
		if !strings.Contains(lowered, entry.keyword) {
			continue
		}
		if entry.level == core.EducationCompleteHigher &&
			(strings.Contains(lowered, "cursando") || strings.Contains(lowered, "incompleto")) {
			return core.EducationIncompleteHigher
		}
		return entry.level
	}

	return core.EducationUnknown
}

// ParseEducation maps a declared education field onto the hierarchy.
// Unlike InferEducation it runs on short structured values, but it applies
// the same keyword table and downgrade rule so declared and inferred values
// are comparable.
func ParseEducation(declared string) core.EducationLevel {
	return InferEducation(declared)
}
