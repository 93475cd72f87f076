package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poiesic/matchpoint/core"
)

// languageLevelKeywords in precedence order; the first pattern that matches
// wins. Portuguese and English level words both appear because resumes mix
// the two.
var languageLevelKeywords = []struct {
	keyword string
	level   core.LanguageLevel
}{
	{"fluente", core.LanguageFluent},
	{"avançado", core.LanguageAdvanced},
	{"intermediário", core.LanguageIntermediate},
	{"básico", core.LanguageBasic},
	{"beginner", core.LanguageBasic},
	{"basic", core.LanguageBasic},
	{"intermediate", core.LanguageIntermediate},
	{"advanced", core.LanguageAdvanced},
	{"fluent", core.LanguageFluent},
	{"proficient", core.LanguageFluent},
	{"nativo", core.LanguageFluent},
	{"native", core.LanguageFluent},
}

// languageMatcher holds the compiled level patterns for one language name.
type languageMatcher struct {
	name     string
	patterns []languagePattern
}

type languagePattern struct {
	re    *regexp.Regexp
	level core.LanguageLevel
}

func newLanguageMatcher(name string) *languageMatcher {
	m := &languageMatcher{name: name}
	for _, entry := range languageLevelKeywords {
		// "inglês: avançado", "inglês - avançado" or "inglês avançado"
		adjacent := regexp.MustCompile(fmt.Sprintf(`%s\s*[:\-]\s*%s`, name, entry.keyword))
		spaced := regexp.MustCompile(fmt.Sprintf(`%s\s+%s`, name, entry.keyword))
		m.patterns = append(m.patterns,
			languagePattern{re: adjacent, level: entry.level},
			languagePattern{re: spaced, level: entry.level},
		)
	}
	return m
}

var (
	englishMatcher = newLanguageMatcher("inglês")
	spanishMatcher = newLanguageMatcher("espanhol")
)

// infer returns the proficiency level for the matcher's language. The level
// is only evaluated when the language name itself appears in the text; a
// mention without a recognizable level yields LanguageMentioned, which is
// deliberately distinct from LanguageUnknown (not mentioned at all).
func (m *languageMatcher) infer(text string) core.LanguageLevel {
	if text == "" {
		return core.LanguageUnknown
	}

	lowered := strings.ToLower(text)
	if !strings.Contains(lowered, m.name) {
		return core.LanguageUnknown
	}

	for _, pattern := range m.patterns {
		if pattern.re.MatchString(lowered) {
			return pattern.level
		}
	}

	return core.LanguageMentioned
}

// InferEnglish extracts the English proficiency level from free text.
func InferEnglish(text string) core.LanguageLevel {
	return englishMatcher.infer(text)
}

// InferSpanish extracts the Spanish proficiency level from free text.
func InferSpanish(text string) core.LanguageLevel {
	return spanishMatcher.infer(text)
}

// ParseLanguageLevel maps a declared proficiency field ("avançado",
// "fluente", ...) onto the hierarchy. Declared fields name the level
// directly, without the language-name adjacency required in free text.
func ParseLanguageLevel(declared string) core.LanguageLevel {
	if declared == "" {
		return core.LanguageUnknown
	}

	lowered := strings.ToLower(declared)
	for _, entry := range languageLevelKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.level
		}
	}
	return core.LanguageUnknown
}
