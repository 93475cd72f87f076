package ingest

import "strings"

// splitKnowledge breaks a declared "conhecimentos técnicos" field into
// individual skill strings. The field is free text in practice; commas,
// semicolons and newlines all appear as separators.
func splitKnowledge(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), "."))
		if part != "" {
			skills = append(skills, part)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
