package extract

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	digitsRE     = regexp.MustCompile(`\p{N}+`)
	multiSpaceRE = regexp.MustCompile(`\s+`)
	sentenceRE   = regexp.MustCompile(`[.;!?\n]+`)
)

// NormalizeText lowercases text, strips punctuation and digits, and
// collapses whitespace. Canonical text blobs are built from normalized
// fields so that re-extraction of the same record yields byte-identical
// output.
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = nonWordRE.ReplaceAllString(text, " ")
	text = digitsRE.ReplaceAllString(text, " ")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// token is one word of the source text with its original casing preserved.
type token struct {
	original string
	lowered  string
}

// tokenize splits text into word tokens. Letters, digits and the runes
// + # / . count as word characters so terms like "c++", "c#", "ci/cd" and
// "node.js" survive as single tokens. Trailing dots are trimmed so sentence
// punctuation does not stick to the last word.
func tokenize(text string) []token {
	var tokens []token
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		original := strings.TrimRight(word.String(), ".")
		word.Reset()
		if original == "" {
			return
		}
		tokens = append(tokens, token{original: original, lowered: strings.ToLower(original)})
	}

	for _, r := range text {
		switch {
		case isWordRune(r):
			word.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	if r == '+' || r == '#' || r == '/' || r == '.' {
		return true
	}
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') ||
		r > 127 && isLetterish(r)
}

func isLetterish(r rune) bool {
	// Accented Latin letters common in Portuguese resumes.
	return strings.ContainsRune("áàâãäéèêëíìîïóòôõöúùûüçÁÀÂÃÄÉÈÊËÍÌÎÏÓÒÔÕÖÚÙÛÜÇ", r)
}

// sentences splits text into rough sentences on terminal punctuation and
// newlines. Good enough for the years-of-experience heuristic; no linguistic
// segmentation is attempted.
func sentences(text string) []string {
	parts := sentenceRE.Split(text, -1)
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
