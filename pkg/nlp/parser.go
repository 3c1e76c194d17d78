package nlp

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LocalParser extracts transaction drafts without calling the remote AI
// service. It is the fallback path when no credential is configured, and the
// reference implementation of the magnitude shorthand grammar.
type LocalParser struct {
	extractor *NumberExtractor
}

func NewLocalParser() *LocalParser {
	return &LocalParser{
		extractor: NewNumberExtractor(),
	}
}

func (p *LocalParser) Parse(text string, categories []string) Draft {
	amount, matched := p.extractor.ExtractAmount(text)
	if matched == "none" || amount == 0 {
		return Draft{
			Type:        "expense",
			Category:    fallbackCategory(categories),
			Wallet:      "",
			Description: "Gagal memproses",
			Success:     false,
		}
	}

	description := p.extractor.ExtractDescription(text)

	return Draft{
		Amount:      amount,
		Type:        p.extractor.ExtractType(text),
		Category:    MatchCategory(description, categories),
		Wallet:      p.extractor.ExtractWallet(text),
		Description: description,
		Success:     true,
	}
}

// MatchCategory maps a free-text hint onto one of the valid categories:
// exact case-insensitive match, then substring, then a small edit-distance
// tolerance per word. Anything unrecognized clamps to the protected default.
func MatchCategory(hint string, categories []string) string {
	cleanHint := cleanText(hint)

	for _, category := range categories {
		if cleanText(category) == cleanHint {
			return category
		}
	}

	words := strings.Fields(cleanHint)
	for _, category := range categories {
		cleanCategory := cleanText(category)
		if cleanHint != "" && (strings.Contains(cleanCategory, cleanHint) || strings.Contains(cleanHint, cleanCategory)) {
			return category
		}

		for _, word := range words {
			for _, categoryWord := range strings.Fields(cleanCategory) {
				if len(word) > 3 && levenshtein.ComputeDistance(word, categoryWord) <= 2 {
					return category
				}
			}
		}
	}

	return fallbackCategory(categories)
}

func fallbackCategory(categories []string) string {
	const protected = "Lainnya"

	for _, category := range categories {
		if strings.EqualFold(category, protected) {
			return category
		}
	}

	return protected
}

func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}
