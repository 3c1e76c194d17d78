package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Magnitude shorthand grammar: suffix rb/ribu multiplies by one thousand,
// jt/juta by one million, case-insensitive, and the suffix may directly follow
// the digits with no space ("30rb" -> 30000, "2jt" -> 2000000).
var (
	unitPattern    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(ribu|rebu|rb|juta|jt|k)\b`)
	numericPattern = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})+(?:,\d+)?|\d+)`)
)

type NumberExtractor struct {
	numberWords map[string]float64
}

func NewNumberExtractor() *NumberExtractor {
	return &NumberExtractor{
		numberWords: map[string]float64{
			"nol":      0,
			"satu":     1,
			"dua":      2,
			"tiga":     3,
			"empat":    4,
			"lima":     5,
			"enam":     6,
			"tujuh":    7,
			"delapan":  8,
			"sembilan": 9,
			"sepuluh":  10,
			"sebelas":  11,
			"seratus":  100,
			"seribu":   1000,
			"sejuta":   1000000,

			"puluh":  10,
			"ratus":  100,
			"ribu":   1000,
			"rebu":   1000,
			"juta":   1000000,
			"miliar": 1000000000,
		},
	}
}

// ExtractAmount returns the first amount found in text together with the kind
// of pattern that matched ("unit", "numeric", "words" or "none"). The unit
// pattern is tried first so that "30rb" never parses as a bare 30.
func (ne *NumberExtractor) ExtractAmount(text string) (float64, string) {
	text = strings.ToLower(text)

	if matches := unitPattern.FindStringSubmatch(text); len(matches) > 0 {
		cleaned := strings.ReplaceAll(matches[1], ",", ".")
		num, err := strconv.ParseFloat(cleaned, 64)
		if err == nil {
			switch matches[2] {
			case "ribu", "rebu", "rb", "k":
				return num * 1000, "unit"
			case "juta", "jt":
				return num * 1000000, "unit"
			}
		}
	}

	if match := numericPattern.FindString(text); match != "" {
		cleaned := strings.ReplaceAll(match, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		if amount, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return amount, "numeric"
		}
	}

	if amount := ne.parseIndonesianNumber(text); amount > 0 {
		return amount, "words"
	}

	return 0, "none"
}

func (ne *NumberExtractor) parseIndonesianNumber(text string) float64 {
	words := strings.Fields(text)
	total := 0.0
	current := 0.0

	for _, word := range words {
		val, exists := ne.numberWords[strings.ToLower(word)]
		if !exists {
			continue
		}

		if val >= 1000 {
			if current == 0 {
				current = 1
			}
			total += current * val
			current = 0
		} else if val == 100 || val == 10 {
			if current == 0 {
				current = 1
			}
			current *= val
		} else {
			current += val
		}
	}

	return total + current
}

// ExtractType classifies the utterance as income or expense from Indonesian
// keywords. Expense is the default when nothing matches, mirroring the remote
// parser's behavior.
func (ne *NumberExtractor) ExtractType(text string) string {
	text = strings.ToLower(text)

	incomeKeywords := []string{
		"pemasukan", "masuk", "terima", "dapat", "pendapatan",
		"gaji", "gajian", "bonus", "income", "transfer masuk",
	}

	for _, keyword := range incomeKeywords {
		if strings.Contains(text, keyword) {
			return "income"
		}
	}

	return "expense"
}

var walletPhrasePattern = regexp.MustCompile(`(?i)(?:dompet|rekening|wallet)\s+([\pL\d]+)|([\pL\d]+)\s+wallet\b`)

// ExtractWallet pulls a wallet reference out of phrases like "dompet jajan" or
// "rekening BCA". An empty result means no wallet was mentioned; the caller
// falls back to the protected default.
func (ne *NumberExtractor) ExtractWallet(text string) string {
	matches := walletPhrasePattern.FindStringSubmatch(text)
	if len(matches) == 0 {
		return ""
	}

	if matches[1] != "" {
		return matches[1]
	}
	return matches[2]
}

var amountTokenPattern = regexp.MustCompile(`(?i)\d+(?:[.,]\d+)*\s*(ribu|rebu|rb|juta|jt|k)?`)

// ExtractDescription strips command words, amount tokens and wallet phrases,
// leaving a short free-text description.
func (ne *NumberExtractor) ExtractDescription(text string) string {
	cleaned := strings.ToLower(text)

	removeKeywords := []string{
		"tambah", "catat", "buat", "bikin",
		"pemasukan", "pengeluaran", "transaksi",
		"untuk", "keperluan",
	}
	for _, keyword := range removeKeywords {
		cleaned = strings.ReplaceAll(cleaned, keyword, "")
	}

	cleaned = walletPhrasePattern.ReplaceAllString(cleaned, "")
	cleaned = amountTokenPattern.ReplaceAllString(cleaned, "")

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "Transaksi"
	}

	return cleaned
}
