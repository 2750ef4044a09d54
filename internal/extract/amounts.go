package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern is the lexical grammar for a monetary amount: runs of 1-3
// digits optionally grouped by "." or ",", followed by one separator and
// exactly two decimal digits. Either character may act as the grouping or the
// decimal separator; the final two digits decide.
const amountPattern = `\d{1,3}(?:[.,]\d{1,3})*[.,]\d{2}`

// Compiled once at startup. If compilation ever fails, amountRE stays nil and
// the matchers return nothing instead of panicking, so a broken pattern can
// never take the form down.
var amountRE, _ = regexp.Compile(amountPattern)

// maxCandidates caps the merged candidate list offered to the user.
const maxCandidates = 5

// Scoring constants for the general tier.
const (
	keywordWeight  = 2.5
	magnitudeBonus = 1.0
)

// magnitudeThreshold is the normalized value above which a token earns the
// magnitude bonus, biasing toward totals over line-item prices.
var magnitudeThreshold = decimal.NewFromInt(1000)

// FindAmounts returns every amount token in text, verbatim, left to right,
// duplicates included. RE2 has no lookaround, so the rule that a token must
// not sit inside a longer digit run (barcodes, phone numbers) is enforced by
// checking the bytes around each match.
func FindAmounts(text string) []string {
	if amountRE == nil {
		return nil
	}
	var tokens []string
	for _, loc := range amountRE.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isDigit(text[loc[0]-1]) {
			continue
		}
		if loc[1] < len(text) && isDigit(text[loc[1]]) {
			continue
		}
		tokens = append(tokens, text[loc[0]:loc[1]])
	}
	return tokens
}

// NormalizeAmount converts an amount token to its numeric value. The last
// separator is the decimal point; any earlier ones are grouping and are
// dropped. The boolean is false for a malformed literal.
func NormalizeAmount(token string) (decimal.Decimal, bool) {
	idx := strings.LastIndexAny(token, ".,")
	if idx == -1 || idx+1 >= len(token) {
		return decimal.Decimal{}, false
	}
	integer := strings.Map(dropSeparators, token[:idx])
	value, err := decimal.NewFromString(integer + "." + token[idx+1:])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

// contextualAmounts collects one candidate per line that names the total and
// contains nothing disqualifying, in line order. Receipt totals are
// conventionally right-aligned, so only the last match on a qualifying line
// is kept. High-confidence tier.
func (e *Extractor) contextualAmounts(raw string) []string {
	var out []string
	for _, line := range Lines(raw) {
		lower := strings.ToLower(line)
		if !containsAny(lower, e.keywords.Positive) {
			continue
		}
		if containsAny(lower, e.keywords.Negative) {
			continue
		}
		matches := FindAmounts(line)
		if len(matches) == 0 {
			continue
		}
		out = append(out, matches[len(matches)-1])
	}
	return dedupe(out)
}

type scoredCandidate struct {
	token string
	score float64
}

// scoredAmounts scores every amount in the transcript by the keywords on its
// line and by magnitude. A line with a negative keyword is excluded outright,
// not merely penalized: a line mentioning cash or change never holds the real
// total. General tier.
func (e *Extractor) scoredAmounts(raw string) []string {
	var scored []scoredCandidate
	for _, line := range Lines(raw) {
		lower := strings.ToLower(line)
		if containsAny(lower, e.keywords.Negative) {
			continue
		}
		var lineScore float64
		for _, kw := range e.keywords.Positive {
			if strings.Contains(lower, kw) {
				lineScore += keywordWeight
			}
		}
		for _, kw := range e.keywords.Noise {
			if strings.Contains(lower, kw) {
				lineScore -= keywordWeight
			}
		}
		for _, token := range FindAmounts(line) {
			score := lineScore
			if value, ok := NormalizeAmount(token); ok && value.GreaterThan(magnitudeThreshold) {
				score += magnitudeBonus
			}
			scored = append(scored, scoredCandidate{token: token, score: score})
		}
	}

	// Score descending; SliceStable keeps ties in original appearance order
	// so the ranking is deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]string, 0, len(scored))
	for _, c := range scored {
		out = append(out, c.token)
	}
	return out
}

// AmountCandidates merges the contextual and general tiers, contextual first,
// drops later duplicates, and truncates to at most five entries. The first
// entry is the pipeline's best single guess for the receipt total.
func (e *Extractor) AmountCandidates(raw string) []string {
	merged := append(e.contextualAmounts(raw), e.scoredAmounts(raw)...)
	merged = dedupe(merged)
	if len(merged) > maxCandidates {
		merged = merged[:maxCandidates]
	}
	return merged
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// dedupe removes later duplicates, keeping the first occurrence.
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func dropSeparators(r rune) rune {
	if r == '.' || r == ',' {
		return -1
	}
	return r
}
