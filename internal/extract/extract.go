// Package extract turns raw receipt OCR text into structured transaction
// fields: a title, a monetary amount, and a date. The text carries no layout
// information, so everything is decided lexically; the hard part is picking
// "the total" among line-item prices, quantities, tendered cash, and change.
//
// The whole pipeline is a family of pure functions over the input string. It
// performs no I/O, holds no state between calls, and never returns an error:
// when the text gives nothing usable the result simply has absent fields and
// the entry form falls back to manual input.
package extract

// ParsedReceipt is the externally visible result of one extraction pass.
// AmountString and DateString hold the literal matched substrings, exactly as
// they appeared in the transcript, and are nil when nothing was found.
type ParsedReceipt struct {
	Title        string  `json:"title"`
	AmountString *string `json:"amount_string,omitempty"`
	DateString   *string `json:"date_string,omitempty"`
	RawText      string  `json:"raw_text"`
}

// Extractor runs the candidate pipeline with a fixed keyword configuration.
// The zero value is not usable; construct one with NewExtractor.
type Extractor struct {
	keywords Keywords
}

// NewExtractor creates an Extractor using the given keyword lists.
func NewExtractor(keywords Keywords) *Extractor {
	return &Extractor{keywords: keywords}
}

// Parse runs the full pipeline over a transcript and assembles the record the
// entry form is seeded from.
func (e *Extractor) Parse(raw string) ParsedReceipt {
	parsed := ParsedReceipt{
		Title:   GuessTitle(raw),
		RawText: raw,
	}
	if candidates := e.AmountCandidates(raw); len(candidates) > 0 {
		parsed.AmountString = &candidates[0]
	}
	if token, _, ok := FindDate(raw); ok {
		parsed.DateString = &token
	}
	return parsed
}
