package receipt

import (
	"time"

	"github.com/scanform/scanform/internal/extract"
)

// Receipt is a confirmed, persisted transaction record. AmountString keeps
// the literal value the user confirmed in the form; AmountCents is the
// canonical numeric value derived from it at save time.
type Receipt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	AmountCents  int64     `json:"amount_cents"`
	AmountString string    `json:"amount_string"`
	DateString   string    `json:"date_string,omitempty"`
	RawText      string    `json:"raw_text,omitempty"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Draft is the result of scanning an upload, offered to the entry form for
// confirmation. Nothing about a draft is persisted; the form posts the edited
// fields back to create the Receipt.
type Draft struct {
	// Parsed holds the extraction result with the literal matched
	// substrings.
	Parsed extract.ParsedReceipt `json:"parsed"`

	// Title is a display-cleaned version of the guessed title, since OCR
	// output tends to be all caps.
	Title string `json:"title"`

	// AmountCandidates lists up to five alternative totals for manual
	// correction, best guess first.
	AmountCandidates []string `json:"amount_candidates"`

	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}
