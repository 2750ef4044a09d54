// Package scanning produces raw text transcripts from receipt images and
// documents. It is the recognition side of the pipeline; interpreting the
// transcript is the extract package's job.
package scanning

// Scanner runs text recognition over a receipt image or document.
type Scanner interface {
	// Recognize returns the full transcript of all recognized text,
	// newline-delimited, in reading order.
	Recognize(imageData []byte, contentType string) (string, error)
	// Close releases recognition resources.
	Close() error
}
