package receipt

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scanform/scanform/internal/extract"
	"github.com/scanform/scanform/internal/scanning"
)

// IDGenerator generates unique IDs for receipts
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service handles receipt operations
type Service struct {
	db          DB
	scanner     scanning.Scanner
	storage     Storage
	extractor   *extract.Extractor
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with the default keyword configuration,
// ID generator, and time source
func NewService(db DB, scanner scanning.Scanner, storage Storage) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		extractor:   extract.NewExtractor(extract.DefaultKeywords()),
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scanner scanning.Scanner, storage Storage, extractor *extract.Extractor, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		extractor:   extractor,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// Extractor exposes the service's extraction pipeline so the server can share
// it with a live recognition session.
func (s *Service) Extractor() *extract.Extractor {
	return s.extractor
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	repeatedWhitespace  = regexp.MustCompile(`\s+`)
)

// sanitizeFilename cleans up a filename by removing special characters and
// truncating length; phone uploads arrive with very long generated names.
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = repeatedWhitespace.ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)

	if len(base) > 50 {
		base = base[:50]
	}
	if base == "" {
		base = "receipt"
	}
	return base + ext
}

var titleCaser = cases.Title(language.English)

// formatTitle cleans a guessed title for display: OCR transcripts are usually
// all caps, so words longer than two characters are recased.
func formatTitle(raw string) string {
	words := strings.Fields(raw)
	for i, word := range words {
		if len(word) > 2 {
			words[i] = titleCaser.String(strings.ToLower(word))
		}
	}
	title := strings.Join(words, " ")
	if len(title) > 50 {
		title = title[:50]
	}
	if title == "" {
		title = "Receipt"
	}
	return title
}

// amountCents converts a user-supplied amount literal to cents. Tokens in the
// receipt grammar normalize positionally (last separator is the decimal
// point); anything else is accepted if it parses as a plain decimal with
// either separator. Negative and empty values are rejected.
func amountCents(literal string) (int64, bool) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return 0, false
	}
	value, ok := extract.NormalizeAmount(literal)
	if !ok {
		var err error
		value, err = decimal.NewFromString(strings.ReplaceAll(literal, ",", "."))
		if err != nil {
			return 0, false
		}
	}
	if value.IsNegative() {
		return 0, false
	}
	return value.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

// ScanReceipt stores the uploaded file, recognizes its text, and runs the
// extraction pipeline. It returns a draft for the entry form; nothing is
// written to the database until the user confirms. Extraction itself cannot
// fail — a transcript that yields nothing produces a draft with absent
// fields — but a recognition failure is an error and the stored file is
// cleaned up.
func (s *Service) ScanReceipt(filename string, data []byte, contentType string) (*Draft, error) {
	id := s.idGenerator.Generate()
	cleanFilename := sanitizeFilename(filename)

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	rawText, err := s.scanner.Recognize(data, contentType)
	if err != nil {
		slog.Error("Failed to recognize receipt text",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("recognizing receipt: %w", err)
	}

	parsed := s.extractor.Parse(rawText)
	return &Draft{
		Parsed:           parsed,
		Title:            formatTitle(parsed.Title),
		AmountCandidates: s.extractor.AmountCandidates(rawText),
		Filename:         savedPath,
		ContentType:      contentType,
	}, nil
}

// CreateParams are the user-confirmed fields posted back by the entry form.
type CreateParams struct {
	Title        string `json:"title"`
	AmountString string `json:"amount_string"`
	DateString   string `json:"date_string"`
	RawText      string `json:"raw_text"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type"`
}

// CreateReceipt persists a confirmed receipt. The form boundary owns
// validation: a receipt requires a non-empty, parseable amount. An
// unparseable date falls back to the current day.
func (s *Service) CreateReceipt(params CreateParams) (*Receipt, error) {
	cents, ok := amountCents(params.AmountString)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", params.AmountString)
	}

	now := s.timeSource.Now()
	date := now
	if parsed, ok := extract.ParseDate(params.DateString); ok {
		date = parsed
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = "Receipt"
	}

	receipt := &Receipt{
		ID:           s.idGenerator.Generate(),
		Title:        title,
		Date:         date,
		AmountCents:  cents,
		AmountString: strings.TrimSpace(params.AmountString),
		DateString:   strings.TrimSpace(params.DateString),
		RawText:      params.RawText,
		Filename:     params.Filename,
		ContentType:  params.ContentType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.SaveReceipt(receipt); err != nil {
		return nil, fmt.Errorf("saving receipt to database: %w", err)
	}
	return receipt, nil
}

// GetReceipt retrieves a receipt by ID
func (s *Service) GetReceipt(id string) (*Receipt, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return nil, fmt.Errorf("getting receipt: %w", err)
	}
	return receipt, nil
}

// ListReceipts returns all receipts
func (s *Service) ListReceipts() ([]*Receipt, error) {
	receipts, err := s.db.ListReceipts()
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	return receipts, nil
}

// DeleteReceipt removes a receipt and its stored file
func (s *Service) DeleteReceipt(id string) error {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return fmt.Errorf("getting receipt for deletion: %w", err)
	}

	if receipt.Filename != "" {
		if err := s.storage.Delete(receipt.Filename); err != nil {
			slog.Warn("Failed to delete file", "filename", receipt.Filename, "error", err)
		}
	}

	if err := s.db.DeleteReceipt(id); err != nil {
		return fmt.Errorf("deleting receipt from database: %w", err)
	}
	return nil
}

// GetReceiptFile retrieves the stored file data for a receipt
func (s *Service) GetReceiptFile(id string) ([]byte, string, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting receipt: %w", err)
	}

	data, err := s.storage.Get(receipt.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting receipt file: %w", err)
	}
	return data, receipt.ContentType, nil
}
