package scanning

import (
	"sync"

	"github.com/scanform/scanform/internal/extract"
)

// Session consumes the rolling transcript of a live recognition source and
// reruns extraction only when the text actually changed. Live engines emit an
// update per frame, most of them identical to the previous one; the equality
// guard keeps the pipeline from redoing the same work every tick.
//
// Update may be called from any goroutine.
type Session struct {
	extractor *extract.Extractor

	mu       sync.Mutex
	lastText string
	last     extract.ParsedReceipt
	seen     bool
}

// NewSession creates a Session around the given extractor.
func NewSession(extractor *extract.Extractor) *Session {
	return &Session{extractor: extractor}
}

// Update feeds the latest transcript. It returns the extraction result and
// whether it was recomputed for this update; false means the transcript was
// identical to the last one and the cached result was returned.
func (s *Session) Update(rawText string) (extract.ParsedReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen && rawText == s.lastText {
		return s.last, false
	}
	s.lastText = rawText
	s.last = s.extractor.Parse(rawText)
	s.seen = true
	return s.last, true
}

// Current returns the most recent extraction result, if any update has been
// processed yet.
func (s *Session) Current() (extract.ParsedReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.seen
}
