package scanning

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements Scanner using a local Tesseract engine via gosseract.
type Tesseract struct {
	language string
}

// NewTesseract creates a Tesseract scanner. language is a Tesseract language
// code ("eng", "deu", ...); the matching trained data must be installed on
// the host.
func NewTesseract(language string) (*Tesseract, error) {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{language: language}, nil
}

// Recognize converts the input to PNG if needed and runs OCR over it.
func (t *Tesseract) Recognize(imageData []byte, contentType string) (string, error) {
	pngData, err := preparePNG(imageData, contentType)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("setting ocr language: %w", err)
	}
	if err := client.SetImageFromBytes(pngData); err != nil {
		return "", fmt.Errorf("loading image for ocr: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return text, nil
}

// Close implements Scanner. The gosseract client is created per call, so
// there is nothing held open between recognitions.
func (t *Tesseract) Close() error {
	return nil
}
