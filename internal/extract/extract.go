// Package extract pulls plain text out of uploaded résumé documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document parses but contains no extractable text.
var ErrNoText = errors.New("no text extracted")

// PDF extracts the concatenated text of every page, in page order.
// Any parse failure aborts the whole extraction; there is no partial-page
// recovery. Pages with a null value are skipped.
func PDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs rather than returning
	// an error; a corrupt upload must not take the process down.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf parse: %v", rec)
		}
	}()

	if len(data) == 0 {
		return "", errors.New("empty pdf data")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		b.WriteString(pageText)
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoText
	}
	return b.String(), nil
}
