package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// fetchPDF downloads the PDF under the size ceiling and emits one chunk per
// non-empty page.
func (f *Fetcher) fetchPDF(ctx context.Context, rawURL string) ([]domain.DocumentChunk, error) {
	data, err := f.downloadPDF(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := parsePDF(data)
	if err != nil {
		return nil, err
	}

	title := doc.title
	if title == "" {
		title = rawURL
	}

	now := time.Now().UTC()
	chunks := make([]domain.DocumentChunk, 0, len(doc.pages))
	for _, page := range doc.pages {
		chunks = append(chunks, domain.DocumentChunk{
			Text:       page.text,
			URL:        rawURL,
			Title:      title,
			Timestamp:  now,
			PageNumber: page.number,
			PageCount:  doc.pageCount,
			Author:     doc.author,
			IsPDF:      true,
		})
	}
	logger.Debug("Parsed PDF %s: %d pages, %d non-empty", rawURL, doc.pageCount, len(chunks))
	return chunks, nil
}

// downloadPDF fetches the body, enforcing the size ceiling before any parse
// attempt. The measured size accompanies the rejection.
func (f *Fetcher) downloadPDF(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: downloading %s: %v", domain.ErrFetch, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: downloading %s: status %s", domain.ErrFetch, rawURL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxPDFSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrFetch, rawURL, err)
	}

	if int64(len(data)) > f.maxPDFSize {
		size := int64(len(data))
		if resp.ContentLength > size {
			size = resp.ContentLength
		}
		return nil, &domain.SizeLimitError{Size: size, Limit: f.maxPDFSize}
	}

	return data, nil
}

// pdfPage is one non-empty page of extracted text.
type pdfPage struct {
	number int
	text   string
}

// parsedPDF is the extracted document: metadata plus per-page text with
// empty pages dropped.
type parsedPDF struct {
	title     string
	author    string
	pageCount int
	pages     []pdfPage
}

// parsePDF extracts text and metadata. The underlying parser panics on some
// malformed files; those surface as domain.ErrParse like any other parse
// failure.
func parsePDF(data []byte) (p *parsedPDF, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w: %v", domain.ErrParse, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	p = &parsedPDF{pageCount: reader.NumPage()}
	if p.pageCount == 0 {
		return nil, fmt.Errorf("%w: PDF has no pages", domain.ErrParse)
	}

	info := reader.Trailer().Key("Info")
	if !info.IsNull() {
		p.title = info.Key("Title").Text()
		p.author = info.Key("Author").Text()
	}

	for i := 1; i <= p.pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not invalidate the document.
			logger.Warn("Skipping unreadable PDF page %d: %v", i, err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		p.pages = append(p.pages, pdfPage{number: i, text: text})
	}

	return p, nil
}
