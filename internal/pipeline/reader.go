package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"
)

// ReadDocument loads a template document and returns its plain text. Markdown
// and plain-text files pass through untouched; PDF and HTML exports are
// flattened to text first so the block parser sees the same shape either way.
// Errors here are per-file: the caller moves on to the next document.
func ReadDocument(path string) (string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfToText(blob)
	case ".html", ".htm":
		return htmlToText(blob)
	default:
		return string(blob), nil
	}
}

func pdfToText(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return sb.String(), nil
}

// htmlToText flattens an HTML export to the plain-text document format:
// block elements become lines, <hr> becomes the `---` block separator.
func htmlToText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		writeNode(&sb, sel)
	})

	if strings.TrimSpace(sb.String()) == "" {
		// No element structure worth walking; fall back to the bare text.
		return doc.Text(), nil
	}
	return sb.String(), nil
}

func writeNode(sb *strings.Builder, sel *goquery.Selection) {
	switch goquery.NodeName(sel) {
	case "hr":
		sb.WriteString("---\n")
	case "h2":
		sb.WriteString("## " + strings.TrimSpace(sel.Text()) + "\n")
	case "b", "strong":
		sb.WriteString("**" + strings.TrimSpace(sel.Text()) + "**")
	case "br":
		sb.WriteString("\n")
	default:
		if sel.Children().Length() == 0 {
			sb.WriteString(strings.TrimSpace(sel.Text()) + "\n")
			return
		}
		sel.Contents().Each(func(_ int, child *goquery.Selection) {
			if goquery.NodeName(child) == "#text" {
				sb.WriteString(child.Text())
				return
			}
			writeNode(sb, child)
		})
		sb.WriteString("\n")
	}
}
