// Package extract pulls code/name pairs out of a division-code HTML page.
//
// The source pages span four decades of hand-written markup with no stable
// class or id on data rows, so rows are recognised by content alone: the
// first non-empty cell must start with six digits.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/width"
)

var codePattern = regexp.MustCompile(`^\d{6}`)

// Row is a data row that was recognised but could not be used.
type Row struct {
	Index int
	Cells []string
}

// Result is what one page yields.
type Result struct {
	// Regions maps code to name. A code seen twice keeps the later name.
	Regions map[string]string
	// Skipped lists code rows with no name cell.
	Skipped []Row
}

// Extract parses html and returns every code row it contains.
func Extract(html string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Result{}, fmt.Errorf("parse html: %w", err)
	}

	res := Result{Regions: make(map[string]string)}
	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return
		}
		code := normalizeCode(cells[0])
		if !codePattern.MatchString(code) {
			return
		}
		if len(cells) < 2 {
			res.Skipped = append(res.Skipped, Row{Index: i, Cells: cells})
			return
		}
		res.Regions[code] = strings.TrimSpace(cells[1])
	})
	return res, nil
}

// rowCells returns the text of each td under tr, leaving out cells whose
// text is empty. Pages pad rows with empty spacer cells and mix colspan and
// rowspan freely, so positions are only meaningful after this filter.
func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		if text := td.Text(); text != "" {
			cells = append(cells, text)
		}
	})
	return cells
}

// normalizeCode trims the cell and folds full-width digits to ASCII.
func normalizeCode(cell string) string {
	return width.Narrow.String(strings.TrimSpace(cell))
}
