// Package batch renders many fiscal documents from a spreadsheet in one run.
//
// The first row of the sheet is a header naming document fields; each following
// row is one document. Column names are matched case-insensitively and the field
// names of the legacy import format (zipCode, recipientVATNumber, editorName,
// publishedId, ...) are accepted as aliases.
package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

// Column keys understood in the header row.
const (
	colRecipientName  = "recipientname"
	colStreet         = "street"
	colCity           = "city"
	colPostalCode     = "postalcode"
	colRecipientTaxID = "recipienttaxid"
	colIssuerName     = "issuername"
	colIssuerEmail    = "issueremail"
	colIssuerPhone    = "issuerphone"
	colTotalNet       = "totalnet"
	colTotalTax       = "totaltax"
	colTotalGross     = "totalgross"
	colIssueDate      = "issuedate"
	colDocumentID     = "documentid"
	colDescription    = "description"
	colSplitPayment   = "splitpayment"
	colReverseCharge  = "reversecharge"
)

var aliases = map[string]string{
	"recipient":          colRecipientName,
	"zipcode":            colPostalCode,
	"recipientvatnumber": colRecipientTaxID,
	"editorname":         colIssuerName,
	"editoremail":        colIssuerEmail,
	"editorphone":        colIssuerPhone,
	"date":               colIssueDate,
	"publishedid":        colDocumentID,
	"causale":            colDescription,
}

// Row is one parsed spreadsheet line. Err is set when the line could not be
// turned into a document; other rows are unaffected.
type Row struct {
	Line int // 1-based sheet row number
	Doc  fattura.FiscalDocument
	// Treatment is non-nil when the row carries its own splitPayment/reverseCharge columns.
	Treatment *fattura.TaxTreatmentOptions
	Err       error
}

// ReadSheet reads documents from an .xlsx stream. An empty sheet name selects the first sheet.
func ReadSheet(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	cells, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := indexHeader(cells[0])
	if _, ok := header[colRecipientTaxID]; !ok {
		return nil, fmt.Errorf("sheet %q: header has no %s column", sheet, colRecipientTaxID)
	}

	rows := make([]Row, 0, len(cells)-1)
	for i, line := range cells[1:] {
		if blank(line) {
			continue
		}
		rows = append(rows, parseRow(i+2, header, line))
	}
	return rows, nil
}

func indexHeader(cells []string) map[string]int {
	header := make(map[string]int, len(cells))
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if canonical, ok := aliases[key]; ok {
			key = canonical
		}
		if _, dup := header[key]; !dup && key != "" {
			header[key] = i
		}
	}
	return header
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(line int, header map[string]int, cells []string) Row {
	get := func(col string) string {
		i, ok := header[col]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	row := Row{Line: line}
	doc := fattura.FiscalDocument{
		Recipient: fattura.Recipient{
			Name:       get(colRecipientName),
			Street:     get(colStreet),
			City:       get(colCity),
			PostalCode: get(colPostalCode),
		},
		RecipientTaxID: get(colRecipientTaxID),
		IssuerName:     get(colIssuerName),
		IssuerEmail:    get(colIssuerEmail),
		IssuerPhone:    get(colIssuerPhone),
		DocumentID:     get(colDocumentID),
		Description:    get(colDescription),
	}

	var err error
	if doc.TotalNet, err = parseMoney(colTotalNet, get(colTotalNet)); err != nil {
		row.Err = err
		return row
	}
	if doc.TotalTax, err = parseMoney(colTotalTax, get(colTotalTax)); err != nil {
		row.Err = err
		return row
	}
	if doc.TotalGross, err = parseMoney(colTotalGross, get(colTotalGross)); err != nil {
		row.Err = err
		return row
	}
	if doc.IssueDate, err = ParseDate(get(colIssueDate)); err != nil {
		row.Err = fmt.Errorf("%s: %w", colIssueDate, err)
		return row
	}

	_, hasSplit := header[colSplitPayment]
	_, hasReverse := header[colReverseCharge]
	if hasSplit || hasReverse {
		var t fattura.TaxTreatmentOptions
		if t.SplitPayment, err = parseFlag(colSplitPayment, get(colSplitPayment)); err != nil {
			row.Err = err
			return row
		}
		if t.ReverseCharge, err = parseFlag(colReverseCharge, get(colReverseCharge)); err != nil {
			row.Err = err
			return row
		}
		row.Treatment = &t
	}

	row.Doc = doc
	return row
}

func parseMoney(col, v string) (fattura.Money, error) {
	if v == "" {
		return fattura.Money{}, fmt.Errorf("%s: missing amount", col)
	}
	m, err := fattura.ParseAmount(v)
	if err != nil {
		return fattura.Money{}, fmt.Errorf("%s: %w", col, err)
	}
	return m, nil
}

func parseFlag(col, v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "0", "no", "n", "false":
		return false, nil
	case "1", "yes", "y", "true", "x":
		return true, nil
	}
	return false, fmt.Errorf("%s: invalid flag %q", col, v)
}

// ParseDate accepts RFC 3339 timestamps, plain YYYY-MM-DD dates and Excel date serials.
func ParseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}
