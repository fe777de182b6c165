package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

const (
	// ExportFilename is the suggested download name of a CSV export.
	ExportFilename = "transactions.csv"
	// ExportContentType is the media type of a CSV export.
	ExportContentType = "text/csv; charset=utf-8"
)

// ExportHeader is the fixed header row of a CSV export.
var ExportHeader = []string{"id", "date", "description", "amount", "category"}

// WriteCSV writes the header and one row per transaction, in the order given.
// Rows end in CRLF and fields are quoted per RFC 4180 when needed. Field
// bytes, including any CR or LF inside a quoted field, are written unchanged.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	rw := newRowWriter(w)

	if err := rw.write(ExportHeader); err != nil {
		return err
	}

	for _, tx := range txs {
		if err := rw.write(exportRow(tx)); err != nil {
			return err
		}
	}
	return nil
}

// rowWriter encodes one record at a time and swaps only the record's final
// LF for CRLF. csv.Writer.UseCRLF would also rewrite line breaks inside
// quoted fields.
type rowWriter struct {
	w   io.Writer
	buf bytes.Buffer
	cw  *csv.Writer
}

func newRowWriter(w io.Writer) *rowWriter {
	rw := &rowWriter{w: w}
	rw.cw = csv.NewWriter(&rw.buf)
	return rw
}

func (rw *rowWriter) write(record []string) error {
	rw.buf.Reset()
	if err := rw.cw.Write(record); err != nil {
		return err
	}
	rw.cw.Flush()
	if err := rw.cw.Error(); err != nil {
		return err
	}

	line := bytes.TrimSuffix(rw.buf.Bytes(), []byte("\n"))
	if _, err := rw.w.Write(line); err != nil {
		return err
	}
	_, err := io.WriteString(rw.w, "\r\n")
	return err
}

func exportRow(tx models.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(tx.ID), 10),
		tx.Date.Format(models.DateLayout),
		tx.Description,
		FormatAmount(tx.Amount),
		tx.CategoryName(),
	}
}

// FormatAmount renders an amount in fixed point with exactly two decimals,
// rounding half away from zero. Negative amounts keep their sign even when
// they round to zero, e.g. -0.001 renders as "-0.00".
func FormatAmount(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)
	if math.Signbit(amount) && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}
