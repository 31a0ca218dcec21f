// Package receipts renders purchase receipts as single-page PDF documents
// and manages the receipts folder.
package receipts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/dmitrijs2005/dporg/internal/common"
	"github.com/dmitrijs2005/dporg/internal/filex"
)

const businessName = "Digital Product Organizer"

// Composer produces receipt documents in a fixed layout. A receipt is
// immutable once written; it is only ever deleted, never edited.
type Composer struct {
	dir      string
	logoPath string
}

// NewComposer returns a Composer writing into dir. logoPath may point to a
// PNG drawn in the header; a missing logo is simply skipped.
func NewComposer(dir, logoPath string) *Composer {
	return &Composer{dir: dir, logoPath: logoPath}
}

// Dir returns the receipts folder path.
func (c *Composer) Dir() string {
	return c.dir
}

// Path returns the full path of a receipt by filename.
func (c *Composer) Path(name string) string {
	return filepath.Join(c.dir, name)
}

// Compose renders a receipt for the client covering the given files and
// money lines, and returns the path of the written PDF.
//
// The output name embeds the client name (spaces as underscores) and a
// second-resolution timestamp; two calls within the same second for the same
// client overwrite each other, which is accepted. Total is always
// price + tax - discount. Negative money inputs are rejected before
// anything is written.
func (c *Composer) Compose(ctx context.Context, clientName string, files []string, price, tax, discount float64) (string, error) {
	if strings.TrimSpace(clientName) == "" {
		return "", fmt.Errorf("%w: client name is required", common.ErrorValidation)
	}
	if price < 0 || tax < 0 || discount < 0 {
		return "", fmt.Errorf("%w: money amounts must be non-negative", common.ErrorValidation)
	}

	if err := filex.EnsureDir(c.dir); err != nil {
		return "", err
	}

	ts := now()
	receiptPath := c.Path(fmt.Sprintf("%s_%s.pdf", safeName(clientName), ts.Format("20060102_150405")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(10, 10, 10)
	pdf.SetFont("Helvetica", "", 10)

	// logo, top left
	if c.logoPath != "" {
		if _, err := os.Stat(c.logoPath); err == nil {
			pdf.ImageOptions(c.logoPath, 10, 10, 0, 20, false, gofpdf.ImageOptions{}, 0, "")
		}
	}

	// receipt number, top right
	pdf.SetXY(150, 10)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 10, "Receipt #: "+receiptNumber(ts), "", 1, "", false, 0, "")

	pdf.SetXY(10, 35)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, businessName, "", 1, "", false, 0, "")

	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.4)
	pdf.Line(10, 48, 200, 48)

	pdf.SetY(52)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, "Client: "+clientName, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Date: "+ts.Format("2006-01-02 15:04"), "", 1, "", false, 0, "")

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 8, "Files Sent:", "", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, f := range files {
		pdf.CellFormat(0, 6, "- "+filepath.Base(f), "", 1, "", false, 0, "")
	}

	pdf.Ln(4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)
	pdf.CellFormat(0, 8, "Price: "+money(price), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Tax: "+money(tax), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Discount: -"+money(discount), "", 1, "", false, 0, "")

	total := price + tax - discount
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 10, "Total: "+money(total), "", 1, "", false, 0, "")

	pdf.SetY(-30)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())

	pdf.SetFont("Helvetica", "", 8)
	pdf.Ln(2)
	pdf.CellFormat(0, 6, "Thank you for your purchase!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(receiptPath); err != nil {
		return "", fmt.Errorf("write receipt %s: %w", receiptPath, err)
	}
	return receiptPath, nil
}

// List returns the receipt files currently on disk. A missing folder reads
// as empty.
func (c *Composer) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", c.dir, err)
	}

	var result []string
	for _, e := range entries {
		if !e.IsDir() {
			result = append(result, e.Name())
		}
	}
	return result, nil
}

// Remove deletes a receipt immediately and irreversibly. Removing a receipt
// that does not exist is a no-op.
func (c *Composer) Remove(ctx context.Context, name string) error {
	if err := os.Remove(c.Path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove receipt %s: %w", name, err)
	}
	return nil
}

// receiptNumber derives the receipt number from the generation timestamp.
func receiptNumber(t time.Time) string {
	return t.Format("R-20060102-150405")
}

func safeName(clientName string) string {
	return strings.ReplaceAll(clientName, " ", "_")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// now is a test seam for the clock.
var now = time.Now
