package bancogo

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// writeStatementPDF renders the account's full history and closing balance
// as a PDF document.
func writeStatementPDF(w io.Writer, acct *Account) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Account statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Statement - agency %s, account %d", acct.Agency, acct.Number))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Holder: "+acct.Owner.FullName)
	pdf.Ln(10)

	if len(acct.History()) == 0 {
		pdf.Cell(0, 7, "No transactions recorded.")
		pdf.Ln(7)
	}
	rep := NewReport(acct.History(), "")
	for {
		txn, ok := rep.Next()
		if !ok {
			break
		}
		pdf.Cell(60, 7, string(txn.Kind))
		pdf.CellFormat(40, 7, txn.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(60, 8, "Balance")
	pdf.CellFormat(40, 8, acct.Balance().StringFixed(2), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
