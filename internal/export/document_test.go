package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rajubill/internal/domain"
)

func sampleBill() domain.Bill {
	return domain.Bill{
		ID:          "1718000000000",
		Date:        "2025-06-10",
		OrderNumber: "PO-100",
		Customer:    "Acme Textiles",
		Product:     "Grey Cloth",
		Rate:        "120",
	}
}

func TestDocument_HeaderIsFixed(t *testing.T) {
	view := Document(sampleBill())

	require.Len(t, view.Header, 3)
	assert.Equal(t, "श्री गणेशाय नमः", view.Header[0])
	assert.Equal(t, "RAJU INDUSTRIES", view.Header[1])
	assert.Equal(t, "67 HASSAN BAGH, OPP HATHI SIZING, DHAMANKAR NAKA, BHIWANDI , MOB:9309531311, EMAIL ID: rajuind2024@gmail.com , G.S.T. NO. : 27AHFPM0511N1ZD", view.Header[2])
}

func TestDocument_OrderAndDateLines(t *testing.T) {
	view := Document(sampleBill())

	assert.Equal(t, "Order number: PO-100", view.OrderLine)
	assert.Equal(t, "Date: 10/06/2025", view.DateLine)
}

func TestDocument_UnparseableDatePassesThrough(t *testing.T) {
	bill := sampleBill()
	bill.Date = "next tuesday"

	view := Document(bill)
	assert.Equal(t, "Date: next tuesday", view.DateLine)
}

func TestDocument_TableRows(t *testing.T) {
	bill := sampleBill()
	bill.Broker = "Broker A"
	bill.Weight = "1000"

	view := Document(bill)

	labels := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		labels = append(labels, row.Label)
	}
	assert.Equal(t, []string{
		"PARTY NAME", "BROKER", "MILL", "QUALITY", "RATE",
		"WEIGHT", "BAGS", "TERMS & CONDITION",
	}, labels)

	lines := strings.Join(view.Lines(), "\n")
	assert.Contains(t, lines, "PARTY NAME: Acme Textiles")
	assert.Contains(t, lines, "QUALITY: Grey Cloth")
	assert.Contains(t, lines, "RATE: 120")
	assert.Contains(t, lines, "BROKER: Broker A")
	assert.Contains(t, lines, "WEIGHT: 1000")
}

func TestDocument_OptionalFieldsRenderAsDash(t *testing.T) {
	view := Document(sampleBill())

	lines := strings.Join(view.Lines(), "\n")
	assert.Contains(t, lines, "BROKER: -")
	assert.Contains(t, lines, "MILL: -")
	assert.Contains(t, lines, "WEIGHT: -")
	assert.Contains(t, lines, "BAGS: -")
	assert.Contains(t, lines, "TERMS & CONDITION: -")
}

func TestDocument_BankDetailsFooter(t *testing.T) {
	view := Document(sampleBill())

	require.Len(t, view.Footer, 2)
	assert.Equal(t, "BANK DETAILS", view.Footer[0])
	assert.Equal(t, "BANK OF INDIA  , ACCOUNT NO 004730110000040 , IFSC: BKID0000047 , BRANCH: WALKESHWAR", view.Footer[1])
}

func TestDocumentView_LinesOrder(t *testing.T) {
	view := Document(sampleBill())
	lines := view.Lines()

	// header, combined order/date line, eight rows, two footer lines
	require.Len(t, lines, 3+1+8+2)
	assert.Equal(t, view.Header[0], lines[0])
	assert.Contains(t, lines[3], "Order number: PO-100")
	assert.Contains(t, lines[3], "Date: 10/06/2025")
	assert.Equal(t, "BANK DETAILS", lines[len(lines)-2])
}
