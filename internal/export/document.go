package export

import (
	"fmt"
	"time"

	"rajubill/internal/domain"
)

// The document header and footer are a fixed external contract: bills sent
// to parties must keep rendering these strings byte for byte.
const (
	invocationLine   = "श्री गणेशाय नमः"
	organizationName = "RAJU INDUSTRIES"
	organizationLine = "67 HASSAN BAGH, OPP HATHI SIZING, DHAMANKAR NAKA, BHIWANDI , MOB:9309531311, EMAIL ID: rajuind2024@gmail.com , G.S.T. NO. : 27AHFPM0511N1ZD"
	bankDetailsTitle = "BANK DETAILS"
	bankDetailsLine  = "BANK OF INDIA  , ACCOUNT NO 004730110000040 , IFSC: BKID0000047 , BRANCH: WALKESHWAR"
)

// DocumentRow is one labeled line of the bill table.
type DocumentRow struct {
	Label string
	Value string
}

// DocumentView is the fixed layout of one bill, used for on-screen text
// output and as the capture source. Building it is pure formatting.
type DocumentView struct {
	Header    []string
	OrderLine string
	DateLine  string
	Rows      []DocumentRow
	Footer    []string
}

// Document renders the fixed layout for a bill. Optional fields render as
// "-"; the required ones render as stored.
func Document(bill domain.Bill) DocumentView {
	return DocumentView{
		Header: []string{
			invocationLine,
			organizationName,
			organizationLine,
		},
		OrderLine: fmt.Sprintf("Order number: %s", bill.OrderNumber),
		DateLine:  fmt.Sprintf("Date: %s", formatDate(bill.Date)),
		Rows: []DocumentRow{
			{Label: "PARTY NAME", Value: bill.Customer},
			{Label: "BROKER", Value: orDash(bill.Broker)},
			{Label: "MILL", Value: orDash(bill.Mill)},
			{Label: "QUALITY", Value: bill.Product},
			{Label: "RATE", Value: bill.Rate},
			{Label: "WEIGHT", Value: orDash(bill.Weight)},
			{Label: "BAGS", Value: orDash(bill.Bags)},
			{Label: "TERMS & CONDITION", Value: orDash(bill.TermsAndConditions)},
		},
		Footer: []string{
			bankDetailsTitle,
			bankDetailsLine,
		},
	}
}

// Lines flattens the view into its printable text lines, top to bottom.
func (v DocumentView) Lines() []string {
	lines := make([]string, 0, len(v.Header)+len(v.Rows)+len(v.Footer)+1)
	lines = append(lines, v.Header...)
	lines = append(lines, fmt.Sprintf("%s    %s", v.OrderLine, v.DateLine))
	for _, row := range v.Rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, row.Value))
	}
	lines = append(lines, v.Footer...)
	return lines
}

// formatDate renders an ISO calendar date as dd/mm/yyyy. An unparseable
// date passes through unchanged.
func formatDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
