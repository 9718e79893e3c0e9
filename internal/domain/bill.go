package domain

import "time"

// Bill is one deal confirmation for a sales/purchase order. It is the only
// persisted business entity; the whole stored collection is rewritten on
// every mutation.
type Bill struct {
	ID                 string
	Date               string
	OrderNumber        string
	Customer           string
	Broker             string
	Mill               string
	Product            string
	Rate               string
	Weight             string
	Bags               string
	TermsAndConditions string
	CreatedAt          time.Time
}

// BillFields enumerates everything a create or update may set. ID and
// CreatedAt are stamped by the service and never come from a caller.
type BillFields struct {
	Date               string
	OrderNumber        string
	Customer           string
	Broker             string
	Mill               string
	Product            string
	Rate               string
	Weight             string
	Bags               string
	TermsAndConditions string
}

// Apply replaces every mutable field of b with the given fields.
func (b *Bill) Apply(f BillFields) {
	b.Date = f.Date
	b.OrderNumber = f.OrderNumber
	b.Customer = f.Customer
	b.Broker = f.Broker
	b.Mill = f.Mill
	b.Product = f.Product
	b.Rate = f.Rate
	b.Weight = f.Weight
	b.Bags = f.Bags
	b.TermsAndConditions = f.TermsAndConditions
}

// Fields returns the mutable fields of b.
func (b Bill) Fields() BillFields {
	return BillFields{
		Date:               b.Date,
		OrderNumber:        b.OrderNumber,
		Customer:           b.Customer,
		Broker:             b.Broker,
		Mill:               b.Mill,
		Product:            b.Product,
		Rate:               b.Rate,
		Weight:             b.Weight,
		Bags:               b.Bags,
		TermsAndConditions: b.TermsAndConditions,
	}
}
