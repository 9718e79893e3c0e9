package dto

// BillDTO is the wire shape of a bill. Field names match what the store
// has always persisted, so stored data and API payloads stay byte
// compatible.
type BillDTO struct {
	ID                 string `json:"id"`
	Date               string `json:"date"`
	OrderNumber        string `json:"orderNumber"`
	Customer           string `json:"customer"`
	Broker             string `json:"broker,omitempty"`
	Mill               string `json:"mill,omitempty"`
	Product            string `json:"product"`
	Rate               string `json:"rate"`
	Weight             string `json:"weight,omitempty"`
	Bags               string `json:"bags,omitempty"`
	TermsAndConditions string `json:"termsAndConditions,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

// BillFieldsRequest carries the caller-settable fields for create and
// update. id and createdAt are never accepted from a caller.
type BillFieldsRequest struct {
	Date               string `json:"date"`
	OrderNumber        string `json:"orderNumber"`
	Customer           string `json:"customer"`
	Broker             string `json:"broker"`
	Mill               string `json:"mill"`
	Product            string `json:"product"`
	Rate               string `json:"rate"`
	Weight             string `json:"weight"`
	Bags               string `json:"bags"`
	TermsAndConditions string `json:"termsAndConditions"`
}

type ListBillsResponse struct {
	Bills []BillDTO `json:"bills"`
}
