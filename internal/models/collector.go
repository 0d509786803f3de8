package models

// Headquarters is the collector company address block, passed through to the
// upstream backend unchanged.
type Headquarters struct {
	AddressName  string `json:"addressName,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// CollectorProfile is the operator account payload owned by the upstream
// backend. This service only proxies it to supply the authenticated
// collector id and the profile screen.
type CollectorProfile struct {
	ID           int64         `json:"id,omitempty"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	CNPJ         string        `json:"cnpj,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Headquarters *Headquarters `json:"headquarters,omitempty"`
}
