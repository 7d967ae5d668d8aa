package entity

import "time"

// Quoter is the payload shape of the quoters backend: a quotation composed of
// a client plus the quoted services and products.
type Quoter struct {
	ID                      string    `json:"_id,omitempty"`
	Name                    string    `json:"name"`
	Date                    time.Time `json:"date"`
	Subtotal                float64   `json:"subtotal"`
	IVA                     float64   `json:"iva"`
	Total                   float64   `json:"total"`
	PercentageInAdvancePay  float64   `json:"percentage_in_advance_pay"`
	RevenuePercentage       float64   `json:"revenue_percentage"`
	FirstPay                float64   `json:"first_pay"`
	SecondPay               float64   `json:"second_pay"`
	Description             string    `json:"description"`
	Client                  Client    `json:"client"`
	Services                []Service `json:"services,omitempty"`
	Products                []Product `json:"products,omitempty"`
}

// QuoterRef references an existing quoter by id, used when registering a sale.
type QuoterRef struct {
	ID string `json:"id"`
}

// QuoterUpdate is the partial-update shape for PATCH requests.
type QuoterUpdate struct {
	Name                   *string    `json:"name,omitempty"`
	Date                   *time.Time `json:"date,omitempty"`
	Subtotal               *float64   `json:"subtotal,omitempty"`
	IVA                    *float64   `json:"iva,omitempty"`
	Total                  *float64   `json:"total,omitempty"`
	PercentageInAdvancePay *float64   `json:"percentage_in_advance_pay,omitempty"`
	RevenuePercentage      *float64   `json:"revenue_percentage,omitempty"`
	FirstPay               *float64   `json:"first_pay,omitempty"`
	SecondPay              *float64   `json:"second_pay,omitempty"`
	Description            *string    `json:"description,omitempty"`
	Client                 *Client    `json:"client,omitempty"`
	Services               []Service  `json:"services,omitempty"`
	Products               []Product  `json:"products,omitempty"`
}
