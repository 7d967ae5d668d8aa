package entity

// Service is the payload shape of the products/services backend for offered
// services.
type Service struct {
	ID          string  `json:"_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ClientPrice float64 `json:"client_price"`
	RealPrice   float64 `json:"real_price"`
}

// ServiceUpdate is the partial-update shape for PATCH requests.
type ServiceUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ClientPrice *float64 `json:"client_price,omitempty"`
	RealPrice   *float64 `json:"real_price,omitempty"`
}

// Product is the payload shape of the products/services backend for catalog
// products.
type Product struct {
	ID            string  `json:"_id,omitempty"`
	Title         string  `json:"title"`
	ListPrice     float64 `json:"list_price"`
	DiscountPrice float64 `json:"discount_price"`
	Image         string  `json:"image"`
	StockNumber   int     `json:"stock_number"`
	Brand         string  `json:"brand"`
	ProductID     int64   `json:"product_id"`
	Model         string  `json:"model"`
	SatKey        int64   `json:"sat_key"`
	Weight        float64 `json:"weight"`
}
