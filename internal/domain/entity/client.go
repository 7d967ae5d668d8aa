package entity

// Client is the payload shape of the clients backend. The gateway forwards
// these verbatim; the `_id` field is the backend's document identifier.
type Client struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	PhoneNumber int64  `json:"phone_number"`
}

// ClientUpdate is the partial-update shape for PATCH requests. Nil fields are
// omitted from the forwarded body.
type ClientUpdate struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *int64  `json:"phone_number,omitempty"`
}
