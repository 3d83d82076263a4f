package entities

// RelayResponse is the body returned by the form relay.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
