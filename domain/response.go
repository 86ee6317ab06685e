package domain

// ErrorResponse is the JSON body sent on rejected requests.
type ErrorResponse struct {
	Message string `json:"message"`
}
