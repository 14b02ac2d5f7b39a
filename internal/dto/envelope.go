package dto

// Status values of the success envelope.
const (
	StatusSuccess = "Success"
	StatusCreated = "Created"
)

// Response is the success envelope shared by every endpoint.
type Response[T any] struct {
	Status  string `json:"status" example:"Success"`
	Code    int    `json:"code" example:"200"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
