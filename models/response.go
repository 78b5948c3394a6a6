// models/response.go
package models

// Response is the JSON envelope returned by every API route
type Response struct {
	Success bool              `json:"success"`
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK builds a successful envelope
func OK(status int, message string, data interface{}) Response {
	return Response{Success: true, Status: status, Message: message, Data: data}
}

// Fail builds an error envelope
func Fail(status int, message string) Response {
	return Response{Success: false, Status: status, Message: message}
}
