package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}
