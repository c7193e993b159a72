package models

// GenericResponse es el sobre de respuesta para un registro único.
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse es el sobre de respuesta para listados paginados. Total es el
// tamaño del conjunto filtrado completo, independiente de skip/limit.
type ListResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
}

// NewListResponse arma el sobre de listado estándar.
func NewListResponse(message string, data interface{}, total int) ListResponse {
	return ListResponse{
		Success: true,
		Message: message,
		Data:    data,
		Total:   total,
	}
}

// NewGenericResponse arma el sobre de registro único estándar.
func NewGenericResponse(message string, data interface{}) GenericResponse {
	return GenericResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewFailureResponse arma el sobre de error con el mensaje legible.
func NewFailureResponse(message string) GenericResponse {
	return GenericResponse{
		Success: false,
		Message: message,
	}
}
