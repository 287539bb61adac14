package dto

// DataResponse sobre de respuesta exitosa: {"success": true, "data": ...}.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// OK envuelve data en un DataResponse exitoso.
func OK(data interface{}) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fail construye un ErrorResponse.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
