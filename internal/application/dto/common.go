package dto

// Estados del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope sobre de toda respuesta exitosa: {"status":"success","data":...}.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// OK envuelve data en un sobre de éxito.
func OK(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
