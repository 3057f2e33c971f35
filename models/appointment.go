package models

// RawAppointment is one record as delivered by the dashboard webhook. The
// upstream feed wraps a spreadsheet, so key names are inconsistent: a record
// may carry the native keys (nombre, fecha, precio, ...) or the original
// column headers ("Nombre y Apellidos completos", "Fecha y hora de la cita",
// ...), and numeric fields sometimes arrive as strings.
type RawAppointment map[string]interface{}

// CitaRequest is the appointment payload accepted from the dashboard.
type CitaRequest struct {
	Nombre   string  `json:"nombre"`
	Telefono string  `json:"telefono"`
	Fecha    string  `json:"fecha"`
	Servicio string  `json:"servicio"`
	Staff    string  `json:"staff"`
	Precio   float64 `json:"precio"`
}

// CitaSearchRequest carries the optional filters of a calendar search.
type CitaSearchRequest struct {
	Nombre   string `json:"nombre,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Fecha    string `json:"fecha,omitempty"`
}

// WebhookResponse is the normalized reply of a calendar/delete webhook call.
// n8n flows answer with JSON when configured to, or with a bare text body
// otherwise; bare text on a 2xx is treated as success.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
