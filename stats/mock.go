package stats

import (
	"time"

	"app/models"
)

// MockCitas builds the canned feed served when the dashboard webhook is
// unreachable, anchored to now so the today/week buckets are populated. Keys
// deliberately mix both naming conventions, matching what the real feed does.
func MockCitas(now time.Time) []models.RawAppointment {
	day := now.Format("2006-01-02")
	weekStart := StartOfWeek(now)
	lunes := weekStart.Format("2006-01-02")
	miercoles := weekStart.AddDate(0, 0, 2).Format("2006-01-02")

	return []models.RawAppointment{
		{"nombre": "Ana López", "telefono": "11-5555-0101", "fecha": day + "T10:00:00", "servicio": "Limpieza Facial Profunda", "staff": "Isabel Grimoldi", "precio": 28000.0},
		{"nombre": "Ana López", "telefono": "11-5555-0101", "fecha": miercoles + "T15:00:00", "servicio": "Radiofrecuencia Facial", "staff": "Isabel Grimoldi", "precio": 42000.0},
		{"nombre": "Marta Suárez", "telefono": "11-5555-0102", "fecha": day + "T11:30:00", "servicio": "Drenaje Linfático Facial", "staff": "Gabriela Cejas", "precio": 26000.0},
		{
			"Nombre y Apellidos completos": "Carlos Medina",
			"Telefono":                     "11-5555-0103",
			"Fecha y hora de la cita":      weekStart.AddDate(0, 0, 1).Format("2/1/2006") + ", 5:00 p.m.",
			"Servicio":                     "Masaje Descontracturante Profundo",
			"Servicio proporcionado por":   "Gastón Grimoldi",
			"Precio servicio":              "38000",
		},
		{"nombre": "Lucía Ferreyra", "telefono": "11-5555-0104", "fecha": lunes + "T16:00:00", "servicio": "PRP Facial (Plasma Rico en Plaquetas)", "staff": "Lucero Velasquez", "precio": 85000.0},
		{"nombre": "Sofía Paz", "telefono": "11-5555-0105", "fecha": day + "T17:30:00", "servicio": "Masaje Relajante con Aromaterapia", "staff": "Gastón Grimoldi", "precio": 43000.0},
		{"nombre": "Valeria Ríos", "telefono": "11-5555-0106", "fecha": StartOfMonth(now).AddDate(0, 0, 2).Format("2006-01-02") + "T12:00:00", "servicio": "Limpieza Facial Profunda", "staff": "Isabel Grimoldi", "precio": 28000.0},
	}
}
