package stats

import (
	"fmt"
	"testing"
	"time"

	"app/models"

	"github.com/stretchr/testify/assert"
)

// Tuesday afternoon; the week under test runs Mon Dec 15 to Fri Dec 19.
var testNow = time.Date(2025, time.December, 16, 14, 30, 0, 0, time.Local)

func rawCita(nombre, fecha, servicio, staff string, precio float64) models.RawAppointment {
	return models.RawAppointment{
		"nombre":   nombre,
		"fecha":    fecha,
		"servicio": servicio,
		"staff":    staff,
		"precio":   precio,
	}
}

func TestComputeStatsEmptyFeed(t *testing.T) {
	got := ComputeStats(nil, testNow)

	assert.Equal(t, EmptyReport(), got)
	assert.Equal(t, 0, got.TotalCitas)
	assert.Equal(t, float64(0), got.IngresosTotal)
	assert.NotNil(t, got.TopClientes)
	assert.Len(t, got.TopClientes, 0)
	assert.NotNil(t, got.CitasHoyDetalle)
	assert.Len(t, got.CitasHoyDetalle, 0)
}

func TestComputeStatsTotalsAndTicket(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Ana López", "2025-12-16T10:00:00", "Limpieza Facial Profunda", "Isabel Grimoldi", 1000),
		rawCita("Marta Suárez", "2025-12-16T11:00:00", "Radiofrecuencia Facial", "Gabriela Cejas", 2000),
		rawCita("Sofía Paz", "2025-12-16T12:00:00", "Radiofrecuencia Facial", "Gabriela Cejas", 2000),
	}

	got := ComputeStats(citas, testNow)

	assert.Equal(t, 3, got.TotalCitas)
	assert.Equal(t, float64(5000), got.IngresosTotal)
	assert.Equal(t, float64(5000), got.IngresosHoy)
	assert.Equal(t, float64(5000), got.IngresosSemana)
	assert.Equal(t, float64(5000), got.IngresosMes)
	assert.Equal(t, 3, got.TotalCitasHoy)
	// 5000/3 rounds half-up to 1667.
	assert.Equal(t, 1667, got.TicketPromedio)
}

func TestComputeStatsWeekendOutsideWorkWeek(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Carlos Medina", "2025-12-20T10:00:00", "Masaje Relajante con Aromaterapia", "Gastón Grimoldi", 38000),
		rawCita("Lucía Ferreyra", "2025-12-21T10:00:00", "Limpieza Facial Profunda", "Isabel Grimoldi", 28000),
	}

	got := ComputeStats(citas, testNow)

	assert.Equal(t, 2, got.TotalCitas)
	assert.Equal(t, 0, got.TotalCitasSemana, "Saturday and Sunday stay out of the work week")
	assert.Equal(t, float64(0), got.IngresosSemana)
	assert.Equal(t, 2, got.TotalCitasMes)
	assert.Equal(t, float64(66000), got.IngresosMes)
	assert.Equal(t, 0, got.TotalCitasHoy)
}

func TestComputeStatsUnparseableDateStaysInTotals(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Ana López", "próximamente", "Radiofrecuencia Facial", "Isabel Grimoldi", 42000),
	}

	got := ComputeStats(citas, testNow)

	assert.Equal(t, 1, got.TotalCitas)
	assert.Equal(t, float64(42000), got.IngresosTotal)
	assert.Equal(t, 0, got.TotalCitasHoy)
	assert.Equal(t, 0, got.TotalCitasSemana)
	assert.Equal(t, 0, got.TotalCitasMes)
	assert.Len(t, got.CitasHoyDetalle, 0)
}

func TestComputeStatsNativeKeysWinOverSheetHeaders(t *testing.T) {
	citas := []models.RawAppointment{
		{
			"nombre":                       "Nativa Pérez",
			"Nombre y Apellidos completos": "Planilla Gómez",
			"fecha":                        "2025-12-16T10:00:00",
			"servicio":                     "Limpieza Facial Profunda",
			"Servicio":                     "Otro servicio",
			"staff":                        "Isabel Grimoldi",
			"precio":                       1000.0,
			"Precio servicio":              "9999",
		},
	}

	got := ComputeStats(citas, testNow)

	assert.Equal(t, "Nativa Pérez", got.TopClientes[0].Nombre)
	assert.Equal(t, float64(1000), got.TopClientes[0].Gasto)
	assert.Equal(t, "Limpieza Facial Profunda", got.ServiciosMasSolicitados[0].Name)
}

func TestComputeStatsFallbacks(t *testing.T) {
	citas := []models.RawAppointment{
		{"fecha": "2025-12-16T10:00:00"},
	}

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.CitasHoyDetalle, 1)
	detalle := got.CitasHoyDetalle[0]
	assert.Equal(t, "Cliente", detalle.Nombre)
	assert.Equal(t, "Sin asignar", detalle.Staff)
	assert.Equal(t, "Otro", detalle.Servicio)
	assert.Equal(t, float64(0), detalle.Precio)
	assert.Equal(t, "10:00", detalle.Hora)
	assert.Equal(t, "", got.TopClientes[0].Telefono)
}

func TestTopClientesRankedBySpend(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Ana López", "2025-12-16T10:00:00", "Radiofrecuencia Facial", "Isabel Grimoldi", 1500),
		rawCita("Bob Núñez", "2025-12-16T11:00:00", "PRP Facial (Plasma Rico en Plaquetas)", "Lucero Velasquez", 5000),
		rawCita("Ana López", "2025-12-17T10:00:00", "Radiofrecuencia Facial", "Isabel Grimoldi", 1500),
	}

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.TopClientes, 2)
	assert.Equal(t, "Bob Núñez", got.TopClientes[0].Nombre)
	assert.Equal(t, 1, got.TopClientes[0].ID)
	assert.Equal(t, float64(5000), got.TopClientes[0].Gasto)
	assert.Equal(t, "Ana López", got.TopClientes[1].Nombre)
	assert.Equal(t, 2, got.TopClientes[1].ID)
	assert.Equal(t, 2, got.TopClientes[1].Visitas)
	assert.Equal(t, float64(3000), got.TopClientes[1].Gasto)
}

func TestServiciosMasSolicitadosCappedAtSix(t *testing.T) {
	citas := []models.RawAppointment{}
	for i := 0; i < 7; i++ {
		citas = append(citas, rawCita("Cliente", "2025-12-16T10:00:00", fmt.Sprintf("Servicio %d", i), "Isabel Grimoldi", 1000))
	}
	citas = append(citas, rawCita("Cliente", "2025-12-16T11:00:00", "Servicio 3", "Isabel Grimoldi", 1000))

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.ServiciosMasSolicitados, 6)
	assert.Equal(t, "Servicio 3", got.ServiciosMasSolicitados[0].Name)
	assert.Equal(t, 2, got.ServiciosMasSolicitados[0].Value)
}

func TestOcupacionPorHoraSeries(t *testing.T) {
	citas := []models.RawAppointment{}
	for i := 0; i < 3; i++ {
		citas = append(citas, rawCita("Cliente", "2025-12-16T10:15:00", "Otro", "Sin asignar", 0))
	}
	for i := 0; i < 11; i++ {
		citas = append(citas, rawCita("Cliente", "2025-12-16T14:00:00", "Otro", "Sin asignar", 0))
	}

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.OcupacionPorHora, 10)
	assert.Equal(t, "9:00", got.OcupacionPorHora[0].Hora)
	assert.Equal(t, "18:00", got.OcupacionPorHora[9].Hora)

	byHour := map[string]int{}
	for _, o := range got.OcupacionPorHora {
		byHour[o.Hora] = o.Ocupacion
	}
	assert.Equal(t, 30, byHour["10:00"])
	assert.Equal(t, 100, byHour["14:00"], "occupancy caps at 100")
	assert.Equal(t, 0, byHour["9:00"])
}

func TestResumenSemanalFiveWorkdays(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Lucía Ferreyra", "2025-12-15T16:00:00", "PRP Facial (Plasma Rico en Plaquetas)", "Lucero Velasquez", 85000),
		rawCita("Ana López", "2025-12-16T10:00:00", "Limpieza Facial Profunda", "Isabel Grimoldi", 28000),
		rawCita("Marta Suárez", "2025-12-16T11:30:00", "Drenaje Linfático Facial", "Gabriela Cejas", 26000),
	}

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.ResumenSemanal, 5)
	assert.Equal(t, "lun 15", got.ResumenSemanal[0].Dia)
	assert.Equal(t, "mar 16", got.ResumenSemanal[1].Dia)
	assert.Equal(t, "vie 19", got.ResumenSemanal[4].Dia)

	assert.Equal(t, 1, got.ResumenSemanal[0].Citas)
	assert.Equal(t, float64(85000), got.ResumenSemanal[0].Ingresos)
	assert.Equal(t, 2, got.ResumenSemanal[1].Citas)
	assert.Equal(t, float64(54000), got.ResumenSemanal[1].Ingresos)
	assert.Equal(t, 0, got.ResumenSemanal[4].Citas)
}

func TestCitasHoyDetalleSortedByHora(t *testing.T) {
	citas := []models.RawAppointment{
		rawCita("Sofía Paz", "2025-12-16T17:30:00", "Masaje Relajante con Aromaterapia", "Gastón Grimoldi", 43000),
		rawCita("Ana López", "2025-12-16T10:00:00", "Limpieza Facial Profunda", "Isabel Grimoldi", 28000),
		rawCita("Marta Suárez", "2025-12-16T11:30:00", "Drenaje Linfático Facial", "Gabriela Cejas", 26000),
	}

	got := ComputeStats(citas, testNow)

	assert.Len(t, got.CitasHoyDetalle, 3)
	assert.Equal(t, "10:00", got.CitasHoyDetalle[0].Hora)
	assert.Equal(t, "11:30", got.CitasHoyDetalle[1].Hora)
	assert.Equal(t, "17:30", got.CitasHoyDetalle[2].Hora)
}

func TestComputeStatsDeterministic(t *testing.T) {
	citas := MockCitas(testNow)

	first := ComputeStats(citas, testNow)
	second := ComputeStats(citas, testNow)

	assert.Equal(t, first, second)
}

func TestComputeStatsOverMockFeed(t *testing.T) {
	got := ComputeStats(MockCitas(testNow), testNow)

	assert.Equal(t, 7, got.TotalCitas)
	assert.Equal(t, float64(290000), got.IngresosTotal)
	assert.Equal(t, 41429, got.TicketPromedio)
	// Four records land on the pinned Tuesday, including the one written in
	// the spreadsheet D/M/YYYY + "5:00 p.m." format.
	assert.Equal(t, 4, got.TotalCitasHoy)
	assert.Equal(t, 6, got.TotalCitasSemana)
	assert.Equal(t, 7, got.TotalCitasMes)

	var carlos *models.CitaDetalle
	for i := range got.CitasHoyDetalle {
		if got.CitasHoyDetalle[i].Nombre == "Carlos Medina" {
			carlos = &got.CitasHoyDetalle[i]
		}
	}
	if assert.NotNil(t, carlos, "spreadsheet-format record should land on today") {
		assert.Equal(t, "17:00", carlos.Hora)
		assert.Equal(t, float64(38000), carlos.Precio)
		assert.Equal(t, "Gastón Grimoldi", carlos.Staff)
	}
}
