// Package stats turns the raw appointment feed into the dashboard report.
// It is pure: no I/O, no clock reads, no mutation of its input. Malformed
// records degrade to fallback values instead of failing the whole report.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"app/models"
)

// Fallback values applied when a record carries neither key variant.
const (
	fallbackNombre   = "Cliente"
	fallbackStaff    = "Sin asignar"
	fallbackServicio = "Otro"
)

// horaPlaceholder marks rows whose date never parsed.
const horaPlaceholder = "--:--"

var diasCortos = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// cita is a normalized appointment, built fresh per ComputeStats call and
// discarded with the report.
type cita struct {
	Nombre      string
	Telefono    string
	Fecha       string
	FechaParsed time.Time
	FechaOK     bool
	Servicio    string
	Staff       string
	Precio      float64
}

// normalize resolves the heterogeneous field naming. For every logical field
// the native key wins over the spreadsheet header when both are present; the
// first present-and-non-empty candidate is taken.
func normalize(raw models.RawAppointment, loc *time.Location) cita {
	ct := cita{
		Nombre:   stringField(raw, fallbackNombre, "nombre", "Nombre y Apellidos completos"),
		Telefono: stringField(raw, "", "telefono", "Telefono"),
		Fecha:    stringField(raw, "", "fecha", "Fecha y hora de la cita"),
		Servicio: stringField(raw, fallbackServicio, "servicio", "Servicio"),
		Staff:    stringField(raw, fallbackStaff, "staff", "Servicio proporcionado por"),
		Precio:   floatField(raw, "precio", "Precio servicio"),
	}
	ct.FechaParsed, ct.FechaOK = ParseFecha(ct.Fecha, loc)
	return ct
}

func stringField(raw models.RawAppointment, fallback string, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s := textValue(v); s != "" {
				return s
			}
		}
	}
	return fallback
}

func floatField(raw models.RawAppointment, keys ...string) float64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// textValue renders a decoded JSON value as a trimmed string. Phone numbers
// in particular arrive as JSON numbers from some sheet exports.
func textValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// ComputeStats aggregates the raw feed into the report consumed by the
// dashboard. now is sampled once by the caller so repeated calls within the
// same instant are identical; records whose date cannot be parsed stay in
// the all-time totals but out of every calendar bucket.
func ComputeStats(citasRaw []models.RawAppointment, now time.Time) models.StatsReport {
	if len(citasRaw) == 0 {
		return EmptyReport()
	}

	loc := now.Location()
	citas := make([]cita, 0, len(citasRaw))
	for _, raw := range citasRaw {
		citas = append(citas, normalize(raw, loc))
	}

	today := StartOfDay(now)
	weekStart := StartOfWeek(now)
	monthStart := StartOfMonth(now)

	var citasHoy []cita
	var ingresosHoy, ingresosSemana, ingresosMes, ingresosTotal float64
	var totalSemana, totalMes int
	for _, ct := range citas {
		ingresosTotal += ct.Precio
		if !ct.FechaOK {
			continue
		}
		if IsSameDay(ct.FechaParsed, today) {
			citasHoy = append(citasHoy, ct)
			ingresosHoy += ct.Precio
		}
		if IsInWeek(ct.FechaParsed, weekStart) {
			totalSemana++
			ingresosSemana += ct.Precio
		}
		if IsInMonth(ct.FechaParsed, monthStart) {
			totalMes++
			ingresosMes += ct.Precio
		}
	}

	totalCitas := len(citas)
	ticketPromedio := 0
	if totalCitas > 0 {
		ticketPromedio = int(math.Round(ingresosTotal / float64(totalCitas)))
	}

	report := models.StatsReport{
		IngresosTotal:    ingresosTotal,
		IngresosSemana:   ingresosSemana,
		IngresosMes:      ingresosMes,
		IngresosHoy:      ingresosHoy,
		TotalCitas:       totalCitas,
		TotalCitasSemana: totalSemana,
		TotalCitasMes:    totalMes,
		TotalCitasHoy:    len(citasHoy),
		TicketPromedio:   ticketPromedio,

		IngresosPorEstilista:    ingresosPorEstilista(citas),
		ServiciosMasSolicitados: serviciosMasSolicitados(citas),
		OcupacionPorHora:        ocupacionPorHora(citas),
		TopClientes:             topClientes(citas),
		ResumenSemanal:          resumenSemanal(citas, weekStart),
		CitasHoyDetalle:         citasHoyDetalle(citasHoy),
	}
	return report
}

// EmptyReport is the zero-filled report served when the feed has no records.
// Every list is present but empty so the charts never see a null series.
func EmptyReport() models.StatsReport {
	return models.StatsReport{
		IngresosPorEstilista:    []models.IngresoEstilista{},
		ServiciosMasSolicitados: []models.ServicioContado{},
		OcupacionPorHora:        []models.OcupacionHora{},
		TopClientes:             []models.ClienteTop{},
		ResumenSemanal:          []models.ResumenDia{},
		CitasHoyDetalle:         []models.CitaDetalle{},
	}
}

// ingresosPorEstilista groups all-time revenue by staff name, descending.
// Ties keep first-appearance order.
func ingresosPorEstilista(citas []cita) []models.IngresoEstilista {
	idx := make(map[string]int)
	out := []models.IngresoEstilista{}
	for _, ct := range citas {
		i, ok := idx[ct.Staff]
		if !ok {
			i = len(out)
			idx[ct.Staff] = i
			out = append(out, models.IngresoEstilista{Name: ct.Staff})
		}
		out[i].Ingresos += ct.Precio
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ingresos > out[j].Ingresos })
	return out
}

// serviciosMasSolicitados counts appointments per service, keeping the six
// most requested.
func serviciosMasSolicitados(citas []cita) []models.ServicioContado {
	idx := make(map[string]int)
	out := []models.ServicioContado{}
	for _, ct := range citas {
		i, ok := idx[ct.Servicio]
		if !ok {
			i = len(out)
			idx[ct.Servicio] = i
			out = append(out, models.ServicioContado{Name: ct.Servicio})
		}
		out[i].Value++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

// ocupacionPorHora buckets dated appointments by local hour and emits the
// fixed 9:00-18:00 business-hours series. Each appointment is worth 10
// occupancy points, capped at 100; hours outside the window are dropped.
func ocupacionPorHora(citas []cita) []models.OcupacionHora {
	counts := make(map[int]int)
	for _, ct := range citas {
		if ct.FechaOK {
			counts[ct.FechaParsed.Hour()]++
		}
	}
	out := make([]models.OcupacionHora, 0, 10)
	for h := 9; h <= 18; h++ {
		ocupacion := counts[h] * 10
		if ocupacion > 100 {
			ocupacion = 100
		}
		out = append(out, models.OcupacionHora{Hora: fmt.Sprintf("%d:00", h), Ocupacion: ocupacion})
	}
	return out
}

// topClientes ranks clients by total spend. The name is the only identity the
// feed provides; the phone kept is the one from the client's first record and
// the id is just the 1-based output position.
func topClientes(citas []cita) []models.ClienteTop {
	idx := make(map[string]int)
	out := []models.ClienteTop{}
	for _, ct := range citas {
		i, ok := idx[ct.Nombre]
		if !ok {
			i = len(out)
			idx[ct.Nombre] = i
			out = append(out, models.ClienteTop{Nombre: ct.Nombre, Telefono: ct.Telefono})
		}
		out[i].Visitas++
		out[i].Gasto += ct.Precio
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gasto > out[j].Gasto })
	if len(out) > 5 {
		out = out[:5]
	}
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// resumenSemanal walks the five workdays of the current week and totals each
// day's appointments and revenue.
func resumenSemanal(citas []cita, weekStart time.Time) []models.ResumenDia {
	out := make([]models.ResumenDia, 0, 5)
	for i := 0; i < 5; i++ {
		day := weekStart.AddDate(0, 0, i)
		resumen := models.ResumenDia{
			Dia: fmt.Sprintf("%s %d", diasCortos[day.Weekday()], day.Day()),
		}
		for _, ct := range citas {
			if ct.FechaOK && IsSameDay(ct.FechaParsed, day) {
				resumen.Citas++
				resumen.Ingresos += ct.Precio
			}
		}
		out = append(out, resumen)
	}
	return out
}

// citasHoyDetalle builds today's appointment table, sorted by the formatted
// time string so placeholder rows group together.
func citasHoyDetalle(citasHoy []cita) []models.CitaDetalle {
	out := make([]models.CitaDetalle, 0, len(citasHoy))
	for _, ct := range citasHoy {
		hora := horaPlaceholder
		if ct.FechaOK {
			hora = ct.FechaParsed.Format("15:04")
		}
		out = append(out, models.CitaDetalle{
			Hora:     hora,
			Nombre:   ct.Nombre,
			Servicio: ct.Servicio,
			Staff:    ct.Staff,
			Precio:   ct.Precio,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Hora < out[j].Hora })
	return out
}
