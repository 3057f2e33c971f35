package models

// StatsReport is the dashboard statistics payload. The frontend charts and
// tables index into it by field name, so the JSON names are part of the
// contract and must not change.
type StatsReport struct {
	IngresosTotal  float64 `json:"ingresosTotal"`
	IngresosSemana float64 `json:"ingresosSemana"`
	IngresosMes    float64 `json:"ingresosMes"`
	IngresosHoy    float64 `json:"ingresosHoy"`

	TotalCitas       int `json:"totalCitas"`
	TotalCitasSemana int `json:"totalCitasSemana"`
	TotalCitasMes    int `json:"totalCitasMes"`
	TotalCitasHoy    int `json:"totalCitasHoy"`

	TicketPromedio int `json:"ticketPromedio"`

	// Period-over-period deltas need a historical baseline the feed does not
	// provide; they are emitted empty rather than hard-coded.
	CambioIngresos string `json:"cambioIngresos"`
	CambioCitas    string `json:"cambioCitas"`
	CambioTicket   string `json:"cambioTicket"`

	IngresosPorEstilista    []IngresoEstilista `json:"ingresosPorEstilista"`
	ServiciosMasSolicitados []ServicioContado  `json:"serviciosMasSolicitados"`
	OcupacionPorHora        []OcupacionHora    `json:"ocupacionPorHora"`
	TopClientes             []ClienteTop       `json:"topClientes"`
	ResumenSemanal          []ResumenDia       `json:"resumenSemanal"`
	CitasHoyDetalle         []CitaDetalle      `json:"citasHoyDetalle"`
}

// IngresoEstilista is one bar of the revenue-by-staff chart.
type IngresoEstilista struct {
	Name     string  `json:"name"`
	Ingresos float64 `json:"ingresos"`
}

// ServicioContado is one slice of the top-services chart.
type ServicioContado struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OcupacionHora is one point of the hourly occupancy series (9:00 to 18:00).
type OcupacionHora struct {
	Hora      string `json:"hora"`
	Ocupacion int    `json:"ocupacion"`
}

// ClienteTop is one row of the top-clients ranking. Clients have no stable
// upstream identity, so the name is the key and the id is positional.
type ClienteTop struct {
	ID       int     `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono string  `json:"telefono"`
	Visitas  int     `json:"visitas"`
	Gasto    float64 `json:"gasto"`
}

// ResumenDia is one workday of the Monday-to-Friday weekly breakdown.
type ResumenDia struct {
	Dia      string  `json:"dia"`
	Citas    int     `json:"citas"`
	Ingresos float64 `json:"ingresos"`
}

// CitaDetalle is one row of today's appointment table.
type CitaDetalle struct {
	Hora     string  `json:"hora"`
	Nombre   string  `json:"nombre"`
	Servicio string  `json:"servicio"`
	Staff    string  `json:"staff"`
	Precio   float64 `json:"precio"`
}
