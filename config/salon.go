package config

import (
	"os"
	"sync"
)

// Servicio is an entry of the editable services catalog.
type Servicio struct {
	ID        int      `json:"id"`
	Nombre    string   `json:"nombre"`
	Precio    float64  `json:"precio"`
	Duracion  int      `json:"duracion"`
	Categoria string   `json:"categoria"`
	Staff     []string `json:"staff"`
}

// Negocio is the business identity shown in the dashboard header and
// receipts.
type Negocio struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Horario   string `json:"horario"`
}

// Webhooks holds the n8n endpoints the appointment flows talk to.
type Webhooks struct {
	Dashboard string `json:"dashboard"`
	Calendar  string `json:"calendar"`
	Delete    string `json:"delete"`
}

// DefaultServicios is the seed catalog used until the settings screens save
// their own version.
func DefaultServicios() []Servicio {
	return []Servicio{
		{ID: 1, Nombre: "Limpieza Facial Profunda", Precio: 28000, Duracion: 60, Categoria: "Facial", Staff: []string{"Isabel Grimoldi", "Gabriela Cejas"}},
		{ID: 2, Nombre: "Hidratación Intensiva con Ácido Hialurónico", Precio: 32500, Duracion: 50, Categoria: "Facial", Staff: []string{"Isabel Grimoldi", "Gastón Grimoldi"}},
		{ID: 3, Nombre: "Drenaje Linfático Facial", Precio: 26000, Duracion: 45, Categoria: "Facial", Staff: []string{"Isabel Grimoldi", "Gastón Grimoldi", "Gabriela Cejas"}},
		{ID: 4, Nombre: "Radiofrecuencia Facial", Precio: 42000, Duracion: 45, Categoria: "Facial", Staff: []string{"Isabel Grimoldi", "Gastón Grimoldi"}},
		{ID: 5, Nombre: "PRP Facial (Plasma Rico en Plaquetas)", Precio: 85000, Duracion: 90, Categoria: "Regenerativo", Staff: []string{"Lucero Velasquez"}},
		{ID: 6, Nombre: "PRP Capilar (Plasma Rico en Plaquetas)", Precio: 75000, Duracion: 75, Categoria: "Regenerativo", Staff: []string{"Lucero Velasquez"}},
		{ID: 7, Nombre: "Drenaje Linfático Manual (Cuerpo Completo)", Precio: 34000, Duracion: 60, Categoria: "Corporal", Staff: []string{"Isabel Grimoldi", "Gastón Grimoldi"}},
		{ID: 8, Nombre: "Masaje Descontracturante Profundo", Precio: 38000, Duracion: 60, Categoria: "Masaje", Staff: []string{"Gastón Grimoldi"}},
		{ID: 9, Nombre: "Masaje Relajante con Aromaterapia", Precio: 43000, Duracion: 75, Categoria: "Masaje", Staff: []string{"Gastón Grimoldi", "Lucero Velasquez"}},
	}
}

// DefaultStaff returns the seed staff roster.
func DefaultStaff() []string {
	return []string{"Isabel Grimoldi", "Gastón Grimoldi", "Lucero Velasquez", "Gabriela Cejas"}
}

// DefaultMoneda is the seed currency code.
const DefaultMoneda = "ARS"

// DefaultNegocio returns the seed business identity.
func DefaultNegocio() Negocio {
	return Negocio{
		Nombre:    "Centro de Estética Grimoldi",
		Direccion: "Av. Santa Fe 1234, CABA",
		Telefono:  "11-5555-0100",
		Horario:   "Lunes a viernes de 9 a 18 hs",
	}
}

// DefaultWebhooks reads the seed webhook URLs from the environment so no
// endpoint is baked into the binary.
func DefaultWebhooks() Webhooks {
	return Webhooks{
		Dashboard: os.Getenv("N8N_DASHBOARD_URL"),
		Calendar:  os.Getenv("N8N_CALENDAR_URL"),
		Delete:    os.Getenv("N8N_DELETE_URL"),
	}
}

// Cache is the in-memory view of the salon settings stored in the config
// table. It is created by main and handed to the handlers that need it; a nil
// entry means "not loaded yet" and the getters fall back to the defaults.
// Writers go through Set* (write-through after persisting) or Clear
// (invalidate everything so the next load hits the database again).
type Cache struct {
	mu        sync.RWMutex
	servicios []Servicio
	staff     []string
	moneda    string
	negocio   *Negocio
	webhooks  *Webhooks
	tema      string
}

// NewCache returns an empty settings cache.
func NewCache() *Cache {
	return &Cache{}
}

// Servicios returns the cached catalog, or the defaults when nothing has been
// loaded.
func (c *Cache) Servicios() []Servicio {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.servicios != nil {
		return c.servicios
	}
	return DefaultServicios()
}

func (c *Cache) SetServicios(servicios []Servicio) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicios = servicios
}

// ServicioPorNombre looks up a catalog entry by its display name.
func (c *Cache) ServicioPorNombre(nombre string) (Servicio, bool) {
	for _, s := range c.Servicios() {
		if s.Nombre == nombre {
			return s, true
		}
	}
	return Servicio{}, false
}

func (c *Cache) Staff() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.staff != nil {
		return c.staff
	}
	return DefaultStaff()
}

func (c *Cache) SetStaff(staff []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staff = staff
}

func (c *Cache) Moneda() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.moneda != "" {
		return c.moneda
	}
	return DefaultMoneda
}

func (c *Cache) SetMoneda(moneda string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moneda = moneda
}

func (c *Cache) Negocio() Negocio {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.negocio != nil {
		return *c.negocio
	}
	return DefaultNegocio()
}

func (c *Cache) SetNegocio(n Negocio) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.negocio = &n
}

func (c *Cache) Webhooks() Webhooks {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.webhooks != nil {
		return *c.webhooks
	}
	return DefaultWebhooks()
}

func (c *Cache) SetWebhooks(w Webhooks) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.webhooks = &w
}

func (c *Cache) Tema() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tema != "" {
		return c.tema
	}
	return DefaultTema
}

func (c *Cache) SetTema(tema string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tema = tema
}

// Clear drops every cached value so the next read reloads from the database.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicios = nil
	c.staff = nil
	c.moneda = ""
	c.negocio = nil
	c.webhooks = nil
	c.tema = ""
}
