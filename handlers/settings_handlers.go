package handlers

import (
	"context"
	"encoding/json"
	"log"

	"app/config"
	"app/database"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// Keys of the config table. Each row holds one settings document as jsonb.
const (
	keyServicios = "servicios"
	keyStaff     = "staff"
	keyMoneda    = "moneda"
	keyNegocio   = "negocio"
	keyWebhooks  = "webhooks"
	keyTema      = "tema"
)

var monedasValidas = map[string]bool{"ARS": true, "USD": true, "MXN": true, "COP": true}

func loadConfigValue(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw []byte
	err := database.GetDB().QueryRow(ctx, "SELECT value FROM config WHERE key = $1", key).Scan(&raw)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, dest)
}

func saveConfigValue(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = database.GetDB().Exec(ctx, `
		INSERT INTO config (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, raw)
	return err
}

// LoadSettings primes the cache from the config table. Keys that do not
// exist yet are seeded with their defaults, mirroring the first run of the
// original setup. Called once at startup and again after a cache clear.
func LoadSettings(ctx context.Context, cache *config.Cache) error {
	var servicios []config.Servicio
	found, err := loadConfigValue(ctx, keyServicios, &servicios)
	if err != nil {
		return err
	}
	if !found {
		servicios = config.DefaultServicios()
		if err := saveConfigValue(ctx, keyServicios, servicios); err != nil {
			return err
		}
	}
	cache.SetServicios(servicios)

	var staff []string
	found, err = loadConfigValue(ctx, keyStaff, &staff)
	if err != nil {
		return err
	}
	if !found {
		staff = config.DefaultStaff()
		if err := saveConfigValue(ctx, keyStaff, staff); err != nil {
			return err
		}
	}
	cache.SetStaff(staff)

	var moneda string
	found, err = loadConfigValue(ctx, keyMoneda, &moneda)
	if err != nil {
		return err
	}
	if !found {
		moneda = config.DefaultMoneda
		if err := saveConfigValue(ctx, keyMoneda, moneda); err != nil {
			return err
		}
	}
	cache.SetMoneda(moneda)

	var negocio config.Negocio
	found, err = loadConfigValue(ctx, keyNegocio, &negocio)
	if err != nil {
		return err
	}
	if !found {
		negocio = config.DefaultNegocio()
		if err := saveConfigValue(ctx, keyNegocio, negocio); err != nil {
			return err
		}
	}
	cache.SetNegocio(negocio)

	var webhooks config.Webhooks
	found, err = loadConfigValue(ctx, keyWebhooks, &webhooks)
	if err != nil {
		return err
	}
	if !found {
		webhooks = config.DefaultWebhooks()
		if err := saveConfigValue(ctx, keyWebhooks, webhooks); err != nil {
			return err
		}
	}
	cache.SetWebhooks(webhooks)

	var tema string
	found, err = loadConfigValue(ctx, keyTema, &tema)
	if err != nil {
		return err
	}
	if found {
		cache.SetTema(tema)
	}

	return nil
}

// HandleGetSettings returns every salon setting in one payload.
// GET /api/v1/settings
func HandleGetSettings(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		moneda := cache.Moneda()
		return c.JSON(fiber.Map{
			"status": "success",
			"data": fiber.Map{
				"servicios": cache.Servicios(),
				"staff":     cache.Staff(),
				"moneda":    moneda,
				"simbolo":   utils.CurrencySymbol(moneda),
				"negocio":   cache.Negocio(),
				"webhooks":  cache.Webhooks(),
				"tema":      cache.Tema(),
			},
		})
	}
}

// HandleRefreshSettings drops the cache and reloads from the database.
// POST /api/v1/settings/refresh
func HandleRefreshSettings(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cache.Clear()
		if err := LoadSettings(context.Background(), cache); err != nil {
			log.Printf("Error reloading settings: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo recargar la configuración"})
		}
		return c.JSON(fiber.Map{"status": "success", "message": "Configuración recargada"})
	}
}

// HandleUpdateServicios replaces the services catalog.
// PUT /api/v1/settings/servicios
func HandleUpdateServicios(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var servicios []config.Servicio
		if err := c.BodyParser(&servicios); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}
		for _, s := range servicios {
			if s.Nombre == "" || s.Precio < 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cada servicio necesita nombre y precio válido"})
			}
		}

		if err := saveConfigValue(context.Background(), keyServicios, servicios); err != nil {
			log.Printf("Error saving servicios: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo guardar el catálogo"})
		}
		cache.SetServicios(servicios)

		return c.JSON(fiber.Map{"status": "success", "data": servicios})
	}
}

// HandleUpdateStaff replaces the staff roster.
// PUT /api/v1/settings/staff
func HandleUpdateStaff(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var staff []string
		if err := c.BodyParser(&staff); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}

		if err := saveConfigValue(context.Background(), keyStaff, staff); err != nil {
			log.Printf("Error saving staff: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo guardar el staff"})
		}
		cache.SetStaff(staff)

		return c.JSON(fiber.Map{"status": "success", "data": staff})
	}
}

// HandleUpdateMoneda changes the display currency.
// PUT /api/v1/settings/moneda
func HandleUpdateMoneda(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Moneda string `json:"moneda"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}
		if !monedasValidas[body.Moneda] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Moneda no soportada: " + body.Moneda})
		}

		if err := saveConfigValue(context.Background(), keyMoneda, body.Moneda); err != nil {
			log.Printf("Error saving moneda: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo guardar la moneda"})
		}
		cache.SetMoneda(body.Moneda)

		return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"moneda": body.Moneda, "simbolo": utils.CurrencySymbol(body.Moneda)}})
	}
}

// HandleUpdateNegocio edits the business identity.
// PUT /api/v1/settings/negocio
func HandleUpdateNegocio(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var negocio config.Negocio
		if err := c.BodyParser(&negocio); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}
		if negocio.Nombre == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "El nombre del negocio es obligatorio"})
		}

		if err := saveConfigValue(context.Background(), keyNegocio, negocio); err != nil {
			log.Printf("Error saving negocio: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudieron guardar los datos del negocio"})
		}
		cache.SetNegocio(negocio)

		return c.JSON(fiber.Map{"status": "success", "data": negocio})
	}
}

// HandleUpdateWebhooks changes the n8n endpoint URLs.
// PUT /api/v1/settings/webhooks
func HandleUpdateWebhooks(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var webhooks config.Webhooks
		if err := c.BodyParser(&webhooks); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}
		if webhooks.Dashboard == "" || webhooks.Calendar == "" || webhooks.Delete == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Las tres URLs de webhook son obligatorias"})
		}

		if err := saveConfigValue(context.Background(), keyWebhooks, webhooks); err != nil {
			log.Printf("Error saving webhooks: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudieron guardar los webhooks"})
		}
		cache.SetWebhooks(webhooks)

		return c.JSON(fiber.Map{"status": "success", "data": webhooks})
	}
}
