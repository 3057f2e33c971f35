package handlers

import (
	"context"
	"log"

	"app/config"
	"app/models"
	"app/utils"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
)

// HandleCreateCita books an appointment through the calendar webhook. When
// the request omits the price, the catalog price for the chosen service is
// applied; the deposit (seña) is computed here so every client sees the same
// number.
// POST /api/v1/citas
func HandleCreateCita(cache *config.Cache, client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CitaRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}
		if req.Nombre == "" || req.Fecha == "" || req.Servicio == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Faltan campos obligatorios (nombre, fecha, servicio)"})
		}

		if req.Precio == 0 {
			if servicio, ok := cache.ServicioPorNombre(req.Servicio); ok {
				req.Precio = servicio.Precio
			}
		}

		resp, err := client.CreateCita(context.Background(), req)
		if err != nil {
			log.Printf("Error creating cita via webhook: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "No se pudo registrar la cita"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status": "success",
			"data":   resp,
			"sena":   utils.CalcularSena(req.Precio),
		})
	}
}

// HandleSearchCitas searches the calendar by name, phone or date.
// GET /api/v1/citas/search?nombre=&telefono=&fecha=
func HandleSearchCitas(client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := models.CitaSearchRequest{
			Nombre:   c.Query("nombre"),
			Telefono: c.Query("telefono"),
			Fecha:    c.Query("fecha"),
		}
		if query.Nombre == "" && query.Telefono == "" && query.Fecha == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Indicá al menos un criterio de búsqueda"})
		}

		citas, err := client.SearchCitas(context.Background(), query)
		if err != nil {
			log.Printf("Error searching citas via webhook: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "No se pudo buscar citas"})
		}

		return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"citas": citas}})
	}
}

// HandleUpdateCita edits an appointment. The id is the row identifier the
// upstream store reported; it is forwarded as-is.
// PUT /api/v1/citas/:id
func HandleUpdateCita(client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.CitaRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}

		resp, err := client.UpdateCita(context.Background(), id, req)
		if err != nil {
			log.Printf("Error updating cita %s via webhook: %v", id, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "No se pudo actualizar la cita"})
		}

		return c.JSON(fiber.Map{"status": "success", "data": resp})
	}
}

// HandleDeleteCita removes an appointment through the delete webhook.
// DELETE /api/v1/citas/:id
func HandleDeleteCita(client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		resp, err := client.DeleteCita(context.Background(), id)
		if err != nil {
			log.Printf("Error deleting cita %s via webhook: %v", id, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "No se pudo eliminar la cita"})
		}

		return c.JSON(fiber.Map{"status": "success", "data": resp})
	}
}
