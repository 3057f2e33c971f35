package handlers

import (
	"context"
	"log"

	"app/config"

	"github.com/gofiber/fiber/v2"
)

// HandleListThemes returns the theme catalog and the currently active theme.
// GET /api/v1/themes
func HandleListThemes(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "success",
			"data": fiber.Map{
				"themes": config.Themes,
				"activo": cache.Tema(),
			},
		})
	}
}

// HandleSetActiveTheme switches the dashboard palette.
// PUT /api/v1/themes/active
func HandleSetActiveTheme(cache *config.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Tema string `json:"tema"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}

		theme, ok := config.ThemeByID(body.Tema)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Tema desconocido: " + body.Tema})
		}

		if err := saveConfigValue(context.Background(), keyTema, theme.ID); err != nil {
			log.Printf("Error saving tema: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo guardar el tema"})
		}
		cache.SetTema(theme.ID)

		return c.JSON(fiber.Map{"status": "success", "data": theme})
	}
}
