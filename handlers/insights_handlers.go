package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"app/stats"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleGenerateInsights asks Gemini for a short business reading of the
// current statistics report, optionally focused on a question from the
// operator.
// POST /api/v1/insights
func HandleGenerateInsights(client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Pregunta string `json:"pregunta"`
		}
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cuerpo de la solicitud inválido"})
		}

		ctx := context.Background()
		now := time.Now()

		citas, err := client.FetchCitas(ctx)
		if err != nil {
			log.Printf("Error fetching citas for insights, using example data: %v", err)
			citas = stats.MockCitas(now)
		}
		report := stats.ComputeStats(citas, now)

		reportJSON, err := json.Marshal(report)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo preparar el reporte"})
		}

		genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
		if err != nil {
			log.Printf("Error creating Gemini client: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo inicializar el asistente"})
		}
		defer genaiClient.Close()

		prompt := fmt.Sprintf(
			"Sos el asesor de negocio de un centro de estética. Este es el reporte de estadísticas del día en JSON:\n%s\n"+
				"Resumí en español, en un párrafo corto, cómo viene el negocio y qué conviene reforzar.",
			reportJSON,
		)
		if body.Pregunta != "" {
			prompt += "\nLa persona a cargo pregunta: " + body.Pregunta
		}

		model := genaiClient.GenerativeModel("gemini-1.5-pro-latest")
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			log.Printf("Error generating insights: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "No se pudo generar el análisis"})
		}

		var sb strings.Builder
		if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			for _, part := range resp.Candidates[0].Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
				}
			}
		}

		return c.JSON(fiber.Map{
			"status": "success",
			"data": fiber.Map{
				"analisis": sb.String(),
				"reporte":  report,
			},
		})
	}
}
