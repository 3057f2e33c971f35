package handlers

import (
	"context"
	"log"
	"time"

	"app/stats"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
)

// HandleGetStats serves the dashboard statistics report. The raw feed comes
// from the dashboard webhook; when that fetch fails the report is computed
// from canned example data instead, flagged through the X-Stats-Source
// header so the body shape stays exactly what the charts expect.
// GET /api/v1/stats
func HandleGetStats(client *webhook.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()

		citas, err := client.FetchCitas(context.Background())
		if err != nil {
			log.Printf("Error fetching citas from webhook, serving example data: %v", err)
			c.Set("X-Stats-Source", "ejemplo")
			return c.JSON(stats.ComputeStats(stats.MockCitas(now), now))
		}

		c.Set("X-Stats-Source", "webhook")
		return c.JSON(stats.ComputeStats(citas, now))
	}
}
