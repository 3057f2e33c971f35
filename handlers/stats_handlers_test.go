package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/config"
	"app/models"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func statsApp(dashboardURL string) *fiber.App {
	cache := config.NewCache()
	cache.SetWebhooks(config.Webhooks{Dashboard: dashboardURL})
	client := webhook.NewClient(cache)

	app := fiber.New()
	app.Get("/stats", HandleGetStats(client))
	return app
}

func TestHandleGetStatsFromWebhookFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Dates far in the past keep the today/week buckets empty no matter
		// when the test runs.
		w.Write([]byte(`[
			{"nombre":"Ana López","fecha":"2020-01-06T10:00:00","servicio":"Limpieza Facial Profunda","staff":"Isabel Grimoldi","precio":28000},
			{"nombre":"Marta Suárez","fecha":"2020-01-06T11:30:00","servicio":"Drenaje Linfático Facial","staff":"Gabriela Cejas","precio":26000}
		]`))
	}))
	defer srv.Close()

	app := statsApp(srv.URL)
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "webhook", resp.Header.Get("X-Stats-Source"))

	var report models.StatsReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.TotalCitas)
	assert.Equal(t, float64(54000), report.IngresosTotal)
	assert.Equal(t, 27000, report.TicketPromedio)
	assert.Equal(t, 0, report.TotalCitasHoy)
	assert.Len(t, report.OcupacionPorHora, 10)
	assert.Len(t, report.ResumenSemanal, 5)
}

func TestHandleGetStatsFallsBackToExampleData(t *testing.T) {
	// Port 1 is never listening; the fetch fails fast.
	app := statsApp("http://127.0.0.1:1/feed")

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ejemplo", resp.Header.Get("X-Stats-Source"))

	var report models.StatsReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 7, report.TotalCitas)
	assert.Greater(t, report.IngresosTotal, float64(0))
	assert.Greater(t, report.TotalCitasHoy, 0, "example data is anchored to the current day")
}
