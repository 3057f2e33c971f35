// Package webhook talks to the n8n flows that front the appointment
// spreadsheet: a read-only dashboard feed plus calendar and delete flows for
// the CRUD operations.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app/config"
	"app/models"
)

// Client issues webhook calls using whatever URLs are currently configured.
// URLs are read from the settings cache on every call so a webhook update
// takes effect without a restart.
type Client struct {
	cache *config.Cache
	http  *http.Client
}

func NewClient(cache *config.Cache) *Client {
	return &Client{
		cache: cache,
		http:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCitas pulls the raw appointment list from the dashboard feed. The
// flow answers with either a JSON array or a single object; a single object
// is wrapped into a one-element list.
func (c *Client) FetchCitas(ctx context.Context) ([]models.RawAppointment, error) {
	endpoint := c.cache.Webhooks().Dashboard
	if endpoint == "" {
		return nil, fmt.Errorf("dashboard webhook URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("dashboard webhook returned HTTP %d", resp.StatusCode)
	}

	return decodeCitas(body)
}

// CreateCita appends an appointment through the calendar flow. The payload
// uses the spreadsheet column headers because the flow writes rows verbatim.
func (c *Client) CreateCita(ctx context.Context, cita models.CitaRequest) (models.WebhookResponse, error) {
	payload := map[string]interface{}{
		"Nombre y Apellidos completos": cita.Nombre,
		"Telefono":                     cita.Telefono,
		"Fecha y hora de la cita":      cita.Fecha,
		"Servicio":                     cita.Servicio,
		"Precio servicio":              cita.Precio,
		"Servicio proporcionado por":   cita.Staff,
	}
	return c.post(ctx, c.cache.Webhooks().Calendar, payload)
}

// SearchCitas runs a filtered search through the calendar flow.
func (c *Client) SearchCitas(ctx context.Context, q models.CitaSearchRequest) ([]models.RawAppointment, error) {
	payload := map[string]interface{}{"action": "search"}
	if q.Nombre != "" {
		payload["nombre"] = q.Nombre
	}
	if q.Telefono != "" {
		payload["telefono"] = q.Telefono
	}
	if q.Fecha != "" {
		payload["fecha"] = q.Fecha
	}

	body, err := c.postRaw(ctx, c.cache.Webhooks().Calendar, payload)
	if err != nil {
		return nil, err
	}
	return decodeCitas(body)
}

// UpdateCita edits an existing row. The id is the upstream row identifier and
// is forwarded untouched.
func (c *Client) UpdateCita(ctx context.Context, id string, cita models.CitaRequest) (models.WebhookResponse, error) {
	payload := map[string]interface{}{
		"action":   "update",
		"id":       id,
		"nombre":   cita.Nombre,
		"telefono": cita.Telefono,
		"fecha":    cita.Fecha,
		"servicio": cita.Servicio,
		"staff":    cita.Staff,
		"precio":   cita.Precio,
	}
	return c.post(ctx, c.cache.Webhooks().Calendar, payload)
}

// DeleteCita removes a row through the dedicated delete flow.
func (c *Client) DeleteCita(ctx context.Context, id string) (models.WebhookResponse, error) {
	payload := map[string]interface{}{"action": "delete", "id": id}
	return c.post(ctx, c.cache.Webhooks().Delete, payload)
}

func (c *Client) post(ctx context.Context, endpoint string, payload map[string]interface{}) (models.WebhookResponse, error) {
	body, err := c.postRaw(ctx, endpoint, payload)
	if err != nil {
		return models.WebhookResponse{}, err
	}

	var wr models.WebhookResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		// Flows not configured to answer JSON reply with a bare text body.
		return models.WebhookResponse{Success: true, Message: strings.TrimSpace(string(body))}, nil
	}
	// A JSON reply is taken at face value, including success:false.
	return wr, nil
}

func (c *Client) postRaw(ctx context.Context, endpoint string, payload map[string]interface{}) ([]byte, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("webhook URL is not configured")
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Some n8n setups reject JSON posts outright; retry once as a form
		// submission before giving up.
		return c.postForm(ctx, endpoint, payload)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, truncate(body))
	}
	return body, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, payload map[string]interface{}) ([]byte, error) {
	form := url.Values{}
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			form.Set(key, v)
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			form.Set(key, string(encoded))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, truncate(body))
	}
	return body, nil
}

func decodeCitas(body []byte) ([]models.RawAppointment, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []models.RawAppointment{}, nil
	}

	var list []models.RawAppointment
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return list, nil
	}

	var single models.RawAppointment
	if err := json.Unmarshal(trimmed, &single); err == nil {
		return []models.RawAppointment{single}, nil
	}

	return nil, fmt.Errorf("unexpected webhook payload: %s", truncate(trimmed))
}

func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
