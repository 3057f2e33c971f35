package config

// Theme is a selectable color palette for the dashboard.
type Theme struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
}

// DefaultTema is the theme applied when none has been chosen.
const DefaultTema = "premium"

// Themes is the fixed catalog of available palettes, keyed by shade.
var Themes = []Theme{
	{
		ID:          "estetica",
		Name:        "Estética",
		Description: "Verde azulado elegante",
		Colors: map[string]string{
			"50": "#f0fdfa", "100": "#ccfbf1", "200": "#99f6e4", "300": "#5eead4",
			"400": "#2dd4bf", "500": "#14b8a6", "600": "#0d9488", "700": "#0f766e",
			"800": "#115e59", "900": "#134e4a",
		},
	},
	{
		ID:          "barberia",
		Name:        "Barbería Dorado",
		Description: "Dorado clásico masculino",
		Colors: map[string]string{
			"50": "#fefce8", "100": "#fef9c3", "200": "#fef08a", "300": "#fde047",
			"400": "#facc15", "500": "#eab308", "600": "#ca8a04", "700": "#a16207",
			"800": "#854d0e", "900": "#713f12",
		},
	},
	{
		ID:          "clasico",
		Name:        "Barbería Clásico",
		Description: "Azul marino con cobre",
		Colors: map[string]string{
			"50": "#fff7ed", "100": "#ffedd5", "200": "#fed7aa", "300": "#fdba74",
			"400": "#fb923c", "500": "#f97316", "600": "#ea580c", "700": "#c2410c",
			"800": "#9a3412", "900": "#7c2d12",
		},
	},
	{
		ID:          "oceano",
		Name:        "Océano",
		Description: "Azul profundo profesional",
		Colors: map[string]string{
			"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd",
			"400": "#60a5fa", "500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8",
			"800": "#1e40af", "900": "#1e3a8a",
		},
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Description: "Verde lima fintech",
		Colors: map[string]string{
			"50": "#f7fee7", "100": "#ecfccb", "200": "#d9f99d", "300": "#bef264",
			"400": "#a3e635", "500": "#84cc16", "600": "#65a30d", "700": "#4d7c0f",
			"800": "#3f6212", "900": "#365314",
		},
	},
}

// ThemeByID returns the catalog entry for id.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
