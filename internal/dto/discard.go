package dto

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/recoleta-app/collector-api/internal/models"
)

const descriptionPreviewMax = 120

// DiscardView is the list/table projection of a discard with display labels
// resolved for the panel.
type DiscardView struct {
	ID               int64                 `json:"id"`
	Status           models.DiscardStatus  `json:"status"`
	StatusLabel      string                `json:"statusLabel"`
	Mode             models.DiscardMode    `json:"mode"`
	ModeLabel        string                `json:"modeLabel"`
	Category         models.ReportCategory `json:"category"`
	Lines            []LineView            `json:"lines"`
	ClientName       string                `json:"clientName"`
	ClientPhone      string                `json:"clientPhone,omitempty"`
	ShortAddress     string                `json:"shortAddress"`
	Description      string                `json:"description,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedAtAssumed bool                  `json:"createdAtAssumed,omitempty"`
}

// LineView pairs a material line with its display label.
type LineView struct {
	Line  models.MaterialLine `json:"line"`
	Label string              `json:"label"`
}

// NewDiscardView projects a canonical discard for list rendering.
func NewDiscardView(d models.Discard) DiscardView {
	view := DiscardView{
		ID:               d.ID,
		Status:           d.Status,
		StatusLabel:      models.StatusLabel(d.Status),
		Mode:             d.Mode,
		ModeLabel:        models.ModeLabel(d.Mode),
		Category:         models.Category(d.Status),
		Lines:            make([]LineView, 0, len(d.Lines)),
		ClientName:       "Cliente",
		ShortAddress:     d.ShortAddress(),
		Description:      Truncate(d.Description, descriptionPreviewMax),
		CreatedAt:        d.CreatedAt,
		CreatedAtAssumed: d.CreatedAtAssumed,
	}
	for _, line := range d.Lines {
		view.Lines = append(view.Lines, LineView{Line: line, Label: models.LineLabel(line)})
	}
	if d.Client != nil {
		if d.Client.Name != "" {
			view.ClientName = d.Client.Name
		}
		view.ClientPhone = d.Client.Phone
	}
	return view
}

// NewDiscardViews projects a slice preserving input order.
func NewDiscardViews(ds []models.Discard) []DiscardView {
	views := make([]DiscardView, 0, len(ds))
	for _, d := range ds {
		views = append(views, NewDiscardView(d))
	}
	return views
}

// Coordinates is a latitude/longitude pair as the map widget consumes it.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapResponse carries the viewport center and one GeoJSON feature per
// plottable request.
type MapResponse struct {
	Center  Coordinates                `json:"center"`
	Markers *geojson.FeatureCollection `json:"markers"`
	Skipped int                        `json:"skipped"`
}

// Truncate cuts text to max runes, appending an ellipsis when shortened.
func Truncate(text string, max int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
