package models

import (
	"strings"
	"time"
)

// DiscardMode determines which location object is authoritative for a request.
type DiscardMode string

const (
	ModePickup          DiscardMode = "PICKUP"
	ModeCollectionPoint DiscardMode = "COLLECTION_POINT"
)

// DiscardStatus is the backend-authoritative lifecycle state of a request.
type DiscardStatus string

const (
	StatusPending   DiscardStatus = "PENDING"
	StatusOffered   DiscardStatus = "OFFERED"
	StatusScheduled DiscardStatus = "SCHEDULED"
	StatusCancelled DiscardStatus = "CANCELLED"
	StatusCompleted DiscardStatus = "COMPLETED"
)

// AllStatuses lists every backend status in a fixed order.
var AllStatuses = []DiscardStatus{
	StatusPending, StatusOffered, StatusScheduled, StatusCancelled, StatusCompleted,
}

// MaterialLine is a recyclable material category accepted for a request.
type MaterialLine string

const (
	LineVerde  MaterialLine = "VERDE"
	LineMarrom MaterialLine = "MARROM"
	LineAzul   MaterialLine = "AZUL"
	LineBranca MaterialLine = "BRANCA"
)

// ReportCategory is the three-way simplification of status used by every
// report, chart and counter. Keeping the mapping in one place is what
// guarantees a record is counted the same way on every screen.
type ReportCategory string

const (
	CategoryPending  ReportCategory = "pending"
	CategoryAccepted ReportCategory = "accepted"
	CategoryReceived ReportCategory = "received"
)

// Category classifies a backend status into its report category.
func Category(status DiscardStatus) ReportCategory {
	switch status {
	case StatusCompleted:
		return CategoryReceived
	case StatusOffered, StatusScheduled:
		return CategoryAccepted
	default:
		return CategoryPending
	}
}

// Client holds the optional requester contact block.
type Client struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Location is a resolved address, either the pickup address or a collection
// point, depending on the discard mode.
type Location struct {
	Name         string   `json:"name,omitempty"`
	AddressName  string   `json:"addressName,omitempty"`
	Number       string   `json:"number,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// Discard is the canonical collection request after normalization.
type Discard struct {
	ID              int64          `json:"id"`
	Mode            DiscardMode    `json:"mode"`
	Status          DiscardStatus  `json:"status"`
	Lines           []MaterialLine `json:"lines"`
	CreatedAt       time.Time      `json:"createdAt"`
	Description     string         `json:"description,omitempty"`
	Client          *Client        `json:"client,omitempty"`
	Address         *Location      `json:"address,omitempty"`
	CollectionPoint *Location      `json:"collectionPoint,omitempty"`

	// CreatedAtAssumed marks records whose timestamp was missing upstream
	// and defaulted to ingestion time. The substitution skews time-bucket
	// aggregates, so it stays visible on the record.
	CreatedAtAssumed bool `json:"createdAtAssumed,omitempty"`
}

// AuthoritativeLocation returns the location object the mode designates.
// Pickup requests are located by the client address, everything else by the
// collection point. The two are never mixed for one record.
func (d *Discard) AuthoritativeLocation() *Location {
	if d.Mode == ModePickup {
		return d.Address
	}
	return d.CollectionPoint
}

// ShortAddress joins the human-readable parts of the authoritative location.
func (d *Discard) ShortAddress() string {
	loc := d.AuthoritativeLocation()
	if loc == nil {
		return "Endereço não informado"
	}
	parts := make([]string, 0, 5)
	for _, part := range []string{loc.AddressName, loc.Number, loc.Neighborhood, loc.City, loc.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Endereço não informado"
	}
	return strings.Join(parts, ", ")
}

// Display labels shown by the panel (pt-BR).
var (
	statusLabels = map[DiscardStatus]string{
		StatusPending:   "Pendente",
		StatusOffered:   "Com oferta",
		StatusScheduled: "Agendado",
		StatusCancelled: "Cancelado",
		StatusCompleted: "Recebido",
	}

	modeLabels = map[DiscardMode]string{
		ModePickup:          "Coleta em casa",
		ModeCollectionPoint: "Entrega em ponto",
	}

	lineLabels = map[MaterialLine]string{
		LineVerde:  "Linha Verde",
		LineMarrom: "Linha Marrom",
		LineAzul:   "Linha Azul",
		LineBranca: "Linha Branca",
	}
)

// StatusLabel returns the display label for a status.
func StatusLabel(status DiscardStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// ModeLabel returns the display label for a mode.
func ModeLabel(mode DiscardMode) string {
	if label, ok := modeLabels[mode]; ok {
		return label
	}
	return string(mode)
}

// LineLabel returns the display label for a material line.
func LineLabel(line MaterialLine) string {
	if label, ok := lineLabels[line]; ok {
		return label
	}
	return string(line)
}
