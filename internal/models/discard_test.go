package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMapping(t *testing.T) {
	cases := []struct {
		status   DiscardStatus
		expected ReportCategory
	}{
		{StatusPending, CategoryPending},
		{StatusCancelled, CategoryPending},
		{StatusOffered, CategoryAccepted},
		{StatusScheduled, CategoryAccepted},
		{StatusCompleted, CategoryReceived},
		{DiscardStatus("SOMETHING_NEW"), CategoryPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, Category(tc.status), "status %s", tc.status)
	}
}

func coord(v float64) *float64 { return &v }

func TestAuthoritativeLocationFollowsMode(t *testing.T) {
	address := &Location{AddressName: "Rua A", Latitude: coord(-1), Longitude: coord(-2)}
	point := &Location{Name: "Ecoponto Norte", Latitude: coord(-3), Longitude: coord(-4)}

	pickup := Discard{Mode: ModePickup, Address: address, CollectionPoint: point}
	assert.Same(t, address, pickup.AuthoritativeLocation())

	dropOff := Discard{Mode: ModeCollectionPoint, Address: address, CollectionPoint: point}
	assert.Same(t, point, dropOff.AuthoritativeLocation())
}

func TestShortAddress(t *testing.T) {
	d := Discard{
		Mode: ModePickup,
		Address: &Location{
			AddressName:  "Av. Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
		},
	}
	assert.Equal(t, "Av. Paulista, 1578, Bela Vista, São Paulo, SP", d.ShortAddress())

	assert.Equal(t, "Endereço não informado", (&Discard{Mode: ModePickup}).ShortAddress())
	assert.Equal(t, "Endereço não informado", (&Discard{Mode: ModePickup, Address: &Location{}}).ShortAddress())
}

func TestDisplayLabels(t *testing.T) {
	assert.Equal(t, "Pendente", StatusLabel(StatusPending))
	assert.Equal(t, "Recebido", StatusLabel(StatusCompleted))
	assert.Equal(t, "NEW_STATE", StatusLabel(DiscardStatus("NEW_STATE")))

	assert.Equal(t, "Coleta em casa", ModeLabel(ModePickup))
	assert.Equal(t, "Linha Verde", LineLabel(LineVerde))
}
