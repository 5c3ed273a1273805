package stockrequest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ursais/stock-logistics-request/internal/domain"
)

func TestAncestors_CadenaCompleta(t *testing.T) {
	f := newFixture(t)

	chain, err := f.uc.Ancestors("ubi-alm1")

	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "ubi-alm1", chain[0].ID, "la cadena empieza en la propia ubicación")
	assert.Equal(t, "ubi-wh1", chain[1].ID)
	assert.Equal(t, "ubi-root", chain[2].ID)
}

func TestAncestors_CadaNodoApareceUnaVez(t *testing.T) {
	f := newFixture(t)

	chain, err := f.uc.Ancestors("ubi-alm2")

	require.NoError(t, err)
	seen := make(map[string]bool, len(chain))
	for _, location := range chain {
		assert.False(t, seen[location.ID], "nodo repetido: %s", location.ID)
		seen[location.ID] = true
	}
}

func TestAncestors_UbicacionAisladaSeContieneASiMisma(t *testing.T) {
	f := newFixture(t)

	chain, err := f.uc.Ancestors("ubi-root")

	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "ubi-root", chain[0].ID)
}

func TestAncestors_CicloFallaRapido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Ancestors("ubi-ciclo-a")

	require.Error(t, err, "un ciclo en los datos maestros nunca debe colgar el recorrido")
	assert.ErrorIs(t, err, domain.ErrHierarchyCycle)
}

func TestAncestors_PadreInexistenteFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Ancestors("ubi-huerfana")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAncestors_UbicacionDesconocidaFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Ancestors("ubi-404")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
