package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

func TestParseStatusLabel_EtiquetasConocidas(t *testing.T) {
	cases := map[string]entity.Status{
		"Recibido":                 entity.StatusReceived,
		"Diagnóstico":              entity.StatusDiagnosis,
		"En espera de refacciones": entity.StatusParts,
		"Reparación":               entity.StatusRepair,
		"Listo":                    entity.StatusReady,
		"Entregado":                entity.StatusDelivered,
	}
	for label, want := range cases {
		got, err := entity.ParseStatusLabel(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
		assert.Equal(t, label, got.String())
	}
}

func TestParseStatusLabel_DesconocidaSeRechaza(t *testing.T) {
	// Nunca se asume Recibido ante una etiqueta desconocida.
	for _, label := range []string{"", "Pintura", "recibido", "RECIBIDO"} {
		_, err := entity.ParseStatusLabel(label)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus, label)
	}
}

func TestStatusFromCode_RangoValido(t *testing.T) {
	for code := 1; code <= 6; code++ {
		s, err := entity.StatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, s.Code())
		assert.NotEmpty(t, s.String())
	}
	for _, code := range []int{0, 7, -1, 100} {
		_, err := entity.StatusFromCode(code)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	}
}
