package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Named("orders").Info().Str("order_id", "abc").Msg("orden registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "orders", line["component"])
	assert.Equal(t, "abc", line["order_id"])
	assert.Equal(t, "orden registrada", line["message"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no sale")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}
