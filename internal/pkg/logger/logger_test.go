package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseleads/internal/pkg/logger"
)

func TestConfigure_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	lgr := logger.Configure(logger.Config{Level: logger.DebugLevel, Output: &buf, Service: "courseleads"})
	defer logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true})

	lgr.Info().Str("op", "create course").Msg("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "courseleads", line["service"])
	assert.Equal(t, "create course", line["op"])
	assert.Equal(t, "hello", line["message"])
}

func TestCtx_FallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: logger.InfoLevel, Output: &buf})
	defer logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true})

	logger.Ctx(context.Background()).Info().Msg("from default")
	assert.Contains(t, buf.String(), "from default")
}

func TestCtx_RequestScoped(t *testing.T) {
	var buf bytes.Buffer
	scoped := zerolog.New(&buf).With().Str("request_id", "abc").Logger()
	ctx := logger.WithContext(context.Background(), scoped)

	logger.Ctx(ctx).Error().Msg("boom")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}
