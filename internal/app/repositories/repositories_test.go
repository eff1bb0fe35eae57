package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/dberrors"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

func TestStorageError(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), zerolog.New(&buf))

	t.Run("check violation", func(t *testing.T) {
		buf.Reset()
		pgErr := &pgconn.PgError{Code: dberrors.CodeCheckViolation, ConstraintName: "leads_status_check"}

		err := storageError(ctx, "update lead status", fmt.Errorf("exec: %w", pgErr))

		var storageErr *apperrors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "update lead status", storageErr.Op)
		assert.True(t, errors.Is(err, apperrors.ErrStorage))
		assert.Contains(t, buf.String(), `"op":"update lead status"`)
		assert.Contains(t, buf.String(), `"sqlstate":"23514"`)
		assert.Contains(t, buf.String(), `"check_violation":true`)
		assert.NotContains(t, buf.String(), "bad_identifier")
	})

	t.Run("bad identifier", func(t *testing.T) {
		buf.Reset()
		err := storageError(ctx, "register lead", &pgconn.PgError{Code: dberrors.CodeInvalidTextRepresent})

		assert.True(t, errors.Is(err, apperrors.ErrStorage))
		assert.Contains(t, buf.String(), `"bad_identifier":true`)
		assert.NotContains(t, buf.String(), "check_violation")
	})

	t.Run("canceled", func(t *testing.T) {
		buf.Reset()
		err := storageError(ctx, "search leads", context.Canceled)

		assert.True(t, errors.Is(err, context.Canceled))
		assert.Contains(t, buf.String(), `"canceled":true`)
		assert.NotContains(t, buf.String(), "sqlstate")
	})
}
