package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureGormLogs(t *testing.T, level slog.Level, slowThreshold time.Duration) (*gormSlogLogger, func() []map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{SlowQueryThreshold: slowThreshold}
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), cfg)

	return l.(*gormSlogLogger), func() []map[string]any {
		var records []map[string]any
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if line == "" {
				continue
			}
			var record map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &record))
			records = append(records, record)
		}

		return records
	}
}

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_SlowStatementCarriesRequestAndTable(t *testing.T) {
	l, records := captureGormLogs(t, slog.LevelInfo, 50*time.Millisecond)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	l.Trace(ctx, time.Now().Add(-time.Second), statement(`SELECT * FROM "checkout_sessions" WHERE status = 'pending'`, 3), nil)

	logged := records()
	require.Len(t, logged, 1)
	assert.Equal(t, "Slow database statement", logged[0]["msg"])
	assert.Equal(t, "WARN", logged[0]["level"])
	assert.Equal(t, "req-42", logged[0]["requestID"])
	assert.Equal(t, "checkout_sessions", logged[0]["table"])
	assert.EqualValues(t, 3, logged[0]["rows"])
}

func TestGormSlogLogger_ConstraintViolationIsNotAnError(t *testing.T) {
	l, records := captureGormLogs(t, slog.LevelInfo, time.Second)
	ctx := context.Background()
	insert := statement(`INSERT INTO "favorites" ("user_id","product_id") VALUES ('u',1)`, 0)

	l.Trace(ctx, time.Now(), insert, gorm.ErrDuplicatedKey)
	l.Trace(ctx, time.Now(), insert, &pgconn.PgError{Code: pgUniqueViolation})
	l.Trace(ctx, time.Now(), statement(`SELECT * FROM "orders"`, 0), gorm.ErrRecordNotFound)
	assert.Empty(t, records())

	l.Trace(ctx, time.Now(), insert, &pgconn.PgError{Code: "08006"})
	logged := records()
	require.Len(t, logged, 1)
	assert.Equal(t, "Database statement failed", logged[0]["msg"])
	assert.Equal(t, "favorites", logged[0]["table"])
}

func TestGormSlogLogger_SilentModeLogsNothing(t *testing.T) {
	l, records := captureGormLogs(t, slog.LevelDebug, time.Millisecond)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Second), statement(`UPDATE "carts" SET num_items = 1`, 1), nil)
	silent.Error(context.Background(), "connection lost: %s", "eof")

	assert.Empty(t, records())
}

func TestStatementTable(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{sql: `SELECT count(*) FROM "reviews" WHERE product_id = 1`, want: "reviews"},
		{sql: `INSERT INTO "cart_items" ("cart_id") VALUES (1)`, want: "cart_items"},
		{sql: `UPDATE "orders" SET "is_paid"=true`, want: "orders"},
		{sql: `SELECT 1`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, statementTable(tt.sql))
		})
	}
}
