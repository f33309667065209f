package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"redpotion-core/audit-svc/internal/domain"
	"redpotion-core/audit-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupStore(t *testing.T) (*storage.Store, sqlmock.Sqlmock, *redis.Client) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return storage.NewStore(db, rdb), sqlMock, rdb
}

func TestStore_RecordEvent(t *testing.T) {
	store, sqlMock, _ := setupStore(t)

	event := orderEvent(domain.EventOrderCreated)
	sqlMock.ExpectExec("INSERT INTO order_audit").
		WithArgs(event.Type, event.OrderID, event.OrderNumber, event.RestaurantID,
			event.SlipID, event.Amount, event.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, store.RecordEvent(event))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_DailyCounters(t *testing.T) {
	store, _, rdb := setupStore(t)
	today := time.Now().Format("2006-01-02")

	assert.NoError(t, store.BumpDailyCounter("rest-1", domain.EventOrderCreated))
	assert.NoError(t, store.BumpDailyCounter("rest-1", domain.EventOrderCreated))
	assert.NoError(t, store.BumpDailyCounter("rest-1", domain.EventSlipApproved))

	key := "orders:daily:" + today + ":rest-1"
	score, err := rdb.ZScore(context.Background(), key, domain.EventOrderCreated).Result()
	assert.NoError(t, err)
	assert.Equal(t, float64(2), score)

	ttl, err := rdb.TTL(context.Background(), key).Result()
	assert.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestStore_DailySummary(t *testing.T) {
	t.Run("served_from_redis", func(t *testing.T) {
		store, _, _ := setupStore(t)
		today := time.Now().Format("2006-01-02")

		assert.NoError(t, store.BumpDailyCounter("rest-1", domain.EventOrderCreated))
		assert.NoError(t, store.BumpDailyCounter("rest-1", domain.EventSlipApproved))

		summary, err := store.DailySummary("rest-1", today)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), summary[domain.EventOrderCreated])
		assert.Equal(t, int64(1), summary[domain.EventSlipApproved])
	})

	t.Run("falls_back_to_database", func(t *testing.T) {
		store, sqlMock, _ := setupStore(t)

		rows := sqlmock.NewRows([]string{"event_type", "count"}).
			AddRow(domain.EventOrderCreated, 5).
			AddRow(domain.EventSlipApproved, 3)
		sqlMock.ExpectQuery("FROM order_audit").
			WithArgs("rest-1", "2026-08-30").
			WillReturnRows(rows)

		summary, err := store.DailySummary("rest-1", "2026-08-30")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), summary[domain.EventOrderCreated])
		assert.Equal(t, int64(3), summary[domain.EventSlipApproved])
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestStore_TopPaidRestaurants(t *testing.T) {
	store, _, _ := setupStore(t)
	today := time.Now().Format("2006-01-02")

	assert.NoError(t, store.BumpPaymentCounter("rest-1"))
	assert.NoError(t, store.BumpPaymentCounter("rest-1"))
	assert.NoError(t, store.BumpPaymentCounter("rest-2"))

	top, err := store.TopPaidRestaurants(today, 10)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, "rest-1", top[0].RestaurantID)
	assert.Equal(t, int64(2), top[0].PaidOrders)
	assert.Equal(t, "rest-2", top[1].RestaurantID)
}

func TestStore_OrderEvents(t *testing.T) {
	store, sqlMock, _ := setupStore(t)

	occurredAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "event_type", "order_id", "order_number",
		"restaurant_id", "slip_id", "amount", "occurred_at"}).
		AddRow(1, domain.EventOrderCreated, "ord-1", "RP-20260901-0001", "rest-1", "", 290, occurredAt).
		AddRow(2, domain.EventSlipSubmitted, "ord-1", "RP-20260901-0001", "rest-1", "slip-1", 290, occurredAt)
	sqlMock.ExpectQuery("FROM order_audit").
		WithArgs("ord-1").
		WillReturnRows(rows)

	records, err := store.OrderEvents("ord-1")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, domain.EventOrderCreated, records[0].EventType)
	assert.Equal(t, "slip-1", records[1].SlipID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_OrderEvents_QueryError(t *testing.T) {
	store, sqlMock, _ := setupStore(t)

	sqlMock.ExpectQuery("FROM order_audit").
		WithArgs("ord-1").
		WillReturnError(sql.ErrConnDone)

	_, err := store.OrderEvents("ord-1")
	assert.Error(t, err)
}
