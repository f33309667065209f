package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"redpotion-core/audit-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const counterTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyOrdersKey(date, restaurantID string) string {
	return fmt.Sprintf("orders:daily:%s:%s", date, restaurantID)
}

func dailyPaymentsKey(date string) string {
	return fmt.Sprintf("payments:daily:%s", date)
}

func (s *Store) RecordEvent(event domain.OrderEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO order_audit (event_type, order_id, order_number, restaurant_id, slip_id, amount, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.Type, event.OrderID, event.OrderNumber, event.RestaurantID,
		event.SlipID, event.Amount, event.Timestamp)
	return err
}

// BumpDailyCounter increments the per-restaurant daily event tally. Counters
// live a week; the audit table is the durable record.
func (s *Store) BumpDailyCounter(restaurantID, eventType string) error {
	key := dailyOrdersKey(time.Now().Format("2006-01-02"), restaurantID)
	if err := s.rdb.ZIncrBy(s.ctx, key, 1, eventType).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, counterTTL)
	return nil
}

// BumpPaymentCounter scores restaurants by approved payments for the day.
func (s *Store) BumpPaymentCounter(restaurantID string) error {
	key := dailyPaymentsKey(time.Now().Format("2006-01-02"))
	if err := s.rdb.ZIncrBy(s.ctx, key, 1, restaurantID).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, counterTTL)
	return nil
}

// DailySummary reads the Redis tally for one restaurant and date, falling back
// to the audit table when the counter expired or Redis is down.
func (s *Store) DailySummary(restaurantID, date string) (map[string]int64, error) {
	members, err := s.rdb.ZRangeWithScores(s.ctx, dailyOrdersKey(date, restaurantID), 0, -1).Result()
	if err == nil && len(members) > 0 {
		summary := make(map[string]int64, len(members))
		for _, member := range members {
			summary[member.Member.(string)] = int64(member.Score)
		}
		return summary, nil
	}

	return s.dailySummaryFromDB(restaurantID, date)
}

func (s *Store) dailySummaryFromDB(restaurantID, date string) (map[string]int64, error) {
	rows, err := s.db.Query(`
		SELECT event_type, COUNT(*)
		FROM order_audit
		WHERE restaurant_id = $1 AND occurred_at::date = $2::date
		GROUP BY event_type
	`, restaurantID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := map[string]int64{}
	for rows.Next() {
		var eventType string
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			continue
		}
		summary[eventType] = count
	}
	return summary, rows.Err()
}

// TopPaidRestaurants returns the day's payment leaderboard, best first.
func (s *Store) TopPaidRestaurants(date string, limit int) ([]domain.RestaurantPayments, error) {
	members, err := s.rdb.ZRevRangeWithScores(s.ctx, dailyPaymentsKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return []domain.RestaurantPayments{}, nil
	}

	top := make([]domain.RestaurantPayments, 0, len(members))
	for _, member := range members {
		top = append(top, domain.RestaurantPayments{
			RestaurantID: member.Member.(string),
			PaidOrders:   int64(member.Score),
		})
	}
	return top, nil
}

func (s *Store) OrderEvents(orderID string) ([]domain.AuditRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, event_type, order_id, order_number, restaurant_id, COALESCE(slip_id, ''), amount, occurred_at
		FROM order_audit
		WHERE order_id = $1
		ORDER BY occurred_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var record domain.AuditRecord
		if err := rows.Scan(&record.ID, &record.EventType, &record.OrderID, &record.OrderNumber,
			&record.RestaurantID, &record.SlipID, &record.Amount, &record.OccurredAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
