package storage

import (
	"database/sql"
	"encoding/json"

	"redpotion-core/order-svc/internal/domain"
	"redpotion-core/order-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) NextOrderSequence() (int, error) {
	var seq int
	err := r.DB.QueryRow("SELECT nextval('order_number_seq')").Scan(&seq)
	return seq, err
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (order_number, restaurant_id, customer_id, subtotal, delivery_fee, total,
		                    status, payment_method, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
		RETURNING id, created_at
	`, order.OrderNumber, order.RestaurantID, order.CustomerID, order.Subtotal, order.DeliveryFee,
		order.Total, order.Status, order.PaymentMethod).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		addOns, _ := json.Marshal(item.AddOns)
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, name, price, quantity, add_ons)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.ItemID, item.Name, item.Price, item.Quantity, addOns)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, order_number, restaurant_id, customer_id, subtotal, delivery_fee, total,
		       status, payment_method, is_paid, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.OrderNumber, &order.RestaurantID, &order.CustomerID,
		&order.Subtotal, &order.DeliveryFee, &order.Total, &order.Status, &order.PaymentMethod,
		&order.IsPaid, &order.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = r.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) orderItems(orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT item_id, name, price, quantity, add_ons
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		var addOns []byte
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Quantity, &addOns); err != nil {
			continue
		}
		if len(addOns) > 0 {
			json.Unmarshal(addOns, &item.AddOns)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) ListOrdersByCustomer(customerID string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_number, restaurant_id, customer_id, subtotal, delivery_fee, total,
		       status, payment_method, is_paid, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.OrderNumber, &order.RestaurantID, &order.CustomerID,
			&order.Subtotal, &order.DeliveryFee, &order.Total, &order.Status, &order.PaymentMethod,
			&order.IsPaid, &order.CreatedAt)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		orders[i].Items, _ = r.orderItems(orders[i].ID)
	}
	return orders, nil
}

func (r *PostgresRepository) MarkOrderPaid(orderID string) error {
	_, err := r.DB.Exec("UPDATE orders SET is_paid = true WHERE id = $1", orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, service.ErrOrderNotFound
	}
	return qr, err
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) LatestSlip(orderID string) (*domain.PaymentSlip, error) {
	var slip domain.PaymentSlip
	err := r.DB.QueryRow(`
		SELECT id, order_id, slip_image_url, transfer_amount, transfer_date,
		       COALESCE(transfer_ref, ''), account_name, status, submitted_at,
		       approved_at, rejected_at, COALESCE(admin_notes, '')
		FROM payment_slips
		WHERE order_id = $1
		ORDER BY submitted_at DESC
		LIMIT 1
	`, orderID).Scan(&slip.ID, &slip.OrderID, &slip.SlipImageURL, &slip.TransferAmount,
		&slip.TransferDate, &slip.TransferRef, &slip.AccountName, &slip.Status,
		&slip.SubmittedAt, &slip.ApprovedAt, &slip.RejectedAt, &slip.AdminNotes)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *PostgresRepository) InsertSlip(slip *domain.PaymentSlip) error {
	return r.DB.QueryRow(`
		INSERT INTO payment_slips (order_id, slip_image_url, transfer_amount, transfer_date,
		                           transfer_ref, account_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, submitted_at
	`, slip.OrderID, slip.SlipImageURL, slip.TransferAmount, slip.TransferDate,
		slip.TransferRef, slip.AccountName, slip.Status).Scan(&slip.ID, &slip.SubmittedAt)
}

func (r *PostgresRepository) GetSlip(slipID string) (*domain.PaymentSlip, error) {
	var slip domain.PaymentSlip
	err := r.DB.QueryRow(`
		SELECT id, order_id, slip_image_url, transfer_amount, transfer_date,
		       COALESCE(transfer_ref, ''), account_name, status, submitted_at,
		       approved_at, rejected_at, COALESCE(admin_notes, '')
		FROM payment_slips
		WHERE id = $1
	`, slipID).Scan(&slip.ID, &slip.OrderID, &slip.SlipImageURL, &slip.TransferAmount,
		&slip.TransferDate, &slip.TransferRef, &slip.AccountName, &slip.Status,
		&slip.SubmittedAt, &slip.ApprovedAt, &slip.RejectedAt, &slip.AdminNotes)

	if err == sql.ErrNoRows {
		return nil, service.ErrSlipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *PostgresRepository) UpdateSlipStatus(slip *domain.PaymentSlip) error {
	_, err := r.DB.Exec(`
		UPDATE payment_slips
		SET status = $1, approved_at = $2, rejected_at = $3, admin_notes = $4
		WHERE id = $5
	`, slip.Status, slip.ApprovedAt, slip.RejectedAt, slip.AdminNotes, slip.ID)
	return err
}
