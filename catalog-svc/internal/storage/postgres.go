package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	"redpotion-core/catalog-svc/internal/domain"
	"redpotion-core/catalog-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(image_url, ''),
		       status, delivery_fee, min_order_amount, created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.ImageURL,
		&rest.Status, &rest.DeliveryFee, &rest.MinOrderAmount, &rest.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, service.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetMenu(id string) (*domain.Menu, error) {
	rest, err := r.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT c.id, c.name,
		       i.id, i.restaurant_id, i.category_id, i.name, COALESCE(i.description, ''),
		       i.price, COALESCE(i.original_price, 0), COALESCE(i.image_url, ''), i.available
		FROM menu_categories c
		JOIN menu_items i ON i.category_id = c.id
		WHERE c.restaurant_id = $1
		ORDER BY c.position, c.id, i.name
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.MenuCategory{}
	index := map[string]int{}
	for rows.Next() {
		var categoryID, categoryName string
		var item domain.MenuItem
		err := rows.Scan(&categoryID, &categoryName,
			&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.OriginalPrice, &item.ImageURL, &item.Available)
		if err != nil {
			continue
		}

		item.AddOns, _ = r.itemAddOns(item.ID)

		pos, ok := index[categoryID]
		if !ok {
			categories = append(categories, domain.MenuCategory{ID: categoryID, Name: categoryName})
			pos = len(categories) - 1
			index[categoryID] = pos
		}
		categories[pos].Items = append(categories[pos].Items, item)
	}

	return &domain.Menu{Restaurant: *rest, Categories: categories}, nil
}

func (r *PostgresRepository) GetMenuItem(itemID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, category_id, name, COALESCE(description, ''),
		       price, COALESCE(original_price, 0), COALESCE(image_url, ''), available
		FROM menu_items
		WHERE id = $1
	`, itemID).Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name, &item.Description,
		&item.Price, &item.OriginalPrice, &item.ImageURL, &item.Available)

	if err == sql.ErrNoRows {
		return nil, service.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	item.AddOns, err = r.itemAddOns(itemID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) itemAddOns(itemID string) ([]domain.AddOn, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price
		FROM menu_item_addons
		WHERE menu_item_id = $1
		ORDER BY name
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addOns []domain.AddOn
	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			continue
		}
		addOns = append(addOns, a)
	}
	return addOns, nil
}

func (r *PostgresRepository) ListRestaurants(offset, limit int, status, search string) ([]domain.Restaurant, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		where += " AND status = $" + strconv.Itoa(len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		where += " AND name ILIKE $" + strconv.Itoa(len(args))
	}

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(image_url, ''),
		       status, delivery_fee, min_order_amount, created_at
		FROM restaurants %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.ImageURL,
			&rest.Status, &rest.DeliveryFee, &rest.MinOrderAmount, &rest.CreatedAt)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, total, nil
}

func (r *PostgresRepository) UpdateRestaurant(id string, patch domain.RestaurantPatch) (*domain.Restaurant, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.DeliveryFee != nil {
		add("delivery_fee", *patch.DeliveryFee)
	}
	if patch.MinOrderAmount != nil {
		add("min_order_amount", *patch.MinOrderAmount)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}

	if len(set) == 0 {
		return r.GetRestaurant(id)
	}

	args = append(args, id)
	query := "UPDATE restaurants SET "
	for i, clause := range set {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	result, err := r.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, service.ErrRestaurantNotFound
	}

	return r.GetRestaurant(id)
}
