package store

import (
	"context"
	"fmt"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, quantity, pizza_size, order_status, user_id, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.Quantity,
		&o.PizzaSize,
		&o.OrderStatus,
		&o.UserID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder 新增訂單；狀態一律由資料庫預設為 PENDING
func CreateOrder(ctx context.Context, db database.DB, o *model.Order) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO orders (quantity, pizza_size, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+orderColumns,
		o.Quantity,
		o.PizzaSize,
		o.UserID,
	)
	created := &model.Order{}
	if err := scanOrder(row, created); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", translate(err))
	}
	return created, nil
}

func GetOrderByID(ctx context.Context, db database.DB, id int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", translate(err))
	}
	return o, nil
}

// GetUserOrderByID 只在該使用者的訂單中查找
func GetUserOrderByID(ctx context.Context, db database.DB, userID, id int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("GetUserOrderByID: %w", translate(err))
	}
	return o, nil
}

func ListOrders(ctx context.Context, db database.DB) ([]model.Order, error) {
	rows, err := db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	return orders, nil
}

func ListOrdersByUser(ctx context.Context, db database.DB, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	return orders, nil
}

func UpdateOrder(ctx context.Context, db database.DB, id, quantity int, size model.PizzaSize) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`UPDATE orders
		 SET quantity = $1, pizza_size = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING `+orderColumns,
		quantity,
		size,
		id,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("UpdateOrder: %w", translate(err))
	}
	return o, nil
}

func UpdateOrderStatus(ctx context.Context, db database.DB, id int, status model.OrderStatus) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`UPDATE orders
		 SET order_status = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+orderColumns,
		status,
		id,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("UpdateOrderStatus: %w", translate(err))
	}
	return o, nil
}

// DeleteOrder 刪除並回傳被刪除的訂單
func DeleteOrder(ctx context.Context, db database.DB, id int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM orders WHERE id = $1 RETURNING `+orderColumns,
		id,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("DeleteOrder: %w", translate(err))
	}
	return o, nil
}
