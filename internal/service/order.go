package service

import (
	"context"
	"errors"
	"fmt"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/events"
	"pizza-delivery/internal/metrics"
	"pizza-delivery/internal/model"
	"pizza-delivery/internal/store"
)

func orderNotFound(id int) error {
	return fmt.Errorf("order %d %w", id, ErrNotFound)
}

func validateOrder(quantity int, size model.PizzaSize) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}
	if !size.Valid() {
		return fmt.Errorf("%w: unknown pizza size %q", ErrValidation, size)
	}
	return nil
}

func requireStaff(u *model.User) error {
	if !u.IsStaff {
		return fmt.Errorf("%w: staff only", ErrForbidden)
	}
	return nil
}

// mapOrderErr 將 store.ErrNotFound 轉為帶 id 的 ErrNotFound
func mapOrderErr(id int, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return orderNotFound(id)
	}
	return err
}

func publish(ctx context.Context, pub events.Publisher, eventType string, actor *model.User, o *model.Order) {
	pub.Publish(ctx, events.OrderEvent{
		Type:       eventType,
		Actor:      actor.Username,
		Order:      *o,
		OccurredAt: timeNow().UTC(),
	})
}

// PlaceOrder 建立屬於 subject 的訂單；size 為空時預設 SMALL
func PlaceOrder(ctx context.Context, db database.DB, pub events.Publisher, subject string, quantity int, size model.PizzaSize) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = model.PizzaSizeSmall
	}
	if err := validateOrder(quantity, size); err != nil {
		return nil, err
	}

	o, err := createOrder(ctx, db, &model.Order{
		Quantity:  quantity,
		PizzaSize: size,
		UserID:    &u.ID,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderPlaced(string(o.PizzaSize))
	publish(ctx, pub, events.TypeOrderPlaced, u, o)
	return o, nil
}

// ListAllOrders 僅限 staff
func ListAllOrders(ctx context.Context, db database.DB, subject string) ([]model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(u); err != nil {
		return nil, err
	}
	return listOrders(ctx, db)
}

// GetOrderByID 僅限 staff
func GetOrderByID(ctx context.Context, db database.DB, subject string, id int) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(u); err != nil {
		return nil, err
	}
	o, err := getOrderByID(ctx, db, id)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}
	return o, nil
}

func ListCurrentUserOrders(ctx context.Context, db database.DB, subject string) ([]model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	return listOrdersByUser(ctx, db, u.ID)
}

func GetCurrentUserOrderByID(ctx context.Context, db database.DB, subject string, id int) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	o, err := getUserOrderByID(ctx, db, u.ID, id)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}
	return o, nil
}

// loadOwnedOrder 取得訂單並確認呼叫者為擁有者或 staff
func loadOwnedOrder(ctx context.Context, db database.DB, u *model.User, id int) (*model.Order, error) {
	o, err := getOrderByID(ctx, db, id)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}
	if !u.IsStaff && !u.Owns(*o) {
		return nil, fmt.Errorf("%w: order belongs to another user", ErrForbidden)
	}
	return o, nil
}

// UpdateOrder 覆寫 quantity 與 pizza_size；僅擁有者或 staff
func UpdateOrder(ctx context.Context, db database.DB, pub events.Publisher, subject string, id, quantity int, size model.PizzaSize) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = model.PizzaSizeSmall
	}
	if err := validateOrder(quantity, size); err != nil {
		return nil, err
	}
	if _, err := loadOwnedOrder(ctx, db, u, id); err != nil {
		return nil, err
	}

	o, err := updateOrder(ctx, db, id, quantity, size)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}

	metrics.RecordOrderUpdated()
	publish(ctx, pub, events.TypeOrderUpdated, u, o)
	return o, nil
}

// UpdateOrderStatus 僅限 staff
func UpdateOrderStatus(ctx context.Context, db database.DB, pub events.Publisher, subject string, id int, status model.OrderStatus) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(u); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	o, err := updateOrderStatus(ctx, db, id, status)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}

	metrics.RecordOrderStatusChange(string(o.OrderStatus))
	publish(ctx, pub, events.TypeOrderStatusChanged, u, o)
	return o, nil
}

// DeleteOrder 刪除訂單並回傳其最後狀態；僅擁有者或 staff
func DeleteOrder(ctx context.Context, db database.DB, pub events.Publisher, subject string, id int) (*model.Order, error) {
	u, err := CurrentUser(ctx, db, subject)
	if err != nil {
		return nil, err
	}
	if _, err := loadOwnedOrder(ctx, db, u, id); err != nil {
		return nil, err
	}

	o, err := deleteOrder(ctx, db, id)
	if err != nil {
		return nil, mapOrderErr(id, err)
	}

	metrics.RecordOrderDeleted()
	publish(ctx, pub, events.TypeOrderDeleted, u, o)
	return o, nil
}
