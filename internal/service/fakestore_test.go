package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/model"
	"pizza-delivery/internal/store"

	"golang.org/x/crypto/bcrypt"
)

/* ---------- 記憶體版 store ---------- */

type memStore struct {
	mu        sync.Mutex
	users     map[string]*model.User
	orders    map[int]*model.Order
	nextUser  int
	nextOrder int
	err       error
}

func restoreGlobals() {
	getUserByUsername = store.GetUserByUsername
	emailExists = store.EmailExists
	usernameExists = store.UsernameExists
	createUser = store.CreateUser
	createOrder = store.CreateOrder
	getOrderByID = store.GetOrderByID
	getUserOrderByID = store.GetUserOrderByID
	listOrders = store.ListOrders
	listOrdersByUser = store.ListOrdersByUser
	updateOrder = store.UpdateOrder
	updateOrderStatus = store.UpdateOrderStatus
	deleteOrder = store.DeleteOrder
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

// newMemStore 替換所有 store 變數，測試結束時還原
func newMemStore(t *testing.T) *memStore {
	t.Helper()
	t.Cleanup(restoreGlobals)

	m := &memStore{users: map[string]*model.User{}, orders: map[int]*model.Order{}}
	bcryptGenerateFromPassword = func(pw []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	}

	getUserByUsername = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.err != nil {
			return nil, m.err
		}
		u, ok := m.users[name]
		if !ok {
			return nil, store.ErrNotFound
		}
		cp := *u
		return &cp, nil
	}
	emailExists = func(_ context.Context, _ database.DB, email string) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.err != nil {
			return false, m.err
		}
		for _, u := range m.users {
			if u.Email == email {
				return true, nil
			}
		}
		return false, nil
	}
	usernameExists = func(_ context.Context, _ database.DB, name string) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.err != nil {
			return false, m.err
		}
		_, ok := m.users[name]
		return ok, nil
	}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.users[u.Username]; ok {
			return nil, store.ErrDuplicate
		}
		m.nextUser++
		u.ID = m.nextUser
		u.CreatedAt = time.Now()
		cp := *u
		m.users[u.Username] = &cp
		return u, nil
	}

	createOrder = func(_ context.Context, _ database.DB, o *model.Order) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.err != nil {
			return nil, m.err
		}
		m.nextOrder++
		now := time.Now()
		created := &model.Order{
			ID:          m.nextOrder,
			Quantity:    o.Quantity,
			PizzaSize:   o.PizzaSize,
			OrderStatus: model.OrderStatusPending,
			UserID:      o.UserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		m.orders[created.ID] = created
		cp := *created
		return &cp, nil
	}
	getOrderByID = func(_ context.Context, _ database.DB, id int) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		o, ok := m.orders[id]
		if !ok {
			return nil, store.ErrNotFound
		}
		cp := *o
		return &cp, nil
	}
	getUserOrderByID = func(_ context.Context, _ database.DB, userID, id int) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		o, ok := m.orders[id]
		if !ok || o.UserID == nil || *o.UserID != userID {
			return nil, store.ErrNotFound
		}
		cp := *o
		return &cp, nil
	}
	listOrders = func(_ context.Context, _ database.DB) ([]model.Order, error) {
		return m.list(func(model.Order) bool { return true }), nil
	}
	listOrdersByUser = func(_ context.Context, _ database.DB, userID int) ([]model.Order, error) {
		return m.list(func(o model.Order) bool { return o.UserID != nil && *o.UserID == userID }), nil
	}
	updateOrder = func(_ context.Context, _ database.DB, id, qty int, size model.PizzaSize) (*model.Order, error) {
		return m.mutate(id, func(o *model.Order) { o.Quantity, o.PizzaSize = qty, size })
	}
	updateOrderStatus = func(_ context.Context, _ database.DB, id int, status model.OrderStatus) (*model.Order, error) {
		return m.mutate(id, func(o *model.Order) { o.OrderStatus = status })
	}
	deleteOrder = func(_ context.Context, _ database.DB, id int) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		o, ok := m.orders[id]
		if !ok {
			return nil, store.ErrNotFound
		}
		delete(m.orders, id)
		return o, nil
	}
	return m
}

func (m *memStore) list(keep func(model.Order) bool) []model.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Order{}
	for _, o := range m.orders {
		if keep(*o) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) mutate(id int, fn func(*model.Order)) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	fn(o)
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

// addUser 直接寫入使用者 (密碼 "pw")
func (m *memStore) addUser(t *testing.T, name string, staff, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUser++
	u := &model.User{
		ID:           m.nextUser,
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: string(hash),
		IsActive:     active,
		IsStaff:      staff,
	}
	m.users[name] = u
	return u
}
