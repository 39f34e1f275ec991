package orders

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/events"
	"pizza-delivery/internal/middleware"
	"pizza-delivery/internal/model"
	"pizza-delivery/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	placeOrder = service.PlaceOrder
	listAllOrders = service.ListAllOrders
	getOrderByID = service.GetOrderByID
	listCurrentUserOrders = service.ListCurrentUserOrders
	getCurrentUserOrderByID = service.GetCurrentUserOrderByID
	updateOrder = service.UpdateOrder
	updateOrderStatus = service.UpdateOrderStatus
	deleteOrder = service.DeleteOrder
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("quantity must be greater than 0") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

var (
	db  = &database.FakeDB{}
	pub = &events.FakePublisher{}
)

func sampleOrder(id int) *model.Order {
	owner := 1
	return &model.Order{ID: id, Quantity: 2, PizzaSize: model.PizzaSizeMedium, OrderStatus: model.OrderStatusPending, UserID: &owner}
}

// newCtx 建立已通過 RequireAuth 的 context，subject 為 alice
func newCtx(e *echo.Echo, method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextClaimsKey, &service.CustomClaims{
		TokenType:        service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	})
	if id != "" {
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
	}
	return ctx, rec
}

func validatingEcho() *echo.Echo {
	e := echo.New()
	e.Validator = okValidator{}
	return e
}

func TestHelloHandler(t *testing.T) {
	ctx, rec := newCtx(echo.New(), http.MethodGet, "", "")
	require.NoError(t, HelloHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}

func TestPlaceOrderHandler(t *testing.T) {
	t.Cleanup(restore)

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		e.Binder = errBinder{}
		ctx, rec := newCtx(e, http.MethodPost, `{}`, "")
		require.NoError(t, PlaceOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newCtx(e, http.MethodPost, `{"quantity":0}`, "")
		require.NoError(t, PlaceOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		placeOrder = func(_ context.Context, _ database.DB, _ events.Publisher, subject string, qty int, size model.PizzaSize) (*model.Order, error) {
			require.Equal(t, "alice", subject)
			require.Equal(t, 2, qty)
			require.Equal(t, model.PizzaSizeMedium, size)
			return sampleOrder(5), nil
		}
		ctx, rec := newCtx(validatingEcho(), http.MethodPost, `{"quantity":2,"pizza_size":"MEDIUM"}`, "")
		require.NoError(t, PlaceOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"order_status":"PENDING"`)
		require.Contains(t, rec.Body.String(), `"id":5`)
	})

	t.Run("service validation", func(t *testing.T) {
		placeOrder = func(context.Context, database.DB, events.Publisher, string, int, model.PizzaSize) (*model.Order, error) {
			return nil, fmt.Errorf("%w: quantity must be greater than 0", service.ErrValidation)
		}
		ctx, rec := newCtx(validatingEcho(), http.MethodPost, `{"quantity":-1}`, "")
		require.NoError(t, PlaceOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAndGetOrders(t *testing.T) {
	t.Cleanup(restore)

	t.Run("list forbidden", func(t *testing.T) {
		listAllOrders = func(context.Context, database.DB, string) ([]model.Order, error) {
			return nil, fmt.Errorf("%w: staff only", service.ErrForbidden)
		}
		ctx, rec := newCtx(echo.New(), http.MethodGet, "", "")
		require.NoError(t, ListOrdersHandler(db)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list ok", func(t *testing.T) {
		listAllOrders = func(context.Context, database.DB, string) ([]model.Order, error) {
			return []model.Order{*sampleOrder(1), *sampleOrder(2)}, nil
		}
		ctx, rec := newCtx(echo.New(), http.MethodGet, "", "")
		require.NoError(t, ListOrdersHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 2, strings.Count(rec.Body.String(), `"pizza_size"`))
	})

	t.Run("list empty is array", func(t *testing.T) {
		listAllOrders = func(context.Context, database.DB, string) ([]model.Order, error) { return nil, nil }
		ctx, rec := newCtx(echo.New(), http.MethodGet, "", "")
		require.NoError(t, ListOrdersHandler(db)(ctx))
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("get bad id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3"} {
			ctx, rec := newCtx(echo.New(), http.MethodGet, "", id)
			require.NoError(t, GetOrderHandler(db)(ctx))
			require.Equal(t, http.StatusBadRequest, rec.Code, id)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		getOrderByID = func(_ context.Context, _ database.DB, _ string, id int) (*model.Order, error) {
			return nil, fmt.Errorf("order %d %w", id, service.ErrNotFound)
		}
		ctx, rec := newCtx(echo.New(), http.MethodGet, "", "9")
		require.NoError(t, GetOrderHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"detail":"order 9 not found"}`, rec.Body.String())
	})

	t.Run("get ok", func(t *testing.T) {
		getOrderByID = func(_ context.Context, _ database.DB, _ string, id int) (*model.Order, error) {
			return sampleOrder(id), nil
		}
		ctx, rec := newCtx(echo.New(), http.MethodGet, "", "7")
		require.NoError(t, GetOrderHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":7`)
	})
}

func TestMyOrders(t *testing.T) {
	t.Cleanup(restore)

	listCurrentUserOrders = func(_ context.Context, _ database.DB, subject string) ([]model.Order, error) {
		require.Equal(t, "alice", subject)
		return []model.Order{*sampleOrder(1)}, nil
	}
	ctx, rec := newCtx(echo.New(), http.MethodGet, "", "")
	require.NoError(t, ListMyOrdersHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	listCurrentUserOrders = func(context.Context, database.DB, string) ([]model.Order, error) {
		return nil, service.ErrUnauthorized
	}
	ctx, rec = newCtx(echo.New(), http.MethodGet, "", "")
	require.NoError(t, ListMyOrdersHandler(db)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	getCurrentUserOrderByID = func(_ context.Context, _ database.DB, _ string, id int) (*model.Order, error) {
		if id == 1 {
			return sampleOrder(1), nil
		}
		return nil, fmt.Errorf("order %d %w", id, service.ErrNotFound)
	}
	ctx, rec = newCtx(echo.New(), http.MethodGet, "", "1")
	require.NoError(t, GetMyOrderHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, rec = newCtx(echo.New(), http.MethodGet, "", "2")
	require.NoError(t, GetMyOrderHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	ctx, rec = newCtx(echo.New(), http.MethodGet, "", "x")
	require.NoError(t, GetMyOrderHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderHandler(t *testing.T) {
	t.Cleanup(restore)

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newCtx(validatingEcho(), http.MethodPut, `{"quantity":1}`, "nope")
		require.NoError(t, UpdateOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		e.Binder = errBinder{}
		ctx, rec := newCtx(e, http.MethodPut, `{}`, "1")
		require.NoError(t, UpdateOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newCtx(e, http.MethodPut, `{}`, "1")
		require.NoError(t, UpdateOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		updateOrder = func(context.Context, database.DB, events.Publisher, string, int, int, model.PizzaSize) (*model.Order, error) {
			return nil, fmt.Errorf("%w: order belongs to another user", service.ErrForbidden)
		}
		ctx, rec := newCtx(validatingEcho(), http.MethodPut, `{"quantity":3,"pizza_size":"LARGE"}`, "1")
		require.NoError(t, UpdateOrderHandler(db, pub)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	for _, method := range []string{http.MethodPut, http.MethodGet} {
		t.Run("ok "+method, func(t *testing.T) {
			updateOrder = func(_ context.Context, _ database.DB, _ events.Publisher, _ string, id, qty int, size model.PizzaSize) (*model.Order, error) {
				o := sampleOrder(id)
				o.Quantity, o.PizzaSize = qty, size
				return o, nil
			}
			ctx, rec := newCtx(validatingEcho(), method, `{"quantity":3,"pizza_size":"LARGE"}`, "4")
			require.NoError(t, UpdateOrderHandler(db, pub)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), `"quantity":3`)
			require.Contains(t, rec.Body.String(), `"pizza_size":"LARGE"`)
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	t.Cleanup(restore)

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newCtx(validatingEcho(), http.MethodPatch, `{"order_status":"DELIVERED"}`, "")
		require.NoError(t, UpdateOrderStatusHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newCtx(e, http.MethodPatch, `{"order_status":"LOST"}`, "1")
		require.NoError(t, UpdateOrderStatusHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		e.Binder = errBinder{}
		ctx, rec := newCtx(e, http.MethodPatch, `{}`, "1")
		require.NoError(t, UpdateOrderStatusHandler(db, pub)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		updateOrderStatus = func(context.Context, database.DB, events.Publisher, string, int, model.OrderStatus) (*model.Order, error) {
			return nil, service.ErrForbidden
		}
		ctx, rec := newCtx(validatingEcho(), http.MethodPatch, `{"order_status":"DELIVERED"}`, "1")
		require.NoError(t, UpdateOrderStatusHandler(db, pub)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		updateOrderStatus = func(_ context.Context, _ database.DB, _ events.Publisher, _ string, id int, status model.OrderStatus) (*model.Order, error) {
			o := sampleOrder(id)
			o.OrderStatus = status
			return o, nil
		}
		ctx, rec := newCtx(validatingEcho(), http.MethodPatch, `{"order_status":"DELIVERED"}`, "1")
		require.NoError(t, UpdateOrderStatusHandler(db, pub)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"order_status":"DELIVERED"`)
	})
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Cleanup(restore)

	ctx, rec := newCtx(echo.New(), http.MethodDelete, "", "zero")
	require.NoError(t, DeleteOrderHandler(db, pub)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	deleteOrder = func(_ context.Context, _ database.DB, _ events.Publisher, _ string, id int) (*model.Order, error) {
		if id == 1 {
			return sampleOrder(1), nil
		}
		return nil, fmt.Errorf("order %d %w", id, service.ErrNotFound)
	}
	ctx, rec = newCtx(echo.New(), http.MethodDelete, "", "1")
	require.NoError(t, DeleteOrderHandler(db, pub)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	ctx, rec = newCtx(echo.New(), http.MethodDelete, "", "2")
	require.NoError(t, DeleteOrderHandler(db, pub)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	boom := errors.New("db down")
	deleteOrder = func(context.Context, database.DB, events.Publisher, string, int) (*model.Order, error) {
		return nil, boom
	}
	ctx, _ = newCtx(echo.New(), http.MethodDelete, "", "1")
	require.ErrorIs(t, DeleteOrderHandler(db, pub)(ctx), boom)
}
