// Package service 實作註冊、登入、token 與訂單的業務規則；store 呼叫透過套件變數，測試可替換
package service

import "pizza-delivery/internal/store"

var (
	getUserByUsername = store.GetUserByUsername
	emailExists       = store.EmailExists
	usernameExists    = store.UsernameExists
	createUser        = store.CreateUser

	createOrder       = store.CreateOrder
	getOrderByID      = store.GetOrderByID
	getUserOrderByID  = store.GetUserOrderByID
	listOrders        = store.ListOrders
	listOrdersByUser  = store.ListOrdersByUser
	updateOrder       = store.UpdateOrder
	updateOrderStatus = store.UpdateOrderStatus
	deleteOrder       = store.DeleteOrder
)
