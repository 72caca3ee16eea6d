package api

import (
	"context"

	"example.com/shop/model"
)

type CreateOrderRequest struct {
	Items []model.Item
}

type OrderResponse struct {
	Order model.Order
}

type Server struct {
	repo model.Repository
}

func (s *Server) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	o := buildOrder(req)
	return &OrderResponse{Order: o}, nil
}

func (s *Server) ListOrders(ctx context.Context, status model.Status) ([]model.Order, error) {
	return nil, nil
}

func (s *Server) internal() {}

func buildOrder(req CreateOrderRequest) model.Order {
	var c model.Customer
	return model.Order{Customer: &c}
}

func Routes(s *Server) map[string]any {
	return map[string]any{
		"create": s.CreateOrder,
		"list":   s.ListOrders,
	}
}
