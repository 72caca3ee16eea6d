package model

type Status string

type Item struct {
	SKU      string
	Quantity int
}

type Customer struct {
	Name string
}

type Order struct {
	ID       string
	Status   Status
	Items    []Item
	Customer *Customer
}

type OrderAlias = Order

type Repository interface {
	Save(o Order) error
}

type internalNote struct {
	text string
}

func NewOrder(id string) Order {
	return Order{ID: id}
}
