package entities

// CustomerFilter narrows a customer's own order list.
type CustomerFilter struct {
	Status *Status
}

// AdminFilter drives the back-office order list: free-text search over
// order and customer ids, optional status filter, page-based pagination.
type AdminFilter struct {
	Search   string
	Status   *Status
	Page     int
	PageSize int
}

type OrderPage struct {
	Orders   []Order
	Total    int64
	Page     int
	PageSize int
}
