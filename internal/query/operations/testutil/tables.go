package testutil

import (
	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/schema"
)

// CreateTestTable creates an empty table with the given columns
func CreateTestTable(name string, columns ...string) *schema.Table {
	return &schema.Table{
		Name:   name,
		Schema: schema.Schema(columns),
		Rows:   []data.Row{},
	}
}

// CreateCustomersTable creates a customers table with sample data for testing
func CreateCustomersTable() *schema.Table {
	return &schema.Table{
		Name:   "customers",
		Schema: schema.Schema{"customer_guid", "first_name", "last_name", "email"},
		Rows: []data.Row{
			{"c3", "Ninnette", "Wasmuth", "nwasmuth1@washington.edu"},
			{"c1", "Ailey", "Benstead", "abenstead0@state.gov"},
			{"c2", "Bram", "Oakes", "boakes2@example.com"},
			// Note: c4 (Dita) has no orders
			{"c4", "Dita", "Pike", "dpike3@example.com"},
		},
	}
}

// CreateOrdersTable creates an orders table with sample data for testing
func CreateOrdersTable() *schema.Table {
	return &schema.Table{
		Name:   "orders",
		Schema: schema.Schema{"order_guid", "customer_guid", "order_date", "total"},
		Rows: []data.Row{
			{"o1", "c1", "2021-01-04", "999.99"},
			{"o2", "c3", "2021-02-11", "25.50"},
			{"o3", "c1", "2021-03-20", "75.00"},
			// Note: c9 is not a known customer
			{"o4", "c9", "2021-04-02", "12.00"},
		},
	}
}
