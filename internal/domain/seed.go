package domain

// DefaultSettings are the settings the seed dataset starts with.
var DefaultSettings = Settings{
	Currency:               "USD",
	LowStockThreshold:      10,
	CriticalStockThreshold: 5,
}

// Seed builds the initial demo dataset. It is used on first start and
// whenever the persisted document cannot be read, so startup never
// leaves the system in an undefined state.
//
// Seed sale dates are relative to the clock: three sales dated today,
// one dated yesterday, so the dashboard and daily report have data on
// any day the demo runs.
func Seed(c Clock, settings Settings) *State {
	today := Today(c)
	yesterday := c.Now().AddDate(0, 0, -1).Format(DateLayout)

	return &State{
		Books: []Book{
			{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "9780743273565", Price: 12.99, Quantity: 25, Category: "Fiction", SupplierID: 1, CreatedAt: "2024-01-15", SalesCount: 5},
			{ID: 2, Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", ISBN: "9780262033848", Price: 89.99, Quantity: 15, Category: "Technology", SupplierID: 2, CreatedAt: "2024-01-10", SalesCount: 3},
			{ID: 3, Title: "The Lean Startup", Author: "Eric Ries", ISBN: "9780307887894", Price: 24.99, Quantity: 8, Category: "Business", SupplierID: 1, CreatedAt: "2024-01-05", SalesCount: 7},
			{ID: 4, Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", Price: 45.99, Quantity: 12, Category: "Technology", SupplierID: 2, CreatedAt: "2024-01-20", SalesCount: 4},
			{ID: 5, Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780061120084", Price: 14.99, Quantity: 2, Category: "Fiction", SupplierID: 1, CreatedAt: "2024-01-25", SalesCount: 6},
			{ID: 6, Title: "The Geico Handbook", Author: "Ashburn Giddick", ISBN: "9780061120090", Price: 25.99, Quantity: 10, Category: "Fiction", SupplierID: 1, CreatedAt: "2024-01-25", SalesCount: 6},
			{ID: 7, Title: "Parenting Troubles", Author: "Roy Harper", ISBN: "9780061190084", Price: 34.99, Quantity: 20, Category: "Fiction", SupplierID: 1, CreatedAt: "2024-01-25", SalesCount: 6},
			{ID: 8, Title: "Sapiens: A Brief History of Humankind", Author: "Yuval Noah Harari", ISBN: "9780062316097", Price: 19.99, Quantity: 18, Category: "Science", SupplierID: 2, CreatedAt: "2024-01-30", SalesCount: 2},
		},
		Sales: []Sale{
			{ID: 1, BookID: 1, Title: "The Great Gatsby", Quantity: 1, UnitPrice: 12.99, TotalPrice: 12.99, SaleDate: today, SaleTime: "10:30 AM", SoldBy: "admin"},
			{ID: 2, BookID: 3, Title: "The Lean Startup", Quantity: 2, UnitPrice: 24.99, TotalPrice: 49.98, SaleDate: today, SaleTime: "11:45 AM", SoldBy: "cashier"},
			{ID: 3, BookID: 4, Title: "Clean Code", Quantity: 1, UnitPrice: 45.99, TotalPrice: 45.99, SaleDate: today, SaleTime: "02:15 PM", SoldBy: "admin"},
			{ID: 4, BookID: 2, Title: "Introduction to Algorithms", Quantity: 1, UnitPrice: 89.99, TotalPrice: 89.99, SaleDate: yesterday, SaleTime: "03:30 PM", SoldBy: "admin"},
		},
		Suppliers: []Supplier{
			{ID: 1, Name: "Book Distributors Inc", ContactPerson: "Sarah Johnson", Email: "sarah@bookdist.com", Phone: "+1-555-1234", Categories: "Fiction, Business, Technology", Address: "123 Publishing Ave, New York, NY"},
			{ID: 2, Name: "Global Publishers Ltd", ContactPerson: "Michael Chen", Email: "michael@globalpub.com", Phone: "+1-555-5678", Categories: "Science, Education, Reference", Address: "456 Book St, San Francisco, CA"},
		},
		Settings: settings,
	}
}
