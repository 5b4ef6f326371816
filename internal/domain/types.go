package domain

// Date and time layouts used everywhere an entity carries a timestamp.
// Dates sort lexicographically, which the reports rely on.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "03:04 PM"
)

// Book is a catalog entry.
type Book struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	ISBN       string  `json:"isbn"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	SupplierID int     `json:"supplierId"`
	CreatedAt  string  `json:"createdAt"`
	SalesCount int     `json:"salesCount"`
}

// Sale is one ledger record. Title and UnitPrice are snapshots of the
// Book at sale time; BookID may dangle if the Book is later deleted.
type Sale struct {
	ID         int     `json:"id"`
	BookID     int     `json:"bookId"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	SaleDate   string  `json:"saleDate"`
	SaleTime   string  `json:"saleTime"`
	SoldBy     string  `json:"soldBy"`
}

// Supplier is a book supplier.
type Supplier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Categories    string `json:"categories"`
	Address       string `json:"address"`
}

// Settings is the global configuration singleton.
type Settings struct {
	Currency               string `json:"currency"`
	LowStockThreshold      int    `json:"lowStockThreshold"`
	CriticalStockThreshold int    `json:"criticalStockThreshold"`
}

// Role is the access level of a session.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Session is the active user. Exactly one exists between login and
// logout; Token is issued fresh at each login.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"fullName"`
	Token    string `json:"token,omitempty"`
}

// State is the whole application document: every collection plus the
// settings singleton. It is owned by the store and serialized as one
// unit on every mutation.
type State struct {
	Books     []Book     `json:"books"`
	Sales     []Sale     `json:"sales"`
	Suppliers []Supplier `json:"suppliers"`
	Settings  Settings   `json:"settings"`
}

// FindBook returns the index of the book with the given id, or -1.
func (s *State) FindBook(id int) int {
	for i := range s.Books {
		if s.Books[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSupplier returns the index of the supplier with the given id, or -1.
func (s *State) FindSupplier(id int) int {
	for i := range s.Suppliers {
		if s.Suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

// NextBookID computes the next book id from the current catalog.
func (s *State) NextBookID() int {
	return maxID(len(s.Books), func(i int) int { return s.Books[i].ID }) + 1
}

// NextSaleID computes the next sale id from the current ledger.
func (s *State) NextSaleID() int {
	return maxID(len(s.Sales), func(i int) int { return s.Sales[i].ID }) + 1
}

// NextSupplierID computes the next supplier id.
func (s *State) NextSupplierID() int {
	return maxID(len(s.Suppliers), func(i int) int { return s.Suppliers[i].ID }) + 1
}

func maxID(n int, id func(int) int) int {
	max := 0
	for i := 0; i < n; i++ {
		if v := id(i); v > max {
			max = v
		}
	}
	return max
}
