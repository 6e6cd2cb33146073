package model

type Product struct {
	DTO
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	IsActive     bool    `json:"isActive"`
}

type Products []Product

type Category struct {
	DTO
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Categories []Category

// DiningTable carries the externally visible occupancy flag: true means the
// table is free, false means some open dine-in order names it.
type DiningTable struct {
	DTO
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

type DiningTables []DiningTable

type Staff struct {
	DTO
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"` // WAITER, DRIVER, CASHIER...
	IsActive    bool   `json:"isActive"`
}

type Staffs []Staff

type Customer struct {
	DTO
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Address   string  `json:"address"`
	IsActive  bool    `json:"isActive"`
}

type Customers []Customer

type CatalogFilter struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	CategoryID *uint  `json:"categoryId"`
	Role       string `json:"role"`
	Active     *bool  `json:"active"`
}
