package domain

// UnknownReference is rendered when a foreign key points at no fetched record.
// A join miss is not an error; the row still displays.
const UnknownReference = "Unknown"

// Category groups jobs under a named heading.
type Category struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

// ServicePack is a purchasable posting bundle sold to employers.
type ServicePack struct {
	ID             int64   `json:"id"`
	ServiceName    string  `json:"serviceName"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	ValidityPeriod int     `json:"validityPeriod"`
	Description    string  `json:"description"`
}

// Role is an access role assignable to accounts.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Employer is a company account that posts jobs.
type Employer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Customer is a job-seeker account. AddressName is resolved client-side from
// AddressID and is never sent by the backend.
type Customer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	AddressID   int64  `json:"addressId"`
	AddressName string `json:"addressName,omitempty"`
}

// Address is a reference collection joined into customers.
type Address struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Job is a posting owned by an employer. The backend models the active flag
// as a boolean field named "status".
type Job struct {
	ID                 int64  `json:"id"`
	JobName            string `json:"jobName"`
	RecruitmentDetails string `json:"recruitmentDetails"`
	CategoryID         int64  `json:"categoryId"`
	CategoryName       string `json:"categoryName,omitempty"`
	Active             bool   `json:"status"`
}

// OrderStatus is the lifecycle state of a service-pack order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is a purchase of a service pack by an employer.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customerName"`
	ServiceName  string      `json:"serviceName,omitempty"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       OrderStatus `json:"status"`
	OrderDate    string      `json:"orderDate,omitempty"`
}

// Report is a complaint or issue filed by a portal user.
type Report struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
}
