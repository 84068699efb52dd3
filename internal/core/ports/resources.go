package ports

import (
	"context"

	"github.com/jobportal/admin-console/internal/core/domain"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

// ServicePackInput carries the writable service-pack fields.
type ServicePackInput struct {
	ServiceName    string  `json:"serviceName"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	ValidityPeriod int     `json:"validityPeriod"`
	Description    string  `json:"description"`
}

// RoleInput carries the writable role fields.
type RoleInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogAPI covers the category, service-pack and role families of the
// remote resource API. Every call is made on behalf of the session token.
type CatalogAPI interface {
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, input CategoryInput) error
	UpdateCategory(ctx context.Context, token string, id int64, input CategoryInput) error
	DeleteCategory(ctx context.Context, token string, id int64) error

	ListServicePacks(ctx context.Context, token string) ([]domain.ServicePack, error)
	CreateServicePack(ctx context.Context, token string, input ServicePackInput) error
	UpdateServicePack(ctx context.Context, token string, id int64, input ServicePackInput) error
	DeleteServicePack(ctx context.Context, token string, id int64) error

	ListRoles(ctx context.Context, token string) ([]domain.Role, error)
	CreateRole(ctx context.Context, token string, input RoleInput) error
	DeleteRole(ctx context.Context, token string, id int64) error
}

// DirectoryAPI covers the people-shaped collections. Employers and customers
// are deleted by email, their natural key in the backend contract.
type DirectoryAPI interface {
	ListEmployers(ctx context.Context, token string) ([]domain.Employer, error)
	DeleteEmployer(ctx context.Context, token string, email string) error

	ListCustomers(ctx context.Context, token string) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, token string, email string) error

	ListAddresses(ctx context.Context, token string) ([]domain.Address, error)

	ListReports(ctx context.Context, token string) ([]domain.Report, error)
	DeleteReport(ctx context.Context, token string, id int64) error
}

// PostingsAPI covers jobs and their active-flag transitions.
type PostingsAPI interface {
	ListJobs(ctx context.Context, token string) ([]domain.Job, error)
	DeleteJob(ctx context.Context, token string, id int64) error
	SetJobActive(ctx context.Context, token string, id int64, active bool) error
}

// OrdersAPI covers service-pack orders, the single-order detail view and
// status transitions.
type OrdersAPI interface {
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, token string, id int64) error
	SetOrderStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) error
}

// YearTotal is one row of the revenue-by-year aggregate.
type YearTotal struct {
	Year        int     `json:"year"`
	TotalAmount float64 `json:"totalAmount"`
}

// EmployerTotal is one row of the revenue-by-employer aggregate.
type EmployerTotal struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"totalAmount"`
}

// TopEmployer is the employer with the highest order total.
type TopEmployer struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"totalAmount"`
}

// MetricsAPI covers the dashboard aggregate endpoints.
type MetricsAPI interface {
	CountCustomers(ctx context.Context, token string) (int64, error)
	CountEmployers(ctx context.Context, token string) (int64, error)
	CountJobs(ctx context.Context, token string) (int64, error)
	CountOrders(ctx context.Context, token string) (int64, error)
	TotalAmount(ctx context.Context, token string) (float64, error)
	TotalsByYear(ctx context.Context, token string) ([]YearTotal, error)
	TotalsByEmployer(ctx context.Context, token string) ([]EmployerTotal, error)
	TopEmployer(ctx context.Context, token string) (*TopEmployer, error)
}
