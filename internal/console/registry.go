// Package console instantiates the generic table controller once per managed
// entity, binding each one to the remote resource API through a declarative
// descriptor: filter fields, page size, row identity, and the load closure
// with its reference joins.
package console

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
	"github.com/jobportal/admin-console/internal/core/table"
)

// Registry builds controllers for all managed collections.
type Registry struct {
	catalog   ports.CatalogAPI
	directory ports.DirectoryAPI
	postings  ports.PostingsAPI
	orders    ports.OrdersAPI
	verifier  table.RoleVerifier
	log       zerolog.Logger
}

func NewRegistry(catalog ports.CatalogAPI, directory ports.DirectoryAPI, postings ports.PostingsAPI, orders ports.OrdersAPI, verifier table.RoleVerifier, log zerolog.Logger) *Registry {
	return &Registry{
		catalog:   catalog,
		directory: directory,
		postings:  postings,
		orders:    orders,
		verifier:  verifier,
		log:       log,
	}
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

// Categories manages the job categories table, filtered by name and
// description.
func (r *Registry) Categories() *table.Controller[domain.Category] {
	return table.New(table.Descriptor[domain.Category]{
		Entity: "category",
		ID:     func(c domain.Category) string { return formatID(c.ID) },
		FilterFields: []func(domain.Category) string{
			func(c domain.Category) string { return c.CategoryName },
			func(c domain.Category) string { return c.Description },
		},
		Load: func(ctx context.Context, token string) ([]domain.Category, error) {
			return r.catalog.ListCategories(ctx, token)
		},
	}, r.verifier, r.log)
}

// ServicePacks manages the service-pack table.
func (r *Registry) ServicePacks() *table.Controller[domain.ServicePack] {
	return table.New(table.Descriptor[domain.ServicePack]{
		Entity: "service",
		ID:     func(s domain.ServicePack) string { return formatID(s.ID) },
		FilterFields: []func(domain.ServicePack) string{
			func(s domain.ServicePack) string { return s.ServiceName },
			func(s domain.ServicePack) string { return s.Description },
		},
		Load: func(ctx context.Context, token string) ([]domain.ServicePack, error) {
			return r.catalog.ListServicePacks(ctx, token)
		},
	}, r.verifier, r.log)
}

// Roles manages the access-role table.
func (r *Registry) Roles() *table.Controller[domain.Role] {
	return table.New(table.Descriptor[domain.Role]{
		Entity: "role",
		ID:     func(ro domain.Role) string { return formatID(ro.ID) },
		FilterFields: []func(domain.Role) string{
			func(ro domain.Role) string { return ro.Name },
			func(ro domain.Role) string { return ro.Description },
		},
		Load: func(ctx context.Context, token string) ([]domain.Role, error) {
			return r.catalog.ListRoles(ctx, token)
		},
	}, r.verifier, r.log)
}

// Employers manages the employer table. Rows are keyed by email, the natural
// key the backend deletes by.
func (r *Registry) Employers() *table.Controller[domain.Employer] {
	return table.New(table.Descriptor[domain.Employer]{
		Entity: "employer",
		ID:     func(e domain.Employer) string { return e.Email },
		FilterFields: []func(domain.Employer) string{
			func(e domain.Employer) string { return e.FirstName },
			func(e domain.Employer) string { return e.LastName },
			func(e domain.Employer) string { return e.Email },
		},
		Load: func(ctx context.Context, token string) ([]domain.Employer, error) {
			return r.directory.ListEmployers(ctx, token)
		},
	}, r.verifier, r.log)
}

// Customers manages the customer table, joining each row's addressId to the
// address collection for a display name.
func (r *Registry) Customers() *table.Controller[domain.Customer] {
	return table.New(table.Descriptor[domain.Customer]{
		Entity: "customer",
		ID:     func(c domain.Customer) string { return c.Email },
		FilterFields: []func(domain.Customer) string{
			func(c domain.Customer) string { return c.FirstName },
			func(c domain.Customer) string { return c.LastName },
			func(c domain.Customer) string { return c.Email },
		},
		Load: func(ctx context.Context, token string) ([]domain.Customer, error) {
			customers, err := r.directory.ListCustomers(ctx, token)
			if err != nil {
				return nil, err
			}
			addresses, err := r.directory.ListAddresses(ctx, token)
			if err != nil {
				return nil, err
			}
			idx := table.NameIndex(addresses,
				func(a domain.Address) int64 { return a.ID },
				func(a domain.Address) string { return a.Name })
			for i := range customers {
				customers[i].AddressName = table.LookupName(idx, customers[i].AddressID)
			}
			return customers, nil
		},
	}, r.verifier, r.log)
}

// Jobs manages the job-posting table, joining categoryId to a category name.
func (r *Registry) Jobs() *table.Controller[domain.Job] {
	return table.New(table.Descriptor[domain.Job]{
		Entity: "job",
		ID:     func(j domain.Job) string { return formatID(j.ID) },
		FilterFields: []func(domain.Job) string{
			func(j domain.Job) string { return j.JobName },
			func(j domain.Job) string { return j.RecruitmentDetails },
		},
		Load: func(ctx context.Context, token string) ([]domain.Job, error) {
			jobs, err := r.postings.ListJobs(ctx, token)
			if err != nil {
				return nil, err
			}
			categories, err := r.catalog.ListCategories(ctx, token)
			if err != nil {
				return nil, err
			}
			idx := table.NameIndex(categories,
				func(c domain.Category) int64 { return c.ID },
				func(c domain.Category) string { return c.CategoryName })
			for i := range jobs {
				jobs[i].CategoryName = table.LookupName(idx, jobs[i].CategoryID)
			}
			return jobs, nil
		},
	}, r.verifier, r.log)
}

// Orders manages the order table, filtered by customer name and status text.
func (r *Registry) Orders() *table.Controller[domain.Order] {
	return table.New(table.Descriptor[domain.Order]{
		Entity: "order",
		ID:     func(o domain.Order) string { return formatID(o.ID) },
		FilterFields: []func(domain.Order) string{
			func(o domain.Order) string { return o.CustomerName },
			func(o domain.Order) string { return string(o.Status) },
		},
		Load: func(ctx context.Context, token string) ([]domain.Order, error) {
			return r.orders.ListOrders(ctx, token)
		},
	}, r.verifier, r.log)
}

// Reports manages the user-report table.
func (r *Registry) Reports() *table.Controller[domain.Report] {
	return table.New(table.Descriptor[domain.Report]{
		Entity: "report",
		ID:     func(rp domain.Report) string { return formatID(rp.ID) },
		FilterFields: []func(domain.Report) string{
			func(rp domain.Report) string { return rp.FullName },
			func(rp domain.Report) string { return rp.Email },
		},
		Load: func(ctx context.Context, token string) ([]domain.Report, error) {
			return r.directory.ListReports(ctx, token)
		},
	}, r.verifier, r.log)
}
