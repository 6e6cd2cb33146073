package client

import (
	"context"

	"restro_pos/model"
)

// Catalog reads the browsable entities (products, categories, tables,
// staff, customers) as paged lists.
type Catalog struct {
	api
}

func NewCatalog(baseURL string) *Catalog {
	return &Catalog{api: newAPI(baseURL)}
}

func (c *Catalog) Products(ctx context.Context, filter model.CatalogFilter) (model.Products, int64, error) {
	var page paged[model.Products]
	if err := c.do(ctx, "GET", "/api/v1/product"+catalogQuery(filter), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}

func (c *Catalog) Categories(ctx context.Context, filter model.CatalogFilter) (model.Categories, int64, error) {
	var page paged[model.Categories]
	if err := c.do(ctx, "GET", "/api/v1/category"+catalogQuery(filter), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}

func (c *Catalog) Tables(ctx context.Context, filter model.CatalogFilter) (model.DiningTables, int64, error) {
	var page paged[model.DiningTables]
	if err := c.do(ctx, "GET", "/api/v1/table"+catalogQuery(filter), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}

func (c *Catalog) Staff(ctx context.Context, filter model.CatalogFilter) (model.Staffs, int64, error) {
	var page paged[model.Staffs]
	if err := c.do(ctx, "GET", "/api/v1/staff"+catalogQuery(filter), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}

func (c *Catalog) Customers(ctx context.Context, filter model.CatalogFilter) (model.Customers, int64, error) {
	var page paged[model.Customers]
	if err := c.do(ctx, "GET", "/api/v1/customer"+catalogQuery(filter), nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}
