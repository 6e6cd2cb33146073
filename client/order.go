package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"restro_pos/model"
)

// Orders talks to the remote order service.
type Orders struct {
	api
}

func NewOrders(baseURL string) *Orders {
	return &Orders{api: newAPI(baseURL)}
}

func (o *Orders) Create(ctx context.Context, order model.Order) (model.Order, error) {
	var created model.Order
	if err := o.do(ctx, "POST", "/api/v1/order", order, &created); err != nil {
		return model.Order{}, err
	}
	if created.ID == 0 {
		return model.Order{}, fmt.Errorf("order service response missing order id")
	}
	return created, nil
}

func (o *Orders) Update(ctx context.Context, id uint, order model.Order) (model.Order, error) {
	var updated model.Order
	if err := o.do(ctx, "PUT", fmt.Sprintf("/api/v1/order/%d", id), order, &updated); err != nil {
		return model.Order{}, err
	}
	if updated.ID == 0 {
		// Some backends answer an update with just a message; the order we
		// sent plus the id we addressed is the normalized result then.
		updated = order
		updated.ID = id
	}
	return updated, nil
}

func (o *Orders) Get(ctx context.Context, id uint) (model.Order, error) {
	var order model.Order
	if err := o.do(ctx, "GET", fmt.Sprintf("/api/v1/order/%d", id), nil, &order); err != nil {
		return model.Order{}, err
	}
	if order.ID == 0 {
		return model.Order{}, fmt.Errorf("order service response missing order id")
	}
	return order, nil
}

func (o *Orders) List(ctx context.Context, filter model.OrderFilter) (model.Orders, int64, error) {
	values := url.Values{}
	pageQuery(values, filter.Pagination)
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		values.Set("statuses", strings.Join(statuses, ","))
	}
	if filter.OrderType != nil {
		values.Set("orderType", string(*filter.OrderType))
	}
	if filter.TableID != nil {
		values.Set("tableId", strconv.FormatUint(uint64(*filter.TableID), 10))
	}

	path := "/api/v1/order"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var page paged[model.Orders]
	if err := o.do(ctx, "GET", path, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Rows, page.TotalCount, nil
}

func (o *Orders) Delete(ctx context.Context, id uint) error {
	return o.do(ctx, "DELETE", fmt.Sprintf("/api/v1/order/%d", id), nil, nil)
}
