package client

import (
	"context"
	"fmt"
)

// Tables pushes the dine-in occupancy flag to the table-status service.
type Tables struct {
	api
}

func NewTables(baseURL string) *Tables {
	return &Tables{api: newAPI(baseURL)}
}

func (t *Tables) SetStatus(ctx context.Context, tableID uint, available bool) error {
	body := map[string]bool{"available": available}
	return t.do(ctx, "PATCH", fmt.Sprintf("/api/v1/table/%d/status", tableID), body, nil)
}
