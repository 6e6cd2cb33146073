package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"restro_pos/model"
)

// api is the shared REST plumbing for every collaborator. decode below is
// the one place wire envelopes are normalized; nothing outside this package
// sees a raw response shape.
type api struct {
	base string
	http *http.Client
}

func newAPI(baseURL string) api {
	return api{
		base: baseURL,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// unwrap peels nested {status,data} envelopes. Some backend screens wrap the
// payload twice; normalizing here keeps that drift out of business logic.
func unwrap(body []byte) json.RawMessage {
	raw := json.RawMessage(body)
	for i := 0; i < 3; i++ {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
			return raw
		}
		raw = env.Data
	}
	return raw
}

func (a api) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(unwrap(raw), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// StatusError carries the remote HTTP status so adapters can map specific
// codes (404 on a coupon lookup) to sentinel errors.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.Code)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.Code, e.Message)
}

// paged mirrors the backend list envelope (rows + totalCount).
type paged[T any] struct {
	Rows       T     `json:"rows"`
	TotalCount int64 `json:"totalCount"`
}

func pageQuery(values url.Values, p model.Pagination) {
	if p.Limit != nil {
		values.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Page != nil {
		values.Set("page", strconv.Itoa(*p.Page))
	}
}

func catalogQuery(filter model.CatalogFilter) string {
	values := url.Values{}
	pageQuery(values, filter.Pagination)
	if filter.SearchKey != "" {
		values.Set("searchKey", filter.SearchKey)
	}
	if filter.CategoryID != nil {
		values.Set("categoryId", strconv.FormatUint(uint64(*filter.CategoryID), 10))
	}
	if filter.Role != "" {
		values.Set("role", filter.Role)
	}
	if filter.Active != nil {
		values.Set("active", strconv.FormatBool(*filter.Active))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
