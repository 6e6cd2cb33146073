package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"restro_pos/model"
	"restro_pos/pos"
)

// Promotions resolves coupon codes against the promotion service.
type Promotions struct {
	api
}

func NewPromotions(baseURL string) *Promotions {
	return &Promotions{api: newAPI(baseURL)}
}

func (p *Promotions) FindByCouponCode(ctx context.Context, code string) (model.Promotion, error) {
	var promo model.Promotion
	err := p.do(ctx, "GET", "/api/v1/promotion/coupon/"+url.PathEscape(code), nil, &promo)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return model.Promotion{}, pos.ErrPromotionNotFound
		}
		return model.Promotion{}, err
	}
	if promo.ID == 0 {
		return model.Promotion{}, pos.ErrPromotionNotFound
	}
	return promo, nil
}
