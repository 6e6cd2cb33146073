package model

type Promotion struct {
	DTO
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	DiscountType       string  `json:"discountType"` //percentage','fixed
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountAmount     float64 `json:"discountAmount"`
	Status             string  `json:"status"` //active','inactive','expired
}

type Promotions []Promotion
