package cart

import (
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
	"github.com/shopspring/decimal"
)

// Requests

type AddItemRequest struct {
	ProductID string `json:"productID" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"` // zero or less removes the line
}

// Responses

type CartItemView struct {
	ProductID        string  `json:"productID"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	PriceDisplay     string  `json:"priceDisplay"`
	Quantity         int     `json:"quantity"`
	Stock            int     `json:"stock"`
	LineTotal        float64 `json:"lineTotal"`
	LineTotalDisplay string  `json:"lineTotalDisplay"`
	Image            string  `json:"image,omitempty"`
}

type CartView struct {
	Items             []*CartItemView `json:"items"`
	TotalItems        int             `json:"totalItems"`
	TotalPrice        float64         `json:"totalPrice"`
	TotalPriceDisplay string          `json:"totalPriceDisplay"`
}

func newCartView(c *Cart, locale i18n.Locale) *CartView {
	items := c.Items()

	view := &CartView{
		Items:      make([]*CartItemView, 0, len(items)),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
	view.TotalPriceDisplay = i18n.FormatCurrency(view.TotalPrice, locale)

	for _, item := range items {
		lineTotal, _ := decimal.NewFromFloat(item.Product.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Float64()

		itemView := &CartItemView{
			ProductID:        item.Product.ID,
			Name:             item.Product.Name.Pick(locale),
			Price:            item.Product.Price,
			PriceDisplay:     i18n.FormatCurrency(item.Product.Price, locale),
			Quantity:         item.Quantity,
			Stock:            item.Product.Stock,
			LineTotal:        lineTotal,
			LineTotalDisplay: i18n.FormatCurrency(lineTotal, locale),
		}

		if len(item.Product.Images) > 0 {
			itemView.Image = item.Product.Images[0]
		}

		view.Items = append(view.Items, itemView)
	}

	return view
}
