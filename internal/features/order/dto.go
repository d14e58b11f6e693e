package order

import "github.com/google/uuid"

// Requests

type CheckoutRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit debit cash"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	OrderID uuid.UUID `json:"orderID" validate:"required"`
	Status  string    `json:"status" validate:"required"`
}

// Responses

type CheckoutResponse struct {
	OrderID     uuid.UUID `json:"orderID"`
	OrderNumber string    `json:"orderNumber"`
	TotalAmount float64   `json:"totalAmount"`
}
