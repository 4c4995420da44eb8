package service

import (
	"time"

	"github.com/mmynk/photobill/internal/calculator"
	"github.com/mmynk/photobill/internal/models"
)

type GetStateRequest struct{}

type GetStateResponse struct {
	Inventory           []models.Product  `json:"inventory"`
	Bills               []models.Bill     `json:"bills"`
	Profile             models.Profile    `json:"profile"`
	PendingBillItems    []models.BillItem `json:"pendingBillItems"`
	LastGeneratedBillID string            `json:"lastGeneratedBillId,omitempty"`
	Loading             bool              `json:"loading"`
}

type DetectItemsRequest struct {
	// ImageRef identifies the captured photo. The detector does not read it.
	ImageRef string `json:"imageRef"`
}

type DetectItemsResponse struct {
	Items []models.BillItem `json:"items"`
}

type SetPendingItemsRequest struct {
	Items []models.BillItem `json:"items"`
}

type SetPendingItemsResponse struct {
	Items []models.BillItem `json:"items"`
}

type ClearPendingBillRequest struct{}

type ClearPendingBillResponse struct{}

type GenerateBillRequest struct {
	Items []models.BillItem `json:"items"`
	Total float64           `json:"total"`
}

type GenerateBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type GetBillRequest struct {
	ID string `json:"id"`
}

type GetBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type UpdateInventoryRequest struct {
	ProductID string   `json:"productId"`
	Quantity  *int     `json:"quantity,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

type UpdateInventoryResponse struct {
	// Product is nil when no product has the requested id.
	Product *models.Product `json:"product,omitempty"`
}

type AddProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type AddProductResponse struct {
	Product models.Product `json:"product"`
}

type UpdateProfileRequest struct {
	StoreName      *string  `json:"storeName,omitempty"`
	OwnerName      *string  `json:"ownerName,omitempty"`
	OpeningBalance *float64 `json:"openingBalance,omitempty"`
}

type UpdateProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

type GetAnalyticsRequest struct{}

type GetAnalyticsResponse struct {
	Account  calculator.Account  `json:"account"`
	Cashflow calculator.Cashflow `json:"cashflow"`
}

type LoginRequest struct {
	Passcode string `json:"passcode"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
