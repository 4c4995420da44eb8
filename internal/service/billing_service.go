package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/photobill/internal/appdata"
	"github.com/mmynk/photobill/internal/calculator"
	"github.com/mmynk/photobill/internal/detect"
	"github.com/mmynk/photobill/internal/models"
)

var (
	ErrEmptyBill    = errors.New("bill has no items with a positive quantity")
	ErrEmptyName    = errors.New("product name is required")
	ErrMissingID    = errors.New("id is required")
	ErrBillNotFound = errors.New("bill not found")
)

// totalTolerance is the largest total/item-sum gap that is not logged.
const totalTolerance = 0.005

// BillingService implements BillingServiceHandler over the app data store.
type BillingService struct {
	store    appdata.Store
	detector detect.Detector
	expenses calculator.Expenses
	now      func() time.Time
	logger   *slog.Logger
}

var _ BillingServiceHandler = (*BillingService)(nil)

// NewBillingService creates a BillingService. A nil logger means slog.Default().
func NewBillingService(store appdata.Store, detector detect.Detector, expenses calculator.Expenses, logger *slog.Logger) *BillingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BillingService{
		store:    store,
		detector: detector,
		expenses: expenses,
		now:      time.Now,
		logger:   logger,
	}
}

// GetState returns everything the screens render.
func (s *BillingService) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	state := s.store.State()
	return connect.NewResponse(&GetStateResponse{
		Inventory:           state.Snapshot.Inventory,
		Bills:               state.Snapshot.Bills,
		Profile:             state.Snapshot.Profile,
		PendingBillItems:    state.PendingBillItems,
		LastGeneratedBillID: state.LastGeneratedBillID,
		Loading:             state.Loading,
	}), nil
}

// DetectItems runs detection over the current inventory and stages the
// result as the pending bill.
func (s *BillingService) DetectItems(ctx context.Context, req *connect.Request[DetectItemsRequest]) (*connect.Response[DetectItemsResponse], error) {
	if s.store.Loading() {
		return nil, storeError(appdata.ErrLoading)
	}

	items := s.detector.Detect(s.store.Inventory())
	if err := s.store.SetPendingBillItems(items); err != nil {
		s.logger.Error("DetectItems failed", "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Items detected", "image_ref", req.Msg.ImageRef, "count", len(items))
	return connect.NewResponse(&DetectItemsResponse{Items: nonNilItems(items)}), nil
}

// SetPendingItems replaces the pending bill with the edited list.
func (s *BillingService) SetPendingItems(ctx context.Context, req *connect.Request[SetPendingItemsRequest]) (*connect.Response[SetPendingItemsResponse], error) {
	items := sanitizeItems(req.Msg.Items, false)
	if err := s.store.SetPendingBillItems(items); err != nil {
		return nil, storeError(err)
	}
	return connect.NewResponse(&SetPendingItemsResponse{Items: items}), nil
}

// ClearPendingBill discards the pending bill.
func (s *BillingService) ClearPendingBill(ctx context.Context, req *connect.Request[ClearPendingBillRequest]) (*connect.Response[ClearPendingBillResponse], error) {
	if err := s.store.ClearPendingBill(); err != nil {
		return nil, storeError(err)
	}
	return connect.NewResponse(&ClearPendingBillResponse{}), nil
}

// GenerateBill records a bill and deducts its quantities from stock.
// Items with a non-positive quantity are dropped. The caller's total is kept
// even when it disagrees with the item sum.
func (s *BillingService) GenerateBill(ctx context.Context, req *connect.Request[GenerateBillRequest]) (*connect.Response[GenerateBillResponse], error) {
	items := sanitizeItems(req.Msg.Items, true)
	if len(items) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrEmptyBill)
	}

	total := max(0, req.Msg.Total)
	if sum := calculator.BillTotal(items); math.Abs(sum-total) > totalTolerance {
		s.logger.Warn("Bill total differs from item sum", "total", total, "item_sum", sum)
	}

	id, err := s.store.AddBill(items, total)
	if err != nil {
		s.logger.Error("GenerateBill failed", "error", err)
		return nil, storeError(err)
	}
	bill, ok := s.store.Bill(id)
	if !ok {
		return nil, connect.NewError(connect.CodeInternal, ErrBillNotFound)
	}

	s.logger.Info("GenerateBill successful", "bill_id", id)
	return connect.NewResponse(&GenerateBillResponse{Bill: bill}), nil
}

// GetBill looks up a bill by id.
func (s *BillingService) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingID)
	}
	bill, ok := s.store.Bill(req.Msg.ID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, ErrBillNotFound)
	}
	return connect.NewResponse(&GetBillResponse{Bill: bill}), nil
}

// UpdateInventory sets stock and/or price on a product. An unknown id
// changes nothing and returns no product.
func (s *BillingService) UpdateInventory(ctx context.Context, req *connect.Request[UpdateInventoryRequest]) (*connect.Response[UpdateInventoryResponse], error) {
	if req.Msg.ProductID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingID)
	}

	update := models.InventoryUpdate{}
	if req.Msg.Quantity != nil {
		q := max(0, *req.Msg.Quantity)
		update.Quantity = &q
	}
	if req.Msg.Price != nil {
		p := max(0, *req.Msg.Price)
		update.Price = &p
	}

	if err := s.store.UpdateInventory(req.Msg.ProductID, update); err != nil {
		return nil, storeError(err)
	}

	resp := &UpdateInventoryResponse{}
	for _, p := range s.store.Inventory() {
		if p.ID == req.Msg.ProductID {
			resp.Product = &p
			break
		}
	}
	return connect.NewResponse(resp), nil
}

// AddProduct appends a new product to the inventory.
func (s *BillingService) AddProduct(ctx context.Context, req *connect.Request[AddProductRequest]) (*connect.Response[AddProductResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrEmptyName)
	}

	product, err := s.store.AddProduct(models.NewProduct{
		Name:     name,
		Price:    max(0, req.Msg.Price),
		Quantity: max(0, req.Msg.Quantity),
	})
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("AddProduct successful", "product_id", product.ID, "name", product.Name)
	return connect.NewResponse(&AddProductResponse{Product: product}), nil
}

// UpdateProfile merges the given fields into the profile. Blank names keep
// their previous value.
func (s *BillingService) UpdateProfile(ctx context.Context, req *connect.Request[UpdateProfileRequest]) (*connect.Response[UpdateProfileResponse], error) {
	update := models.ProfileUpdate{
		StoreName: trimmedOrNil(req.Msg.StoreName),
		OwnerName: trimmedOrNil(req.Msg.OwnerName),
	}
	if req.Msg.OpeningBalance != nil {
		b := max(0, *req.Msg.OpeningBalance)
		update.OpeningBalance = &b
	}

	if err := s.store.UpdateProfile(update); err != nil {
		return nil, storeError(err)
	}
	return connect.NewResponse(&UpdateProfileResponse{Profile: s.store.Profile()}), nil
}

// GetAnalytics derives the account and cashflow summaries from the current
// snapshot.
func (s *BillingService) GetAnalytics(ctx context.Context, req *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error) {
	snapshot := s.store.Snapshot()
	return connect.NewResponse(&GetAnalyticsResponse{
		Account:  calculator.AccountSummary(snapshot, s.expenses),
		Cashflow: calculator.CashflowSummary(snapshot, s.expenses, s.now()),
	}), nil
}

// storeError maps store errors to Connect codes.
func storeError(err error) error {
	switch {
	case errors.Is(err, appdata.ErrLoading), errors.Is(err, appdata.ErrClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// sanitizeItems clamps negative prices and quantities to zero. With
// dropEmpty, items left with no quantity are removed.
func sanitizeItems(items []models.BillItem, dropEmpty bool) []models.BillItem {
	out := make([]models.BillItem, 0, len(items))
	for _, item := range items {
		item.Price = max(0, item.Price)
		item.Quantity = max(0, item.Quantity)
		if dropEmpty && item.Quantity == 0 {
			continue
		}
		out = append(out, item)
	}
	return out
}

func nonNilItems(items []models.BillItem) []models.BillItem {
	if items == nil {
		return []models.BillItem{}
	}
	return items
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
