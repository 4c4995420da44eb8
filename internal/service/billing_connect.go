package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// BillingServiceName is the fully-qualified name of the BillingService service.
	BillingServiceName = "photobill.v1.BillingService"
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "photobill.v1.AuthService"
)

// Procedure names, in the form "/Service/Method".
const (
	BillingServiceGetStateProcedure         = "/photobill.v1.BillingService/GetState"
	BillingServiceDetectItemsProcedure      = "/photobill.v1.BillingService/DetectItems"
	BillingServiceSetPendingItemsProcedure  = "/photobill.v1.BillingService/SetPendingItems"
	BillingServiceClearPendingBillProcedure = "/photobill.v1.BillingService/ClearPendingBill"
	BillingServiceGenerateBillProcedure     = "/photobill.v1.BillingService/GenerateBill"
	BillingServiceGetBillProcedure          = "/photobill.v1.BillingService/GetBill"
	BillingServiceUpdateInventoryProcedure  = "/photobill.v1.BillingService/UpdateInventory"
	BillingServiceAddProductProcedure       = "/photobill.v1.BillingService/AddProduct"
	BillingServiceUpdateProfileProcedure    = "/photobill.v1.BillingService/UpdateProfile"
	BillingServiceGetAnalyticsProcedure     = "/photobill.v1.BillingService/GetAnalytics"
	AuthServiceLoginProcedure               = "/photobill.v1.AuthService/Login"
)

// BillingServiceHandler is implemented by BillingService.
type BillingServiceHandler interface {
	GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error)
	DetectItems(context.Context, *connect.Request[DetectItemsRequest]) (*connect.Response[DetectItemsResponse], error)
	SetPendingItems(context.Context, *connect.Request[SetPendingItemsRequest]) (*connect.Response[SetPendingItemsResponse], error)
	ClearPendingBill(context.Context, *connect.Request[ClearPendingBillRequest]) (*connect.Response[ClearPendingBillResponse], error)
	GenerateBill(context.Context, *connect.Request[GenerateBillRequest]) (*connect.Response[GenerateBillResponse], error)
	GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error)
	UpdateInventory(context.Context, *connect.Request[UpdateInventoryRequest]) (*connect.Response[UpdateInventoryResponse], error)
	AddProduct(context.Context, *connect.Request[AddProductRequest]) (*connect.Response[AddProductResponse], error)
	UpdateProfile(context.Context, *connect.Request[UpdateProfileRequest]) (*connect.Response[UpdateProfileResponse], error)
	GetAnalytics(context.Context, *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error)
}

// AuthServiceHandler is implemented by AuthService.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
}

// routes dispatches on the request path like a generated Connect handler.
type routes map[string]http.Handler

func (r routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r[req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}

func withJSON(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

// NewBillingServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewBillingServiceHandler(svc BillingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	return "/" + BillingServiceName + "/", routes{
		BillingServiceGetStateProcedure:         connect.NewUnaryHandler(BillingServiceGetStateProcedure, svc.GetState, opts...),
		BillingServiceDetectItemsProcedure:      connect.NewUnaryHandler(BillingServiceDetectItemsProcedure, svc.DetectItems, opts...),
		BillingServiceSetPendingItemsProcedure:  connect.NewUnaryHandler(BillingServiceSetPendingItemsProcedure, svc.SetPendingItems, opts...),
		BillingServiceClearPendingBillProcedure: connect.NewUnaryHandler(BillingServiceClearPendingBillProcedure, svc.ClearPendingBill, opts...),
		BillingServiceGenerateBillProcedure:     connect.NewUnaryHandler(BillingServiceGenerateBillProcedure, svc.GenerateBill, opts...),
		BillingServiceGetBillProcedure:          connect.NewUnaryHandler(BillingServiceGetBillProcedure, svc.GetBill, opts...),
		BillingServiceUpdateInventoryProcedure:  connect.NewUnaryHandler(BillingServiceUpdateInventoryProcedure, svc.UpdateInventory, opts...),
		BillingServiceAddProductProcedure:       connect.NewUnaryHandler(BillingServiceAddProductProcedure, svc.AddProduct, opts...),
		BillingServiceUpdateProfileProcedure:    connect.NewUnaryHandler(BillingServiceUpdateProfileProcedure, svc.UpdateProfile, opts...),
		BillingServiceGetAnalyticsProcedure:     connect.NewUnaryHandler(BillingServiceGetAnalyticsProcedure, svc.GetAnalytics, opts...),
	}
}

// NewAuthServiceHandler builds an HTTP handler for the auth service.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceLoginProcedure: connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
	}
}

// BillingServiceClient is a client for the photobill.v1.BillingService service.
type BillingServiceClient struct {
	getState         *connect.Client[GetStateRequest, GetStateResponse]
	detectItems      *connect.Client[DetectItemsRequest, DetectItemsResponse]
	setPendingItems  *connect.Client[SetPendingItemsRequest, SetPendingItemsResponse]
	clearPendingBill *connect.Client[ClearPendingBillRequest, ClearPendingBillResponse]
	generateBill     *connect.Client[GenerateBillRequest, GenerateBillResponse]
	getBill          *connect.Client[GetBillRequest, GetBillResponse]
	updateInventory  *connect.Client[UpdateInventoryRequest, UpdateInventoryResponse]
	addProduct       *connect.Client[AddProductRequest, AddProductResponse]
	updateProfile    *connect.Client[UpdateProfileRequest, UpdateProfileResponse]
	getAnalytics     *connect.Client[GetAnalyticsRequest, GetAnalyticsResponse]
}

// NewBillingServiceClient constructs a client for the BillingService. baseURL
// is the server root, e.g. "http://localhost:8080".
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &BillingServiceClient{
		getState:         connect.NewClient[GetStateRequest, GetStateResponse](httpClient, baseURL+BillingServiceGetStateProcedure, opts...),
		detectItems:      connect.NewClient[DetectItemsRequest, DetectItemsResponse](httpClient, baseURL+BillingServiceDetectItemsProcedure, opts...),
		setPendingItems:  connect.NewClient[SetPendingItemsRequest, SetPendingItemsResponse](httpClient, baseURL+BillingServiceSetPendingItemsProcedure, opts...),
		clearPendingBill: connect.NewClient[ClearPendingBillRequest, ClearPendingBillResponse](httpClient, baseURL+BillingServiceClearPendingBillProcedure, opts...),
		generateBill:     connect.NewClient[GenerateBillRequest, GenerateBillResponse](httpClient, baseURL+BillingServiceGenerateBillProcedure, opts...),
		getBill:          connect.NewClient[GetBillRequest, GetBillResponse](httpClient, baseURL+BillingServiceGetBillProcedure, opts...),
		updateInventory:  connect.NewClient[UpdateInventoryRequest, UpdateInventoryResponse](httpClient, baseURL+BillingServiceUpdateInventoryProcedure, opts...),
		addProduct:       connect.NewClient[AddProductRequest, AddProductResponse](httpClient, baseURL+BillingServiceAddProductProcedure, opts...),
		updateProfile:    connect.NewClient[UpdateProfileRequest, UpdateProfileResponse](httpClient, baseURL+BillingServiceUpdateProfileProcedure, opts...),
		getAnalytics:     connect.NewClient[GetAnalyticsRequest, GetAnalyticsResponse](httpClient, baseURL+BillingServiceGetAnalyticsProcedure, opts...),
	}
}

func (c *BillingServiceClient) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *BillingServiceClient) DetectItems(ctx context.Context, req *connect.Request[DetectItemsRequest]) (*connect.Response[DetectItemsResponse], error) {
	return c.detectItems.CallUnary(ctx, req)
}

func (c *BillingServiceClient) SetPendingItems(ctx context.Context, req *connect.Request[SetPendingItemsRequest]) (*connect.Response[SetPendingItemsResponse], error) {
	return c.setPendingItems.CallUnary(ctx, req)
}

func (c *BillingServiceClient) ClearPendingBill(ctx context.Context, req *connect.Request[ClearPendingBillRequest]) (*connect.Response[ClearPendingBillResponse], error) {
	return c.clearPendingBill.CallUnary(ctx, req)
}

func (c *BillingServiceClient) GenerateBill(ctx context.Context, req *connect.Request[GenerateBillRequest]) (*connect.Response[GenerateBillResponse], error) {
	return c.generateBill.CallUnary(ctx, req)
}

func (c *BillingServiceClient) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *BillingServiceClient) UpdateInventory(ctx context.Context, req *connect.Request[UpdateInventoryRequest]) (*connect.Response[UpdateInventoryResponse], error) {
	return c.updateInventory.CallUnary(ctx, req)
}

func (c *BillingServiceClient) AddProduct(ctx context.Context, req *connect.Request[AddProductRequest]) (*connect.Response[AddProductResponse], error) {
	return c.addProduct.CallUnary(ctx, req)
}

func (c *BillingServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[UpdateProfileRequest]) (*connect.Response[UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *BillingServiceClient) GetAnalytics(ctx context.Context, req *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error) {
	return c.getAnalytics.CallUnary(ctx, req)
}

// AuthServiceClient is a client for the photobill.v1.AuthService service.
type AuthServiceClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthServiceClient constructs a client for the AuthService.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &AuthServiceClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
