package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	"github.com/zoramarket/zora-backend/pkg/enums"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/logger"
	"github.com/zoramarket/zora-backend/pkg/money"
	"github.com/zoramarket/zora-backend/pkg/types"
)

const (
	serviceFee         = 0.50
	defaultDeliveryFee = 2.99
	historyLimit       = 50
	deliveryEstimate   = 45 * time.Minute
)

// Service is the order engine. All money math happens here against the
// live catalog; client-supplied prices never enter an order.
type Service interface {
	Create(ctx context.Context, userID string, input CreateOrderInput) (*models.Order, error)
	List(ctx context.Context, userID string, filters ListFilters) ([]models.Order, error)
	Get(ctx context.Context, userID, orderID string) (*models.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*models.Order, error)
	AttachPaymentIntent(ctx context.Context, orderID, intentID string) error
	MarkConfirmed(ctx context.Context, orderID string) error
}

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, userID, status string, limit int) ([]models.Order, error)
	FindByUserAndID(ctx context.Context, userID, orderID string) (*models.Order, error)
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) error
	AttachPaymentIntent(ctx context.Context, orderID, intentID string) error
}

type productRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type vendorRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Vendor, error)
}

type cartRepository interface {
	DeleteByUser(ctx context.Context, userID string) error
}

type service struct {
	orders   orderRepository
	products productRepository
	vendors  vendorRepository
	carts    cartRepository
	logg     *logger.Logger
}

// ServiceParams bundles the dependencies required to build an order service.
type ServiceParams struct {
	OrderRepo   orderRepository
	ProductRepo productRepository
	VendorRepo  vendorRepository
	CartRepo    cartRepository
	Logger      *logger.Logger
}

// NewService constructs the order engine.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		orders:   params.OrderRepo,
		products: params.ProductRepo,
		vendors:  params.VendorRepo,
		carts:    params.CartRepo,
		logg:     params.Logger,
	}, nil
}

// Create prices the submitted lines against the live catalog, persists
// the snapshot and then drops the user's cart. The cart delete is a
// separate write: a crash in between leaves the order placed with the
// cart still populated.
func (s *service) Create(ctx context.Context, userID string, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	productIDs := make([]string, 0, len(input.Items))
	for _, line := range input.Items {
		productIDs = append(productIDs, line.ProductID)
	}
	productList, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order products")
	}
	productByID := make(map[string]models.Product, len(productList))
	for _, product := range productList {
		productByID[product.ID] = product
	}

	// A vanished product contributes nothing: neither subtotal nor its
	// vendor's delivery fee. Vendor ids come from the surviving lines.
	subtotal := 0.0
	items := types.OrderItems{}
	vendorOrder := []string{}
	seenVendors := map[string]bool{}
	for _, line := range input.Items {
		product, ok := productByID[line.ProductID]
		if !ok {
			continue
		}
		if !seenVendors[line.VendorID] && line.VendorID != "" {
			seenVendors[line.VendorID] = true
			vendorOrder = append(vendorOrder, line.VendorID)
		}
		subtotal += product.Price * float64(line.Quantity)
		items = append(items, types.OrderItem{
			ProductID: product.ID,
			VendorID:  product.VendorID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
		})
	}

	vendorList, err := s.vendors.FindByIDs(ctx, vendorOrder)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order vendors")
	}
	feeByVendor := make(map[string]float64, len(vendorList))
	for _, vendor := range vendorList {
		feeByVendor[vendor.ID] = vendor.DeliveryFee
	}
	deliveryFee := 0.0
	for _, vendorID := range vendorOrder {
		if fee, ok := feeByVendor[vendorID]; ok {
			deliveryFee += fee
		} else {
			deliveryFee += defaultDeliveryFee
		}
	}

	subtotal = money.Round2(subtotal)
	deliveryFee = money.Round2(deliveryFee)
	total := money.Round2(subtotal + deliveryFee + serviceFee)

	now := time.Now().UTC()
	estimated := now.Add(deliveryEstimate)
	order := &models.Order{
		ID:                uuid.NewString(),
		UserID:            userID,
		OrderNumber:       newOrderNumber(),
		Status:            enums.OrderStatusPending,
		Items:             items,
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		ServiceFee:        serviceFee,
		Total:             total,
		Currency:          "GBP",
		DeliveryAddress:   input.DeliveryAddress,
		DeliveryOption:    defaultString(input.DeliveryOption, "delivery"),
		PaymentMethod:     defaultString(input.PaymentMethod, "card"),
		CreatedAt:         now,
		EstimatedDelivery: &estimated,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id": created.ID,
			"error":    err.Error(),
		})
		s.logg.Warn(logCtx, "order placed but cart cleanup failed")
	}
	return created, nil
}

func (s *service) List(ctx context.Context, userID string, filters ListFilters) ([]models.Order, error) {
	status := strings.TrimSpace(filters.Status)
	if status != "" {
		if _, err := enums.ParseOrderStatus(status); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status filter")
		}
	}
	orders, err := s.orders.ListByUser(ctx, userID, status, historyLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *service) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByUserAndID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}

// Cancel rejects anything past confirmed. The 400 carries the current
// status so clients can explain the refusal.
func (s *service) Cancel(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidState, "order can no longer be cancelled").
			WithDetails(map[string]any{"status": order.Status})
	}
	if err := s.orders.UpdateStatus(ctx, orderID, enums.OrderStatusCancelled); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel order")
	}
	order.Status = enums.OrderStatusCancelled
	return order, nil
}

func (s *service) AttachPaymentIntent(ctx context.Context, orderID, intentID string) error {
	if err := s.orders.AttachPaymentIntent(ctx, orderID, intentID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "attach payment intent")
	}
	return nil
}

func (s *service) MarkConfirmed(ctx context.Context, orderID string) error {
	if err := s.orders.UpdateStatus(ctx, orderID, enums.OrderStatusConfirmed); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "confirm order")
	}
	return nil
}

func newOrderNumber() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ZM-" + hex[:8]
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
