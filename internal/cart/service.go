package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
	"github.com/zoramarket/zora-backend/pkg/money"
	"github.com/zoramarket/zora-backend/pkg/types"
)

// Flat service fee applied to any non-empty cart response.
const serviceFee = 0.50

// Service is the cart engine: stored lines are thin references, every
// read joins live product and vendor data.
type Service interface {
	GetCart(ctx context.Context, userID string) (*CartView, error)
	AddItem(ctx context.Context, userID string, line types.CartLine) (*CartView, error)
	ReplaceItems(ctx context.Context, userID string, lines types.CartLines) (*CartView, error)
	RemoveItem(ctx context.Context, userID, productID string) (*CartView, error)
	ClearCart(ctx context.Context, userID string) (*CartView, error)
}

type cartRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	DeleteByUser(ctx context.Context, userID string) error
}

type productRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type vendorRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Vendor, error)
}

type service struct {
	carts    cartRepository
	products productRepository
	vendors  vendorRepository
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	CartRepo    cartRepository
	ProductRepo productRepository
	VendorRepo  vendorRepository
}

// NewService constructs the cart engine.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{
		carts:    params.CartRepo,
		products: params.ProductRepo,
		vendors:  params.VendorRepo,
	}, nil
}

func (s *service) GetCart(ctx context.Context, userID string) (*CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return zeroView(), nil
	}
	return s.buildView(ctx, cart)
}

// AddItem merges by product id: an existing line absorbs the incoming
// quantity and keeps its variant. Otherwise the line is appended.
func (s *service) AddItem(ctx context.Context, userID string, line types.CartLine) (*CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = newCart(userID)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == line.ProductID {
			cart.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, line)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return s.buildView(ctx, cart)
}

// ReplaceItems overwrites the stored list wholesale, no dedupe.
func (s *service) ReplaceItems(ctx context.Context, userID string, lines types.CartLines) (*CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = newCart(userID)
	}
	if lines == nil {
		lines = types.CartLines{}
	}
	cart.Items = lines

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return s.buildView(ctx, cart)
}

// RemoveItem pulls every line carrying the product id.
func (s *service) RemoveItem(ctx context.Context, userID, productID string) (*CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return zeroView(), nil
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return s.buildView(ctx, cart)
}

// ClearCart deletes the row. The response is the zero view without the
// vendors field, which only this operation omits.
func (s *service) ClearCart(ctx context.Context, userID string) (*CartView, error) {
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	view := zeroView()
	view.Vendors = nil
	return view, nil
}

func (s *service) loadCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return cart, nil
}

// buildView joins stored lines with live catalog data. Lines whose
// product has disappeared are dropped from the view but stay in storage;
// the view reports how many were hidden.
func (s *service) buildView(ctx context.Context, cart *models.Cart) (*CartView, error) {
	productIDs := make([]string, 0, len(cart.Items))
	for _, line := range cart.Items {
		productIDs = append(productIDs, line.ProductID)
	}
	productList, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart products")
	}
	productByID := make(map[string]models.Product, len(productList))
	for _, product := range productList {
		productByID[product.ID] = product
	}

	stale := 0
	items := make([]ItemView, 0, len(cart.Items))
	vendorOrder := []string{}
	seenVendors := map[string]bool{}
	for _, line := range cart.Items {
		product, ok := productByID[line.ProductID]
		if !ok {
			stale++
			continue
		}
		items = append(items, ItemView{
			ProductID: line.ProductID,
			VendorID:  product.VendorID,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			LineTotal: money.Round2(product.Price * float64(line.Quantity)),
		})
		if !seenVendors[product.VendorID] {
			seenVendors[product.VendorID] = true
			vendorOrder = append(vendorOrder, product.VendorID)
		}
	}

	vendorList, err := s.vendors.FindByIDs(ctx, vendorOrder)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart vendors")
	}
	vendorByID := make(map[string]models.Vendor, len(vendorList))
	for _, vendor := range vendorList {
		vendorByID[vendor.ID] = vendor
	}

	subtotal := 0.0
	for i := range items {
		subtotal += items[i].Price * float64(items[i].Quantity)
		if vendor, ok := vendorByID[items[i].VendorID]; ok {
			items[i].VendorName = vendor.Name
		}
	}

	deliveryFee := 0.0
	groups := make([]VendorGroup, 0, len(vendorOrder))
	for _, vendorID := range vendorOrder {
		vendor, ok := vendorByID[vendorID]
		if !ok {
			continue
		}
		group := VendorGroup{
			ID:           vendor.ID,
			Name:         vendor.Name,
			LogoURL:      vendor.LogoURL,
			DeliveryTime: vendor.DeliveryTime,
			DeliveryFee:  vendor.DeliveryFee,
			Items:        []ItemView{},
		}
		groupSubtotal := 0.0
		for _, item := range items {
			if item.VendorID == vendorID {
				group.Items = append(group.Items, item)
				groupSubtotal += item.Price * float64(item.Quantity)
			}
		}
		group.Subtotal = money.Round2(groupSubtotal)
		deliveryFee += vendor.DeliveryFee
		groups = append(groups, group)
	}

	subtotal = money.Round2(subtotal)
	deliveryFee = money.Round2(deliveryFee)
	return &CartView{
		Items:             items,
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		ServiceFee:        serviceFee,
		Total:             money.Round2(subtotal + deliveryFee + serviceFee),
		Vendors:           &groups,
		StaleItemsRemoved: stale,
	}, nil
}

func newCart(userID string) *models.Cart {
	return &models.Cart{
		ID:     uuid.NewString(),
		UserID: userID,
		Items:  types.CartLines{},
	}
}

func zeroView() *CartView {
	return &CartView{
		Items:   []ItemView{},
		Vendors: &[]VendorGroup{},
	}
}
