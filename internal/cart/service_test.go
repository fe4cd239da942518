package cart

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/pkg/db/models"
	"github.com/zoramarket/zora-backend/pkg/types"
)

func TestGetCartTotalsAcrossVendors(t *testing.T) {
	fixtures := newFixtures()
	svc := buildTestService(t, fixtures)
	fixtures.carts.rows["user-1"] = &models.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: types.CartLines{
			{ProductID: "prod-a", VendorID: "vendor-a", Quantity: 2},
			{ProductID: "prod-b", VendorID: "vendor-b", Quantity: 1},
		},
	}

	view, err := svc.GetCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}

	// 2×4.50 + 1×10.00 = 19.00; fees 2.99 + 3.49 from two distinct vendors.
	if view.Subtotal != 19.00 {
		t.Fatalf("subtotal = %v, want 19.00", view.Subtotal)
	}
	if view.DeliveryFee != 6.48 {
		t.Fatalf("delivery fee = %v, want 6.48", view.DeliveryFee)
	}
	if view.ServiceFee != 0.50 {
		t.Fatalf("service fee = %v, want 0.50", view.ServiceFee)
	}
	if view.Total != 25.98 {
		t.Fatalf("total = %v, want 25.98", view.Total)
	}
	if view.Vendors == nil || len(*view.Vendors) != 2 {
		t.Fatalf("expected two vendor groups, got %+v", view.Vendors)
	}
}

func TestGetCartWithoutRowReturnsZeroView(t *testing.T) {
	svc := buildTestService(t, newFixtures())

	view, err := svc.GetCart(context.Background(), "user-none")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(view.Items) != 0 || view.Total != 0 || view.ServiceFee != 0 {
		t.Fatalf("expected zero view, got %+v", view)
	}
	if view.Vendors == nil {
		t.Fatalf("zero view must carry an empty vendors list")
	}
}

func TestGetCartHidesStaleItemsButKeepsThemStored(t *testing.T) {
	fixtures := newFixtures()
	svc := buildTestService(t, fixtures)
	fixtures.carts.rows["user-1"] = &models.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: types.CartLines{
			{ProductID: "prod-a", VendorID: "vendor-a", Quantity: 1},
			{ProductID: "prod-deleted", VendorID: "vendor-a", Quantity: 3},
		},
	}

	view, err := svc.GetCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected one visible item, got %d", len(view.Items))
	}
	if view.StaleItemsRemoved != 1 {
		t.Fatalf("stale count = %d, want 1", view.StaleItemsRemoved)
	}
	if len(fixtures.carts.rows["user-1"].Items) != 2 {
		t.Fatalf("stale line must stay in storage")
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	fixtures := newFixtures()
	svc := buildTestService(t, fixtures)

	variant := "large"
	if _, err := svc.AddItem(context.Background(), "user-1", types.CartLine{
		ProductID: "prod-a", VendorID: "vendor-a", Quantity: 1, Variant: &variant,
	}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	other := "small"
	view, err := svc.AddItem(context.Background(), "user-1", types.CartLine{
		ProductID: "prod-a", VendorID: "vendor-a", Quantity: 2, Variant: &other,
	})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	stored := fixtures.carts.rows["user-1"].Items
	if len(stored) != 1 {
		t.Fatalf("expected single merged line, got %d", len(stored))
	}
	if stored[0].Quantity != 3 {
		t.Fatalf("merged quantity = %d, want 3", stored[0].Quantity)
	}
	if stored[0].Variant == nil || *stored[0].Variant != "large" {
		t.Fatalf("merge must keep the existing variant, got %v", stored[0].Variant)
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("view quantity = %d, want 3", view.Items[0].Quantity)
	}
}

func TestRemoveItemPullsAllMatchingLines(t *testing.T) {
	fixtures := newFixtures()
	svc := buildTestService(t, fixtures)
	fixtures.carts.rows["user-1"] = &models.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: types.CartLines{
			{ProductID: "prod-a", VendorID: "vendor-a", Quantity: 1},
			{ProductID: "prod-a", VendorID: "vendor-a", Quantity: 4},
			{ProductID: "prod-b", VendorID: "vendor-b", Quantity: 1},
		},
	}

	view, err := svc.RemoveItem(context.Background(), "user-1", "prod-a")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != "prod-b" {
		t.Fatalf("expected only prod-b left, got %+v", view.Items)
	}
}

func TestClearCartOmitsVendorsAndDeletesRow(t *testing.T) {
	fixtures := newFixtures()
	svc := buildTestService(t, fixtures)
	fixtures.carts.rows["user-1"] = &models.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items:  types.CartLines{{ProductID: "prod-a", VendorID: "vendor-a", Quantity: 1}},
	}

	view, err := svc.ClearCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if view.Vendors != nil {
		t.Fatalf("clear response must omit the vendors field")
	}
	if view.Total != 0 || len(view.Items) != 0 {
		t.Fatalf("expected zero view, got %+v", view)
	}
	if _, ok := fixtures.carts.rows["user-1"]; ok {
		t.Fatalf("expected cart row deleted")
	}

	followUp, err := svc.GetCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(followUp.Items) != 0 || followUp.Vendors == nil {
		t.Fatalf("expected zero view with vendors present, got %+v", followUp)
	}
}

func TestCartViewJSONKeepsEmptyVendorsExceptOnClear(t *testing.T) {
	svc := buildTestService(t, newFixtures())

	view, err := svc.GetCart(context.Background(), "user-none")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	encoded, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal zero view: %v", err)
	}
	if !strings.Contains(string(encoded), `"vendors":[]`) {
		t.Fatalf("empty cart must serialize an empty vendors list, got %s", encoded)
	}

	cleared, err := svc.ClearCart(context.Background(), "user-none")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	encoded, err = json.Marshal(cleared)
	if err != nil {
		t.Fatalf("marshal clear view: %v", err)
	}
	if strings.Contains(string(encoded), `"vendors"`) {
		t.Fatalf("clear response must drop the vendors key, got %s", encoded)
	}
}

type fixtures struct {
	carts    *stubCartRepo
	products *stubProductRepo
	vendors  *stubVendorRepo
}

func newFixtures() *fixtures {
	return &fixtures{
		carts: &stubCartRepo{rows: map[string]*models.Cart{}},
		products: &stubProductRepo{products: map[string]models.Product{
			"prod-a": {ID: "prod-a", VendorID: "vendor-a", Name: "Suya spice", Price: 4.50, ImageURL: "a.jpg"},
			"prod-b": {ID: "prod-b", VendorID: "vendor-b", Name: "Palm oil", Price: 10.00, ImageURL: "b.jpg"},
		}},
		vendors: &stubVendorRepo{vendors: map[string]models.Vendor{
			"vendor-a": {ID: "vendor-a", Name: "Mama Ngozi", DeliveryFee: 2.99, DeliveryTime: "20-30 min"},
			"vendor-b": {ID: "vendor-b", Name: "Addis Pantry", DeliveryFee: 3.49, DeliveryTime: "30-40 min"},
		}},
	}
}

func buildTestService(t *testing.T, f *fixtures) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		CartRepo:    f.carts,
		ProductRepo: f.products,
		VendorRepo:  f.vendors,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubCartRepo struct {
	rows map[string]*models.Cart
}

func (r *stubCartRepo) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	if cart, ok := r.rows[userID]; ok {
		copied := *cart
		copied.Items = append(types.CartLines{}, cart.Items...)
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCartRepo) Save(_ context.Context, cart *models.Cart) error {
	copied := *cart
	copied.Items = append(types.CartLines{}, cart.Items...)
	r.rows[cart.UserID] = &copied
	return nil
}

func (r *stubCartRepo) DeleteByUser(_ context.Context, userID string) error {
	delete(r.rows, userID)
	return nil
}

type stubProductRepo struct {
	products map[string]models.Product
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

type stubVendorRepo struct {
	vendors map[string]models.Vendor
}

func (r *stubVendorRepo) FindByIDs(_ context.Context, ids []string) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, id := range ids {
		if vendor, ok := r.vendors[id]; ok {
			out = append(out, vendor)
		}
	}
	return out, nil
}
