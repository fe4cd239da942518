package content

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zoramarket/zora-backend/pkg/config"
	"github.com/zoramarket/zora-backend/pkg/db"
	"github.com/zoramarket/zora-backend/pkg/db/models"
	"github.com/zoramarket/zora-backend/pkg/logger"
)

// Seed upserts the launch catalog and editorial fixtures. Safe to run on
// every boot: rows are keyed by stable ids and fully refreshed.
func Seed(ctx context.Context, gdb *gorm.DB) error {
	for _, vendor := range seedVendors() {
		if err := upsertByID(ctx, gdb, &vendor); err != nil {
			return fmt.Errorf("seed vendor %s: %w", vendor.ID, err)
		}
	}
	for _, product := range seedProducts() {
		if err := upsertByID(ctx, gdb, &product); err != nil {
			return fmt.Errorf("seed product %s: %w", product.ID, err)
		}
	}
	for _, banner := range seedBanners() {
		if err := upsertByID(ctx, gdb, &banner); err != nil {
			return fmt.Errorf("seed banner %s: %w", banner.ID, err)
		}
	}
	for _, region := range seedRegions() {
		if err := upsertByID(ctx, gdb, &region); err != nil {
			return fmt.Errorf("seed region %s: %w", region.ID, err)
		}
	}
	return nil
}

func upsertByID(ctx context.Context, gdb *gorm.DB, row any) error {
	return gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

// MaybeSeedDev seeds the catalog on boot when the dev flag asks for it.
func MaybeSeedDev(ctx context.Context, cfg *config.Config, client *db.Client, logg *logger.Logger) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoSeed {
		return nil
	}
	logg.Info(ctx, "seeding catalog fixtures")
	return Seed(ctx, client.DB())
}

func seedVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID:           "vendor-mama-kitchen",
			Name:         "Mama's Kitchen",
			Description:  "Authentic West African spices and grains, sourced directly from local farmers.",
			CoverImage:   "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=800",
			LogoURL:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200",
			Category:     "Spices & Grains",
			Regions:      pq.StringArray{"west-africa"},
			Rating:       4.8,
			ReviewCount:  1247,
			IsVerified:   true,
			Tag:          strPtr("POPULAR"),
			DeliveryTime: "20-30 min",
			DeliveryFee:  2.99,
			MinOrder:     10.0,
			IsOpen:       true,
		},
		{
			ID:           "vendor-lagos-fresh",
			Name:         "Lagos Fresh",
			Description:  "Fresh produce and vegetables, delivered daily from trusted farms.",
			CoverImage:   "https://images.unsplash.com/photo-1542838132-92c53300491e?w=800",
			LogoURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
			Category:     "Fresh Produce",
			Regions:      pq.StringArray{"west-africa"},
			Rating:       4.6,
			ReviewCount:  823,
			IsVerified:   true,
			DeliveryTime: "45-55 min",
			DeliveryFee:  3.49,
			MinOrder:     15.0,
			IsOpen:       true,
		},
		{
			ID:           "vendor-nairobi-textiles",
			Name:         "Nairobi Textiles",
			Description:  "Beautiful handwoven fabrics and traditional African textiles.",
			CoverImage:   "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800",
			LogoURL:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200",
			Category:     "Textiles & Fabrics",
			Regions:      pq.StringArray{"east-africa"},
			Rating:       4.9,
			ReviewCount:  456,
			IsVerified:   true,
			Tag:          strPtr("TOP RATED"),
			DeliveryTime: "2-3 days",
			DeliveryFee:  4.99,
			MinOrder:     25.0,
			IsOpen:       true,
		},
		{
			ID:           "vendor-cairo-spices",
			Name:         "Cairo Spice House",
			Description:  "Premium North African spices and aromatic blends.",
			CoverImage:   "https://images.unsplash.com/photo-1532336414038-cf19250c5757?w=800",
			LogoURL:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200",
			Category:     "Spices & Seasonings",
			Regions:      pq.StringArray{"north-africa"},
			Rating:       4.7,
			ReviewCount:  678,
			IsVerified:   true,
			DeliveryTime: "30-40 min",
			DeliveryFee:  2.49,
			MinOrder:     12.0,
			IsOpen:       true,
		},
		{
			ID:           "vendor-cape-foods",
			Name:         "Cape Town Foods",
			Description:  "South African delicacies and biltong specialists.",
			CoverImage:   "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
			LogoURL:      "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200",
			Category:     "Meats & Snacks",
			Regions:      pq.StringArray{"south-africa"},
			Rating:       4.5,
			ReviewCount:  534,
			IsVerified:   true,
			Tag:          strPtr("NEW"),
			DeliveryTime: "25-35 min",
			DeliveryFee:  3.99,
			MinOrder:     20.0,
			IsOpen:       true,
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:             "prod-jollof-seasoning",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Jollof Seasoning",
			Description:    "Our signature blend for the perfect Jollof rice. Made with premium tomatoes, peppers, and secret spices.",
			Price:          5.99,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "west-africa",
			Weight:         strPtr("100g"),
			Unit:           strPtr("Pack"),
			Badge:          strPtr("HOT"),
			Rating:         4.9,
			ReviewCount:    342,
			InStock:        true,
			Certifications: pq.StringArray{"ORGANIC"},
		},
		{
			ID:             "prod-suya-spice",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Suya Spice Mix",
			Description:    "Authentic Nigerian suya spice blend. Perfect for grilling and BBQ.",
			Price:          12.50,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1599909533167-b6dcb7c5c6?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "west-africa",
			Weight:         strPtr("250g"),
			Unit:           strPtr("Jar"),
			Rating:         4.8,
			ReviewCount:    189,
			InStock:        true,
			Certifications: pq.StringArray{"TOP RATED"},
		},
		{
			ID:             "prod-berbere-blend",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Berbere Blend",
			Description:    "Ethiopian spice blend with chili, fenugreek, and aromatic herbs.",
			Price:          8.99,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1532336414038-cf19250c5757?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "east-africa",
			Weight:         strPtr("150g"),
			Unit:           strPtr("Pack"),
			Rating:         4.7,
			ReviewCount:    156,
			InStock:        true,
			Certifications: pq.StringArray{},
		},
		{
			ID:             "prod-basmati-rice",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Premium Aged Basmati Rice",
			Description:    "Our premium aged Basmati rice is carefully selected from the foothills of the Himalayas. Aged for 2 years to enhance its aroma and non-sticky texture, perfectly suited for biryanis and pilafs.",
			Price:          12.50,
			OriginalPrice:  floatPtr(15.00),
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
			Images:         pq.StringArray{},
			Category:       "Grains",
			Region:         "east-africa",
			Weight:         strPtr("5kg"),
			Unit:           strPtr("Bag"),
			Rating:         4.8,
			ReviewCount:    423,
			InStock:        true,
			Certifications: pq.StringArray{"ORGANIC", "TOP RATED", "ECO-FRIENDLY"},
		},
		{
			ID:             "prod-egusi-seeds",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Egusi Seeds",
			Description:    "Ground melon seeds for traditional Nigerian egusi soup.",
			Price:          15.00,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1515543237350-b3eea1ec8082?w=400",
			Images:         pq.StringArray{},
			Category:       "Seeds & Nuts",
			Region:         "west-africa",
			Weight:         strPtr("500g"),
			Unit:           strPtr("Bulk"),
			Badge:          strPtr("HOT"),
			Rating:         4.6,
			ReviewCount:    267,
			InStock:        true,
			Certifications: pq.StringArray{},
		},
		{
			ID:             "prod-dried-peppers",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Dried Peppers",
			Description:    "Authentic African dried peppers, perfect for stews and soups.",
			Price:          4.50,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1583119022894-919a68a3d0e3?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "west-africa",
			Weight:         strPtr("100g"),
			Unit:           strPtr("Bag"),
			Rating:         4.5,
			ReviewCount:    134,
			InStock:        true,
			Certifications: pq.StringArray{},
		},
		{
			ID:             "prod-turmeric-powder",
			VendorID:       "vendor-mama-kitchen",
			Name:           "Turmeric Powder",
			Description:    "Premium ground turmeric with high curcumin content.",
			Price:          7.25,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1615485500710-aa71d63f5c0c?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "north-africa",
			Weight:         strPtr("200g"),
			Unit:           strPtr("Jar"),
			Rating:         4.7,
			ReviewCount:    89,
			InStock:        true,
			Certifications: pq.StringArray{"ORGANIC"},
		},
		{
			ID:             "prod-kente-cloth",
			VendorID:       "vendor-nairobi-textiles",
			Name:           "Kente Cloth Pattern A",
			Description:    "Hand-woven Ghanaian Kente cloth with traditional patterns.",
			Price:          45.00,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400",
			Images:         pq.StringArray{},
			Category:       "Textiles",
			Region:         "west-africa",
			Weight:         strPtr("3 Yards"),
			Unit:           strPtr("Piece"),
			Badge:          strPtr("PREMIUM"),
			Rating:         4.9,
			ReviewCount:    78,
			InStock:        true,
			Certifications: pq.StringArray{"HANDMADE"},
		},
		{
			ID:             "prod-dried-okra",
			VendorID:       "vendor-lagos-fresh",
			Name:           "Dried Okra Chips",
			Description:    "Crunchy dried okra, perfect for soups and snacking.",
			Price:          8.50,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1425543103986-22abb7d7e8d2?w=400",
			Images:         pq.StringArray{},
			Category:       "Vegetables",
			Region:         "west-africa",
			Weight:         strPtr("200g"),
			Unit:           strPtr("Pack"),
			Rating:         4.4,
			ReviewCount:    156,
			InStock:        true,
			Certifications: pq.StringArray{},
		},
		{
			ID:             "prod-biltong",
			VendorID:       "vendor-cape-foods",
			Name:           "Traditional Biltong",
			Description:    "South African air-dried cured meat, seasoned with traditional spices.",
			Price:          18.99,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1558030006-450675393462?w=400",
			Images:         pq.StringArray{},
			Category:       "Meats",
			Region:         "south-africa",
			Weight:         strPtr("250g"),
			Unit:           strPtr("Pack"),
			Badge:          strPtr("BESTSELLER"),
			Rating:         4.8,
			ReviewCount:    312,
			InStock:        true,
			Certifications: pq.StringArray{},
		},
		{
			ID:             "prod-ras-el-hanout",
			VendorID:       "vendor-cairo-spices",
			Name:           "Ras el Hanout",
			Description:    "Classic North African spice blend with over 20 aromatics.",
			Price:          9.99,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1506368249639-73a05d6f6488?w=400",
			Images:         pq.StringArray{},
			Category:       "Spices",
			Region:         "north-africa",
			Weight:         strPtr("100g"),
			Unit:           strPtr("Jar"),
			Rating:         4.7,
			ReviewCount:    234,
			InStock:        true,
			Certifications: pq.StringArray{"ARTISANAL"},
		},
		{
			ID:             "prod-palm-oil",
			VendorID:       "vendor-lagos-fresh",
			Name:           "Red Palm Oil",
			Description:    "Unrefined red palm oil, essential for West African cooking.",
			Price:          11.99,
			Currency:       "GBP",
			ImageURL:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400",
			Images:         pq.StringArray{},
			Category:       "Oils",
			Region:         "west-africa",
			Weight:         strPtr("500ml"),
			Unit:           strPtr("Bottle"),
			Rating:         4.6,
			ReviewCount:    445,
			InStock:        true,
			Certifications: pq.StringArray{"SUSTAINABLE"},
		},
	}
}

func seedBanners() []models.Banner {
	return []models.Banner{
		{
			ID:       "banner-1",
			Title:    "The Perfect Jollof Bundle",
			Subtitle: "Everything you need for an authentic taste of home, delivered in 30 mins.",
			ImageURL: "https://images.unsplash.com/photo-1604329760661-e71dc83f8f26?w=800",
			CTAText:  "Shop Collection",
			CTALink:  "/collection/jollof",
			Badge:    strPtr("FEATURED"),
		},
	}
}

func seedRegions() []models.Region {
	return []models.Region{
		{ID: "west-africa", Name: "West Africa", ImageURL: "https://images.unsplash.com/photo-1590001155093-a3c66ab0c3ff?w=200"},
		{ID: "east-africa", Name: "East Africa", ImageURL: "https://images.unsplash.com/photo-1489392191049-fc10c97e64b6?w=200"},
		{ID: "north-africa", Name: "North Africa", ImageURL: "https://images.unsplash.com/photo-1539635278303-d4002c07eae3?w=200"},
		{ID: "south-africa", Name: "South Africa", ImageURL: "https://images.unsplash.com/photo-1484318571209-661cf29a69c3?w=200"},
		{ID: "central-africa", Name: "Central Africa", ImageURL: "https://images.unsplash.com/photo-1523805009345-7448845a9e53?w=200"},
	}
}

func strPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}
