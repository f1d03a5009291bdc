package services

import (
	"time"

	"crossfit-gym-platform/internal/models"
)

// Fixture data used when the external backends are unreachable. The shop and
// schedule pages silently fall back to these so the demo site never shows an
// empty storefront or timetable.

// MockProducts returns the fixture catalog
func MockProducts() []*models.Product {
	return []*models.Product{
		{
			ID:          "prod-shirt-001",
			Name:        "Box Logo Trainingsshirt",
			Description: "Atmungsaktives Funktionsshirt mit Box-Logo, perfekt für WODs und Open Gym.",
			Price:       2990,
			Category:    models.CategoryClothing,
			Images:      []string{"/images/shop/shirt-front.jpg", "/images/shop/shirt-back.jpg"},
			InStock:     true,
			Featured:    true,
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "prod-hoodie-002",
			Name:        "Community Hoodie",
			Description: "Schwerer Hoodie für die kalte Halle. Unisex-Schnitt.",
			Price:       5490,
			Category:    models.CategoryClothing,
			Images:      []string{"/images/shop/hoodie.jpg"},
			InStock:     true,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID:          "prod-rope-003",
			Name:        "Speed Rope",
			Description: "Kugelgelagertes Springseil für Double Unders, Länge verstellbar.",
			Price:       1990,
			Category:    models.CategoryEquipment,
			Images:      []string{"/images/shop/rope.jpg"},
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "prod-wraps-004",
			Name:        "Wrist Wraps",
			Description: "Stützende Handgelenkbandagen für Überkopf-Lifts.",
			Price:       1490,
			Category:    models.CategoryAccessories,
			Images:      []string{"/images/shop/wraps.jpg"},
			InStock:     true,
		},
		{
			ID:          "prod-whey-005",
			Name:        "Whey Protein Vanille",
			Description: "Molkenprotein mit Vanillegeschmack, 900g Beutel.",
			Price:       3490,
			Category:    models.CategorySupplements,
			Images:      []string{"/images/shop/whey.jpg"},
			InStock:     false,
		},
		{
			ID:          "prod-grips-006",
			Name:        "Gymnastic Grips",
			Description: "Leder-Grips für Pull-ups und Toes-to-Bar.",
			Price:       2490,
			Category:    models.CategoryAccessories,
			Images:      []string{"/images/shop/grips.jpg"},
			InStock:     true,
		},
	}
}

// MockReviews returns fixture reviews for a product
func MockReviews(productID string) []*models.Review {
	return []*models.Review{
		{
			ID:               "rev-001",
			ProductID:        productID,
			Author:           "Sarah K.",
			Rating:           5,
			Title:            "Top Qualität",
			Comment:          "Sitzt perfekt und hält auch nach vielen Wäschen die Form.",
			VerifiedPurchase: true,
			HelpfulCount:     12,
			CreatedAt:        time.Now().AddDate(0, -2, 0),
		},
		{
			ID:               "rev-002",
			ProductID:        productID,
			Author:           "Jonas M.",
			Rating:           4,
			Title:            "Gutes Preis-Leistungs-Verhältnis",
			Comment:          "Fällt etwas kleiner aus, lieber eine Größe größer bestellen.",
			VerifiedPurchase: true,
			HelpfulCount:     5,
			CreatedAt:        time.Now().AddDate(0, -1, -10),
		},
	}
}

// MockClasses returns a fixture training week
func MockClasses() []*models.Class {
	return []*models.Class{
		{ID: "class-mo-0630", Name: "WOD", Type: "wod", Level: "all", Weekday: "Montag", StartTime: "06:30", EndTime: "07:30", Coach: "Lisa", SpotsTotal: 14, SpotsBooked: 11},
		{ID: "class-mo-1215", Name: "Lunch WOD", Type: "wod", Level: "all", Weekday: "Montag", StartTime: "12:15", EndTime: "13:00", Coach: "Tom", SpotsTotal: 10, SpotsBooked: 10},
		{ID: "class-mo-1800", Name: "WOD", Type: "wod", Level: "all", Weekday: "Montag", StartTime: "18:00", EndTime: "19:00", Coach: "Lisa", SpotsTotal: 14, SpotsBooked: 8},
		{ID: "class-di-1800", Name: "Weightlifting", Type: "weightlifting", Level: "intermediate", Weekday: "Dienstag", StartTime: "18:00", EndTime: "19:30", Coach: "Markus", SpotsTotal: 8, SpotsBooked: 6},
		{ID: "class-mi-0630", Name: "WOD", Type: "wod", Level: "all", Weekday: "Mittwoch", StartTime: "06:30", EndTime: "07:30", Coach: "Tom", SpotsTotal: 14, SpotsBooked: 4},
		{ID: "class-mi-1900", Name: "Gymnastics", Type: "gymnastics", Level: "all", Weekday: "Mittwoch", StartTime: "19:00", EndTime: "20:00", Coach: "Nina", SpotsTotal: 12, SpotsBooked: 9},
		{ID: "class-do-1800", Name: "WOD", Type: "wod", Level: "all", Weekday: "Donnerstag", StartTime: "18:00", EndTime: "19:00", Coach: "Markus", SpotsTotal: 14, SpotsBooked: 13},
		{ID: "class-fr-1700", Name: "Open Gym", Type: "open-gym", Level: "all", Weekday: "Freitag", StartTime: "17:00", EndTime: "20:00", Coach: "", SpotsTotal: 20, SpotsBooked: 7},
		{ID: "class-sa-1000", Name: "Beginner WOD", Type: "wod", Level: "beginner", Weekday: "Samstag", StartTime: "10:00", EndTime: "11:00", Coach: "Nina", SpotsTotal: 12, SpotsBooked: 5},
		{ID: "class-sa-1115", Name: "Team WOD", Type: "wod", Level: "all", Weekday: "Samstag", StartTime: "11:15", EndTime: "12:15", Coach: "Lisa", SpotsTotal: 16, SpotsBooked: 12},
	}
}
