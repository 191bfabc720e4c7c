package seed

import (
	"time"

	"transverse/internal/domain"
)

// RestaurantCategories returns the read-only restaurant filter catalog.
func RestaurantCategories() []domain.RestaurantCategory {
	return []domain.RestaurantCategory{
		{ID: "all", Name: "الكل", NameEn: "All", Icon: "Utensils"},
		{ID: "burgers", Name: "برجر", NameEn: "Burgers", Icon: "Beef"},
		{ID: "pizza", Name: "بيتزا", NameEn: "Pizza", Icon: "Pizza"},
		{ID: "arabic", Name: "عربي", NameEn: "Arabic", Icon: "Drumstick"},
		{ID: "asian", Name: "آسيوي", NameEn: "Asian", Icon: "Coffee"},
		{ID: "desserts", Name: "حلويات", NameEn: "Desserts", Icon: "IceCream"},
		{ID: "drinks", Name: "مشروبات", NameEn: "Drinks", Icon: "Coffee"},
		{ID: "grocery", Name: "بقالة", NameEn: "Grocery", Icon: "ShoppingBag"},
	}
}

// Restaurants returns the read-only restaurant catalog.
func Restaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           "rest1",
			Name:         "مطعم البيك",
			NameEn:       "Al Baik Restaurant",
			Category:     "burgers",
			Image:        "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=300&fit=crop",
			Rating:       4.8,
			ReviewCount:  1250,
			DeliveryTime: "20-30",
			DeliveryFee:  5,
			MinOrder:     20,
			Cuisine:      "وجبات سريعة",
			CuisineEn:    "Fast Food",
			IsOpen:       true,
			Popular:      true,
		},
		{
			ID:           "rest2",
			Name:         "مطعم الرومانسية",
			NameEn:       "Romansia Restaurant",
			Category:     "arabic",
			Image:        "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop",
			Rating:       4.7,
			ReviewCount:  890,
			DeliveryTime: "30-40",
			DeliveryFee:  8,
			MinOrder:     30,
			Cuisine:      "مأكولات عربية",
			CuisineEn:    "Arabic Cuisine",
			IsOpen:       true,
			Popular:      true,
		},
		{
			ID:           "rest3",
			Name:         "بيتزا هت",
			NameEn:       "Pizza Hut",
			Category:     "pizza",
			Image:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
			Rating:       4.5,
			ReviewCount:  2100,
			DeliveryTime: "25-35",
			DeliveryFee:  0,
			MinOrder:     25,
			Cuisine:      "بيتزا إيطالية",
			CuisineEn:    "Italian Pizza",
			IsOpen:       true,
			Popular:      true,
		},
		{
			ID:           "rest4",
			Name:         "مقهى ستارباكس",
			NameEn:       "Starbucks Cafe",
			Category:     "drinks",
			Image:        "https://images.unsplash.com/photo-1511920170033-f8396924c348?w=400&h=300&fit=crop",
			Rating:       4.6,
			ReviewCount:  1580,
			DeliveryTime: "15-25",
			DeliveryFee:  5,
			MinOrder:     15,
			Cuisine:      "قهوة ومشروبات",
			CuisineEn:    "Coffee & Drinks",
			IsOpen:       true,
		},
		{
			ID:           "rest5",
			Name:         "مطعم باندا الصيني",
			NameEn:       "Panda Chinese Restaurant",
			Category:     "asian",
			Image:        "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=400&h=300&fit=crop",
			Rating:       4.4,
			ReviewCount:  750,
			DeliveryTime: "35-45",
			DeliveryFee:  7,
			MinOrder:     35,
			Cuisine:      "مأكولات صينية",
			CuisineEn:    "Chinese Food",
			IsOpen:       true,
		},
		{
			ID:           "rest6",
			Name:         "متجر بنده",
			NameEn:       "Panda Grocery",
			Category:     "grocery",
			Image:        "https://images.unsplash.com/photo-1588964895597-cfccd6e2dbf9?w=400&h=300&fit=crop",
			Rating:       4.3,
			ReviewCount:  980,
			DeliveryTime: "20-30",
			DeliveryFee:  10,
			MinOrder:     50,
			Cuisine:      "بقالة",
			CuisineEn:    "Grocery",
			IsOpen:       true,
		},
	}
}

// MenuItems returns the read-only per-restaurant menu catalog.
func MenuItems() map[string][]domain.MenuItem {
	return map[string][]domain.MenuItem{
		"rest1": {
			{
				ID:            "item1",
				Name:          "برجر دجاج",
				NameEn:        "Chicken Burger",
				Description:   "برجر دجاج طازج مع الخضار والصوص الخاص",
				DescriptionEn: "Fresh chicken burger with vegetables and special sauce",
				Price:         18,
				Image:         "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop",
				Category:      "burgers",
				Popular:       true,
			},
			{
				ID:            "item2",
				Name:          "برجر لحم",
				NameEn:        "Beef Burger",
				Description:   "برجر لحم فاخر مع جبنة شيدر",
				DescriptionEn: "Premium beef burger with cheddar cheese",
				Price:         22,
				Image:         "https://images.unsplash.com/photo-1550547660-d9450f859349?w=300&h=200&fit=crop",
				Category:      "burgers",
				Popular:       true,
			},
			{
				ID:            "item3",
				Name:          "بطاطس مقلية",
				NameEn:        "French Fries",
				Description:   "بطاطس مقرمشة ولذيذة",
				DescriptionEn: "Crispy and delicious fries",
				Price:         8,
				Image:         "https://images.unsplash.com/photo-1576107232684-1279f390859f?w=300&h=200&fit=crop",
				Category:      "sides",
			},
			{
				ID:            "item4",
				Name:          "عصير برتقال",
				NameEn:        "Orange Juice",
				Description:   "عصير برتقال طبيعي طازج",
				DescriptionEn: "Fresh natural orange juice",
				Price:         10,
				Image:         "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=300&h=200&fit=crop",
				Category:      "drinks",
			},
		},
		"rest2": {
			{
				ID:            "item5",
				Name:          "كبسة دجاج",
				NameEn:        "Chicken Kabsa",
				Description:   "كبسة دجاج على الطريقة السعودية",
				DescriptionEn: "Traditional Saudi chicken kabsa",
				Price:         35,
				Image:         "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=300&h=200&fit=crop",
				Category:      "main",
				Popular:       true,
			},
			{
				ID:            "item6",
				Name:          "مندي لحم",
				NameEn:        "Lamb Mandi",
				Description:   "مندي لحم يمني أصلي",
				DescriptionEn: "Authentic Yemeni lamb mandi",
				Price:         45,
				Image:         "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=300&h=200&fit=crop",
				Category:      "main",
				Popular:       true,
			},
			{
				ID:            "item7",
				Name:          "سلطة فتوش",
				NameEn:        "Fattoush Salad",
				Description:   "سلطة فتوش لبنانية",
				DescriptionEn: "Lebanese fattoush salad",
				Price:         15,
				Image:         "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=300&h=200&fit=crop",
				Category:      "salads",
			},
		},
		"rest3": {
			{
				ID:            "item8",
				Name:          "بيتزا مارغريتا",
				NameEn:        "Margherita Pizza",
				Description:   "بيتزا كلاسيكية مع الجبنة والريحان",
				DescriptionEn: "Classic pizza with cheese and basil",
				Price:         30,
				Image:         "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=300&h=200&fit=crop",
				Category:      "pizza",
				Popular:       true,
			},
			{
				ID:            "item9",
				Name:          "بيتزا بيبروني",
				NameEn:        "Pepperoni Pizza",
				Description:   "بيتزا مع شرائح البيبروني",
				DescriptionEn: "Pizza with pepperoni slices",
				Price:         38,
				Image:         "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=300&h=200&fit=crop",
				Category:      "pizza",
				Popular:       true,
			},
		},
	}
}

// RestaurantPickupAddress is the fixed vendor-side address stamped on
// placed orders.
func RestaurantPickupAddress() domain.Location {
	return domain.Location{
		Lat: 24.7236, Lng: 46.6853,
		Address:   "حي العليا، الرياض",
		AddressEn: "Al Olaya District, Riyadh",
	}
}

// DeliveryOrders returns the seeded order history, most recent first.
func DeliveryOrders() []*domain.Order {
	restaurants := Restaurants()
	menus := MenuItems()
	rest1 := restaurants[0]

	return []*domain.Order{
		{
			ID:           "order1",
			RestaurantID: "rest1",
			Restaurant:   &rest1,
			CustomerID:   SelfID,
			Items: []domain.CartItem{
				{Item: menus["rest1"][0], Quantity: 2, RestaurantID: "rest1"},
				{Item: menus["rest1"][2], Quantity: 1, RestaurantID: "rest1"},
			},
			Status:      domain.OrderStatusPreparing,
			TotalPrice:  44,
			DeliveryFee: 5,
			DeliveryAddress: domain.Location{
				Lat: 24.7136, Lng: 46.6753,
				Address:   "شارع الملك فهد، الرياض",
				AddressEn: "King Fahd Road, Riyadh",
			},
			RestaurantAddress: RestaurantPickupAddress(),
			OrderTime:         time.Now(),
			EstimatedDelivery: "25-35",
			PaymentMethodID:   "cash",
		},
	}
}
