// Package seed holds the static demo data the stores are constructed with.
// Callers receive fresh copies so no two store instances share state.
package seed

import (
	"time"

	"transverse/internal/domain"
)

// SelfID is the id of the demo session owner. Seeded rides and
// conversations belong to this user.
const SelfID = "user1"

// BaseUser returns the base mock identity merged into demo logins.
func BaseUser() *domain.User {
	return &domain.User{
		ID:         "user1",
		Name:       "محمد أحمد",
		NameEn:     "Mohammed Ahmed",
		Email:      "mohammed@example.com",
		Phone:      "+966501234567",
		Photo:      "https://randomuser.me/api/portraits/men/10.jpg",
		Role:       domain.RoleRider,
		Points:     250,
		TotalRides: 45,
		Rating:     4.7,
	}
}

// AdminUser returns the fixed identity for the reserved admin credentials.
func AdminUser() *domain.User {
	return &domain.User{
		ID:     "admin_1",
		Name:   "مدير النظام",
		NameEn: "System Admin",
		Email:  "admin@transfers.com",
		Phone:  "+966500000000",
		Role:   domain.RoleAdmin,
	}
}

// VehicleClasses returns the read-only vehicle class catalog.
func VehicleClasses() []domain.VehicleClass {
	return []domain.VehicleClass{
		{
			ID:            "economy",
			Name:          "اقتصادي",
			NameEn:        "Economy",
			Description:   "خيار مناسب وموفر",
			DescriptionEn: "Affordable and reliable",
			BasePrice:     10,
			PricePerKm:    2.5,
			Capacity:      4,
		},
		{
			ID:            "comfort",
			Name:          "مريح",
			NameEn:        "Comfort",
			Description:   "سيارات أحدث وأكثر راحة",
			DescriptionEn: "Newer, more comfortable cars",
			BasePrice:     15,
			PricePerKm:    3.5,
			Capacity:      4,
		},
		{
			ID:            "premium",
			Name:          "فاخر",
			NameEn:        "Premium",
			Description:   "سيارات فاخرة للتجربة المميزة",
			DescriptionEn: "Luxury vehicles for premium experience",
			BasePrice:     25,
			PricePerKm:    5,
			Capacity:      4,
		},
		{
			ID:            "xl",
			Name:          "كبير",
			NameEn:        "XL",
			Description:   "سيارات واسعة تتسع لـ 6 ركاب",
			DescriptionEn: "Spacious vehicles for up to 6 passengers",
			BasePrice:     20,
			PricePerKm:    4,
			Capacity:      6,
		},
	}
}

// PaymentMethods returns the read-only payment method catalog.
func PaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{
			ID:            "cash",
			Name:          "نقداً",
			NameEn:        "Cash",
			Description:   "الدفع نقداً للسائق",
			DescriptionEn: "Pay the driver in cash",
		},
		{
			ID:            "card",
			Name:          "بطاقة ائتمان",
			NameEn:        "Credit Card",
			Description:   "الدفع بالبطاقة المحفوظة",
			DescriptionEn: "Pay with a saved card",
		},
		{
			ID:            "points",
			Name:          "نقاط",
			NameEn:        "Points",
			Description:   "استخدام نقاط المكافآت",
			DescriptionEn: "Use reward points",
		},
		{
			ID:            "paypal",
			Name:          "باي بال",
			NameEn:        "PayPal",
			Description:   "الدفع عبر باي بال",
			DescriptionEn: "Pay through PayPal",
		},
	}
}

// Rides returns the seeded ride history, most recent first.
func Rides() []*domain.Ride {
	return []*domain.Ride{
		{
			ID:      "ride1",
			RiderID: SelfID,
			Pickup: domain.Location{
				Lat: 24.7136, Lng: 46.6753,
				Address:   "شارع الملك فهد، الرياض",
				AddressEn: "King Fahd Road, Riyadh",
			},
			Dropoff: domain.Location{
				Lat: 24.7736, Lng: 46.7353,
				Address:   "العليا، الرياض",
				AddressEn: "Al Olaya, Riyadh",
			},
			VehicleClassID:  "economy",
			PaymentMethodID: "cash",
			Status:          domain.RideStatusCompleted,
			Price:           45,
			DistanceKm:      12.5,
			Rating:          5,
			RequestedAt:     time.Date(2025, 1, 15, 10, 12, 0, 0, time.UTC),
			CompletedAt:     time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:      "ride2",
			RiderID: SelfID,
			Pickup: domain.Location{
				Lat: 24.7736, Lng: 46.7353,
				Address:   "العليا، الرياض",
				AddressEn: "Al Olaya, Riyadh",
			},
			Dropoff: domain.Location{
				Lat: 24.6136, Lng: 46.6153,
				Address:   "مطار الملك خالد الدولي",
				AddressEn: "King Khalid International Airport",
			},
			VehicleClassID:  "comfort",
			PaymentMethodID: "points",
			Status:          domain.RideStatusCompleted,
			Price:           85,
			DistanceKm:      35.2,
			Rating:          4,
			RequestedAt:     time.Date(2025, 1, 10, 13, 43, 0, 0, time.UTC),
			CompletedAt:     time.Date(2025, 1, 10, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:      "ride3",
			RiderID: SelfID,
			Pickup: domain.Location{
				Lat: 24.7136, Lng: 46.6753,
				Address:   "حي السفارات، الرياض",
				AddressEn: "Diplomatic Quarter, Riyadh",
			},
			Dropoff: domain.Location{
				Lat: 24.7436, Lng: 46.7053,
				Address:   "برج المملكة",
				AddressEn: "Kingdom Tower",
			},
			VehicleClassID:  "economy",
			PaymentMethodID: "paypal",
			Status:          domain.RideStatusCompleted,
			Price:           35,
			DistanceKm:      8.3,
			Rating:          5,
			RequestedAt:     time.Date(2025, 1, 8, 8, 48, 0, 0, time.UTC),
			CompletedAt:     time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC),
		},
	}
}

// Users returns the static chat user directory.
func Users() []*domain.ChatUser {
	now := time.Now()
	return []*domain.ChatUser{
		{
			ID:       "user1",
			Name:     "محمد أحمد",
			NameEn:   "Mohammed Ahmed",
			Username: "mohammed_ahmed",
			UserID:   "TV12345",
			Phone:    "+966501234567",
			Email:    "mohammed@example.com",
			Photo:    "https://randomuser.me/api/portraits/men/10.jpg",
			Status:   "online",
			LastSeen: now,
			Bio:      "راكب نشيط في ترانسفيرز",
			BioEn:    "Active rider on TransVerse",
		},
		{
			ID:       "user2",
			Name:     "أحمد محمد",
			NameEn:   "Ahmed Mohammed",
			Username: "ahmed_driver",
			UserID:   "TV67890",
			Phone:    "+966501234568",
			Email:    "ahmed@example.com",
			Photo:    "https://randomuser.me/api/portraits/men/1.jpg",
			Status:   "online",
			LastSeen: now,
			Bio:      "سائق محترف",
			BioEn:    "Professional driver",
		},
		{
			ID:       "user3",
			Name:     "فاطمة علي",
			NameEn:   "Fatima Ali",
			Username: "fatima_ali",
			UserID:   "TV11111",
			Phone:    "+966501234569",
			Email:    "fatima@example.com",
			Photo:    "https://randomuser.me/api/portraits/women/1.jpg",
			Status:   "offline",
			LastSeen: now.Add(-time.Hour),
			Bio:      "أحب استخدام ترانسفيرز",
			BioEn:    "Love using TransVerse",
		},
		{
			ID:       "user4",
			Name:     "خالد العتيبي",
			NameEn:   "Khaled Al-Otaibi",
			Username: "khaled_otaibi",
			UserID:   "TV22222",
			Phone:    "+966501234570",
			Email:    "khaled@example.com",
			Photo:    "https://randomuser.me/api/portraits/men/2.jpg",
			Status:   "online",
			LastSeen: now,
			Bio:      "سائق وموصل",
			BioEn:    "Driver and courier",
		},
	}
}

// Conversations returns the seeded conversation list, most recent first,
// together with the per-conversation message lists.
func Conversations() ([]*domain.Conversation, map[string][]*domain.Message) {
	users := Users()
	now := time.Now()

	conv1Messages := []*domain.Message{
		{
			ID:        "msg1-1",
			SenderID:  "user1",
			Text:      "مرحباً! هل يمكنك قبول الرحلة؟",
			TextEn:    "Hello! Can you accept the ride?",
			Timestamp: now.Add(-15 * time.Minute),
			Read:      true,
		},
		{
			ID:        "msg1-2",
			SenderID:  "user2",
			Text:      "نعم بالتأكيد، أنا في الطريق",
			TextEn:    "Yes sure, I'm on my way",
			Timestamp: now.Add(-10 * time.Minute),
			Read:      true,
		},
		{
			ID:        "msg1-3",
			SenderID:  "user1",
			Text:      "رائع! في انتظارك",
			TextEn:    "Great! Waiting for you",
			Timestamp: now.Add(-400 * time.Second),
			Read:      true,
		},
		{
			ID:        "msg1-4",
			SenderID:  "user2",
			Text:      "شكراً على الرحلة!",
			TextEn:    "Thanks for the ride!",
			Timestamp: now.Add(-5 * time.Minute),
			Read:      true,
		},
	}

	conv2Messages := []*domain.Message{
		{
			ID:        "msg2-1",
			SenderID:  "user1",
			Text:      "كيف كانت الرحلة؟",
			TextEn:    "How was the trip?",
			Timestamp: now.Add(-3 * time.Hour),
			Read:      true,
		},
		{
			ID:        "msg2-2",
			SenderID:  "user4",
			Text:      "وصلت بسلامة",
			TextEn:    "Arrived safely",
			Timestamp: now.Add(-2 * time.Hour),
			Read:      false,
		},
	}

	conversations := []*domain.Conversation{
		{
			ID:           "conv1",
			Participants: []string{"user1", "user2"},
			OtherUser:    users[1],
			LastMessage:  conv1Messages[len(conv1Messages)-1],
			UnreadCount:  0,
			UpdatedAt:    now.Add(-5 * time.Minute),
		},
		{
			ID:           "conv2",
			Participants: []string{"user1", "user4"},
			OtherUser:    users[3],
			LastMessage:  conv2Messages[len(conv2Messages)-1],
			UnreadCount:  2,
			UpdatedAt:    now.Add(-2 * time.Hour),
		},
	}

	messages := map[string][]*domain.Message{
		"conv1": conv1Messages,
		"conv2": conv2Messages,
	}

	return conversations, messages
}
