package catalog

import (
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/i18n"
)

func amenity(id, ko, en, icon string) booking.Amenity {
	return booking.Amenity{
		ID:   id,
		Name: i18n.Text{i18n.Korean: ko, i18n.English: en},
		Icon: icon,
	}
}

var (
	wifi       = amenity("wifi", "무료 Wi-Fi", "Free Wi-Fi", "wifi")
	tv         = amenity("tv", "스마트 TV", "Smart TV", "tv")
	aircon     = amenity("ac", "에어컨", "Air Conditioning", "snowflake")
	fridge     = amenity("fridge", "미니 냉장고", "Mini Refrigerator", "box")
	safe       = amenity("safe", "객실 금고", "In-room Safe", "lock")
	toiletries = amenity("toiletries", "어메니티", "Toiletries", "sparkles")
	bathtub    = amenity("bathtub", "욕조", "Bathtub", "bath")
	coffee     = amenity("coffee", "커피 머신", "Coffee Machine", "coffee")
	minibar    = amenity("minibar", "미니바", "Mini Bar", "wine")
	living     = amenity("living", "거실 공간", "Living Area", "sofa")
	jacuzzi    = amenity("jacuzzi", "자쿠지", "Jacuzzi", "droplets")
	cityView   = amenity("view", "시티 뷰", "City View", "building")
	extraBed   = amenity("extra-bed", "추가 침구", "Extra Bedding", "bed")
	dressing   = amenity("dressing", "드레스룸", "Dressing Room", "wardrobe")
	sound      = amenity("sound", "사운드 시스템", "Sound System", "music")
	projector  = amenity("projector", "프로젝터", "Projector", "projector")
	kitchen    = amenity("kitchen", "간이 주방", "Kitchenette", "utensils")
)

func join(groups ...[]booking.Amenity) []booking.Amenity {
	var out []booking.Amenity
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func commonAmenities() []booking.Amenity {
	return []booking.Amenity{wifi, tv, aircon, fridge, safe, toiletries}
}

func premiumAmenities() []booking.Amenity {
	return join(commonAmenities(), []booking.Amenity{bathtub, coffee, minibar})
}

func suiteAmenities() []booking.Amenity {
	return join(premiumAmenities(), []booking.Amenity{living, jacuzzi, cityView})
}

// Amenity looks up a catalog amenity by id.
func Amenity(id string) (booking.Amenity, bool) {
	for _, a := range join(suiteAmenities(), []booking.Amenity{extraBed, dressing, sound, projector, kitchen}) {
		if a.ID == id {
			return a, true
		}
	}

	return booking.Amenity{}, false
}
