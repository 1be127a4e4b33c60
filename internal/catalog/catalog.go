// Package catalog is the hotel's static room list. It seeds the mock adapter
// and is never mutated after start-up.
package catalog

import (
	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/i18n"
)

const imageBase = "https://placehold.co/800x600/1a237e/d4af37?text="

func images(primaryAlt, primaryText string, rest ...string) []booking.Image {
	out := []booking.Image{{URL: imageBase + primaryText, Alt: primaryAlt, IsPrimary: true}}

	for i := 0; i+1 < len(rest); i += 2 {
		out = append(out, booking.Image{URL: imageBase + rest[i+1], Alt: rest[i]})
	}

	return out
}

func rooms() []booking.Room {
	return []booking.Room{
		{
			ID:   "standard",
			Slug: "standard",
			Name: i18n.Text{i18n.Korean: "스탠다드", i18n.English: "Standard", i18n.Japanese: "スタンダード", i18n.Chinese: "标准间"},
			Description: i18n.Text{
				i18n.Korean:  "아늑하고 편안한 스탠다드 객실입니다. 비즈니스 출장이나 단기 투숙에 적합하며, 필수 편의시설이 완비되어 있습니다. 퀸 사이즈 침대와 쾌적한 욕실로 편안한 휴식을 보장합니다.",
				i18n.English: "A cozy and comfortable standard room perfect for business trips or short stays. Equipped with essential amenities, featuring a queen-size bed and a pleasant bathroom for a restful experience.",
			},
			PricePerNight: 70000, //nolint:gomnd
			MaxGuests:     2,     //nolint:gomnd
			Size:          20,    //nolint:gomnd
			BedType:       booking.BedQueen,
			ViewType:      booking.ViewCity,
			Amenities:     commonAmenities(),
			Images: images("Standard Room", "Standard+Room",
				"Standard Room Bathroom", "Standard+Bathroom"),
			IsAvailable: true,
		},
		{
			ID:   "standard-premium",
			Slug: "standard-premium",
			Name: i18n.Text{i18n.Korean: "스탠다드 프리미엄", i18n.English: "Standard Premium", i18n.Japanese: "スタンダードプレミアム", i18n.Chinese: "高级标准间"},
			Description: i18n.Text{
				i18n.Korean:  "스탠다드 객실의 업그레이드 버전으로, 더 넓은 공간과 추가 편의시설을 제공합니다. 프리미엄 침구류와 고급 어메니티로 한층 높은 수준의 편안함을 경험하세요.",
				i18n.English: "An upgraded version of our standard room with more space and additional amenities. Experience enhanced comfort with premium bedding and luxury toiletries.",
			},
			PricePerNight: 80000, //nolint:gomnd
			MaxGuests:     2,     //nolint:gomnd
			Size:          25,    //nolint:gomnd
			BedType:       booking.BedQueen,
			ViewType:      booking.ViewCity,
			Amenities:     join(commonAmenities(), []booking.Amenity{coffee}),
			Images: images("Standard Premium Room", "Standard+Premium",
				"Standard Premium Room View", "Premium+View"),
			IsAvailable: true,
		},
		{
			ID:   "deluxe",
			Slug: "deluxe",
			Name: i18n.Text{i18n.Korean: "디럭스", i18n.English: "Deluxe", i18n.Japanese: "デラックス", i18n.Chinese: "豪华间"},
			Description: i18n.Text{
				i18n.Korean:  "세련된 인테리어와 넓은 공간의 디럭스 객실입니다. 킹 사이즈 침대, 고급 욕조, 시티 뷰가 제공되며 비즈니스와 레저 모두에 완벽한 선택입니다.",
				i18n.English: "A sophisticated deluxe room with elegant interiors and spacious layout. Features a king-size bed, luxury bathtub, and city views, perfect for both business and leisure travelers.",
			},
			PricePerNight: 90000, //nolint:gomnd
			MaxGuests:     2,     //nolint:gomnd
			Size:          30,    //nolint:gomnd
			BedType:       booking.BedKing,
			ViewType:      booking.ViewCity,
			Amenities:     premiumAmenities(),
			Images: images("Deluxe Room", "Deluxe+Room",
				"Deluxe Room Bathroom", "Deluxe+Bathroom",
				"Deluxe Room View", "Deluxe+View"),
			IsAvailable: true,
		},
		{
			ID:   "family-twin",
			Slug: "family-twin",
			Name: i18n.Text{i18n.Korean: "패밀리 트윈", i18n.English: "Family Twin", i18n.Japanese: "ファミリーツイン", i18n.Chinese: "家庭双床房"},
			Description: i18n.Text{
				i18n.Korean:  "가족 여행에 최적화된 트윈 베드 객실입니다. 두 개의 더블 베드가 제공되어 최대 4인까지 편안하게 투숙할 수 있습니다. 넓은 공간과 가족 친화적 편의시설을 갖추고 있습니다.",
				i18n.English: "Optimized for family travel with twin bed configuration. Features two double beds accommodating up to 4 guests comfortably. Spacious layout with family-friendly amenities.",
			},
			PricePerNight: 90000, //nolint:gomnd
			MaxGuests:     4,     //nolint:gomnd
			Size:          32,    //nolint:gomnd
			BedType:       booking.BedTwin,
			ViewType:      booking.ViewGarden,
			Amenities:     join(premiumAmenities(), []booking.Amenity{extraBed}),
			Images: images("Family Twin Room", "Family+Twin",
				"Family Twin Room Beds", "Twin+Beds"),
			IsAvailable: true,
		},
		{
			ID:   "family-triple",
			Slug: "family-triple",
			Name: i18n.Text{i18n.Korean: "패밀리 트리플", i18n.English: "Family Triple", i18n.Japanese: "ファミリートリプル", i18n.Chinese: "家庭三人房"},
			Description: i18n.Text{
				i18n.Korean:  "대가족을 위한 넓은 객실입니다. 더블 베드 1개와 싱글 베드 2개가 제공되어 최대 5인까지 투숙 가능합니다. 독립된 드레스룸과 넓은 욕실이 특징입니다.",
				i18n.English: "A spacious room designed for larger families. Features one double bed and two single beds, accommodating up to 5 guests. Includes a separate dressing area and large bathroom.",
			},
			PricePerNight: 110000, //nolint:gomnd
			MaxGuests:     5,      //nolint:gomnd
			Size:          38,     //nolint:gomnd
			BedType:       booking.BedTwin,
			ViewType:      booking.ViewGarden,
			Amenities:     join(premiumAmenities(), []booking.Amenity{extraBed, dressing}),
			Images: images("Family Triple Room", "Family+Triple",
				"Family Triple Room Layout", "Triple+Layout"),
			IsAvailable: true,
		},
		{
			ID:   "royal-suite",
			Slug: "royal-suite",
			Name: i18n.Text{i18n.Korean: "로얄 스위트", i18n.English: "Royal Suite", i18n.Japanese: "ロイヤルスイート", i18n.Chinese: "皇家套房"},
			Description: i18n.Text{
				i18n.Korean:  "최고급 럭셔리 스위트 객실입니다. 독립된 거실과 침실, 대형 자쿠지 욕조, 파노라마 시티 뷰를 갖추고 있습니다. VIP 고객과 특별한 기념일에 완벽한 선택입니다.",
				i18n.English: "Our premium luxury suite offering the finest accommodations. Features separate living room and bedroom, large jacuzzi bath, and panoramic city views. Perfect for VIP guests and special occasions.",
			},
			PricePerNight: 130000, //nolint:gomnd
			MaxGuests:     2,      //nolint:gomnd
			Size:          45,     //nolint:gomnd
			BedType:       booking.BedKing,
			ViewType:      booking.ViewCity,
			Amenities:     suiteAmenities(),
			Images: images("Royal Suite", "Royal+Suite",
				"Royal Suite Living Room", "Suite+Living",
				"Royal Suite Bathroom", "Suite+Bathroom",
				"Royal Suite View", "Suite+View"),
			IsAvailable: true,
		},
		{
			ID:   "party-suite",
			Slug: "party-suite",
			Name: i18n.Text{i18n.Korean: "파티 스위트", i18n.English: "Party Suite", i18n.Japanese: "パーティースイート", i18n.Chinese: "派对套房"},
			Description: i18n.Text{
				i18n.Korean:  "특별한 모임을 위한 최대 규모의 스위트 객실입니다. 넓은 거실 공간은 소규모 파티나 비즈니스 미팅에 적합하며, 최대 6인이 투숙 가능합니다. 프라이빗한 분위기에서 특별한 순간을 만드세요.",
				i18n.English: "Our largest suite designed for special gatherings. The spacious living area is perfect for intimate parties or business meetings, accommodating up to 6 guests. Create memorable moments in a private setting.",
			},
			PricePerNight: 200000, //nolint:gomnd
			MaxGuests:     6,      //nolint:gomnd
			Size:          60,     //nolint:gomnd
			BedType:       booking.BedKing,
			ViewType:      booking.ViewCity,
			Amenities:     join(suiteAmenities(), []booking.Amenity{sound, projector, kitchen}),
			Images: images("Party Suite", "Party+Suite",
				"Party Suite Living Area", "Party+Living",
				"Party Suite Bedroom", "Party+Bedroom",
				"Party Suite Entertainment", "Entertainment"),
			IsAvailable: true,
		},
	}
}

// Rooms returns a fresh copy of the catalog in display order.
func Rooms() []booking.Room {
	return rooms()
}

func Available(list []booking.Room) []booking.Room {
	out := make([]booking.Room, 0, len(list))

	for _, r := range list {
		if r.IsAvailable {
			out = append(out, r)
		}
	}

	return out
}
