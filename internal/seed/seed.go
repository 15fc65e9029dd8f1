// Package seed loads the initial admin account and site content into an empty
// database.
package seed

import (
	"database/sql"

	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/rs/zerolog/log"
)

func ptr(s string) *string { return &s }

// Run seeds the admin user, articles and locations, each only when its table
// is empty. Safe to call on every startup.
func Run(db *sql.DB, users services.UserServiceProvider, articles services.ArticleServiceProvider, locations services.LocationServiceProvider) error {
	log.Info().Msg("Checking if database needs seeding...")

	if empty, err := tableEmpty(db, "users"); err != nil {
		return err
	} else if empty {
		log.Info().Msg("Seeding admin user...")
		if _, err := users.CreateUser("admin", "password123"); err != nil {
			return err
		}
	}

	if empty, err := tableEmpty(db, "articles"); err != nil {
		return err
	} else if empty {
		log.Info().Msg("Seeding articles...")
		for _, input := range seedArticles {
			if _, err := articles.CreateArticle(input); err != nil {
				return err
			}
		}
	}

	if empty, err := tableEmpty(db, "locations"); err != nil {
		return err
	} else if empty {
		log.Info().Msg("Seeding locations...")
		for _, input := range seedLocations {
			if _, err := locations.CreateLocation(input); err != nil {
				return err
			}
		}
	}

	log.Info().Msg("Database seeding check complete")
	return nil
}

func tableEmpty(db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

var seedArticles = []services.ArticleInput{
	{
		Title:    "Yeni Mövsüm Kolleksiyası",
		Summary:  "2024-cü ilin yaz-yay kolleksiyasında ən son dəb tendensiyaları və rəng kombinasiyaları ilə tanış olun...",
		Content:  "Yeni mövsüm kolleksiyamızda təqdim olunan geyimlər müasir üslubla klassik elementləri özündə birləşdirir. Kolleksiyada parlaq rənglər, rahat parçalar və innovativ dizaynlar üstünlük təşkil edir.",
		ImageURL: ptr("https://images.unsplash.com/photo-1581090700227-8e3b68af7c63?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Status:   "published",
	},
	{
		Title:    "Davamlı Moda Təşəbbüslərimiz",
		Summary:  "Ətraf mühitə qayğı ilə yanaşaraq hazırladığımız ekoloji təmiz kolleksiyalarımız haqqında məlumat əldə edin...",
		Content:  "Megahand olaraq davamlı moda sahəsində öncül olmağı hədəfləyirik. Təbii parçalardan istifadə, tullantıların azaldılması və ətraf mühitin qorunması bizim əsas prioritetlərimizdəndir.",
		ImageURL: ptr("https://images.unsplash.com/photo-1532938911079-1b06ac7ceec7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Status:   "published",
	},
	{
		Title:    "Uşaq Geyimləri Bələdçisi",
		Summary:  "Uşaqlarınız üçün ən rahat və keyfiyyətli geyimləri seçərkən diqqət etməli olduğunuz məqamlar...",
		Content:  "Uşaq geyimlərini seçərkən parçanın keyfiyyəti, rahatlığı və davamlılığı əsas faktorlardır. Bu məqalədə sizə uşaq geyimlərini seçərkən kömək edəcək məsləhətlər verəcəyik.",
		ImageURL: ptr("https://images.unsplash.com/photo-1534452203293-494d7ddbf7e0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Status:   "published",
	},
	{
		Title:    "İdman Geyimləri Seçimi",
		Summary:  "İdmanla məşğul olarkən düzgün geyim seçiminin performansınıza təsiri və əhəmiyyəti...",
		Content:  "İdman geyimləri seçərkən nəfəs alan parçalar, rahat kəsimlər və mövsümə uyğunluq əsas götürülməlidir. Məqalədə müxtəlif idman növləri üçün ən uyğun geyim seçimləri haqqında məlumat verəcəyik.",
		ImageURL: ptr("https://images.unsplash.com/photo-1576678927484-cc907957088c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Status:   "published",
	},
	{
		Title:    "Yay Trendləri 2024",
		Summary:  "Bu yay mövsümündə öndə olacaq rənglər, modellər və aksessuarlar haqqında hərtərəfli bələdçi...",
		Content:  "2024-cü ilin yay mövsümü canlı rənglər, rahat siluetlər və təbii materiallarla yadda qalacaq. Məqalədə mövsümün əsas trendləri və onları necə kombinə edə biləcəyiniz haqqında məlumatlar tapacaqsınız.",
		ImageURL: ptr("https://images.unsplash.com/photo-1523381210434-271e8be1f52b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Status:   "published",
	},
}

var seedLocations = []services.LocationInput{
	{
		Name:             "Megahand Sumqayit #1",
		Address:          "Badalbayli Street, Sumqayit 5001",
		ZipCode:          ptr("5001"),
		Description:      "Our main office in Sumqayit. Visit us for the latest European clothing collections.",
		PhoneNumber:      ptr("+99450 277 07 20"),
		InstagramAccount: ptr("@megahandsumqayit"),
		WhatsappNumber:   ptr("+99450 277 07 20"),
		ImageURL:         ptr("https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:         ptr("40.5889"),
		Longitude:        ptr("49.6572"),
		Status:           "active",
	},
	{
		Name:             "Megahand Bakı -Q.Qarayev-",
		Address:          "CW8R+255, Baku",
		Description:      "Our Baku branch located near Qara Qarayev metro station.",
		PhoneNumber:      ptr("+99450 490 35 60"),
		InstagramAccount: ptr("@megahandsumqayit"),
		WhatsappNumber:   ptr("+99450 490 35 60"),
		ImageURL:         ptr("https://images.unsplash.com/photo-1555529669-e69e7aa0ba9a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:         ptr("40.4093"),
		Longitude:        ptr("49.9387"),
		Status:           "active",
	},
	{
		Name:             "Megahand-Gəncə",
		Address:          "M9H9+X33, Ganja",
		Description:      "Our Ganja location offering quality European fashion.",
		PhoneNumber:      ptr("+99450 453 20 45"),
		InstagramAccount: ptr("@megahandsumqayit"),
		WhatsappNumber:   ptr("+99450 453 20 45"),
		ImageURL:         ptr("https://images.unsplash.com/photo-1487222477894-8943e31ef7b2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:         ptr("40.6830"),
		Longitude:        ptr("46.3606"),
		Status:           "active",
	},
	{
		Name:             "Megahand Bakı-28May",
		Address:          "140 Shamil Azizbayov, Baku",
		Description:      "Our Baku branch located near 28 May metro station.",
		PhoneNumber:      ptr("+99450 277 87 26"),
		InstagramAccount: ptr("@megahandsumqayit"),
		WhatsappNumber:   ptr("+99450 277 87 26"),
		ImageURL:         ptr("https://images.unsplash.com/photo-1472851294608-062f824d29cc?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:         ptr("40.3776"),
		Longitude:        ptr("49.8501"),
		Status:           "active",
	},
}
