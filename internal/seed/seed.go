// Package seed loads the demo accounts and catalog on first boot. Running it
// against a populated database is a no-op.
package seed

import (
	"log"
	"time"

	"chaicraft_back_end/internal/models"
	"chaicraft_back_end/internal/store"
	"chaicraft_back_end/internal/utils"

	"github.com/gocql/gocql"
)

// Run checks for the admin account and, when absent, loads users, products,
// promo codes and gift cards. All amounts are in paise.
func Run(st *store.Store) error {
	if _, err := st.GetUserByUsername("admin@chaicraft.com"); err == nil {
		log.Println("✅ Seed data already present, skipping")
		return nil
	}

	log.Println("🌱 Seeding demo data...")

	users := []struct {
		username string
		password string
		name     string
		role     string
	}{
		{"admin@chaicraft.com", "admin123", "Chai Craft Admin", models.RoleAdmin},
		{"user@chaicraft.com", "user123", "Demo Customer", models.RoleCustomer},
	}
	for _, u := range users {
		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := models.User{
			ID:        gocql.TimeUUID(),
			Username:  u.username,
			Password:  hashed,
			Name:      u.name,
			Role:      u.role,
			CreatedAt: time.Now(),
		}
		if err := st.CreateUser(&user); err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			Name: "Masala Chai", HindiName: "मसाला चाय",
			Description: "Our signature blend of Assam tea with cardamom, ginger, cinnamon and cloves.",
			Price:       29900, Category: models.CategoryTea,
			Ingredients: "Assam tea, cardamom, ginger, cinnamon, cloves, black pepper",
			Weight:      "250g", Stock: 100, IsBestSeller: true,
		},
		{
			Name: "Ginger Chai", HindiName: "अदरक चाय",
			Description: "Strong Assam tea with a generous kick of dried ginger.",
			Price:       24900, Category: models.CategoryTea,
			Ingredients: "Assam tea, dried ginger",
			Weight:      "250g", Stock: 100, IsBestSeller: true,
		},
		{
			Name: "Elaichi Chai", HindiName: "इलायची चाय",
			Description: "Fragrant green cardamom folded into malty black tea.",
			Price:       27900, Category: models.CategoryTea,
			Ingredients: "Assam tea, green cardamom",
			Weight:      "250g", Stock: 100,
		},
		{
			Name: "Filter Coffee", HindiName: "फिल्टर कॉफी",
			Description: "South Indian filter coffee blend, 80% coffee and 20% chicory.",
			Price:       34900, Category: models.CategoryCoffee,
			Ingredients: "Arabica coffee, chicory",
			Weight:      "500g", Stock: 60,
		},
		{
			Name: "Masala Khari", HindiName: "मसाला खारी",
			Description: "Flaky, spiced puff pastry biscuits. The ideal chai companion.",
			Price:       14900, Category: models.CategorySnacks,
			Ingredients: "Refined flour, butter, cumin, ajwain",
			Weight:      "200g", Stock: 150,
		},
	}
	for i := range products {
		if err := st.CreateProduct(&products[i]); err != nil {
			return err
		}
	}

	promos := []models.Promo{
		{Code: "CHAI10", Type: models.PromoPercentage, Value: 10, MinOrderAmount: 10000, IsActive: true},
		{Code: "WELCOME20", Type: models.PromoFixed, Value: 2000, MinOrderAmount: 5000, IsActive: true},
	}
	for i := range promos {
		if err := st.CreatePromo(&promos[i]); err != nil {
			return err
		}
	}

	cards := []models.GiftCard{
		{Code: "GIFT-1234", Balance: 10000, IsActive: true},
		{Code: "GIFT-5678", Balance: 50000, IsActive: true},
	}
	for i := range cards {
		if err := st.CreateGiftCard(&cards[i]); err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d users, %d products, %d promos, %d gift cards",
		len(users), len(products), len(promos), len(cards))
	return nil
}
