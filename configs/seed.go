package configs

import (
	"log"

	"store/entity"

	"golang.org/x/crypto/bcrypt"
)

// Create the back-office admin on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Store Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Demo catalog so the storefront is browsable out of the box.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	phones := entity.Category{Name: "Phones", Url: "phones"}
	laptops := entity.Category{Name: "Laptops", Url: "laptops"}
	accessories := entity.Category{Name: "Accessories", Url: "accessories"}
	for _, c := range []*entity.Category{&phones, &laptops, &accessories} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	products := []entity.Product{
		{Name: "Galaxy S24", Description: "256GB, factory unlocked", Price: 24999, Active: true, Featured: true, CategoryID: phones.ID},
		{Name: "iPhone 15", Description: "128GB", Price: 32999, Active: true, Featured: true, CategoryID: phones.ID},
		{Name: "ThinkPad X1 Carbon", Description: "14\" ultrabook, 32GB RAM", Price: 54999, Active: true, CategoryID: laptops.ID},
		{Name: "MacBook Air M3", Description: "13\", 16GB RAM", Price: 44999, Active: true, Featured: true, CategoryID: laptops.ID},
		{Name: "USB-C Charger 65W", Description: "GaN wall charger", Price: 899, Active: true, CategoryID: accessories.ID},
		{Name: "Wireless Mouse", Description: "Silent click, 2.4GHz", Price: 499, Active: false, CategoryID: accessories.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Println("demo catalog seeded")
	return nil
}
