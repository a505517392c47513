// cmd/seed/main.go — seeds a demo menu and prints admin PIN hashes.
// Usage:
//
//	go run ./cmd/seed                # seed demo data into DATABASE_PATH
//	go run ./cmd/seed -hash-pin 1234 # print the bcrypt hash for ADMIN_PIN_HASH
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fornopos/internal/infra"
	"fornopos/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	hashPIN := flag.String("hash-pin", "", "print the bcrypt hash for this admin PIN and exit")
	flag.Parse()

	if *hashPIN != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*hashPIN), 12)
		if err != nil {
			log.Fatalf("bcrypt error: %v", err)
		}
		fmt.Println(string(h))
		return
	}

	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "fornopos.db"
	}
	db, err := infra.NewDatabase(path)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	categories := []model.Category{
		{Name: "Pizza", DisplayOrder: 1, IsActive: true},
		{Name: "Sandwich", DisplayOrder: 2, IsActive: true},
		{Name: "Drinks", DisplayOrder: 3, IsActive: true},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("seed category: %v", err)
		}
	}

	products := []model.Product{
		{CategoryID: categories[0].ID, Name: "Margherita", Price: decimal.NewFromFloat(9.50), DisplayOrder: 1, IsActive: true},
		{CategoryID: categories[0].ID, Name: "Pepperoni", Price: decimal.NewFromFloat(11.00), DisplayOrder: 2, IsActive: true},
		{CategoryID: categories[1].ID, Name: "Chicken Shawarma", Price: decimal.NewFromFloat(6.00), DisplayOrder: 1, IsActive: true},
		{CategoryID: categories[2].ID, Name: "Cola", Price: decimal.NewFromFloat(1.50), DisplayOrder: 1, IsActive: true},
	}
	for i := range products {
		err := db.Where("category_id = ? AND name = ?", products[i].CategoryID, products[i].Name).
			FirstOrCreate(&products[i]).Error
		if err != nil {
			log.Fatalf("seed product: %v", err)
		}
	}

	extras := model.ToppingGroup{Name: "Extras", DisplayOrder: 1, IsActive: true}
	if err := db.Where("name = ?", extras.Name).FirstOrCreate(&extras).Error; err != nil {
		log.Fatalf("seed topping group: %v", err)
	}
	options := []model.ToppingOption{
		{GroupID: extras.ID, Name: "Mushrooms", Price: decimal.NewFromFloat(1.00), DisplayOrder: 1, IsActive: true},
		{GroupID: extras.ID, Name: "Extra Cheese", Price: decimal.NewFromFloat(1.50), DisplayOrder: 2, IsActive: true},
	}
	for i := range options {
		err := db.Where("group_id = ? AND name = ?", options[i].GroupID, options[i].Name).
			FirstOrCreate(&options[i]).Error
		if err != nil {
			log.Fatalf("seed topping option: %v", err)
		}
	}
	for _, p := range products[:2] {
		link := model.ProductToppingGroup{ProductID: p.ID, ToppingGroupID: extras.ID}
		if err := db.FirstOrCreate(&link).Error; err != nil {
			log.Fatalf("seed topping link: %v", err)
		}
	}

	client := model.Client{
		Name:        "Corner Office",
		Phone:       "555-0101",
		CreditLimit: decimal.NewFromFloat(200),
		IsActive:    true,
	}
	if err := db.Where("name = ?", client.Name).FirstOrCreate(&client).Error; err != nil {
		log.Fatalf("seed client: %v", err)
	}

	employee := model.Employee{Name: "Sam", DailySalary: decimal.NewFromFloat(40), IsActive: true}
	if err := db.Where("name = ?", employee.Name).FirstOrCreate(&employee).Error; err != nil {
		log.Fatalf("seed employee: %v", err)
	}

	fmt.Printf("seeded demo data into %s\n", path)
}
