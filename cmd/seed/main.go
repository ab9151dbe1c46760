package main

import (
	"log"
	"os"

	"procure-ai-be/internal/model"
	"procure-ai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Vendor Catalog...")

	vendors := []model.Vendor{
		// Furniture
		{Name: "OfficeComfort Solutions", Category: "furniture", Items: datatypes.JSON([]byte(`["office chair", "office chairs", "ergonomic chair", "desk chair"]`)), Price: 12000, Location: "Mumbai", DeliveryDays: 5, Rating: 4.5, Certified: true, Contact: "sales@officecomfort.in"},
		{Name: "SeatWorks India", Category: "furniture", Items: datatypes.JSON([]byte(`["office chair", "office chairs", "conference chair"]`)), Price: 15000, Location: "Delhi", DeliveryDays: 7, Rating: 4.2, Certified: false, Contact: "contact@seatworks.in"},
		{Name: "BudgetDesk Traders", Category: "furniture", Items: datatypes.JSON([]byte(`["desk", "desks", "office table", "workstation"]`)), Price: 8000, Location: "Pune", DeliveryDays: 10, Rating: 3.8, Certified: false, Contact: "info@budgetdesk.in"},
		{Name: "ErgoLux Furnishings", Category: "furniture", Items: datatypes.JSON([]byte(`["office chair", "office chairs", "standing desk", "ergonomic chair"]`)), Price: 18000, Location: "Bangalore", DeliveryDays: 4, Rating: 4.8, Certified: true, Contact: "orders@ergolux.in"},
		{Name: "Metro Office Mart", Category: "furniture", Items: datatypes.JSON([]byte(`["filing cabinet", "cabinets", "storage unit", "bookshelf"]`)), Price: 9500, Location: "Chennai", DeliveryDays: 8, Rating: 4.0, Certified: false, Contact: "metro@officemart.in"},

		// IT Equipment
		{Name: "TechWorld Distributors", Category: "it", Items: datatypes.JSON([]byte(`["laptop", "laptops", "monitor", "monitors", "keyboard"]`)), Price: 45000, Location: "Bangalore", DeliveryDays: 3, Rating: 4.6, Certified: true, Contact: "b2b@techworld.in"},
		{Name: "Compute Hub", Category: "it", Items: datatypes.JSON([]byte(`["laptop", "laptops", "desktop", "desktops", "server"]`)), Price: 52000, Location: "Hyderabad", DeliveryDays: 5, Rating: 4.3, Certified: true, Contact: "sales@computehub.in"},
		{Name: "PixelPoint Systems", Category: "it", Items: datatypes.JSON([]byte(`["monitor", "monitors", "projector", "projectors"]`)), Price: 22000, Location: "Mumbai", DeliveryDays: 6, Rating: 4.1, Certified: false, Contact: "support@pixelpoint.in"},
		{Name: "NetSecure Supplies", Category: "it", Items: datatypes.JSON([]byte(`["router", "routers", "switch", "firewall", "network equipment"]`)), Price: 35000, Location: "Delhi", DeliveryDays: 7, Rating: 4.4, Certified: true, Contact: "procure@netsecure.in"},

		// Construction
		{Name: "BuildRight Materials", Category: "construction", Items: datatypes.JSON([]byte(`["cement", "concrete", "bricks", "steel bars"]`)), Price: 400, Location: "Pune", DeliveryDays: 12, Rating: 4.0, Certified: true, Contact: "orders@buildright.in"},
		{Name: "Apex Infra Traders", Category: "construction", Items: datatypes.JSON([]byte(`["steel bars", "tmt bars", "scaffolding", "pipes"]`)), Price: 650, Location: "Ahmedabad", DeliveryDays: 14, Rating: 3.9, Certified: false, Contact: "apex@infratraders.in"},

		// Services
		{Name: "PrintPro Services", Category: "services", Items: datatypes.JSON([]byte(`["printing services", "printing", "banners", "brochures"]`)), Price: 5000, Location: "Delhi", DeliveryDays: 3, Rating: 4.2, Certified: false, Contact: "hello@printpro.in"},
		{Name: "CleanSweep Facility Care", Category: "services", Items: datatypes.JSON([]byte(`["cleaning services", "housekeeping", "sanitation"]`)), Price: 15000, Location: "Mumbai", DeliveryDays: 2, Rating: 4.5, Certified: true, Contact: "contracts@cleansweep.in"},
		{Name: "SecureGuard Agency", Category: "services", Items: datatypes.JSON([]byte(`["security services", "security guards", "surveillance"]`)), Price: 25000, Location: "Gurgaon", DeliveryDays: 5, Rating: 4.3, Certified: true, Contact: "ops@secureguard.in"},
	}

	created := 0
	for _, v := range vendors {
		// Skip vendors already present so reseeding stays idempotent
		var existing model.Vendor
		if err := db.Where("name = ?", v.Name).First(&existing).Error; err == nil {
			color.Yellow("Vendor '%s' already exists, skipping...", v.Name)
			continue
		}

		if err := db.Create(&v).Error; err != nil {
			color.Red("Error creating vendor '%s': %v", v.Name, err)
		} else {
			color.Green("Created vendor: %s (%s)", v.Name, v.Category)
			created++
		}
	}

	color.Cyan("Vendor seeding completed! %d created.", created)
}
