package controller

import (
	"github.com/gofiber/fiber/v2"

	"gharbari_backend/pkg/catalog"
)

var propertyCatalog *catalog.Catalog

func InitCatalogController(cat *catalog.Catalog) {
	propertyCatalog = cat
}

func GetAreas(c *fiber.Ctx) error {
	areas := propertyCatalog.SortedAreas()
	return c.JSON(fiber.Map{
		"areas": areas,
		"count": len(areas),
	})
}

func GetPropertyTypes(c *fiber.Ctx) error {
	types := propertyCatalog.PropertyTypes()
	return c.JSON(fiber.Map{
		"property_types": types,
		"count":          len(types),
	})
}

func GetConfigurations(c *fiber.Ctx) error {
	configs := propertyCatalog.ConfigurationNames()
	return c.JSON(fiber.Map{
		"configurations": configs,
		"count":          len(configs),
	})
}

func GetPriceRange(c *fiber.Ctx) error {
	minPrice, maxPrice := propertyCatalog.PriceRange()
	return c.JSON(fiber.Map{
		"min_total_price": minPrice,
		"max_total_price": maxPrice,
	})
}
