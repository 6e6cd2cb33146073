package handler

import (
	"restro_pos/model"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func parseCatalogFilter(c *fiber.Ctx) model.CatalogFilter {
	filter := model.CatalogFilter{
		SearchKey: c.Query("searchKey"),
		Role:      c.Query("role"),
	}
	if limit := c.QueryInt("limit", 0); limit > 0 {
		filter.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		filter.Page = utils.Ptr(page)
	}
	if categoryId := c.QueryInt("categoryId", 0); categoryId > 0 {
		filter.CategoryID = utils.Ptr(uint(categoryId))
	}
	return filter
}

func GetProducts(c *fiber.Ctx) error {
	filter := parseCatalogFilter(c)
	rows, total, err := catalogCache.Products(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Error loading products", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetCategories(c *fiber.Ctx) error {
	filter := parseCatalogFilter(c)
	rows, total, err := catalogCache.Categories(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Error loading categories", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetTables(c *fiber.Ctx) error {
	filter := parseCatalogFilter(c)
	rows, total, err := catalogCache.Tables(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Error loading tables", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetStaff(c *fiber.Ctx) error {
	filter := parseCatalogFilter(c)
	rows, total, err := catalogCache.Staff(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Error loading staff", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetCustomers(c *fiber.Ctx) error {
	filter := parseCatalogFilter(c)
	rows, total, err := catalogCache.Customers(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Error loading customers", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func SearchCachedProducts(c *fiber.Ctx) error {
	term := c.Query("text")
	if term == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "text parameter required", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, catalogCache.SearchProducts(term))
}
