package rest

import (
	domainCache "github.com/calderonh/spamsense/domains/cache"
	"github.com/calderonh/spamsense/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(app fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	app.Get("/cache/stats", rest.GetStats)
	app.Post("/cache/clear", rest.Clear)

	return rest
}

func (handler *Cache) GetStats(c *fiber.Ctx) error {
	stats, err := handler.Service.GetStats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats retrieved",
		Results: stats,
	})
}

func (handler *Cache) Clear(c *fiber.Ctx) error {
	err := handler.Service.Clear(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache cleared successfully",
	})
}
