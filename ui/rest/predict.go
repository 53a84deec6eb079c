package rest

import (
	"errors"

	domainPredict "github.com/calderonh/spamsense/domains/predict"
	pkgError "github.com/calderonh/spamsense/pkg/error"
	"github.com/calderonh/spamsense/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Predict struct {
	Service domainPredict.IPredictUsecase
}

func InitRestPredict(app fiber.Router, service domainPredict.IPredictUsecase) Predict {
	rest := Predict{Service: service}
	app.Post("/predict", rest.Predict)

	return rest
}

func (handler *Predict) Predict(c *fiber.Ctx) error {
	var request domainPredict.PredictRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	response, err := handler.Service.Predict(c.UserContext(), request)
	if err != nil {
		var generic pkgError.GenericError
		if errors.As(err, &generic) {
			return c.Status(generic.StatusCode()).JSON(utils.ResponseData{
				Status:  generic.StatusCode(),
				Code:    generic.ErrCode(),
				Message: generic.Error(),
			})
		}
		return c.Status(500).JSON(utils.ResponseData{
			Status:  500,
			Code:    "INTERNAL_SERVER_ERROR",
			Message: err.Error(),
		})
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Classification completed",
		Results: response,
	})
}
