package validations

import (
	"context"

	domainPredict "github.com/calderonh/spamsense/domains/predict"
	pkgError "github.com/calderonh/spamsense/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidatePredict(ctx context.Context, request domainPredict.PredictRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Sms, validation.Required, validation.Length(1, 10000)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
