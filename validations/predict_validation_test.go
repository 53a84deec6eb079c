package validations

import (
	"context"
	"strings"
	"testing"

	domainPredict "github.com/calderonh/spamsense/domains/predict"
	pkgError "github.com/calderonh/spamsense/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePredict(t *testing.T) {
	err := ValidatePredict(context.Background(), domainPredict.PredictRequest{Sms: "hello"})
	assert.NoError(t, err)

	err = ValidatePredict(context.Background(), domainPredict.PredictRequest{})
	require.Error(t, err)
	assert.IsType(t, pkgError.ValidationError(""), err)

	err = ValidatePredict(context.Background(), domainPredict.PredictRequest{Sms: strings.Repeat("x", 10001)})
	require.Error(t, err)
}
