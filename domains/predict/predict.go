package predict

import "context"

type PredictRequest struct {
	Sms      string `json:"sms"`
	UseCache bool   `json:"use_cache"`
}

type PredictResponse struct {
	Result     string `json:"result"`
	Classifier string `json:"classifier"`
	Sms        string `json:"sms"`
	Cached     bool   `json:"cached"`
}

type IPredictUsecase interface {
	Predict(ctx context.Context, request PredictRequest) (PredictResponse, error)
}

// Preprocessor turns raw text into the feature vector the classifier expects.
// A non-nil error is the failure sentinel: the request stops there.
type Preprocessor interface {
	Prepare(raw string) ([]float64, error)
}

// Classifier is the trained model, opaque beyond these two methods.
type Classifier interface {
	Predict(features []float64) (string, error)
	Name() string
}
