package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainPredict "github.com/calderonh/spamsense/domains/predict"
	pkgError "github.com/calderonh/spamsense/pkg/error"
	"github.com/gofiber/fiber/v2"
)

type stubPredictUsecase struct {
	response domainPredict.PredictResponse
	err      error
	lastReq  domainPredict.PredictRequest
}

func (s *stubPredictUsecase) Predict(_ context.Context, request domainPredict.PredictRequest) (domainPredict.PredictResponse, error) {
	s.lastReq = request
	if s.err != nil {
		return domainPredict.PredictResponse{}, s.err
	}
	return s.response, nil
}

func TestPredict_OK(t *testing.T) {
	app := fiber.New()
	stub := &stubPredictUsecase{
		response: domainPredict.PredictResponse{Result: "spam", Classifier: "decision tree", Sms: "free prize"},
	}
	InitRestPredict(app, stub)

	body := `{"sms": "free prize", "use_cache": true}`
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !stub.lastReq.UseCache {
		t.Fatal("use_cache flag was not forwarded to the usecase")
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Code    string                        `json:"code"`
		Results domainPredict.PredictResponse `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if envelope.Code != "SUCCESS" || envelope.Results.Result != "spam" {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	app := fiber.New()
	InitRestPredict(app, &stubPredictUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestPredict_ValidationError(t *testing.T) {
	app := fiber.New()
	InitRestPredict(app, &stubPredictUsecase{err: pkgError.ValidationError("sms: cannot be blank.")})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"sms": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestPredict_UnprocessableInput(t *testing.T) {
	app := fiber.New()
	InitRestPredict(app, &stubPredictUsecase{err: pkgError.InternalServerError("Failed to process SMS")})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"sms": "???"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}
