package usecase

import (
	"context"
	"errors"

	domainPredict "github.com/calderonh/spamsense/domains/predict"
	"github.com/calderonh/spamsense/infrastructure/model"
	pkgError "github.com/calderonh/spamsense/pkg/error"
	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/calderonh/spamsense/validations"
	"github.com/sirupsen/logrus"
)

type predictService struct {
	preprocessor domainPredict.Preprocessor
	classifier   domainPredict.Classifier
	cache        *predcache.Store
}

func NewPredictService(preprocessor domainPredict.Preprocessor, classifier domainPredict.Classifier, cache *predcache.Store) domainPredict.IPredictUsecase {
	return &predictService{
		preprocessor: preprocessor,
		classifier:   classifier,
		cache:        cache,
	}
}

// Predict classifies one SMS. With UseCache set, the prediction cache is
// consulted first and populated after a miss; preprocessing failures never
// reach the cache or the classifier.
func (s *predictService) Predict(ctx context.Context, request domainPredict.PredictRequest) (domainPredict.PredictResponse, error) {
	if err := validations.ValidatePredict(ctx, request); err != nil {
		return domainPredict.PredictResponse{}, err
	}

	var key string
	if request.UseCache {
		key = predcache.Key(request.Sms)
		if result, found := s.cache.Lookup(key); found {
			logrus.Debugf("[PREDICT] Cache hit for key %s", key[:12])
			return domainPredict.PredictResponse{
				Result:     result,
				Classifier: s.classifier.Name(),
				Sms:        request.Sms,
				Cached:     true,
			}, nil
		}
	}

	features, err := s.preprocessor.Prepare(request.Sms)
	if err != nil {
		if errors.Is(err, model.ErrUnprocessable) {
			return domainPredict.PredictResponse{}, pkgError.InternalServerError("Failed to process SMS")
		}
		return domainPredict.PredictResponse{}, err
	}

	result, err := s.classifier.Predict(features)
	if err != nil {
		return domainPredict.PredictResponse{}, err
	}

	if request.UseCache {
		s.cache.Insert(key, result)
	}

	return domainPredict.PredictResponse{
		Result:     result,
		Classifier: s.classifier.Name(),
		Sms:        request.Sms,
	}, nil
}
