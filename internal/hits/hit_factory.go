package hits

import (
	"context"
	"strings"
	"time"

	"usage-counter/internal/classifiers"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"
	"usage-counter/internal/shared/svcerrors"
	"usage-counter/internal/shared/validators"

	"github.com/mileusna/useragent"
)

// HitFactory builds hits from raw records.
//
//go:generate mockgen -source=hit_factory.go -destination=./mocks/hit_factory_mock.go -package=mocks
type HitFactory interface {
	// CreateHit fails with an invalid argument error when the record lacks a required field
	// or when its server time is malformed.
	CreateHit(ctx context.Context, collection string, record *models.LogRecord) (*models.Hit, *svcerrors.ServiceError)
}

type hitFactory struct {
	classifier  classifiers.Classifier
	validate    *validators.Validate
	granularity models.SessionGranularity
}

func NewHitFactory(classifier classifiers.Classifier, granularity models.SessionGranularity) HitFactory {
	return &hitFactory{
		classifier:  classifier,
		validate:    validators.New(),
		granularity: granularity,
	}
}

func (f *hitFactory) CreateHit(ctx context.Context, collection string, record *models.LogRecord) (*models.Hit, *svcerrors.ServiceError) {
	hit, svcErr := f.createHit(ctx, collection, record)
	if svcErr != nil {
		metricHitCreatedTotal.WithLabelValues(svcErr.Code).Inc()
		loggers.Ctx(ctx).Debug().
			Err(svcErr).
			Str(loggers.FieldCollection, collection).
			Msg("record excluded from batch")
		return nil, svcErr
	}
	metricHitCreatedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return hit, nil
}

func (f *hitFactory) createHit(ctx context.Context, collection string, record *models.LogRecord) (*models.Hit, *svcerrors.ServiceError) {
	if record == nil {
		return nil, errRecordInvalid("record is empty", nil)
	}

	if err := f.validate.Struct(record); err != nil {
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, fieldErr := range ve {
				if fieldErr.Tag() == "servertime" {
					return nil, errServerTimeFormat(err)
				}
			}
		}
		return nil, errRecordInvalid("record is missing required fields", err)
	}

	serverTime, err := time.ParseInLocation(validators.ServerTimeLayout, record.ServerTime, time.UTC)
	if err != nil {
		return nil, errServerTimeFormat(err)
	}

	browserName, browserVersion := record.BrowserName, record.BrowserVersion
	if browserName == "" && browserVersion == "" && record.UserAgent != "" {
		parsed := useragent.Parse(record.UserAgent)
		browserName, browserVersion = parsed.Name, parsed.Version
	}

	hit := &models.Hit{
		IP:             record.IP,
		ServerTime:     serverTime,
		BrowserName:    strings.ToLower(browserName),
		BrowserVersion: strings.ToLower(browserVersion),
		VisitID:        strings.ToLower(record.VisitID),
		VisitorID:      strings.ToLower(record.VisitorID),
		ActionID:       strings.ToLower(record.ActionID),
		ActionName:     strings.ToLower(record.ActionName),
	}

	descriptor := f.classifier.Classify(ctx, collection, hit.ActionName)
	hit.ActionParams = descriptor.Params
	hit.PID = descriptor.PID
	hit.ISSN = descriptor.ISSN
	hit.Acronym = descriptor.Acronym
	hit.Format = descriptor.Format
	hit.Lang = descriptor.Lang
	hit.ItemType = descriptor.ItemType
	hit.ContentType = descriptor.ContentType
	hit.YOP = descriptor.YOP
	hit.SessionID = SessionKey(hit.IP, hit.BrowserName, hit.BrowserVersion, hit.ServerTime, f.granularity)

	return hit, nil
}
