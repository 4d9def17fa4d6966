package hits

import (
	"context"
	"testing"
	"time"

	"usage-counter/internal/classifiers"
	classifiermocks "usage-counter/internal/classifiers/mocks"
	"usage-counter/internal/lookups"
	"usage-counter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRecord() *models.LogRecord {
	return &models.LogRecord{
		IP:             "10.0.0.1",
		ServerTime:     "2021-03-14 10:42:07",
		BrowserName:    "Firefox",
		BrowserVersion: "86.0",
		VisitID:        "42",
		VisitorID:      "ABCDEF0123456789",
		ActionID:       "7",
		ActionName:     "WWW.SCIELO.BR/scielo.php?script=sci_arttext&pid=S0001-37652020000100001",
	}
}

func TestHitFactory_CreateHit(t *testing.T) {
	t.Parallel()

	factory := NewHitFactory(classifiers.NewClassifier(classifiers.DefaultRules(), lookups.Empty()), models.SessionHour)

	hit, svcErr := factory.CreateHit(context.Background(), "scl", validRecord())
	require.Nil(t, svcErr)
	require.NotNil(t, hit)

	assert.Equal(t, "10.0.0.1", hit.IP)
	assert.Equal(t, time.Date(2021, 3, 14, 10, 42, 7, 0, time.UTC), hit.ServerTime)
	assert.Equal(t, "firefox", hit.BrowserName)
	assert.Equal(t, "abcdef0123456789", hit.VisitorID)
	assert.Equal(t, "www.scielo.br/scielo.php?script=sci_arttext&pid=s0001-37652020000100001", hit.ActionName)
	assert.Equal(t, "S0001-37652020000100001", hit.PID)
	assert.Equal(t, "0001-3765", hit.ISSN)
	assert.Equal(t, models.ItemTypeArticle, hit.ItemType)
	assert.Equal(t, models.ContentArticleFullText, hit.ContentType)
	assert.Equal(t, models.FormatHTML, hit.Format)
	assert.Equal(t, models.LanguageUndefined, hit.Lang)
	assert.Equal(t, "2020", hit.YOP)
	assert.Equal(t, "sci_arttext", hit.ActionParams["script"])
	assert.Equal(t, "10.0.0.1|firefox|86.0|2021-03-14 10", hit.SessionID)
	assert.Equal(t, "2021-03-14", hit.Day())
}

func TestHitFactory_CreateHit_UsesClassifier(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockClassifier := classifiermocks.NewMockClassifier(ctrl)

	ctx := context.Background()
	mockClassifier.EXPECT().
		Classify(ctx, "spa", "www.scielosp.org/article/rsp/2020.v54/12/pt/").
		Return(&classifiers.Descriptor{
			Scheme:      classifiers.SchemeSSP,
			Params:      map[string]string{},
			PID:         "rsp:2020.v54:12",
			Acronym:     "rsp",
			Format:      models.FormatHTML,
			Lang:        "pt",
			ItemType:    models.ItemTypeArticle,
			ContentType: models.ContentSSPArticleHTML,
			YOP:         "2020",
		})

	factory := NewHitFactory(mockClassifier, models.SessionDay)
	record := validRecord()
	record.ActionName = "www.scielosp.org/article/rsp/2020.v54/12/pt/"

	hit, svcErr := factory.CreateHit(ctx, "spa", record)
	require.Nil(t, svcErr)
	assert.Equal(t, "rsp:2020.v54:12", hit.PID)
	assert.Equal(t, "pt", hit.Lang)
	assert.Equal(t, models.ContentSSPArticleHTML, hit.ContentType)
	assert.Equal(t, "10.0.0.1|firefox|86.0|2021-03-14", hit.SessionID)
}

func TestHitFactory_CreateHit_BrowserFromUserAgent(t *testing.T) {
	t.Parallel()

	factory := NewHitFactory(classifiers.NewClassifier(classifiers.DefaultRules(), nil), models.SessionHour)
	record := validRecord()
	record.BrowserName = ""
	record.BrowserVersion = ""
	record.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0"

	hit, svcErr := factory.CreateHit(context.Background(), "scl", record)
	require.Nil(t, svcErr)
	assert.Equal(t, "firefox", hit.BrowserName)
	assert.Equal(t, "123.0", hit.BrowserVersion)
}

func TestHitFactory_CreateHit_InvalidRecords(t *testing.T) {
	t.Parallel()

	factory := NewHitFactory(classifiers.NewClassifier(classifiers.DefaultRules(), nil), models.SessionHour)

	tests := []struct {
		name         string
		mutate       func(r *models.LogRecord)
		expectedCode string
	}{
		{
			name:         "missing ip",
			mutate:       func(r *models.LogRecord) { r.IP = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "missing action",
			mutate:       func(r *models.LogRecord) { r.ActionName = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "missing visit id",
			mutate:       func(r *models.LogRecord) { r.VisitID = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "missing visitor id",
			mutate:       func(r *models.LogRecord) { r.VisitorID = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "missing action id",
			mutate:       func(r *models.LogRecord) { r.ActionID = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "missing server time",
			mutate:       func(r *models.LogRecord) { r.ServerTime = "" },
			expectedCode: codeRecordInvalid,
		},
		{
			name:         "malformed server time",
			mutate:       func(r *models.LogRecord) { r.ServerTime = "14/03/2021 10:42" },
			expectedCode: codeServerTimeFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := validRecord()
			tt.mutate(record)

			hit, svcErr := factory.CreateHit(context.Background(), "scl", record)
			assert.Nil(t, hit)
			require.NotNil(t, svcErr)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.True(t, svcErr.IsInvalidArgument())
		})
	}

	hit, svcErr := factory.CreateHit(context.Background(), "scl", nil)
	assert.Nil(t, hit)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeRecordInvalid, svcErr.Code)
}
