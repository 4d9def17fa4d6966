package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters_Accumulate(t *testing.T) {
	t.Parallel()

	c := Counters{TotalItemRequests: 1, UniqueItemRequests: 1}
	c.Accumulate(Counters{TotalItemRequests: 2, TotalItemInvestigations: 3, UniqueItemRequests: 1, UniqueItemInvestigations: 2})

	assert.Equal(t, Counters{
		TotalItemRequests:        3,
		TotalItemInvestigations:  3,
		UniqueItemRequests:       2,
		UniqueItemInvestigations: 2,
	}, c)
	assert.Equal(t, int64(10), c.Sum())
	assert.False(t, c.IsZero())
	assert.True(t, Counters{}.IsZero())
}

func TestContentType_ItemType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content  ContentType
		expected ItemType
	}{
		{ContentArticleFullText, ItemTypeArticle},
		{ContentPreprintPDF, ItemTypeArticle},
		{ContentIssueRSS, ItemTypeIssue},
		{ContentSSPIssueRSS, ItemTypeIssue},
		{ContentJournalSerial, ItemTypeJournal},
		{ContentSSPJournalMainPage, ItemTypeJournal},
		{ContentPlatformHome, ItemTypePlatform},
		{ContentSSPPlatformAbout, ItemTypePlatform},
		{ContentOther, ItemTypeOther},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.content.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.content.ItemType())
		})
	}
}

func TestContentType_String_Unknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "content_999", ContentType(999).String())
}
