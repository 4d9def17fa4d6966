package stores

import (
	"strings"
	"testing"

	"usage-counter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	input := "ip\tserver_time\tbrowserName\tbrowserVersion\tvisitId\tvisitorId\tactionId\tactionName\textra\n" +
		"10.0.0.1\t2021-03-14 10:42:07\tFirefox\t86.0\t42\tabcdef\t7\twww.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001\tignored\n" +
		"\n" +
		"10.0.0.2\t2021-03-14 10:43:00\tChrome\n"

	records, err := DecodeRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, &models.LogRecord{
		IP:             "10.0.0.1",
		ServerTime:     "2021-03-14 10:42:07",
		BrowserName:    "Firefox",
		BrowserVersion: "86.0",
		VisitID:        "42",
		VisitorID:      "abcdef",
		ActionID:       "7",
		ActionName:     "www.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001",
	}, records[0])

	assert.Equal(t, "10.0.0.2", records[1].IP)
	assert.Equal(t, "Chrome", records[1].BrowserName)
	assert.Empty(t, records[1].ActionName)
}

func TestDecodeRecords_UserAgentColumn(t *testing.T) {
	t.Parallel()

	input := "ip\tserverTime\tvisit_id\tvisitor_id\taction_id\tactionName\tuser_agent\n" +
		"10.0.0.1\t2021-03-14 10:42:07\t1\tab\t2\twww.scielo.br/\tMozilla/5.0 (X11; Linux x86_64; rv:86.0) Gecko/20100101 Firefox/86.0\n"

	records, err := DecodeRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].UserAgent, "Firefox/86.0")
}

func TestDecodeRecords_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing action column", input: "ip\tserverTime\n10.0.0.1\t2021-03-14 10:42:07\n"},
		{name: "missing ip column", input: "serverTime\tactionName\n"},
		{name: "missing visit identity columns", input: "ip\tserverTime\tactionName\n10.0.0.1\t2021-03-14 10:42:07\twww.scielo.br/\n"},
		{name: "missing action id column", input: "ip\tserverTime\tvisitId\tvisitorId\tactionName\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := DecodeRecords(strings.NewReader(tt.input))
			assert.Nil(t, records)
			assert.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestDecodeRecords_Empty(t *testing.T) {
	t.Parallel()

	records, err := DecodeRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}
