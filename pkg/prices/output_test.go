package prices

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mavfares/pkg/ctdf"
)

func testResults() *ctdf.FareSearchResults {
	return &ctdf.FareSearchResults{
		Journeys: testJourneys(),
		Metadata: ctdf.SearchMetadata{WindowsQueried: 2, WindowsSucceeded: 2},
	}
}

func TestWriteResultsCSV(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteResults(&buffer, FormatCSV, testResults()))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "offer,origin,destination,departure,arrival,duration,changes,lines,price,currency,ticket", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "DIRECT,Station A,Station B,2026-10-19T08:42:00Z,2026-10-19T11:19:00Z,2h37m0s,0,RJX 165,"))
	assert.Contains(t, lines[2], "REX 5417 > Walk > 15/115")
}

func TestWriteResultsJSON(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteResults(&buffer, FormatJSON, testResults()))

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))

	journeys := decoded["Journeys"].([]any)
	require.Len(t, journeys, 2)
	assert.Equal(t, "DIRECT", journeys[0].(map[string]any)["PrimaryIdentifier"])
	assert.Equal(t, float64(2), decoded["Metadata"].(map[string]any)["WindowsSucceeded"])
}

func TestWriteResultsPretty(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteResults(&buffer, FormatPretty, testResults()))

	assert.Contains(t, buffer.String(), "DIRECT")
	assert.Contains(t, buffer.String(), "Vienna - Budapest Special")
}

func TestWriteResultsUnknownFormat(t *testing.T) {
	assert.Error(t, WriteResults(&bytes.Buffer{}, "xml", testResults()))
	assert.False(t, IsFormat("xml"))
	assert.True(t, IsFormat(FormatPretty))
}
