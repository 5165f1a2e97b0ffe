package codec

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExport(t *testing.T) {
	system := testSystem(t)
	var buf bytes.Buffer
	require.NoError(t, NewCSVCodec().Export(system, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per branch; topology components stay out
	require.Len(t, rows, 6)
	assert.Equal(t, csvHeader, rows[0])

	byName := make(map[string][]string)
	for _, row := range rows[1:] {
		byName[row[1]] = row
	}

	line := byName["Line1"]
	require.NotNil(t, line)
	assert.Equal(t, "line", line[0])
	assert.Equal(t, "Bus1", line[2])
	assert.Equal(t, "Bus2", line[3])
	assert.Equal(t, "100", line[4])
	assert.Equal(t, "", line[5], "absent rating_up renders empty")

	ml := byName["Monitored1"]
	require.NotNil(t, ml)
	assert.Equal(t, "100", ml[5])
	assert.Equal(t, "-100", ml[6])
	assert.Equal(t, "10", ml[10])

	ai := byName["EastWest"]
	require.NotNil(t, ai)
	assert.Equal(t, "East", ai[2], "interchange endpoints are areas")
	assert.Equal(t, "West", ai[3])
	assert.Equal(t, "500", ai[8])
	assert.Equal(t, "-500", ai[9])
}

func TestCSVFormat(t *testing.T) {
	assert.Equal(t, "csv", NewCSVCodec().Format())
}
