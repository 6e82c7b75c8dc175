package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The frontend sends plain "YYYY-MM-DD" strings and expects them back
// byte-for-byte, so the round trip through JSON must not shift or extend
// the value.
func TestFechaRoundTrip(t *testing.T) {
	var f Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2020-01-01"`), &f))

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-01"`, string(out))
}

func TestFechaNull(t *testing.T) {
	var f Fecha
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.True(t, f.IsZero())

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestFechaScanTime(t *testing.T) {
	var f Fecha
	require.NoError(t, f.Scan(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2023-06-15"`, string(out))
}

func TestFechaHoraRoundTrip(t *testing.T) {
	var f FechaHora
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-10 14:30:00"`), &f))

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-10 14:30:00"`, string(out))
}

// The appointment form posts datetime-local values without seconds.
func TestFechaHoraAcceptsHTMLInputFormat(t *testing.T) {
	var f FechaHora
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-10T14:30"`), &f))

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-10 14:30:00"`, string(out))
}

func TestFechaRejectsGarbage(t *testing.T) {
	var f Fecha
	assert.Error(t, json.Unmarshal([]byte(`"ayer"`), &f))
}
