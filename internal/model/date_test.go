package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2025-03-31")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		LastDate Date `json:"last_date"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_date":"2025-03-31"}`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-31"`), &back))
	assert.True(t, back.Equal(d.Time))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"31/03/2025", "2025-3-31", "2025-02-30", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestNewDateKeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, 6, 1, 23, 50, 0, 0, loc)

	assert.Equal(t, "2025-06-01", NewDate(late).String())
}
