package custom

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDatetimeMarshalJSON(t *testing.T) {
	d := Datetime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	got, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2024-03-01T12:00:00Z"`, string(got))
}

func TestDatetimeUnmarshalJSON(t *testing.T) {
	var d Datetime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T12:00:00Z"`), &d))
	require.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), time.Time(d))
}

func TestDatetimeUnmarshalJSONInvalid(t *testing.T) {
	var d Datetime
	require.Error(t, json.Unmarshal([]byte(`"not-a-timestamp"`), &d))
}

func TestDatetimeString(t *testing.T) {
	d := Datetime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.Equal(t, "2024-03-01T12:00:00Z", d.String())
}
