package entry

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Float(t *testing.T) {
	tests := []struct {
		in     Value
		want   float64
		wantOK bool
	}{
		{"1000", 1000, true},
		{" 12.5 ", 12.5, true},
		{"0", 0, true},
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"true", 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.in.Float()
		assert.Equal(t, tt.wantOK, ok, "Float(%q)", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "Float(%q)", tt.in)
		}
	}
}

func TestValue_JSON(t *testing.T) {
	var e RawEntry
	err := json.Unmarshal([]byte(`{"date":"2024-01-01","odometerReading":1000.5,"fuel":"40","price":null}`), &e)
	require.NoError(t, err)
	assert.Equal(t, Value("1000.5"), e.OdometerReading)
	assert.Equal(t, Value("40"), e.Fuel)
	assert.Equal(t, Value(""), e.Price)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01","odometerReading":1000.5,"fuel":40,"price":null}`, string(out))
}

func TestValue_JSONKeepsGarbage(t *testing.T) {
	var e RawEntry
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-01","odometerReading":"n/a","fuel":true,"price":1.5}`), &e))
	assert.False(t, e.OdometerReading.IsNumber())
	assert.False(t, e.Fuel.IsNumber())

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01","odometerReading":"n/a","fuel":"true","price":1.5}`, string(out))
}

func TestRawEntry_Equal(t *testing.T) {
	a := raw("2024-01-01", "1000", "40", "1.5")
	assert.True(t, a.Equal(raw("2024-01-01", "1000.0", "40", "1.50")))
	assert.False(t, a.Equal(raw("2024-01-02", "1000", "40", "1.5")))
	assert.False(t, a.Equal(raw("2024-01-01", "1000", "41", "1.5")))
	assert.True(t, raw("2024-01-01", "x", "", "1").Equal(raw("2024-01-01", "x", "", "1")))
}

func TestParseStoredDate(t *testing.T) {
	d, ok := ParseStoredDate("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseStoredDate("2024-03-05T18:30:00+02:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseStoredDate("05/03/2024")
	assert.False(t, ok)
	_, ok = ParseStoredDate("")
	assert.False(t, ok)
}

func TestParseInput(t *testing.T) {
	e, err := ParseInput(Input{Date: "15/01/2024", Odometer: "1200", Fuel: "35.5", Price: "1.459"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", e.Date)
	assert.Equal(t, Value("1200"), e.OdometerReading)
	assert.Equal(t, Value("35.5"), e.Fuel)
	assert.Equal(t, Value("1.459"), e.Price)
}

func TestParseInput_Errors(t *testing.T) {
	valid := Input{Date: "2024-01-15", Odometer: "1200", Fuel: "35", Price: "1.4"}
	tests := []struct {
		name    string
		mutate  func(in *Input)
		wantErr error
	}{
		{"empty date", func(in *Input) { in.Date = "" }, ErrEmptyField},
		{"bad date", func(in *Input) { in.Date = "2024-13" }, ErrBadDate},
		{"empty odometer", func(in *Input) { in.Odometer = " " }, ErrEmptyField},
		{"text fuel", func(in *Input) { in.Fuel = "a lot" }, ErrNotNumber},
		{"negative price", func(in *Input) { in.Price = "-1" }, ErrNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := ParseInput(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseDate_Messages(t *testing.T) {
	_, err := ParseDate("2024")
	assert.ErrorContains(t, err, "missing month and day")
	_, err = ParseDate("2024-01")
	assert.ErrorContains(t, err, "missing day")
	_, err = ParseDate("15/01")
	assert.ErrorContains(t, err, "missing year")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(raw("2024-01-01", "1", "2", "3")))
	assert.ErrorIs(t, Validate(raw("", "1", "2", "3")), ErrEmptyField)
	assert.ErrorIs(t, Validate(raw("yesterday", "1", "2", "3")), ErrBadDate)
	assert.ErrorIs(t, Validate(raw("2024-01-01", "1", "", "3")), ErrEmptyField)
	assert.ErrorIs(t, Validate(raw("2024-01-01", "1", "2", "cheap")), ErrNotNumber)
}
