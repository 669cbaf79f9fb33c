package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    FlexString
		wantErr bool
	}{
		{name: "string", raw: `"9876543210"`, want: "9876543210"},
		{name: "number", raw: `9876543210`, want: "9876543210"},
		{name: "string with spaces kept", raw: `" 560001 "`, want: " 560001 "},
		{name: "null", raw: `null`, want: ""},
		{name: "object rejected", raw: `{"a":1}`, wantErr: true},
		{name: "array rejected", raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s FlexString
			err := json.Unmarshal([]byte(tt.raw), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestFlexString_InStruct(t *testing.T) {
	var in CustomerInput
	require.NoError(t, json.Unmarshal([]byte(`{"phone_number": 1111111111}`), &in))
	require.NotNil(t, in.PhoneNumber)
	assert.Equal(t, "1111111111", in.PhoneNumber.String())
	assert.Nil(t, in.FirstName)
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    Flag
		wantErr bool
	}{
		{raw: `1`, want: true},
		{raw: `0`, want: false},
		{raw: `true`, want: true},
		{raw: `false`, want: false},
		{raw: `"1"`, want: true},
		{raw: `null`, want: false},
		{raw: `2`, want: true},
		{raw: `"yes"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.raw), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlag_Int(t *testing.T) {
	assert.Equal(t, 1, Flag(true).Int())
	assert.Equal(t, 0, Flag(false).Int())
}
