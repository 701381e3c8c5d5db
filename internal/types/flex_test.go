package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt64(t *testing.T) {
	tests := []struct {
		input string
		want  FlexInt64
		err   bool
	}{
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`" 7 "`, 7, false},
		{`-3`, -3, false},
		{`null`, 0, false},
		{`"forty"`, 0, true},
		{`4.5`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var v FlexInt64
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestFlexInt64ID(t *testing.T) {
	assert.Equal(t, uint64(9), FlexInt64(9).ID())
	assert.Equal(t, uint64(0), FlexInt64(-9).ID())

	out, err := json.Marshal(FlexInt64(12))
	require.NoError(t, err)
	assert.Equal(t, "12", string(out))
}

func TestFlexList(t *testing.T) {
	var list FlexList[FlexInt64]
	require.NoError(t, json.Unmarshal([]byte(`[1, "2", 3]`), &list))
	assert.Equal(t, []FlexInt64{1, 2, 3}, list.Slice())

	var single FlexList[FlexInt64]
	require.NoError(t, json.Unmarshal([]byte(`"5"`), &single))
	assert.Equal(t, []FlexInt64{5}, single.Slice())

	var bad FlexList[FlexInt64]
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &bad))
}

func TestIDList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint64
	}{
		{"array of numbers and strings", `{"tag_ids": [1, "2", 3]}`, []uint64{1, 2, 3}},
		{"single bare id", `{"tag_ids": "5"}`, []uint64{5}},
		{"explicit null", `{"tag_ids": null}`, []uint64{}},
		{"missing", `{}`, []uint64{}},
		{"order and repeats kept", `{"tag_ids": [4, 4, 1]}`, []uint64{4, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				TagIDs IDList `json:"tag_ids"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &body))
			assert.Equal(t, tt.want, body.TagIDs.IDs())
		})
	}

	var bad struct {
		TagIDs IDList `json:"tag_ids"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"tag_ids": ["x"]}`), &bad))
}

func TestCustomError(t *testing.T) {
	err := NewBadRequest("validation.params", "Invalid %s '%s'", "id", "abc")
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "Invalid id 'abc'", err.Message)
	assert.Equal(t, "400: Invalid id 'abc' [type: validation.params]", err.Error())
}
