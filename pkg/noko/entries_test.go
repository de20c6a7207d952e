package noko

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEntriesParameters_FromToRemap(t *testing.T) {
	params, err := GetEntriesParameters{
		From: "2024-01-01",
		To:   "2024-01-31",
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", params["from"])
	assert.Equal(t, "2024-01-31", params["to"])
	// Unset fields are omitted entirely, never sent as null.
	for key, value := range params {
		assert.NotNil(t, value, "key %q must not be nil", key)
	}
	assert.Len(t, params, 2)
}

func TestGetEntriesParameters_ListAndScalarIDs(t *testing.T) {
	params, err := GetEntriesParameters{
		UserIDs:    []any{1, "2", 3},
		ProjectIDs: "10,20",
		TagIDs:     7,
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "1,2,3", params["user_ids"])
	assert.Equal(t, "10,20", params["project_ids"])
	assert.Equal(t, "7", params["tag_ids"])
}

func TestGetEntriesParameters_BooleansAndTimestamps(t *testing.T) {
	params, err := GetEntriesParameters{
		Invoiced:    true,
		Billable:    "FALSE",
		UpdatedFrom: time.Date(2024, 5, 1, 8, 0, 0, 500, time.UTC),
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "true", params["invoiced"])
	assert.Equal(t, "false", params["billable"])
	assert.Equal(t, "2024-05-01T08:00:00Z", params["updated_from"])
}

func TestGetEntriesParameters_BadDate(t *testing.T) {
	_, err := GetEntriesParameters{From: "Jan 1 2024"}.Normalize()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "from", verr.Fields[0].Field)
	assert.Equal(t, BadDateFormat, verr.Fields[0].Kind)
}

func TestCreateEntryParameters_Required(t *testing.T) {
	_, err := CreateEntryParameters{Minutes: 30}.Normalize()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		if f.Kind == MissingField {
			fields = append(fields, f.Field)
		}
	}
	// Every failing field is reported in one pass.
	assert.ElementsMatch(t, []string{"date", "user_id"}, fields)
}

func TestCreateEntryParameters_Normalize(t *testing.T) {
	params, err := CreateEntryParameters{
		Date:        time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		UserID:      "42",
		Minutes:     90,
		Description: "writing docs #docs",
	}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "2024-02-03", params["date"])
	assert.Equal(t, 42, params["user_id"])
	assert.Equal(t, 90, params["minutes"])
	assert.Equal(t, "writing docs #docs", params["description"])
	assert.NotContains(t, params, "project_id")
}

func TestEditEntryParameters_AllOptional(t *testing.T) {
	params, err := EditEntryParameters{}.Normalize()
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestEditEntryParameters_BadUserID(t *testing.T) {
	_, err := EditEntryParameters{UserID: "forty-two"}.Normalize()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, BadIDFormat, verr.Fields[0].Kind)
}
