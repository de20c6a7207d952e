package noko

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, "2024-01-01", formatDate("2024-01-01", "date", &errs))
	assert.Equal(t, "2024-06-09", formatDate(time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC), "date", &errs))
	assert.NoError(t, errs.err())
}

func TestFormatDate_BadString(t *testing.T) {
	var errs fieldErrors
	formatDate("01/02/2024", "date", &errs)
	err := errs.err()
	require.Error(t, err)
	verr := err.(*ValidationError)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "date", verr.Fields[0].Field)
	assert.Equal(t, BadDateFormat, verr.Fields[0].Kind)
}

func TestFormatTimestamp(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, "2024-03-15T09:30:45Z", formatTimestamp("2024-03-15T09:30:45Z", "updated_from", &errs))
	assert.Equal(t, "2024-03-15T09:30:45Z", formatTimestamp("2024-03-15T09:30:45", "updated_from", &errs))
	assert.NoError(t, errs.err())

	formatTimestamp("not-a-time", "updated_from", &errs)
	err := errs.err()
	require.Error(t, err)
	assert.Equal(t, BadTimestampFormat, err.(*ValidationError).Fields[0].Kind)
}

func TestCheckEnum(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, any("leader"), checkEnum("leader", "role", validRoles, &errs))
	assert.Nil(t, checkEnum("", "role", validRoles, &errs))
	assert.NoError(t, errs.err())

	checkEnum("admin", "role", validRoles, &errs)
	err := errs.err()
	require.Error(t, err)
	f := err.(*ValidationError).Fields[0]
	assert.Equal(t, InvalidEnumValue, f.Kind)
	assert.Equal(t, validRoles, f.Allowed)
}

func TestCoerceID(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, 42, coerceID("42", "user_id", &errs))
	assert.Equal(t, 7, coerceID(7, "user_id", &errs))
	assert.Nil(t, coerceID(nil, "user_id", &errs))
	assert.NoError(t, errs.err())

	coerceID("abc", "user_id", &errs)
	err := errs.err()
	require.Error(t, err)
	assert.Equal(t, BadIDFormat, err.(*ValidationError).Fields[0].Kind)
}

func TestCheckBillingIncrement(t *testing.T) {
	var errs fieldErrors
	for _, v := range []int{1, 5, 6, 10, 15, 20, 30, 60} {
		assert.Equal(t, v, checkBillingIncrement(v, "billing_increment", &errs))
	}
	assert.Nil(t, checkBillingIncrement(0, "billing_increment", &errs))
	assert.NoError(t, errs.err())

	checkBillingIncrement(7, "billing_increment", &errs)
	err := errs.err()
	require.Error(t, err)
	assert.Equal(t, InvalidBillingIncrement, err.(*ValidationError).Fields[0].Kind)
}

func TestRequireSet(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, any(5), requireSet(5, "user_id", &errs))
	assert.Equal(t, "ok", requireString("ok", "name", &errs))
	assert.NoError(t, errs.err())

	requireSet(nil, "user_id", &errs)
	requireString("", "name", &errs)
	err := errs.err()
	require.Error(t, err)
	verr := err.(*ValidationError)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, MissingField, verr.Fields[0].Kind)
	assert.Equal(t, MissingField, verr.Fields[1].Kind)
}

func TestValidationError_AggregatesFields(t *testing.T) {
	var errs fieldErrors
	formatDate("bad", "from", &errs)
	checkEnum("nope", "state", validUserStates, &errs)
	err := errs.err()
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, err.Error(), "from")
	assert.Contains(t, err.Error(), "state")
}
