package core

import (
	stderrs "errors"
	"reflect"
	"testing"

	"github.com/chriso345/gore/assert"
	clierr "github.com/tmont/argopt/errors"
)

// tone is a closed set of named values for enum coercion tests.
type tone int

func (tone) EnumMembers() []string { return []string{"Quiet", "Normal", "Loud"} }

func TestCoerceBool_Table(t *testing.T) {
	for _, raw := range []string{"true", "True", "tRUe", "1", "yes", "Yes", "YeS"} {
		assert.True(t, coerceBool(raw))
	}
	for _, raw := range []string{"false", "asdf", "0", "no", ""} {
		assert.True(t, !coerceBool(raw))
	}
}

func TestCoerce_BoolNeverFails(t *testing.T) {
	v := reflect.New(reflect.TypeOf(false)).Elem()
	err := coerce(v, "Flag", "garbage", "")
	assert.Nil(t, err)
	assert.Equal(t, v.Bool(), false)
}

func TestCoerce_String(t *testing.T) {
	v := reflect.New(reflect.TypeOf("")).Elem()
	assert.Nil(t, coerce(v, "Name", "", ""))
	assert.Equal(t, v.String(), "")
	assert.Nil(t, coerce(v, "Name", "hello", ""))
	assert.Equal(t, v.String(), "hello")
}

func TestCoerce_Numeric(t *testing.T) {
	iv := reflect.New(reflect.TypeOf(0)).Elem()
	assert.Nil(t, coerce(iv, "N", "-42", ""))
	assert.Equal(t, iv.Int(), int64(-42))

	fv := reflect.New(reflect.TypeOf(0.0)).Elem()
	assert.Nil(t, coerce(fv, "F", "2.5", ""))
	assert.Equal(t, fv.Float(), 2.5)

	err := coerce(iv, "N", "twelve", "")
	assert.NotNil(t, err)
	var fe clierr.FormatError
	assert.True(t, stderrs.As(err, &fe))
	assert.Equal(t, fe.Field, "N")
	assert.Equal(t, fe.Value, "twelve")
}

func TestCoerce_EnumMatch(t *testing.T) {
	v := reflect.New(reflect.TypeOf(tone(0))).Elem()
	assert.Nil(t, coerce(v, "Tone", "loud", ""))
	assert.Equal(t, tone(v.Int()), tone(2))
}

func TestCoerce_EnumNoMatchLeavesValue(t *testing.T) {
	v := reflect.New(reflect.TypeOf(tone(0))).Elem()
	v.SetInt(1)
	// Invalid member names are silently ignored, not errors.
	assert.Nil(t, coerce(v, "Tone", "shouting", ""))
	assert.Equal(t, tone(v.Int()), tone(1))
}

func TestCoerceSlice_Ints(t *testing.T) {
	v := reflect.New(reflect.TypeOf([]int(nil))).Elem()
	assert.Nil(t, coerce(v, "Nums", "5,4,-100", ","))
	assert.Equal(t, v.Len(), 3)
	assert.Equal(t, v.Index(0).Int(), int64(5))
	assert.Equal(t, v.Index(1).Int(), int64(4))
	assert.Equal(t, v.Index(2).Int(), int64(-100))
}

func TestCoerceSlice_Strings(t *testing.T) {
	v := reflect.New(reflect.TypeOf([]string(nil))).Elem()
	assert.Nil(t, coerce(v, "Parts", "a;;c", ";"))
	assert.Equal(t, v.Len(), 3)
	assert.Equal(t, v.Index(1).String(), "")
}

func TestCoerceSlice_PartialFailureCommitsNothing(t *testing.T) {
	v := reflect.New(reflect.TypeOf([]int(nil))).Elem()
	err := coerce(v, "Nums", "5,x,3", ",")
	assert.NotNil(t, err)
	var fe clierr.FormatError
	assert.True(t, stderrs.As(err, &fe))
	assert.Equal(t, fe.Value, "5,x,3")
	assert.Equal(t, v.Len(), 0)
}
