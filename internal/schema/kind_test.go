package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_Kind_Classification(t *testing.T) {
	cases := []struct {
		typ  Type
		kind Kind
	}{
		{TypeChar, KindString},
		{TypeText, KindString},
		{TypeDate, KindNumeric},
		{TypeTime, KindNumeric},
		{TypeDateTime, KindNumeric},
		{TypeInt, KindNumeric},
		{TypeBigInt, KindNumeric},
		{TypeFloat, KindNumeric},
		{TypeDouble, KindNumeric},
		{TypeDecimal, KindNumeric},
		{TypeBool, KindBoolean},
		{TypePrimaryKey, KindNumeric},
		{TypeForeignKey, KindRelation},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.typ.Kind(), "type %s", tc.typ)
	}
}

func TestType_Kind_UnknownFallsBackToNumeric(t *testing.T) {
	// Types outside the known mapping classify as numeric, by contract.
	unknown := Type(999)
	assert.Equal(t, KindNumeric, unknown.Kind())
}

func TestParseType_RoundTrip(t *testing.T) {
	for typ := range map[Type]bool{TypeChar: true, TypeBool: true, TypeForeignKey: true, TypeDecimal: true} {
		parsed, ok := ParseType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, parsed)
	}
}

func TestParseType_Unknown(t *testing.T) {
	_, ok := ParseType("varchar")
	assert.False(t, ok)
}
