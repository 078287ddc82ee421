package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActivityType(t *testing.T) {
	tests := []struct {
		raw  string
		want ActivityType
	}{
		{"meal", TypeMeal},
		{"Meal", TypeMeal},
		{"cardio", TypeCardio},
		{"stretch", TypeStretch},
		{"stretching", TypeStretch},
		{"cold plunge", TypeColdPlunge},
		{" weight ", TypeWeight},
		{"water", TypeWater},
		{"yoga", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseActivityType(tt.raw), "raw=%q", tt.raw)
	}
}
