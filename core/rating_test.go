package core

import (
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestRatingFor(t *testing.T) {
	tests := []struct {
		overall  float64
		expected schema.Rating
	}{
		{100, schema.RatingAAA},
		{90, schema.RatingAAA},
		{89, schema.RatingAA},
		{85, schema.RatingAA},
		{84.9, schema.RatingA},
		{75, schema.RatingA},
		{65, schema.RatingBBB},
		{55, schema.RatingBB},
		{54, schema.RatingB},
		{45, schema.RatingB},
		{35, schema.RatingCCC},
		{25, schema.RatingCC},
		{24, schema.RatingC},
		{0, schema.RatingC},
		{-3, schema.RatingC},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RatingFor(tt.overall), "overall=%v", tt.overall)
	}
}

func TestRatingBands(t *testing.T) {
	bands := RatingBands()
	assert.Len(t, bands, len(schema.AllRatings))
	for i := 1; i < len(bands); i++ {
		assert.Greater(t, bands[i-1].MinScore, bands[i].MinScore)
		assert.Equal(t, schema.AllRatings[i], bands[i].Rating)
	}

	bands[0].MinScore = 0
	assert.Equal(t, 90, RatingBands()[0].MinScore)
}

func TestMinScoreFor(t *testing.T) {
	assert.Equal(t, 90, MinScoreFor(schema.RatingAAA))
	assert.Equal(t, 55, MinScoreFor(schema.RatingBB))
	assert.Equal(t, 0, MinScoreFor(schema.RatingC))
	assert.Equal(t, 0, MinScoreFor("Z"))
}
