package core

import "github.com/huangsam/esgscore/schema"

// ratingBands maps the overall score to a letter rating. Each band includes its lower bound.
var ratingBands = []schema.RatingBand{
	{Rating: schema.RatingAAA, MinScore: 90},
	{Rating: schema.RatingAA, MinScore: 85},
	{Rating: schema.RatingA, MinScore: 75},
	{Rating: schema.RatingBBB, MinScore: 65},
	{Rating: schema.RatingBB, MinScore: 55},
	{Rating: schema.RatingB, MinScore: 45},
	{Rating: schema.RatingCCC, MinScore: 35},
	{Rating: schema.RatingCC, MinScore: 25},
	{Rating: schema.RatingC, MinScore: 0},
}

// RatingFor returns the letter rating of an overall score.
func RatingFor(overall float64) schema.Rating {
	for _, band := range ratingBands {
		if overall >= float64(band.MinScore) {
			return band.Rating
		}
	}
	return schema.RatingC
}

// RatingBands returns the rating cutoffs, best band first.
func RatingBands() []schema.RatingBand {
	return append([]schema.RatingBand(nil), ratingBands...)
}

// MinScoreFor returns the lowest overall score that still earns the rating.
func MinScoreFor(r schema.Rating) int {
	for _, band := range ratingBands {
		if band.Rating == r {
			return band.MinScore
		}
	}
	return 0
}
