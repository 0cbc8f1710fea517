package service

import "strings"

// Price bands suggested for a product, keyed by tag category. The bands are
// fixed enumerations mirroring typical artisan market ranges.
const (
	PriceBandPremium = "₹1500–₹3500"
	PriceBandPottery = "₹300–₹1200"
	PriceBandMid     = "₹500–₹2500"
	PriceBandDefault = "₹200–₹800"
)

// Ordered category groups, first match wins.
var (
	premiumTags = []string{"saree", "handloom", "silk", "shawl"}
	potteryTags = []string{"pottery", "mug", "clay"}
	midTags     = []string{"jewelry", "bangle", "wood"}
)

// PriceService maps a tag set to a suggested price-range string. It is a
// pure function of the tags and has no failure mode.
type PriceService struct{}

// NewPriceService constructs a PriceService.
func NewPriceService() *PriceService {
	return &PriceService{}
}

// Suggest returns the price band for the given tags. Membership tests are
// case-insensitive; category groups are evaluated in fixed order.
func (s *PriceService) Suggest(tags []string) string {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = true
	}

	switch {
	case anyIn(set, premiumTags):
		return PriceBandPremium
	case anyIn(set, potteryTags):
		return PriceBandPottery
	case anyIn(set, midTags):
		return PriceBandMid
	default:
		return PriceBandDefault
	}
}

func anyIn(set map[string]bool, keys []string) bool {
	for _, k := range keys {
		if set[k] {
			return true
		}
	}
	return false
}
