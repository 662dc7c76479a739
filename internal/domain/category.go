package domain

// Category is the closed set of campaign categories the product knows about.
// Anything else coming from storage is folded into CategoryOther.
type Category string

const (
	CategoryBeauty  Category = "뷰티"
	CategoryFood    Category = "맛집"
	CategoryProduct Category = "제품"
	CategoryTravel  Category = "여행"
	CategoryStay    Category = "숙박"
	CategoryCulture Category = "문화"
	CategoryOther   Category = "기타"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryBeauty,
	CategoryFood,
	CategoryProduct,
	CategoryTravel,
	CategoryStay,
	CategoryCulture,
	CategoryOther,
}

var knownCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// NormalizeCategory maps an arbitrary stored value onto the closed category
// set. Unknown or empty values become CategoryOther so the record is never
// dropped from category totals.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if knownCategories[c] {
		return c
	}
	return CategoryOther
}
