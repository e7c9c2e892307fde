package service

import "sensitive-places-api/internal/models"

// TagMapping binds a provider type tag to a taxonomy category.
type TagMapping struct {
	Tag      string
	Category models.Category
}

// DefaultTagTable is the static provider tag to category table.
var DefaultTagTable = []TagMapping{
	{"school", models.CategorySchool},
	{"primary_school", models.CategorySchool},
	{"secondary_school", models.CategorySchool},
	{"university", models.CategorySchool},

	{"church", models.CategoryChurch},
	{"place_of_worship", models.CategoryChurch},

	{"hospital", models.CategoryHospital},
	{"doctor", models.CategoryHospital},
	{"health", models.CategoryHospital},

	{"community_center", models.CategoryYouthCenter},
	{"amusement_center", models.CategoryYouthCenter},

	{"nursing_home", models.CategoryNursingHome},
	{"senior_care", models.CategoryNursingHome},

	{"casino", models.CategoryBettingShop},
	{"gambling", models.CategoryBettingShop},

	{"park", models.CategoryOther},
	{"library", models.CategoryOther},
	{"post_office", models.CategoryOther},
}

// DefaultSensitiveTags are the tags queried for the sensitive group.
var DefaultSensitiveTags = []string{
	"school",
	"primary_school",
	"secondary_school",
	"university",
	"church",
	"place_of_worship",
	"hospital",
	"doctor",
	"health",
	"community_center",
	"nursing_home",
	"senior_care",
}

// DefaultBettingTags are the tags queried for the betting group.
var DefaultBettingTags = []string{"casino", "gambling"}

// TypeMapper maps provider tags to taxonomy categories. It is immutable once built.
type TypeMapper struct {
	table map[string]models.Category
}

// NewTypeMapper builds a mapper from an ordered table. When a tag is listed
// twice the first entry wins.
func NewTypeMapper(table []TagMapping) *TypeMapper {
	m := &TypeMapper{table: make(map[string]models.Category, len(table))}
	for _, e := range table {
		if _, ok := m.table[e.Tag]; !ok {
			m.table[e.Tag] = e.Category
		}
	}
	return m
}

// Lookup returns the category bound to a single tag.
func (m *TypeMapper) Lookup(tag string) (models.Category, bool) {
	c, ok := m.table[tag]
	return c, ok
}

// Classify returns override when given, otherwise the category of the first
// known tag in provider order, otherwise other.
func (m *TypeMapper) Classify(tags []string, override *models.Category) models.Category {
	if override != nil {
		return *override
	}
	for _, tag := range tags {
		if c, ok := m.table[tag]; ok {
			return c
		}
	}
	return models.CategoryOther
}
