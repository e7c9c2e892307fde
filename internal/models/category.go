package models

// Category is one of the fixed taxonomy categories.
type Category string

const (
	CategorySchool      Category = "school"
	CategoryChurch      Category = "church"
	CategoryHospital    Category = "hospital"
	CategoryYouthCenter Category = "youth_center"
	CategoryNursingHome Category = "nursing_home"
	CategoryBettingShop Category = "betting_shop"
	CategoryOther       Category = "other"
)

// Categories lists the taxonomy in display order.
var Categories = []Category{
	CategorySchool,
	CategoryChurch,
	CategoryHospital,
	CategoryYouthCenter,
	CategoryNursingHome,
	CategoryBettingShop,
	CategoryOther,
}

// Valid reports whether c belongs to the taxonomy.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryInfo carries the display attributes of a category.
type CategoryInfo struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Icon     string   `json:"icon"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategorySchool:      {Category: CategorySchool, Label: "Scuola", Color: "#3949AB", Icon: "school"},
	CategoryChurch:      {Category: CategoryChurch, Label: "Chiesa", Color: "#7B1FA2", Icon: "church"},
	CategoryHospital:    {Category: CategoryHospital, Label: "Ospedale", Color: "#D32F2F", Icon: "hospital"},
	CategoryYouthCenter: {Category: CategoryYouthCenter, Label: "Centro giovanile", Color: "#00897B", Icon: "users"},
	CategoryNursingHome: {Category: CategoryNursingHome, Label: "RSA", Color: "#FFA000", Icon: "home"},
	CategoryBettingShop: {Category: CategoryBettingShop, Label: "Sala scommesse", Color: "#E53935", Icon: "dollar"},
	CategoryOther:       {Category: CategoryOther, Label: "Altro", Color: "#607D8B", Icon: "map-pin"},
}

// Info returns the display attributes of c, falling back to other.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}

// AllCategoryInfo returns the display attributes of every category in taxonomy order.
func AllCategoryInfo() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(Categories))
	for _, c := range Categories {
		infos = append(infos, c.Info())
	}
	return infos
}
