package model

// Region enumerates the ten Cameroon regions used as filter facets and as
// agricultural origin regions.
type Region string

const (
	RegionAdamaoua    Region = "Adamaoua"
	RegionCentre      Region = "Centre"
	RegionEst         Region = "Est"
	RegionExtremeNord Region = "Extreme-Nord"
	RegionLittoral    Region = "Littoral"
	RegionNord        Region = "Nord"
	RegionNordOuest   Region = "Nord-Ouest"
	RegionOuest       Region = "Ouest"
	RegionSud         Region = "Sud"
	RegionSudOuest    Region = "Sud-Ouest"
)

// Regions returns every region in display order.
func Regions() []Region {
	return []Region{
		RegionAdamaoua, RegionCentre, RegionEst, RegionExtremeNord,
		RegionLittoral, RegionNord, RegionNordOuest, RegionOuest,
		RegionSud, RegionSudOuest,
	}
}

// ValidRegion reports whether v is one of the known regions.
func ValidRegion(v string) bool {
	for _, r := range Regions() {
		if string(r) == v {
			return true
		}
	}
	return false
}

// Location is a (region, city, district) tuple. Rows are immutable once
// created and must not be deleted while a listing or profile references them.
type Location struct {
	BaseModel
	Region   Region `gorm:"size:32;not null;uniqueIndex:uniq_location" json:"region"`
	City     string `gorm:"size:120;not null;uniqueIndex:uniq_location" json:"city"`
	District string `gorm:"size:120;not null;uniqueIndex:uniq_location" json:"district"`
}

func (Location) TableName() string {
	return "locations"
}
