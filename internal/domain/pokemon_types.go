package domain

type TypeCategory string

func (c TypeCategory) String() string {
	return string(c)
}

const (
	TypeCategoryFire     TypeCategory = "fire"
	TypeCategoryWater    TypeCategory = "water"
	TypeCategoryGrass    TypeCategory = "grass"
	TypeCategoryPoison   TypeCategory = "poison"
	TypeCategoryBug      TypeCategory = "bug"
	TypeCategoryNormal   TypeCategory = "normal"
	TypeCategoryFlying   TypeCategory = "flying"
	TypeCategoryElectric TypeCategory = "electric"
	TypeCategoryPsychic  TypeCategory = "psychic"
	TypeCategoryFighting TypeCategory = "fighting"
	TypeCategoryRock     TypeCategory = "rock"
	TypeCategoryGround   TypeCategory = "ground"
	TypeCategorySteel    TypeCategory = "steel"
	TypeCategoryGhost    TypeCategory = "ghost"
	TypeCategoryIce      TypeCategory = "ice"
	TypeCategoryFairy    TypeCategory = "fairy"
	TypeCategoryDefault  TypeCategory = "default" // Anything not listed above
)

var TypeCategories = []TypeCategory{
	TypeCategoryFire,
	TypeCategoryWater,
	TypeCategoryGrass,
	TypeCategoryPoison,
	TypeCategoryBug,
	TypeCategoryNormal,
	TypeCategoryFlying,
	TypeCategoryElectric,
	TypeCategoryPsychic,
	TypeCategoryFighting,
	TypeCategoryRock,
	TypeCategoryGround,
	TypeCategorySteel,
	TypeCategoryGhost,
	TypeCategoryIce,
	TypeCategoryFairy,
}

// CategoryForType maps a type name to its display category
func CategoryForType(typeName string) TypeCategory {
	for _, c := range TypeCategories {
		if string(c) == typeName {
			return c
		}
	}
	return TypeCategoryDefault
}

const (
	StatHP            = "hp"
	StatAttack        = "attack"
	StatDefense       = "defense"
	StatSpecialAttack = "special-attack"
)

// TrackedStats are the stats shown on a card, in display order
var TrackedStats = []string{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
}
