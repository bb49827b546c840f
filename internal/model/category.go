package model

// Category keys form a closed set: nothing may add or remove one at runtime,
// which is why answers live in a struct rather than a map.
const (
	CategoryGirl    = "girl"
	CategoryBoy     = "boy"
	CategoryObject  = "object"
	CategoryFood    = "food"
	CategoryAnimal  = "animal"
	CategoryCountry = "country"
)

var Categories = []string{
	CategoryGirl,
	CategoryBoy,
	CategoryObject,
	CategoryFood,
	CategoryAnimal,
	CategoryCountry,
}

// CategoryLabels maps category keys to their display names.
var CategoryLabels = map[string]string{
	CategoryGirl:    "Girl Name",
	CategoryBoy:     "Boy Name",
	CategoryObject:  "Object",
	CategoryFood:    "Food",
	CategoryAnimal:  "Animal",
	CategoryCountry: "Country",
}

type CategoryAnswers struct {
	Girl    string `json:"girl"`
	Boy     string `json:"boy"`
	Object  string `json:"object"`
	Food    string `json:"food"`
	Animal  string `json:"animal"`
	Country string `json:"country"`
}

// ByCategory projects the struct onto category keys for iteration.
func (a CategoryAnswers) ByCategory() map[string]string {
	return map[string]string{
		CategoryGirl:    a.Girl,
		CategoryBoy:     a.Boy,
		CategoryObject:  a.Object,
		CategoryFood:    a.Food,
		CategoryAnimal:  a.Animal,
		CategoryCountry: a.Country,
	}
}
