// Package entity defines the domain models for the axies feature.
package entity

// Class is one of the nine Axie body classes. It decides which partition of
// the catalog a listing is stored under.
type Class string

const (
	ClassBeast   Class = "Beast"
	ClassAquatic Class = "Aquatic"
	ClassPlant   Class = "Plant"
	ClassBird    Class = "Bird"
	ClassBug     Class = "Bug"
	ClassReptile Class = "Reptile"
	ClassMech    Class = "Mech"
	ClassDawn    Class = "Dawn"
	ClassDusk    Class = "Dusk"
)

// AllClasses lists the nine known classes in response order.
var AllClasses = []Class{
	ClassBeast,
	ClassAquatic,
	ClassPlant,
	ClassBird,
	ClassBug,
	ClassReptile,
	ClassMech,
	ClassDawn,
	ClassDusk,
}

var classByName = map[string]Class{
	"Beast":   ClassBeast,
	"Aquatic": ClassAquatic,
	"Plant":   ClassPlant,
	"Bird":    ClassBird,
	"Bug":     ClassBug,
	"Reptile": ClassReptile,
	"Mech":    ClassMech,
	"Dawn":    ClassDawn,
	"Dusk":    ClassDusk,
}

// ClassFromString maps an upstream class string to a known Class.
// The lookup is exact and case-sensitive; ok is false for anything else.
func ClassFromString(s string) (Class, bool) {
	c, ok := classByName[s]
	return c, ok
}

// Axie represents one marketplace listing fetched from the upstream catalog.
type Axie struct {
	AxieID   int     // Upstream identifier, unique within a class
	Name     string  // Display name
	Class    string  // Raw class string as reported upstream
	Stage    int     // Growth stage
	PriceUSD float64 // Best current offer in USD; 0 when no offer exists
}
