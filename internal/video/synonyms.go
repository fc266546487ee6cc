package video

// TagCategory is a canonical browse category. Categories expand to a
// fixed synonym set before querying, so a category filter matches the
// free-form tags users actually typed.
type TagCategory string

const (
	CategoryDogs      TagCategory = "dogs"
	CategoryCats      TagCategory = "cats"
	CategoryBirds     TagCategory = "birds"
	CategoryFish      TagCategory = "fish"
	CategoryReptiles  TagCategory = "reptiles"
	CategorySmallPets TagCategory = "small-pets"
)

// tagSynonyms is the versioned category expansion table. Keep entries in
// the exact casing users commonly tag with; matching is by tag name.
var tagSynonyms = map[TagCategory][]string{
	CategoryDogs: {
		"Dog", "Dogs", "Puppy", "Puppies", "Labrador", "Golden Retriever",
		"Bulldog", "Poodle", "Corgi", "Husky", "Dachshund", "Beagle",
	},
	CategoryCats: {
		"Cat", "Cats", "Kitten", "Kittens", "Tabby", "Siamese",
		"Persian", "Maine Coon", "Ragdoll", "Sphynx",
	},
	CategoryBirds: {
		"Bird", "Birds", "Parrot", "Budgie", "Cockatiel", "Canary",
		"Parakeet", "Cockatoo", "Finch",
	},
	CategoryFish: {
		"Fish", "Aquarium", "Goldfish", "Betta", "Guppy", "Koi",
	},
	CategoryReptiles: {
		"Reptile", "Lizard", "Gecko", "Bearded Dragon", "Snake",
		"Turtle", "Tortoise", "Chameleon", "Iguana",
	},
	CategorySmallPets: {
		"Hamster", "Guinea Pig", "Rabbit", "Bunny", "Ferret",
		"Chinchilla", "Hedgehog", "Gerbil", "Mouse", "Rat",
	},
}

// SynonymsFor returns the tag names a category expands to, and whether
// the category exists. Unknown categories are a caller error, not an
// empty filter.
func SynonymsFor(category string) ([]string, bool) {
	names, ok := tagSynonyms[TagCategory(category)]
	return names, ok
}
