package storefind

// CategoryKeywords declares the trigger words for one catalog category.
type CategoryKeywords struct {
	// ID is the category value carried by FilterState and Product.
	ID string `json:"id" yaml:"id"`

	// Name is the display name. It is stripped from residual queries.
	// Defaults to ID.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Synonyms trigger the category as whole words or with a trailing "s".
	Synonyms []string `json:"synonyms" yaml:"synonyms"`
}

// DisplayName returns Name, falling back to ID.
func (c CategoryKeywords) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// SortKeywords declares the trigger words for each sort mode. Modes are
// checked in field order: price ascending, price descending, rating.
type SortKeywords struct {
	PriceAsc   []string `json:"priceAsc" yaml:"priceAsc"`
	PriceDesc  []string `json:"priceDesc" yaml:"priceDesc"`
	RatingDesc []string `json:"ratingDesc" yaml:"ratingDesc"`
}

// Vocabulary is the static keyword configuration of an Interpreter.
type Vocabulary struct {
	// Categories are checked in declaration order; the first match wins.
	Categories []CategoryKeywords `json:"categories" yaml:"categories"`

	Sort SortKeywords `json:"sort" yaml:"sort"`

	// Fillers are conversational phrases erased from residual queries as
	// literal substrings. Leading and trailing spaces are significant.
	Fillers []string `json:"fillers" yaml:"fillers"`
}

// allWords select every category, overriding any category keyword.
var allWords = []string{"all", "everything"}

// sortNoiseWords are stripped from residual queries with the sort keywords.
var sortNoiseWords = []string{"sort", "by", "order"}

// DefaultVocabulary returns the built-in storefront vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Categories: []CategoryKeywords{
			{ID: "Electronics", Synonyms: []string{
				"electronic", "gadget", "phone", "smartphone", "laptop", "computer",
				"tablet", "headphone", "earbud", "camera", "tv", "television",
				"speaker", "charger", "monitor",
			}},
			{ID: "Clothing", Synonyms: []string{
				"clothes", "apparel", "shirt", "t-shirt", "dress", "jacket", "jean",
				"pant", "shoe", "sneaker", "hoodie", "sweater", "coat",
			}},
			{ID: "Furniture", Synonyms: []string{
				"sofa", "couch", "chair", "table", "desk", "bed", "bookshelf",
				"wardrobe", "cabinet", "dresser",
			}},
			{ID: "Kitchen", Synonyms: []string{
				"cookware", "pan", "pot", "knife", "knives", "blender", "kettle",
				"toaster", "mug", "utensil",
			}},
			{ID: "Books", Synonyms: []string{
				"book", "novel", "paperback", "hardcover", "ebook", "cookbook",
			}},
			{ID: "Sports", Synonyms: []string{
				"sport", "fitness", "gym", "yoga", "dumbbell", "bicycle", "bike",
				"ball", "racket",
			}},
			{ID: "Beauty", Synonyms: []string{
				"makeup", "cosmetic", "skincare", "lipstick", "perfume", "shampoo",
				"lotion",
			}},
			{ID: "Toys", Synonyms: []string{
				"toy", "game", "puzzle", "lego", "doll", "plushie",
			}},
		},
		Sort: SortKeywords{
			PriceAsc:   []string{"cheap", "lowest", "budget", "economical", "inexpensive"},
			PriceDesc:  []string{"expensive", "highest", "premium", "luxury", "costly"},
			RatingDesc: []string{"best", "top", "rated", "popular", "trending", "favorite", "good"},
		},
		Fillers: []string{
			"show me", "i want", "i need", "can you", "please",
			"search for", "looking for", "find",
			"products", "items", "stuff", "things",
			" in ", " with ", " a ", " an ", " the ", " some ",
		},
	}
}
