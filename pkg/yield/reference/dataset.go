package reference

// DefaultRecords is the curated reference dataset: as-purchased to edible
// portion yields for common kitchen preparations.
var DefaultRecords = []Record{
	// alliums
	{Ingredient: "onion", Method: "diced", Yield: 88, Notes: "Yellow onion, root and skin removed, 1/4in dice"},
	{Ingredient: "onion", Method: "peeled", Yield: 90, Notes: "Yellow onion, ends and papery skin removed"},
	{Ingredient: "garlic", Method: "peeled", Yield: 87, Notes: "Cloves separated and peeled"},
	{Ingredient: "shallot", Method: "peeled", Yield: 88},
	{Ingredient: "leek", Method: "trimmed and cleaned", Yield: 52, Notes: "Dark green tops and root discarded"},

	// roots
	{Ingredient: "potato", Method: "peeled", Yield: 84, Notes: "Russet, peeled with a swivel peeler"},
	{Ingredient: "sweet potato", Method: "peeled", Yield: 80},
	{Ingredient: "celeriac", Method: "peeled", Yield: 75, Notes: "Knotty skin removed with a knife"},
	{Ingredient: "ginger", Method: "peeled", Yield: 78},

	// vegetables
	{Ingredient: "celery", Method: "trimmed", Yield: 83},
	{Ingredient: "broccoli", Method: "florets", Yield: 61, Notes: "Stem reserved separately"},
	{Ingredient: "cauliflower", Method: "florets", Yield: 62},
	{Ingredient: "bell pepper", Method: "seeded and cored", Yield: 82},
	{Ingredient: "cucumber", Method: "peeled", Yield: 84},
	{Ingredient: "tomato", Method: "cored", Yield: 91},
	{Ingredient: "tomato", Method: "peeled and seeded", Yield: 78, Notes: "Blanched, skinned, seeds removed"},
	{Ingredient: "asparagus", Method: "trimmed", Yield: 56, Notes: "Woody ends snapped"},
	{Ingredient: "green beans", Method: "trimmed", Yield: 88},
	{Ingredient: "mushroom", Method: "trimmed", Yield: 97},
	{Ingredient: "corn", Method: "cut from cob", Yield: 39},
	{Ingredient: "kale", Method: "stemmed", Yield: 62},
	{Ingredient: "romaine", Method: "cored", Yield: 75},
	{Ingredient: "cabbage", Method: "cored", Yield: 79},
	{Ingredient: "spinach", Method: "stemmed", Yield: 88},

	// fruit
	{Ingredient: "avocado", Method: "pitted and peeled", Yield: 70},
	{Ingredient: "mango", Method: "peeled and pitted", Yield: 69},
	{Ingredient: "pineapple", Method: "peeled and cored", Yield: 52},
	{Ingredient: "apple", Method: "peeled and cored", Yield: 76},
	{Ingredient: "lemon", Method: "juiced", Yield: 43},
	{Ingredient: "lime", Method: "juiced", Yield: 40},
	{Ingredient: "strawberry", Method: "hulled", Yield: 88},
	{Ingredient: "watermelon", Method: "rind removed", Yield: 55},
	{Ingredient: "cantaloupe", Method: "peeled and seeded", Yield: 52},
	{Ingredient: "peach", Method: "pitted", Yield: 90},
	{Ingredient: "cherry", Method: "pitted", Yield: 88},

	// proteins
	{Ingredient: "whole chicken", Method: "fabricated", Yield: 70, Notes: "8-piece cut, backbone reserved for stock"},
	{Ingredient: "chicken breast", Method: "roasted", Yield: 75},
	{Ingredient: "beef tenderloin", Method: "trimmed", Yield: 72, Notes: "Silverskin and chain removed"},
	{Ingredient: "beef brisket", Method: "braised", Yield: 58},
	{Ingredient: "pork shoulder", Method: "roasted", Yield: 60},
	{Ingredient: "salmon", Method: "filleted", Yield: 58, Notes: "Whole fish to skin-on fillet"},
	{Ingredient: "salmon fillet", Method: "skinned", Yield: 90},
	{Ingredient: "shrimp", Method: "peeled and deveined", Yield: 60},
	{Ingredient: "lobster", Method: "cooked and shelled", Yield: 34},
	{Ingredient: "bacon", Method: "rendered", Yield: 32},
	{Ingredient: "egg", Method: "shelled", Yield: 88},

	// starches that absorb water
	{Ingredient: "rice", Method: "cooked", Yield: 300, Notes: "Long grain, absorption method"},
	{Ingredient: "pasta", Method: "boiled", Yield: 225},
}
