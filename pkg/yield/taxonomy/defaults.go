package taxonomy

func tag(cats ...string) []string { return cats }

var (
	rootVeg   = tag(Vegetable, Root)
	bulbVeg   = tag(Vegetable, Bulb)
	leafVeg   = tag(Vegetable, Leaf)
	herbLeaf  = tag(Herb, Leaf)
	vegetable = tag(Vegetable)
	fruit     = tag(Fruit)
	stone     = tag(Fruit, StoneFruit)
	meat      = tag(Protein)
	poultry   = tag(Protein, Poultry)
	seafood   = tag(Protein, Seafood)
	pantry    = tag(Pantry)
	dairy     = tag(Dairy)
)

// DefaultEntries is the built-in category table. Tokens are in the singular
// canonical form produced by the normalizer.
var DefaultEntries = []Entry{
	// roots and tubers
	{"carrot", rootVeg}, {"beet", rootVeg}, {"beetroot", rootVeg}, {"parsnip", rootVeg},
	{"turnip", rootVeg}, {"radish", rootVeg}, {"potato", rootVeg}, {"sweetpotato", rootVeg},
	{"celeriac", rootVeg}, {"rutabaga", rootVeg}, {"yam", rootVeg}, {"ginger", rootVeg},
	{"horseradish", rootVeg}, {"jicama", rootVeg}, {"daikon", rootVeg}, {"taro", rootVeg},
	{"cassava", rootVeg},

	// alliums and bulbs
	{"onion", bulbVeg}, {"shallot", bulbVeg}, {"garlic", bulbVeg}, {"leek", bulbVeg},
	{"scallion", bulbVeg}, {"fennel", bulbVeg},

	// leaves
	{"lettuce", leafVeg}, {"spinach", leafVeg}, {"kale", leafVeg}, {"chard", leafVeg},
	{"cabbage", leafVeg}, {"arugula", leafVeg}, {"romaine", leafVeg}, {"collard", leafVeg},
	{"endive", leafVeg}, {"radicchio", leafVeg}, {"watercress", leafVeg}, {"bokchoy", leafVeg},

	// herbs
	{"basil", herbLeaf}, {"parsley", herbLeaf}, {"cilantro", herbLeaf}, {"mint", herbLeaf},
	{"dill", herbLeaf}, {"thyme", herbLeaf}, {"rosemary", herbLeaf}, {"sage", herbLeaf},
	{"oregano", herbLeaf}, {"chive", herbLeaf}, {"tarragon", herbLeaf},

	// other vegetables
	{"broccoli", vegetable}, {"cauliflower", vegetable}, {"celery", vegetable},
	{"asparagus", vegetable}, {"zucchini", vegetable}, {"cucumber", vegetable},
	{"eggplant", vegetable}, {"bellpepper", tag(Vegetable, Fruit)}, {"pepper", vegetable},
	{"chili", vegetable}, {"jalapeno", vegetable}, {"corn", vegetable}, {"pea", vegetable},
	{"bean", vegetable}, {"greenbean", vegetable}, {"mushroom", vegetable},
	{"artichoke", vegetable}, {"okra", vegetable}, {"squash", vegetable},
	{"butternut", vegetable}, {"brusselsprout", vegetable},
	{"pumpkin", tag(Vegetable, Fruit)}, {"tomato", tag(Vegetable, Fruit)},

	// fruit
	{"avocado", fruit}, {"apple", fruit}, {"pear", fruit}, {"banana", fruit},
	{"orange", fruit}, {"lemon", fruit}, {"lime", fruit}, {"grapefruit", fruit},
	{"pineapple", fruit}, {"mango", fruit}, {"papaya", fruit}, {"kiwi", fruit},
	{"melon", fruit}, {"watermelon", fruit}, {"cantaloupe", fruit}, {"strawberry", fruit},
	{"blueberry", fruit}, {"raspberry", fruit}, {"grape", fruit}, {"pomegranate", fruit},
	{"fig", fruit},

	// stone fruit
	{"peach", stone}, {"plum", stone}, {"cherry", stone}, {"apricot", stone},
	{"nectarine", stone},

	// meat
	{"beef", meat}, {"pork", meat}, {"lamb", meat}, {"veal", meat}, {"venison", meat},
	{"steak", meat}, {"brisket", meat}, {"tenderloin", meat}, {"sirloin", meat},
	{"ribeye", meat}, {"chuck", meat}, {"shank", meat}, {"sausage", meat}, {"bacon", meat},
	{"ham", meat}, {"porkbelly", meat}, {"tofu", meat}, {"egg", meat},

	// poultry
	{"chicken", poultry}, {"turkey", poultry}, {"duck", poultry}, {"goose", poultry},
	{"quail", poultry}, {"hen", poultry},

	// seafood
	{"fish", seafood}, {"salmon", seafood}, {"tuna", seafood}, {"cod", seafood},
	{"halibut", seafood}, {"trout", seafood}, {"bass", seafood}, {"snapper", seafood},
	{"mackerel", seafood}, {"sardine", seafood}, {"anchovy", seafood}, {"tilapia", seafood},
	{"shrimp", seafood}, {"lobster", seafood}, {"crab", seafood}, {"scallop", seafood},
	{"mussel", seafood}, {"clam", seafood}, {"oyster", seafood}, {"squid", seafood},
	{"octopus", seafood},

	// pantry staples
	{"salt", pantry}, {"sugar", pantry}, {"flour", pantry}, {"starch", pantry},
	{"cornstarch", pantry}, {"rice", pantry}, {"pasta", pantry}, {"oil", pantry},
	{"oliveoil", pantry}, {"vinegar", pantry}, {"honey", pantry}, {"yeast", pantry},
	{"peppercorn", pantry}, {"spice", pantry}, {"syrup", pantry}, {"molasses", pantry},
	{"cocoa", pantry}, {"oat", pantry}, {"lentil", pantry}, {"bakingsoda", pantry},
	{"bakingpowder", pantry}, {"gelatin", pantry},

	// dairy
	{"milk", dairy}, {"butter", dairy}, {"cream", dairy}, {"cheese", dairy},
	{"yogurt", dairy},
}
