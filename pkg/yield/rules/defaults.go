package rules

import "github.com/cognicore/yield/pkg/yield/taxonomy"

// DefaultRules is the hand-authored rule table. Ingredient rules carry the
// same or higher priority than the category rules they refine, so the
// ingredient weight decides between them.
var DefaultRules = []Rule{
	// ingredient-specific
	{ID: "carrot-peeled", Percent: 82, Priority: 2, Ingredients: []string{"carrot"}, Prep: []string{"peeled", "peel"},
		Reason: "Carrot, peeled and ends trimmed"},
	{ID: "onion-peeled", Percent: 89, Priority: 2, Ingredients: []string{"onion", "shallot"}, Prep: []string{"peeled", "peel"},
		Reason: "Onion, papery skin and root end removed"},
	{ID: "garlic-peeled", Percent: 87, Priority: 2, Ingredients: []string{"garlic"}, Prep: []string{"peeled", "peel"},
		Reason: "Garlic cloves separated and peeled"},
	{ID: "leek-cleaned", Percent: 56, Priority: 2, Ingredients: []string{"leek"}, Prep: []string{"trimmed", "cleaned", "trim"},
		Reason: "Leek, dark tops and root removed, washed"},
	{ID: "celery-trimmed", Percent: 85, Priority: 2, Ingredients: []string{"celery"}, Prep: []string{"trimmed", "trim"},
		Reason: "Celery, leaves and base trimmed"},
	{ID: "pepper-seeded", Percent: 80, Priority: 2, Ingredients: []string{"bellpepper", "pepper"}, Prep: []string{"seeded", "cored", "deseeded"},
		Reason: "Pepper, stem, seeds and ribs removed"},
	{ID: "chicken-deboned", Percent: 68, Priority: 2, Ingredients: []string{"chicken"}, Prep: []string{"deboned", "boneless", "boned"},
		Reason: "Chicken, bone-in to boneless"},
	{ID: "shrimp-peeled", Percent: 62, Priority: 2, Ingredients: []string{"shrimp"}, Prep: []string{"peeled", "shelled", "deveined"},
		Reason: "Shrimp, shell-on to peeled"},
	{ID: "beef-trimmed", Percent: 80, Priority: 2, Ingredients: []string{"beef", "tenderloin", "brisket", "sirloin", "ribeye"},
		Prep: []string{"trimmed", "trim", "fabricated"}, Reason: "Beef, fat cap and silverskin trimmed"},
	{ID: "citrus-juiced", Percent: 42, Priority: 2, Ingredients: []string{"lemon", "lime", "orange", "grapefruit"},
		Prep: []string{"juiced", "juice"}, Reason: "Citrus, juice only"},

	// category-level
	{ID: "root-peeled", Percent: 84, Priority: 2, Category: taxonomy.Root, Prep: []string{"peeled", "peel"},
		Reason: "Root vegetable, peeled"},
	{ID: "bulb-peeled", Percent: 80, Priority: 1, Category: taxonomy.Bulb, Prep: []string{"peeled", "peel"},
		Reason: "Bulb vegetable, outer layers removed"},
	{ID: "fruit-peeled", Percent: 80, Priority: 1, Category: taxonomy.Fruit, Prep: []string{"peeled", "peel"},
		Reason: "Fruit, peeled"},
	{ID: "stone-fruit-pitted", Percent: 88, Priority: 2, Category: taxonomy.StoneFruit, Prep: []string{"pitted", "stoned"},
		Reason: "Stone fruit, pit removed"},
	{ID: "fish-filleted", Percent: 50, Priority: 2, Category: taxonomy.Seafood, Prep: []string{"filleted", "fillet"},
		Reason: "Whole fish to fillet"},
	{ID: "herb-picked", Percent: 70, Priority: 1, Category: taxonomy.Herb, Prep: []string{"stemmed", "picked"},
		Reason: "Herb leaves picked from stems"},
	{ID: "leaf-stemmed", Percent: 85, Priority: 1, Category: taxonomy.Leaf, Prep: []string{"stemmed", "trimmed"},
		Reason: "Leafy green, stems and damaged leaves removed"},
	{ID: "fruit-zested", Percent: 6, Priority: 1, Category: taxonomy.Fruit, Prep: []string{"zested", "zest"},
		Reason: "Fruit, zest only"},

	// descriptor-only
	{ID: "thawed", Percent: 95, Descriptors: []string{"thawed", "defrosted"},
		Reason: "Drip loss on thawing"},
	{ID: "drained", Percent: 60, Descriptors: []string{"drained"},
		Reason: "Canned goods, liquid drained"},
}
