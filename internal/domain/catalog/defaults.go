package catalog

// defaultQuestions is the built-in trivia set. True values are in the
// unit named by Unit; UnitKind marks questions whose displayed unit
// toggles between metric and imperial.
var defaultQuestions = []Question{
	{
		ID:        "q1",
		Prompt:    "Distance from Earth to the nearest star (excluding the Sun), in light-years",
		TrueValue: 4.2441,
		Unit:      "light-years",
	},
	{
		ID:        "q2",
		Prompt:    "GDP of Mongolia, in USD",
		TrueValue: 13_637_000_000,
		Unit:      "USD",
	},
	{
		ID:        "q3",
		Prompt:    "Height of tallest man in recorded history (inches / cm)",
		TrueValue: 107, // inches
		Unit:      "inches",
		UnitKind:  "height",
	},
	{
		ID:        "q4",
		Prompt:    "Depth of deepest part of Pacific Ocean (feet / meters)",
		TrueValue: 10_984, // meters
		Unit:      "meters",
		UnitKind:  "length",
	},
	{
		ID:        "q5",
		Prompt:    "Average distance from Earth to the Moon (miles / km)",
		TrueValue: 237_674.5, // miles
		Unit:      "miles",
		UnitKind:  "distance",
	},
	{
		ID:        "q6",
		Prompt:    "Population of Russia in 2019",
		TrueValue: 145_872_256,
		Unit:      "people",
	},
	{
		ID:        "q7",
		Prompt:    "Maximum number of passengers carried on an Emirates A380 (two-class layout)",
		TrueValue: 615,
		Unit:      "passengers",
	},
	{
		ID:        "q8",
		Prompt:    "Number of passengers who died on the Titanic",
		TrueValue: 1_517,
		Unit:      "people",
	},
	{
		ID:        "q9",
		Prompt:    "Market capitalization of Apple on the day Steve Jobs died, in USD",
		TrueValue: 351_500_000_000,
		Unit:      "USD",
	},
	{
		ID:        "q10",
		Prompt:    "Fastest lap time in an F1 car around the Monaco circuit, in seconds",
		TrueValue: 74.260,
		Unit:      "seconds",
		UnitKind:  "time",
	},
	{
		ID:        "q11",
		Prompt:    "Number of regular season goals scored by Wayne Gretzky in his NHL career",
		TrueValue: 894,
		Unit:      "goals",
	},
	{
		ID:        "q12",
		Prompt:    "NASA's budget for the year 2019, in USD",
		TrueValue: 19_653_000_000,
		Unit:      "USD",
	},
	{
		ID:        "q13",
		Prompt:    "Number of Big Macs sold globally in a year (on average) by McDonald's",
		TrueValue: 550_000_000,
		Unit:      "Big Macs per year",
	},
	{
		ID:        "q14",
		Prompt:    "Number of students from China attending U.S. colleges in the 2018–2019 academic year",
		TrueValue: 369_548,
		Unit:      "students",
	},
	{
		ID:        "q15",
		Prompt:    "Total number of passengers flying domestically on U.S. airlines in 2019",
		TrueValue: 811_400_000,
		Unit:      "passengers",
	},
	{
		ID:        "q16",
		Prompt:    "Amount of coal produced by U.S. mines in 2019 (pounds / kg)",
		TrueValue: 1_410_518_000_000, // pounds
		Unit:      "pounds",
		UnitKind:  "weight",
	},
	{
		ID:        "q17",
		Prompt:    "Breeds eligible to compete at the 144th Westminster Kennel Dog Show",
		TrueValue: 205,
		Unit:      "breeds and varieties",
	},
	{
		ID:        "q18",
		Prompt:    "Number of total worldwide searches processed by Google each day",
		TrueValue: 3_500_000_000,
		Unit:      "searches per day",
	},
	{
		ID:        "q19",
		Prompt:    "Full weight (including planes, ammunition, people) of a Nimitz-class aircraft carrier (pounds / kg)",
		TrueValue: 226_679_700, // pounds
		Unit:      "pounds",
		UnitKind:  "weight",
	},
	{
		ID:        "q20",
		Prompt:    "Number of times that the name 'Jesus' appears in the King James Bible",
		TrueValue: 942,
		Unit:      "occurrences",
	},
}
