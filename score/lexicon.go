package score

import (
	"github.com/codeXAI06/ReliefLink/schema"
)

// Keyword is one lexicon entry. Weight biases category detection toward
// life-safety vocabulary; most everyday words carry weight 1.
type Keyword struct {
	Word   string
	Weight float64
}

// CategoryKeywords drive help-type detection. The non-English entries
// cover the scripts the deployment sees most (Hindi, Tamil, Telugu);
// text in a script with no entries simply matches nothing and the
// extractor stays neutral.
var CategoryKeywords = map[schema.HelpType][]Keyword{
	schema.HelpFood: {
		{"food", 1}, {"hungry", 1}, {"eat", 1}, {"meal", 1}, {"rice", 1},
		{"dal", 1}, {"bread", 1}, {"starving", 2}, {"no food", 2},
		{"खाना", 1}, {"भोजन", 1}, {"भूख", 1},
	},
	schema.HelpWater: {
		{"water", 1}, {"drink", 1}, {"thirsty", 1}, {"dehydrated", 2},
		{"no water", 2}, {"पानी", 1}, {"प्यास", 1}, {"தண்ணீர்", 1},
	},
	schema.HelpMedical: {
		{"medical", 1}, {"medicine", 1}, {"doctor", 1}, {"hospital", 1},
		{"injured", 2}, {"sick", 1}, {"health", 1}, {"bleeding", 2},
		{"unconscious", 2}, {"दवाई", 1}, {"डॉक्टर", 1}, {"अस्पताल", 1},
	},
	schema.HelpShelter: {
		{"shelter", 1}, {"roof", 1}, {"house", 1}, {"tent", 1},
		{"stay", 1}, {"homeless", 2}, {"आश्रय", 1}, {"घर", 1}, {"छत", 1},
	},
	schema.HelpRescue: {
		{"rescue", 2}, {"trapped", 2}, {"stuck", 1}, {"save", 1},
		{"flood", 1}, {"stranded", 2}, {"drowning", 2}, {"बचाव", 2}, {"फंसा", 2},
	},
	schema.HelpOther: {
		{"clothes", 1}, {"blanket", 1}, {"electricity", 1}, {"phone", 1},
		{"charge", 1}, {"transport", 1},
	},
}

// Distress indicator names. Each has its own lexicon; sub-scores are
// combined by a saturating sum so co-occurring indicators push the
// aggregate up faster than any single one.
const (
	IndicatorPanic            = "panic"
	IndicatorCrying           = "crying"
	IndicatorDesperation      = "desperation"
	IndicatorPhysicalDistress = "physical_distress"
)

var DistressKeywords = map[string][]string{
	IndicatorPanic: {
		"please help", "someone help", "help help", "god help", "anyone",
		"we are dying", "sos", "emergency",
	},
	IndicatorCrying: {
		"crying", "tears", "sobbing", "screaming", "scream", "yelling",
	},
	IndicatorDesperation: {
		"last hope", "no one", "nobody", "abandoned", "alone", "hopeless",
		"desperate",
	},
	IndicatorPhysicalDistress: {
		"pain", "hurt", "broken", "bleeding", "can't move", "can't breathe",
		"suffocating", "not breathing",
	},
}

// Vulnerable group names as they appear in derived fields.
const (
	GroupElderly  = "elderly"
	GroupChildren = "children"
	GroupDisabled = "disabled"
	GroupPregnant = "pregnant"
	GroupInfant   = "infant"
)

// VulnerableGroupOrder fixes the iteration order so extraction output
// is deterministic.
var VulnerableGroupOrder = []string{
	GroupElderly, GroupChildren, GroupDisabled, GroupPregnant, GroupInfant,
}

var VulnerableKeywords = map[string][]string{
	GroupElderly:  {"elderly", "old man", "old woman", "grandmother", "grandfather", "बुजुर्ग", "முதியவர்"},
	GroupChildren: {"child", "children", "kids", "kid", "बच्चा", "குழந்தை", "పిల్లలు"},
	GroupDisabled: {"disabled", "wheelchair", "blind", "deaf"},
	GroupPregnant: {"pregnant", "pregnancy", "गर्भवती"},
	GroupInfant:   {"baby", "infant", "newborn"},
}

// SupplyKeywords list concrete need-words surfaced to responders as
// extracted supplies.
var SupplyKeywords = []string{
	"insulin", "oxygen", "inhaler", "dialysis", "first aid", "bandage",
	"antibiotic", "painkiller", "wheelchair",
	"rice", "dal", "flour", "bread", "milk", "baby food", "formula",
	"drinking water", "water bottle", "biscuits", "canned food",
	"blanket", "clothes", "torch",
}
