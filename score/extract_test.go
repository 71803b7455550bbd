package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/schema"
)

func TestExtractEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		signals := Extract(text, DefaultExtractConfig())
		assert.Equal(t, schema.HelpType(""), signals.DetectedType)
		assert.Equal(t, 0.0, signals.Confidence)
		assert.Equal(t, 0.0, signals.DistressScore)
		assert.Empty(t, signals.DistressIndicators)
		assert.Empty(t, signals.VulnerableGroups)
		assert.Empty(t, signals.ExtractedSupplies)
		assert.Equal(t, "en", signals.DetectedLanguage)
	}
}

func TestExtractCategorySingleWinner(t *testing.T) {
	signals := Extract("we are trapped in the flood, please rescue us", DefaultExtractConfig())
	assert.Equal(t, schema.HelpRescue, signals.DetectedType)
	assert.Equal(t, 1.0, signals.Confidence)
}

func TestExtractCategoryConfidenceSplit(t *testing.T) {
	// one food word and one water word: matched weight splits evenly and
	// the first category in declaration order wins the tie
	signals := Extract("hungry and thirsty", DefaultExtractConfig())
	assert.Equal(t, schema.HelpFood, signals.DetectedType)
	assert.InDelta(t, 0.5, signals.Confidence, 1e-9)
}

func TestExtractCategoryWeightedWords(t *testing.T) {
	// "starving" carries weight 2 against "thirsty" at 1
	signals := Extract("starving and thirsty", DefaultExtractConfig())
	assert.Equal(t, schema.HelpFood, signals.DetectedType)
	assert.InDelta(t, 2.0/3.0, signals.Confidence, 1e-9)
}

func TestExtractNoLexiconHit(t *testing.T) {
	signals := Extract("the weather was pleasant yesterday", DefaultExtractConfig())
	assert.Equal(t, schema.HelpType(""), signals.DetectedType)
	assert.Equal(t, 0.0, signals.Confidence)
}

func TestExtractDistressIndicators(t *testing.T) {
	signals := Extract("please help, the children are crying and I am in pain", DefaultExtractConfig())

	assert.InDelta(t, 0.3, signals.DistressIndicators[IndicatorPanic], 1e-9)
	assert.InDelta(t, 0.3, signals.DistressIndicators[IndicatorCrying], 1e-9)
	assert.InDelta(t, 0.3, signals.DistressIndicators[IndicatorPhysicalDistress], 1e-9)
	assert.NotContains(t, signals.DistressIndicators, IndicatorDesperation)

	// 0.5 * (0.3 + 0.3 + 0.3)
	assert.InDelta(t, 0.45, signals.DistressScore, 1e-9)
}

func TestExtractDistressSaturation(t *testing.T) {
	text := "pain hurt broken bleeding suffocating crying tears sobbing screaming " +
		"sos emergency anyone hopeless desperate alone abandoned nobody"
	signals := Extract(text, DefaultExtractConfig())

	for indicator, sub := range signals.DistressIndicators {
		assert.LessOrEqual(t, sub, 1.0, indicator)
	}
	assert.Equal(t, 1.0, signals.DistressScore)
}

func TestExtractDistressPhraseMatch(t *testing.T) {
	signals := Extract("my father can't move and can't breathe", DefaultExtractConfig())
	assert.InDelta(t, 0.6, signals.DistressIndicators[IndicatorPhysicalDistress], 1e-9)
}

func TestExtractVulnerableGroupsOrdered(t *testing.T) {
	// output order follows the fixed group order, not the text order
	signals := Extract("a baby, some children and an elderly grandmother need help", DefaultExtractConfig())
	assert.Equal(t, []string{GroupElderly, GroupChildren, GroupInfant}, signals.VulnerableGroups)
}

func TestExtractVulnerableGroupDedup(t *testing.T) {
	signals := Extract("children, kids, a child, many children", DefaultExtractConfig())
	assert.Equal(t, []string{GroupChildren}, signals.VulnerableGroups)
}

func TestExtractSupplies(t *testing.T) {
	signals := Extract("we need insulin, drinking water and a blanket", DefaultExtractConfig())
	assert.Equal(t, []string{"insulin", "drinking water", "blanket"}, signals.ExtractedSupplies)
}

func TestExtractHindiText(t *testing.T) {
	signals := Extract("हमें खाना चाहिए, बच्चा भूख से रो रहा है", DefaultExtractConfig())
	assert.Equal(t, "hi", signals.DetectedLanguage)
	assert.Equal(t, schema.HelpFood, signals.DetectedType)
	assert.Contains(t, []string(signals.VulnerableGroups), GroupChildren)
}

func TestExtractDeterministic(t *testing.T) {
	text := "trapped with children, please help, we need drinking water and insulin"
	first := Extract(text, DefaultExtractConfig())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text, DefaultExtractConfig()))
	}
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", DetectLanguage("need food"))
	assert.Equal(t, "hi", DetectLanguage("खाना चाहिए"))
	assert.Equal(t, "ta", DetectLanguage("தண்ணீர் வேண்டும்"))
	assert.Equal(t, "te", DetectLanguage("నీరు కావాలి"))
	assert.Equal(t, "bn", DetectLanguage("খাবার দরকার"))
	assert.Equal(t, "en", DetectLanguage(""))
}
