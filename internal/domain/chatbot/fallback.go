package chatbot

import "strings"

// fallbackRule maps question keywords to canned gardening advice. Rules are
// evaluated in order, first match wins.
type fallbackRule struct {
	keywords []string
	reply    string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"yellow", "yellowing"},
		reply:    "Yellowing leaves usually point to overwatering or poor drainage. Let the top few centimetres of soil dry out before the next watering and check that the pot drains freely.",
	},
	{
		keywords: []string{"water", "watering"},
		reply:    "Most houseplants prefer the soil to dry slightly between waterings. Push a finger a couple of centimetres into the soil and water only when it feels dry.",
	},
	{
		keywords: []string{"sun", "light", "shade"},
		reply:    "Match the plant to the spot: full-sun plants want six or more hours of direct light, while low-light plants scorch near a south-facing window. Bright indirect light suits most houseplants.",
	},
	{
		keywords: []string{"fertil", "feed", "nutrient"},
		reply:    "Feed during the growing season only, with a balanced fertilizer diluted to half strength every few weeks. Skip feeding in winter when growth slows.",
	},
	{
		keywords: []string{"pest", "bug", "aphid", "mite"},
		reply:    "Isolate the plant, then wipe leaves with diluted neem oil or insecticidal soap. Repeat weekly until no pests appear for two weeks.",
	},
	{
		keywords: []string{"repot", "pot", "root bound"},
		reply:    "Repot in spring into a container one size up with fresh potting mix. Roots circling the drainage holes are the clearest sign it is time.",
	},
	{
		keywords: []string{"prune", "trim", "deadhead"},
		reply:    "Prune just above a leaf node with clean shears. Removing spent flowers and leggy growth encourages bushier, healthier plants.",
	},
	{
		keywords: []string{"soil", "compost", "drainage"},
		reply:    "Use a free-draining mix: standard potting soil amended with perlite works for most plants, while succulents prefer a gritty cactus mix.",
	},
}

const fallbackDefault = "I can help with watering, light, feeding, pests, pruning and repotting. Could you tell me a bit more about your plant and what you are seeing?"

// fallbackReply answers from the canned rule list when the language model is
// unavailable. It always returns something usable.
func fallbackReply(question string) string {
	lowered := strings.ToLower(question)
	for _, rule := range fallbackRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.reply
			}
		}
	}
	return fallbackDefault
}
