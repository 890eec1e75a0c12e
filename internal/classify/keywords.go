package classify

import "regexp"

// Static vocabulary tables used by the exclusion scorer, the relevance gate
// and the ranking scorer. All of them are read-only after init.

// exclusionKeywordWeights maps low-value content markers to severity 1-4.
var exclusionKeywordWeights = map[string]int{
	// High severity: strong indicators of shopping/promo content
	"black friday": 4, "cyber monday": 4, "flash sale": 4, "clearance": 3,
	"buy now": 3, "add to cart": 3, "get it now": 3, "order now": 3, "where to buy": 3,

	// Medium-high severity
	"sale": 2, "deal": 2, "discount": 2, "coupon": 2, "promo": 2,
	"cheap": 2, "bargain": 2, "on sale": 2, "sponsored": 3, "advertisement": 3,
	"ad": 2, "sponsor": 2, "promoted": 2, "promotion": 2,

	// Medium severity: can appear in legitimate content
	"review": 1, "hands-on": 1, "unboxing": 2, "first look": 1, "buyer's guide": 2,
	"best ": 1, "top ": 1, "ranking": 1, "comparison": 1, "vs ": 1, "versus": 1,
	"price": 1, "cost": 1, "affordable": 1, "budget": 1, "pricing": 1,
	"shop": 2, "shopping": 2, "purchase": 1, "order": 1, "save": 1,
	"limited time": 2, "special offer": 2, "buy it": 2,
}

// practicalAIUseCases scores hands-on AI applications; articles about these
// get the benefit of the doubt in the exclusion scorer.
var practicalAIUseCases = map[string]int{
	"ai coding": 3, "code generation": 3, "programming assistant": 3, "coding assistant": 3,
	"ai developer": 2, "copilot": 3, "ai tool": 2, "ai plugin": 2, "ai extension": 2,

	"ai art": 3, "image generation": 3, "ai image": 3, "ai drawing": 2, "ai design": 2,
	"ai graphics": 2, "text to image": 3, "image to image": 2,

	"ai chat": 3, "chatbot": 3, "ai conversation": 2, "ai assistant": 2, "ai companion": 2,

	"ai video": 3, "video generation": 3, "text to video": 3, "ai animation": 2, "video ai": 2,

	"ai music": 3, "ai audio": 2, "music generation": 3, "ai voice": 2, "voice generation": 2,
	"text to speech": 2, "ai voiceover": 3, "voice cloning": 2,

	"ai workflow": 2, "ai automation": 2, "ai productivity": 2, "ai app": 2, "ai software": 2,
}

// academicResearchIndicators flags papers and pure research writeups.
var academicResearchIndicators = map[string]int{
	"arxiv": 4, "preprint": 3, "peer reviewed": 3, "academic paper": 4, "research paper": 3,
	"scientific paper": 3, "journal": 3, "conference paper": 3, "doi:": 3,
	"citation": 2, "references": 2,

	"methodology": 2, "hypothesis": 2, "experiment": 2, "dataset": 2,
	"theoretical": 2, "framework": 1,
}

// legitimatePatterns allowlists usages of exclusion keywords that signal
// business/research news rather than shopping ("deal announced", "peer review").
var legitimatePatterns = map[string][]*regexp.Regexp{
	"deal": {
		regexp.MustCompile(`(?i)\bdeal\s+(with|between|announced|signed|reached|struck|closed|finalized)`),
		regexp.MustCompile(`(?i)\b(partnership|merger|acquisition|business|investment|funding)\s+deal`),
		regexp.MustCompile(`(?i)\bdeal\s+(worth|valued|valued at|amounting to)`),
		regexp.MustCompile(`(?i)\b(multi.?million|billion)\s+deal`),
	},
	"review": {
		regexp.MustCompile(`(?i)\b(review|reviewed|reviewing)\s+(of|the|findings|research|study|paper|data|literature)`),
		regexp.MustCompile(`(?i)\b(peer|scientific|academic|research|systematic|meta)\s+review`),
		regexp.MustCompile(`(?i)\b(review|reviewed)\s+(by|from|according|published)`),
		regexp.MustCompile(`(?i)\breview\s+(process|board|committee)`),
	},
	"best ": {
		regexp.MustCompile(`(?i)\bbest\s+(practices|methods|approaches|ways|strategies|solutions|techniques|tools)`),
		regexp.MustCompile(`(?i)\bbest\s+(for|in|at|to|way|approach)\s+`),
		regexp.MustCompile(`(?i)\b(best|top)\s+(ai|tech|technology|companies|models|frameworks|libraries)`),
		regexp.MustCompile(`(?i)\b(best|top)\s+\d+\s+(ai|tech|tools|frameworks)`),
	},
	"price": {
		regexp.MustCompile(`(?i)\bprice\s+(of|for|per|tag|point|target|range|action|stability)`),
		regexp.MustCompile(`(?i)\b(pricing|cost)\s+(strategy|model|analysis|structure|tier|plan)`),
		regexp.MustCompile(`(?i)\b(cost|price)\s+(to|of|for)\s+(train|develop|build|create|run|operate)`),
		regexp.MustCompile(`(?i)\b(cost|price)\s+(efficiency|effective|reduction|optimization)`),
		regexp.MustCompile(`(?i)\bmarket\s+price`),
	},
	"promotion": {
		regexp.MustCompile(`(?i)\bpromotion\s+(to|of|within|at|from)`),
		regexp.MustCompile(`(?i)\b(promoted|promoting)\s+(to|as|within|from)`),
		regexp.MustCompile(`(?i)\b(job|career|executive|employee|staff)\s+promotion`),
		regexp.MustCompile(`(?i)\bpromotion\s+(campaign|strategy|effort)`),
	},
	"sale": {
		regexp.MustCompile(`(?i)\b(sales|selling)\s+(team|force|department|process|strategy|growth)`),
		regexp.MustCompile(`(?i)\b(sales|selling)\s+(of|for|to)\s+`),
		regexp.MustCompile(`(?i)\bannual\s+sales`),
		regexp.MustCompile(`(?i)\bsales\s+(figures|data|numbers|report|target)`),
	},
	"discount": {
		regexp.MustCompile(`(?i)\b(discount|discounting)\s+(rate|factor|model|method)`),
		regexp.MustCompile(`(?i)\b(discount|discounting)\s+(for|on|applied)`),
	},
	"sponsored": {
		regexp.MustCompile(`(?i)\bsponsored\s+(by|content|post|article)`),
		regexp.MustCompile(`(?i)\b(sponsor|sponsoring)\s+(organization|company|institution)`),
	},
}

// majorNewsIndicators boosts stories with newsworthy events.
var majorNewsIndicators = map[string]float64{
	// Breakthroughs
	"breakthrough": 4.0, "revolutionary": 3.5, "game-changing": 3.5,
	"milestone": 3.0, "first-of-its-kind": 3.5, "groundbreaking": 3.5,
	// Launches
	"launch": 3.0, "release": 3.0, "announcement": 2.5, "unveiled": 3.0,
	"introduced": 2.5, "debut": 2.5, "unveiling": 3.0,
	// Acquisitions
	"acquisition": 3.5, "merger": 3.5, "bought": 3.0, "acquired": 3.5,
	"purchased": 3.0, "takeover": 3.0,
	// Research
	"research": 2.5, "study": 2.5, "paper": 2.5, "published": 2.5,
	"findings": 2.5, "discovery": 3.0, "scientific": 2.5,
	// Partnerships
	"partnership": 2.5, "collaboration": 2.5, "teams up": 2.5,
	"joins forces": 2.5, "alliance": 2.5,
	// Controversies
	"controversy": 3.0, "lawsuit": 3.0, "legal": 2.5, "regulation": 2.5,
	"ban": 3.0, "restriction": 2.5, "sued": 3.0,
	// Funding
	"funding": 2.5, "investment": 2.5, "raised": 3.0, "valuation": 2.5,
	"ipo": 3.0, "venture capital": 2.5, "series": 2.5,
}

// aiKeywords maps AI vocabulary to relevance weight. Weight >= 2.5 marks a
// high-confidence AI term.
var aiKeywords = map[string]float64{
	// Core terms
	"artificial intelligence": 3.0, "ai": 3.0, "machine learning": 2.5, "ml": 2.5,
	"deep learning": 2.5, "neural network": 2.5, "neural networks": 2.5,

	// Companies
	"openai": 2.8, "anthropic": 2.5, "google ai": 2.3, "microsoft ai": 2.3,
	"meta ai": 2.3, "deepmind": 2.5, "stability ai": 2.0, "midjourney": 2.0,

	// Models
	"gpt": 2.8, "gpt-4": 3.0, "gpt-3": 2.5, "claude": 2.8, "gemini": 2.8,
	"llm": 2.5, "large language model": 2.8, "large language models": 2.8,
	"chatgpt": 2.8, "dall-e": 2.0, "stable diffusion": 2.0,

	// Applications
	"chatbot": 2.0, "generative ai": 2.5, "computer vision": 2.0, "nlp": 2.0,
	"natural language processing": 2.3, "ai agent": 3.0, "ai tool": 2.0,
	"ai system": 2.0,

	// Events
	"ai breakthrough": 3.0, "ai model": 2.5, "ai research": 2.0,
	"ai development": 2.0, "ai innovation": 2.5,

	// Techniques
	"transformer": 2.0, "transformer model": 2.3, "reinforcement learning": 2.0,
	"supervised learning": 1.8, "unsupervised learning": 1.8,
	"ai training": 1.8, "model training": 1.8,

	// Developer-focused terms
	"coding agent": 3.5, "copilot": 3.2, "github copilot": 3.5, "cursor ai": 3.3,
	"claude code": 3.3, "code generation": 3.0, "ai coding": 3.0,
	"ai developer": 2.8, "ai programming": 2.8, "llm update": 3.0,
	"model update": 3.0, "new model": 3.0, "model release": 3.2, "new gpt": 3.2,
	"gpt-5": 3.5, "claude update": 3.2, "gemini update": 3.2, "new feature": 2.5,
	"ai feature": 3.0, "beta": 2.0, "preview": 2.0, "api": 2.5, "sdk": 2.5,
	"integration": 2.3, "prompt": 2.0, "prompting": 2.0, "fine-tuning": 2.5,
	"fine tuning": 2.5, "training": 2.0, "inference": 2.3, "token": 2.0,
	"context window": 2.5, "multimodal": 2.5, "vision model": 2.8,
	"code model": 3.0, "ai assistant": 2.5,
}

// shoppingDomains lists registrable retail domains that are excluded outright.
var shoppingDomains = []string{
	"amazon.com", "ebay.com", "etsy.com", "shopify.com", "alibaba.com",
	"walmart.com", "target.com", "bestbuy.com", "newegg.com", "overstock.com",
	"zappos.com", "wayfair.com", "homedepot.com", "lowes.com", "costco.com",
	"aliexpress.com", "wish.com", "groupon.com", "livingsocial.com",
	"dealnews.com", "slickdeals.net", "retailmenot.com", "honey.com",
}

// promotionalPhrases feed the urgency/marketing density check.
var promotionalPhrases = []string{
	"limited time", "act now", "don't miss", "exclusive", "special offer",
	"one-time", "today only", "while supplies last", "hurry", "urgent",
	"last chance", "expires soon", "order now", "buy now", "click here",
	"sign up now", "free trial", "no credit card", "money back guarantee",
}

// shortArticleMarkers are the blunt terms that make a very short article
// look like an ad rather than a story.
var shortArticleMarkers = []string{"sale", "deal", "discount", "buy now", "order now", "sponsored", "ad"}

// highAIWeight is the threshold above which an AI keyword counts as a
// high-confidence signal (primary context, double counting).
const highAIWeight = 2.5
