package sources

// Default returns the built-in source registry, ordered in tiers: dedicated
// AI aggregators first, direct AI news sites second, general tech last.
func Default() []Descriptor {
	return []Descriptor{
		// Tier 1: AI-focused aggregators
		{Name: "Google News: AI & Machine Learning", Kind: KindGoogleNews, Weight: 2.0,
			SearchQuery: "artificial intelligence OR AI OR machine learning OR deep learning"},
		{Name: "Google News: LLMs & Models", Kind: KindGoogleNews, Weight: 2.0,
			SearchQuery: "LLM OR GPT OR Claude OR Gemini OR large language model"},
		{Name: "Reddit: MachineLearning", Kind: KindReddit, Weight: 1.8},
		{Name: "Reddit: artificial", Kind: KindReddit, Weight: 1.8},
		{Name: "Reddit: ChatGPT", Kind: KindReddit, Weight: 1.7},
		{Name: "Reddit: singularity", Kind: KindReddit, Weight: 1.6},
		{Name: "Reddit: LocalLLaMA", Kind: KindReddit, Weight: 1.5},
		{Name: "Hacker News AI Stories", Kind: KindHackerNews, Weight: 1.6},

		// Tier 2: direct AI news sites
		{Name: "MIT Technology Review", Kind: KindRSS, Weight: 1.5, URL: "https://www.technologyreview.com/feed/"},
		{Name: "VentureBeat AI", Kind: KindRSS, Weight: 1.5, URL: "https://venturebeat.com/feed/"},
		{Name: "The Decoder", Kind: KindRSS, Weight: 1.4, URL: "https://the-decoder.com/feed/"},
		{Name: "AI News", Kind: KindRSS, Weight: 1.4, URL: "https://www.artificialintelligence-news.com/feed/"},
		{Name: "The Verge AI", Kind: KindRSS, Weight: 1.3, URL: "https://www.theverge.com/rss/index.xml"},
		{Name: "ZDNet AI", Kind: KindRSS, Weight: 1.3, URL: "https://www.zdnet.com/topic/artificial-intelligence/rss.xml"},
		{Name: "IEEE Spectrum AI", Kind: KindRSS, Weight: 1.4, URL: "https://spectrum.ieee.org/rss/topic/artificial-intelligence/fulltext"},
		{Name: "AI Business", Kind: KindRSS, Weight: 1.3, URL: "https://aibusiness.com/feed"},
		{Name: "Synced Review", Kind: KindRSS, Weight: 1.3, URL: "https://syncedreview.com/feed/"},
		{Name: "Towards Data Science", Kind: KindRSS, Weight: 1.2, URL: "https://towardsdatascience.com/feed"},
		{Name: "Analytics Insight", Kind: KindRSS, Weight: 1.3, URL: "https://www.analyticsinsight.net/feed/"},
		{Name: "AI Trends", Kind: KindRSS, Weight: 1.3, URL: "https://www.aitrends.com/feed/"},
		{Name: "KDnuggets", Kind: KindRSS, Weight: 1.2, URL: "https://www.kdnuggets.com/feed"},
		{Name: "ScienceDaily AI", Kind: KindRSS, Weight: 1.2, URL: "https://www.sciencedaily.com/rss/computers_math/artificial_intelligence.xml"},
		{Name: "Wired AI", Kind: KindRSS, Weight: 1.1, URL: "https://www.wired.com/feed/category/artificial-intelligence/rss"},
		{Name: "NVIDIA Blog", Kind: KindRSS, Weight: 1.4, URL: "https://feeds.feedburner.com/nvidiablog"},
		{Name: "NVIDIA News", Kind: KindRSS, Weight: 1.3, URL: "https://nvidianews.nvidia.com/news/feed"},
		{Name: "OpenAI Blog", Kind: KindRSS, Weight: 1.5, URL: "https://openai.com/blog/rss.xml"},
		{Name: "Anthropic Blog", Kind: KindRSS, Weight: 1.4, URL: "https://www.anthropic.com/index.xml"},
		{Name: "Google AI Blog", Kind: KindRSS, Weight: 1.4, URL: "https://ai.googleblog.com/feeds/posts/default"},
		{Name: "Microsoft AI Blog", Kind: KindRSS, Weight: 1.3, URL: "https://blogs.microsoft.com/ai/feed/"},
		{Name: "Meta AI Research", Kind: KindRSS, Weight: 1.3, URL: "https://ai.meta.com/blog/feed/"},

		// Tier 3: general tech, filtered for AI downstream
		{Name: "TechCrunch", Kind: KindRSS, Weight: 1.2, URL: "https://techcrunch.com/feed/"},
		{Name: "The Information", Kind: KindRSS, Weight: 1.1, URL: "https://www.theinformation.com/feed"},
		{Name: "TechRadar AI", Kind: KindRSS, Weight: 1.1, URL: "https://www.techradar.com/rss/news/artificial-intelligence"},
		{Name: "Ars Technica", Kind: KindRSS, Weight: 1.0, URL: "https://feeds.arstechnica.com/arstechnica/index"},
		{Name: "Wired", Kind: KindRSS, Weight: 1.0, URL: "https://www.wired.com/feed/rss"},
		{Name: "Forbes AI", Kind: KindRSS, Weight: 1.0, URL: "https://www.forbes.com/real-time/feed2/"},
		{Name: "Reuters Technology", Kind: KindRSS, Weight: 0.9, URL: "https://www.reutersagency.com/feed/?best-topics=tech&post_type=best"},
		{Name: "Bloomberg Technology", Kind: KindRSS, Weight: 0.9, URL: "https://www.bloomberg.com/feeds/sites/2/technology.rss"},
		{Name: "Engadget", Kind: KindRSS, Weight: 0.9, URL: "https://www.engadget.com/rss.xml"},
		{Name: "Gizmodo", Kind: KindRSS, Weight: 0.9, URL: "https://gizmodo.com/rss"},
		{Name: "Fast Company", Kind: KindRSS, Weight: 0.8, URL: "https://www.fastcompany.com/feed"},
		{Name: "Quartz", Kind: KindRSS, Weight: 0.8, URL: "https://qz.com/feed/"},
		{Name: "The Next Web", Kind: KindRSS, Weight: 0.8, URL: "https://thenextweb.com/feed"},
		{Name: "CNET Technology", Kind: KindRSS, Weight: 0.8, URL: "https://www.cnet.com/rss/news/"},
		{Name: "Digital Trends", Kind: KindRSS, Weight: 0.7, URL: "https://www.digitaltrends.com/feed/"},
	}
}
