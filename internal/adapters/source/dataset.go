package source

// seedPost is one canned post before ids and timestamps are stamped on.
type seedPost struct {
	Text     string
	Author   string
	Likes    int
	Retweets int
	Views    int
}

// syntheticDB maps normalized keywords to canned posts. Ticker symbols and
// company names are separate keys so variation lookups behave like a real
// search. Unknown keywords fall back to the "default" set.
var syntheticDB = map[string][]seedPost{
	"AAPL": {
		{"Apple's new iPhone is amazing! $AAPL https://www.apple.com/newsroom/2024/01/apple-announces-record-quarter/", "@techfan", 150, 45, 5000},
		{"Not impressed with Apple's latest earnings. $AAPL https://www.reuters.com/technology/apple-earnings", "@investor", 23, 8, 1200},
		{"Apple stock looking bullish today! $AAPL", "@trader", 89, 32, 3500},
		{"Apple's innovation in AI is impressive $AAPL", "@techanalyst", 95, 28, 3800},
		{"Long-term bullish on Apple's growth $AAPL", "@longterm", 67, 19, 2400},
		{"Apple's ecosystem lock-in is concerning $AAPL", "@critic", 42, 15, 1800},
		{"Apple Watch Series 10 is a game changer $AAPL", "@wearable", 118, 36, 4200},
		{"Apple's privacy stance is admirable $AAPL", "@privacy", 134, 41, 4800},
		{"Concerned about Apple's China dependency $AAPL", "@geopolitics", 56, 22, 2600},
		{"Apple's M3 chip performance is outstanding $AAPL", "@hardware", 142, 44, 5100},
	},
	"APPLE": {
		{"Apple Inc. just announced amazing quarterly results!", "@marketwatch", 203, 67, 8500},
		{"Thinking about buying more Apple shares", "@investor", 45, 12, 1800},
		{"Apple's ecosystem is unbeatable", "@techguru", 112, 34, 4200},
		{"Apple's services revenue is growing fast", "@services", 88, 25, 3100},
		{"Apple Watch continues to dominate smartwatch market", "@wearables", 76, 21, 2700},
		{"Apple's customer service is top-notch", "@support", 98, 29, 3400},
		{"Disappointed with Apple's pricing strategy", "@consumer", 34, 11, 1400},
		{"Apple's AR/VR headset is revolutionary", "@ar", 156, 48, 5600},
		{"Apple Music is competing well with Spotify", "@music", 87, 26, 3200},
		{"Apple's environmental initiatives are commendable", "@green", 124, 38, 4500},
	},
	"TSLA": {
		{"Tesla's innovation is incredible! $TSLA https://www.tesla.com/blog/tesla-q4-2024-update", "@evfan", 234, 67, 12000},
		{"Concerned about Tesla's production delays $TSLA https://www.bloomberg.com/news/articles/2024-01-30/tesla-production", "@analyst", 45, 12, 2500},
		{"Elon Musk is revolutionizing transportation! $TSLA", "@follower", 178, 54, 6800},
		{"Tesla's FSD technology is advancing rapidly $TSLA", "@fsd", 156, 48, 7200},
		{"Tesla energy storage solutions are game-changing $TSLA", "@energy", 128, 38, 5400},
		{"Tesla's charging network expansion is impressive $TSLA", "@charging", 142, 43, 6100},
		{"Worried about Tesla's competition catching up $TSLA", "@competition", 52, 19, 2300},
		{"Tesla Model Y is dominating EV sales $TSLA", "@sales", 167, 51, 7400},
		{"Tesla's margins are under pressure $TSLA", "@margins", 38, 13, 1700},
		{"Tesla's robotaxi vision is exciting $TSLA", "@robotaxi", 189, 58, 8200},
	},
	"TESLA": {
		{"Tesla Model 3 is the best EV on the market", "@evfan", 189, 56, 7500},
		{"Tesla's Supercharger network is expanding rapidly", "@evnews", 134, 41, 5200},
		{"Long Tesla for the next decade", "@trader", 92, 28, 3200},
		{"Tesla Cybertruck deliveries starting soon", "@cybertruck", 201, 62, 8900},
		{"Tesla's manufacturing efficiency is unmatched", "@manufacturing", 115, 35, 4800},
		{"Tesla's battery technology leads the industry", "@battery", 148, 45, 6600},
		{"Concerned about Tesla's quality control issues", "@quality", 41, 14, 1900},
		{"Tesla's solar roof is gaining traction", "@solar", 123, 37, 5300},
		{"Tesla's valuation seems stretched", "@valuation", 47, 17, 2100},
		{"Tesla's global expansion is accelerating", "@global", 135, 41, 5800},
	},
	"MSFT": {
		{"Microsoft Azure is dominating cloud computing! $MSFT https://azure.microsoft.com/en-us/blog/", "@clouddev", 112, 28, 4500},
		{"Microsoft's AI investments paying off $MSFT https://www.microsoft.com/en-us/investor", "@technews", 156, 41, 6200},
		{"Microsoft Teams integration is seamless $MSFT", "@collaboration", 98, 29, 3900},
		{"Microsoft's security solutions are top-notch $MSFT", "@security", 124, 36, 5100},
		{"Microsoft stock continues to perform well $MSFT", "@stock", 87, 24, 3300},
		{"Microsoft Copilot is transforming productivity $MSFT", "@copilot", 168, 52, 7900},
		{"Microsoft's acquisition strategy is aggressive $MSFT", "@mna", 76, 23, 2900},
		{"Microsoft Surface devices are improving $MSFT", "@surface", 109, 33, 4400},
		{"Microsoft's open source contributions are significant $MSFT", "@opensource", 132, 40, 5700},
		{"Microsoft's enterprise contracts are strong $MSFT", "@enterprise", 145, 44, 6400},
	},
	"GOOGL": {
		{"Google's search dominance continues $GOOGL", "@seoexpert", 98, 19, 3400},
		{"Alphabet stock performing well $GOOGL", "@investor", 67, 15, 2100},
		{"Google's advertising revenue remains strong $GOOGL", "@advertising", 113, 32, 4700},
		{"Alphabet's YouTube growth is impressive $GOOGL", "@youtube", 129, 39, 5800},
		{"Google's AI capabilities are industry-leading $GOOGL", "@ai", 152, 46, 6900},
		{"Google Cloud is gaining enterprise customers $GOOGL", "@cloud", 138, 42, 6000},
		{"Alphabet's antitrust concerns are mounting $GOOGL", "@antitrust", 44, 16, 2000},
		{"Google Pixel 9 is receiving great reviews $GOOGL", "@pixel", 147, 45, 6700},
		{"Alphabet's Waymo progress is accelerating $GOOGL", "@waymo", 161, 49, 7200},
		{"Google's Gemini AI is competitive $GOOGL", "@gemini", 174, 53, 7800},
	},
	"NVDA": {
		{"NVIDIA's AI chips are dominating $NVDA", "@ai", 245, 72, 13500},
		{"NVIDIA's data center revenue surging $NVDA", "@datacenter", 198, 60, 10000},
		{"NVIDIA stock valuation seems stretched $NVDA", "@valuation", 54, 19, 2400},
		{"NVIDIA's CUDA ecosystem is unbeatable $NVDA", "@cuda", 187, 57, 9200},
		{"NVIDIA's gaming segment recovering $NVDA", "@gaming", 156, 47, 7200},
		{"NVIDIA's China restrictions impact $NVDA", "@china", 48, 16, 2000},
		{"NVIDIA's Blackwell architecture impressive $NVDA", "@blackwell", 212, 64, 10500},
		{"NVIDIA's partnerships with cloud providers strong $NVDA", "@cloud", 174, 52, 8300},
		{"NVIDIA's competition catching up $NVDA", "@competition", 51, 17, 2200},
		{"NVIDIA's AI infrastructure leadership clear $NVDA", "@leadership", 203, 61, 9800},
	},
	"BTC": {
		{"Bitcoin adoption is accelerating $BTC", "@crypto", 234, 68, 12500},
		{"Bitcoin ETF approval is bullish $BTC", "@etf", 189, 56, 9200},
		{"Bitcoin volatility concerns persist $BTC", "@volatility", 52, 18, 2300},
		{"Bitcoin as digital gold is gaining acceptance $BTC", "@gold", 201, 61, 9800},
		{"Bitcoin's energy consumption is concerning $BTC", "@energy", 45, 14, 1800},
		{"Bitcoin halving is approaching $BTC", "@halving", 176, 53, 8500},
		{"Bitcoin institutional adoption growing $BTC", "@institutional", 198, 59, 9500},
		{"Bitcoin regulatory clarity needed $BTC", "@regulation", 58, 20, 2500},
		{"Bitcoin's store of value narrative strong $BTC", "@store", 167, 50, 8000},
		{"Bitcoin network security is robust $BTC", "@security", 182, 55, 8800},
	},
	"default": {
		{"Great company with strong fundamentals!", "@investor", 50, 10, 1500},
		{"Mixed feelings about this stock", "@trader", 30, 5, 800},
		{"Bullish on this one!", "@bull", 75, 20, 2200},
		{"Strong earnings report this quarter", "@earnings", 65, 18, 1900},
		{"Market sentiment is positive", "@market", 55, 14, 1600},
		{"This company is undervalued", "@value", 68, 19, 2000},
		{"Concerned about management decisions", "@management", 28, 8, 900},
		{"Revenue growth is accelerating", "@growth", 82, 24, 2400},
		{"Competitive position is weakening", "@competition", 33, 11, 1100},
		{"Dividend yield is attractive", "@dividend", 71, 21, 2100},
	},
}
