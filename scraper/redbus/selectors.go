package redbus

// Selector chains, most specific markup hook first.
var (
	itemSelectors = []string{"div[class*='bus-item']", ".bus-item", "li.row-sec"}

	nameLocators      = CSSChain("div[class*='travels']", ".travels-name", ".operator-text")
	busTypeLocators   = CSSChain("div[class*='bus-type']", ".bus-type-text", ".type")
	departureLocators = CSSChain("div[class*='dep-time']", ".departure-time", ".time-text")
	durationLocators  = CSSChain("div[class*='duration']", ".duration-text", ".dur")
	arrivalLocators   = CSSChain("div[class*='arr-time']", ".arrival-time")
	priceLocators     = CSSChain("div[class*='fare']", ".price", ".fare-text")
	ratingLocators    = CSSChain("div[class*='rating']", ".rating-text")
	seatsLocators     = CSSChain("div[class*='seats']", ".seat-text")
)
