package render

const (
	MessageRateLimited = "Rate limit exceeded. Please try again later."
	MessageFailed      = "Failed to load stats"
)

// fixed markup used if the error template itself cannot execute
const staticErrorCard = `<svg width="540" height="200" viewBox="0 0 540 200" xmlns="http://www.w3.org/2000/svg" role="img"><rect width="540" height="200" fill="#f0f0f0" stroke="#d0d0d0" stroke-width="1.5" rx="8"/><text x="270" y="100" font-family="Arial, sans-serif" font-size="16" fill="#666666" text-anchor="middle">Failed to load stats</text></svg>`

// ErrorCard renders the theme-agnostic fallback card shown when stats
// cannot be loaded. It always returns valid markup.
func ErrorCard(rateLimited bool) string {
	message := MessageFailed
	if rateLimited {
		message = MessageRateLimited
	}
	svg, err := execute("error", message)
	if err != nil {
		return staticErrorCard
	}
	return svg
}
