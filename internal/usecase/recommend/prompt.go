package recommend

import (
	"fmt"
	"strings"

	"github.com/smartdine/dinerag/internal/domain"
)

const systemPrompt = "You are an intelligent food recommendation assistant. " +
	"Use ONLY the provided restaurant data to make recommendations. " +
	"Consider price, cuisine, ratings, tags, and descriptions when making recommendations. " +
	"IMPORTANT: Respond with ONLY a valid JSON object, no additional text before or after."

// userPrompt embeds the raw query (quoted) and the numbered context lines.
func userPrompt(query, context string) string {
	return fmt.Sprintf(
		"User query: \"%s\"\n\nTop matching restaurants (already filtered by relevance):\n%s\n\n"+
			"Task: Pick the BEST restaurant from this list that matches the user's query. "+
			"Consider:\n"+
			"- If they asked for specific food (e.g., pizza, waffle), prioritize restaurants with that item\n"+
			"- If they mentioned price (cheap, budget, expensive), consider the price range\n"+
			"- If they mentioned mood/occasion (romantic, casual, date night), use tags and description\n"+
			"- Rating and cuisine type matter for quality\n\n"+
			"Respond with ONLY this JSON format (no markdown, no extra text):\n"+
			"{\"bestRestaurant\": \"Exact Restaurant Name\", "+
			"\"alternatives\": [\"Alternative Name 1\", \"Alternative Name 2\"], "+
			"\"explanation\": \"Brief explanation (2-3 sentences) why this restaurant best matches their request, mentioning specific features\"}",
		query,
		context,
	)
}

// buildContext renders one line per retrieved restaurant, 1-indexed.
func buildContext(restaurants []domain.Restaurant) string {
	var b strings.Builder
	for i, r := range restaurants {
		fmt.Fprintf(&b,
			"%d. %s - Cuisine: %s, Price: %s, Rating: %.1f, Tags: %s, Description: %s\n",
			i+1, r.Name, r.Cuisine, r.PriceRange, r.Rating, r.Tags, r.Description,
		)
	}
	return b.String()
}
