package ai

import (
	"context"
	"fmt"
	"strings"
)

const escalationSystemPrompt = `You are a sentiment analysis expert. Analyze the sentiment/opinions expressed in the given text and return a JSON response with:
- sentiment_score: A float between -1 (very negative) and 1 (very positive)
- sentiment_label: One of "positive", "negative", or "neutral"
- confidence: A float between 0 and 1 indicating confidence
- reasoning: Brief explanation of the sentiment analysis

Focus on financial and market sentiment/opinions when analyzing stock-related content.`

const deepDiveSystemPrompt = `You are a strategic analyst evaluating external information against internal strategic context.
Your task is to evaluate the sentiment of external information based on internal context.

Return ONLY a valid JSON object with these exact fields:
- sentiment: A string value of "Positive", "Neutral", or "Negative"
- summary: A one-sentence summary of the external information
- reasoning: A brief explanation for your sentiment rating

Do not include any markdown formatting, code blocks, or additional text. Return only the JSON object.`

const insightsSystemPrompt = `You are a financial market analyst. Analyze sentiment data and provide actionable insights.
Focus on:
- Overall market sentiment trends
- Notable patterns in the data
- Potential implications for investors
- Key takeaways

Keep insights concise (1-2 sentences each) and professional.`

// AnalyzeSentiment escalates a low-confidence lexical reading to the model.
// keyword gives the model the subject the text was found under.
func AnalyzeSentiment(ctx context.Context, c Completion, text, keyword string) (EscalationResult, error) {
	user := "Analyze the sentiment expressed in this text"
	if keyword != "" {
		user += " related to " + keyword
	}
	user += ":\n\n" + text

	content, err := c.Complete(ctx, escalationSystemPrompt, user, 0.3, 200)
	if err != nil {
		return EscalationResult{}, err
	}
	return DecodeEscalation(content), nil
}

// DeepDive evaluates a post against the strategic background document.
func DeepDive(ctx context.Context, c Completion, postText, background string, maxTokens int32) (DeepDiveResult, error) {
	user := fmt.Sprintf(`Internal Context:
%s

External Information:
%s

Analytical Task: Based on the internal context, evaluate the strategic importance of the external information. Return a single JSON object with the following fields: sentiment (a string: 'Positive', 'Neutral', or 'Negative'), summary (a one-sentence summary), and reasoning (a brief explanation for your sentiment rating).`, background, postText)

	content, err := c.Complete(ctx, deepDiveSystemPrompt, user, 0.5, maxTokens)
	if err != nil {
		return DeepDiveResult{}, err
	}
	return DecodeDeepDive(content)
}

// InsightsInput summarizes a finished analysis for insight generation.
type InsightsInput struct {
	Keywords      []string
	TotalPosts    int
	AverageScore  float64
	PositiveCount int
	NegativeCount int
	NeutralCount  int
	SampleTexts   []string
}

// GenerateInsights asks the model for 3-5 takeaways and extracts them as a
// flat list of bullet lines.
func GenerateInsights(ctx context.Context, c Completion, in InsightsInput) ([]string, error) {
	var samples strings.Builder
	for i, text := range in.SampleTexts {
		if i >= 5 {
			break
		}
		if len(text) > 100 {
			text = text[:100]
		}
		fmt.Fprintf(&samples, "- %s...\n", text)
	}

	user := fmt.Sprintf(`Analyze this sentiment data and provide 3-5 key insights:

Keywords analyzed: %s
Total posts: %d
Average sentiment score: %v
Positive posts: %d
Negative posts: %d
Neutral posts: %d

Sample posts analyzed:
%s
Provide insights as a bulleted list.`,
		strings.Join(in.Keywords, ", "), in.TotalPosts, in.AverageScore,
		in.PositiveCount, in.NegativeCount, in.NeutralCount, samples.String())

	content, err := c.Complete(ctx, insightsSystemPrompt, user, 0.7, 300)
	if err != nil {
		return nil, err
	}
	return extractBullets(content), nil
}

// extractBullets pulls bullet lines out of a model response, also keeping
// substantial non-bulleted lines, capped at 5.
func extractBullets(content string) []string {
	var insights []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "•"), strings.HasPrefix(line, "*"):
			insight := strings.TrimSpace(strings.TrimLeft(line, "-•* "))
			if insight != "" {
				insights = append(insights, insight)
			}
		case len(line) > 20:
			insights = append(insights, line)
		}
		if len(insights) == 5 {
			break
		}
	}
	return insights
}
