package model

// Result is the per-geography result tree. Scores is nil when the geography
// has no score rows, which drops the score and topics keys from its JSON.
type Result struct {
	Geography
	*Scores
}

// Scores holds the overall and per-topic score history of a geography.
type Scores struct {
	Score  ScoreBlock    `json:"score"`
	Topics []TopicResult `json:"topics"`
}

// ScoreBlock wraps a list of score entries.
type ScoreBlock struct {
	Data []ScoreEntry `json:"data"`
}

// TopicResult is a topic with the geography's scores for it.
type TopicResult struct {
	Topic
	Data []ScoreEntry `json:"data"`
}

// DetailedResult is a result tree with its chart payloads.
type DetailedResult struct {
	Result
	Charts []ChartPayload `json:"charts"`
}
