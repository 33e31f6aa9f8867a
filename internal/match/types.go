package match

// Request is one pain point to match, with optional context such as "industry".
type Request struct {
	PainPoint string            `json:"pain_point"`
	Context   map[string]string `json:"context,omitempty"`
}

// Industry returns the request's industry context, if any.
func (r Request) Industry() (string, bool) {
	v, ok := r.Context[ContextIndustry]
	return v, ok
}

// ContextIndustry is the context key that triggers the category boost.
const ContextIndustry = "industry"

// Suggestion is one catalog feature that matched the request.
type Suggestion struct {
	Name           string   `json:"feature_name"`
	Categories     []string `json:"categories"`
	Description    string   `json:"description"`
	HowItHelps     string   `json:"how_it_helps"`
	RelevanceScore float64  `json:"relevance_score"`
	MoreInfoLink   string   `json:"more_info_link"`
}

// Response is the ranked answer to a Request.
type Response struct {
	PainPointSummary   string       `json:"pain_point_summary"`
	SuggestedSolutions []Suggestion `json:"suggested_solutions"`
	NoMatchReason      string       `json:"no_match_reason,omitempty"`
}

// ErrorResult is the payload emitted instead of a Response when the request is unusable.
type ErrorResult struct {
	Error string `json:"error"`
}
