// Package match scores free-text pain points against catalog features and ranks the
// features worth suggesting.
package match

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/kamusis/painmatch/internal/catalog"
	"github.com/rs/zerolog"
)

const (
	// DefaultThreshold is the minimum post-boost score a feature needs to be suggested.
	// It is kept low to favour recall.
	DefaultThreshold = 0.1
	// DefaultContextBoost is added when the request industry matches a feature category.
	DefaultContextBoost = 0.15
	// DefaultNoMatchReason is reported when no feature reaches the threshold.
	DefaultNoMatchReason = "No matching Filum.ai features were found for this specific pain point."
)

// Options configures a Scorer.
type Options struct {
	Threshold     float64
	ContextBoost  float64
	NoMatchReason string
	// Logger receives a debug line per scored feature. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		ContextBoost:  DefaultContextBoost,
		NoMatchReason: DefaultNoMatchReason,
	}
}

// Scorer ranks catalog features for a request. It holds no mutable state and can be
// shared between goroutines.
type Scorer struct {
	opts Options
	log  zerolog.Logger
}

// NewScorer returns a Scorer using opts as given.
func NewScorer(opts Options) *Scorer {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Scorer{opts: opts, log: log}
}

// Suggest scores every feature against req and returns the ones at or above the
// threshold, best first. Features with equal scores keep catalog order.
//
// ErrMissingPainPoint is returned when req has no pain point.
func (s *Scorer) Suggest(req Request, features []catalog.Feature) (*Response, error) {
	if req.PainPoint == "" {
		return nil, ErrMissingPainPoint
	}

	query := Tokenize(req.PainPoint)
	industry, hasIndustry := req.Industry()
	industry = lower(industry)

	suggestions := []Suggestion{}
	for _, f := range features {
		base := Jaccard(query, Tokenize(FeatureText(f)))
		score := base
		boosted := hasIndustry && strings.Contains(lower(strings.Join(f.Categories, " ")), industry)
		if boosted {
			score += s.opts.ContextBoost
		}
		score = math.Max(0, math.Min(score, 1.0))
		kept := score >= s.opts.Threshold

		s.log.Debug().
			Str("feature", f.Name).
			Float64("jaccard", base).
			Bool("boosted", boosted).
			Float64("score", score).
			Bool("kept", kept).
			Msg("scored feature")

		if !kept {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Name:           f.Name,
			Categories:     slices.Clone(f.Categories),
			Description:    f.Description,
			HowItHelps:     Explain(req.PainPoint, f.Description),
			RelevanceScore: RoundScore(score),
			MoreInfoLink:   f.MoreInfoLink,
		})
	}

	SortSuggestions(suggestions)

	resp := &Response{
		PainPointSummary:   req.PainPoint,
		SuggestedSolutions: suggestions,
	}
	if len(suggestions) == 0 {
		resp.NoMatchReason = s.opts.NoMatchReason
	}
	return resp, nil
}

// FeatureText joins keywords, pain points, name and description, in that order, into
// the text a feature is matched on.
func FeatureText(f catalog.Feature) string {
	parts := make([]string, 0, len(f.Keywords)+len(f.PainPointsAddressed)+2)
	parts = append(parts, f.Keywords...)
	parts = append(parts, f.PainPointsAddressed...)
	parts = append(parts, f.Name, f.Description)
	return strings.Join(parts, " ")
}

// RoundScore rounds v to two decimals. Exact binary halfway values round to even,
// so 0.125 becomes 0.12 and 0.375 becomes 0.38.
func RoundScore(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
