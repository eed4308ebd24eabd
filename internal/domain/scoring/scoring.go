// Package scoring assigns integer engagement weights to event types.
package scoring

import "github.com/abubakarirfan/huddled-takehome/internal/domain/model"

// Default weight table. Unknown event types score the default weight.
const (
	weightLikeTrack          = 2
	weightAddTrackToPlaylist = 2
	weightPlayTrack          = 1
	weightShareTrack         = 3
	defaultWeight            = 0
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights replaces the weight table. Entries with negative weights are
// dropped; a nil map leaves the defaults in place.
func WithWeights(weights map[string]int64) Option {
	return func(s *Scorer) {
		if weights == nil {
			return
		}
		s.weights = make(map[model.EventType]int64, len(weights))
		for eventType, w := range weights {
			if w >= 0 {
				s.weights[model.EventType(eventType)] = w
			}
		}
	}
}

// WithDefaultWeight sets the weight for event types absent from the table.
func WithDefaultWeight(w int64) Option {
	return func(s *Scorer) {
		if w >= 0 {
			s.defaultWeight = w
		}
	}
}

// Scorer maps event types to integer engagement scores. Score is a pure,
// total function: every input yields a weight, there is no error case.
type Scorer struct {
	weights       map[model.EventType]int64
	defaultWeight int64
}

// New creates a Scorer with the standard weight table, then applies options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights: map[model.EventType]int64{
			model.EventLikeTrack:          weightLikeTrack,
			model.EventAddTrackToPlaylist: weightAddTrackToPlaylist,
			model.EventPlayTrack:          weightPlayTrack,
			model.EventShareTrack:         weightShareTrack,
		},
		defaultWeight: defaultWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the weight for an event type.
func (s *Scorer) Score(t model.EventType) int64 {
	if w, ok := s.weights[t]; ok {
		return w
	}
	return s.defaultWeight
}
