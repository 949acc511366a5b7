package trinuc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Outcome is the result for one mutation token. Exactly one of Context
// (when Err is nil) or Err describes it.
type Outcome struct {
	Token   string
	Context Context
	Err     *MutationError
}

// OK returns true if the token was parsed and validated.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// CountTable maps every canonical context to the number of mutations
// observed in it.
type CountTable map[string]int

// NewCountTable returns a table holding all 192 contexts at zero.
func NewCountTable() CountTable {
	t := make(CountTable, CatalogSize)
	for _, c := range catalog {
		t[c] = 0
	}
	return t
}

// Total returns the sum of all counts.
func (t CountTable) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Result is everything derived from one (sequence, mutations) input pair.
type Result struct {
	Sequence string
	Outcomes []Outcome
	Counts   CountTable
}

// Succeeded returns the number of outcomes with a derived context.
func (r *Result) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of outcomes carrying an error.
func (r *Result) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Counted returns the number of mutations tallied in the count table.
func (r *Result) Counted() int {
	return r.Counts.Total()
}

func (r *Result) clone() *Result {
	out := &Result{
		Sequence: r.Sequence,
		Outcomes: make([]Outcome, len(r.Outcomes)),
		Counts:   make(CountTable, len(r.Counts)),
	}
	for i, o := range r.Outcomes {
		if o.Err != nil {
			err := *o.Err
			o.Err = &err
		}
		out.Outcomes[i] = o
	}
	for k, v := range r.Counts {
		out.Counts[k] = v
	}
	return out
}

// Aggregate runs the full pipeline over reference text and comma-separated
// mutation text. Outcomes keep input order. An empty reference yields no
// outcomes and an all-zero count table.
func Aggregate(sequenceText, mutationsText string) *Result {
	res := &Result{
		Sequence: ParseFASTA(sequenceText),
		Outcomes: []Outcome{},
		Counts:   NewCountTable(),
	}
	if res.Sequence == "" {
		return res
	}

	for _, token := range SplitTokens(mutationsText) {
		res.Outcomes = append(res.Outcomes, evaluate(res.Sequence, token, res.Counts))
	}

	return res
}

func evaluate(seq, token string, counts CountTable) Outcome {
	m, ok := ParseMutation(token)
	if !ok {
		return Outcome{Token: token, Err: errMalformed()}
	}

	ctx, merr := Contextualise(seq, m)
	if merr != nil {
		return Outcome{Token: token, Err: merr}
	}

	if _, ok := counts[ctx.Notation]; ok {
		counts[ctx.Notation]++
	}
	return Outcome{Token: token, Context: ctx}
}

// ResultCache stores results keyed by an input fingerprint.
type ResultCache interface {
	Lookup(key string) (*Result, bool, error)
	Store(key string, r *Result) error
}

// Fingerprint returns a stable key for an input pair.
func Fingerprint(sequenceText, mutationsText string) string {
	h := sha256.New()
	h.Write([]byte(sequenceText))
	h.Write([]byte{0})
	h.Write([]byte(mutationsText))
	return hex.EncodeToString(h.Sum(nil))
}

// Aggregator wraps Aggregate with memoisation on exact input equality and
// an optional persistent ResultCache.
type Aggregator struct {
	cache  ResultCache
	logger *zap.Logger

	mu      sync.Mutex
	lastKey string
	last    *Result
}

// NewAggregator creates an aggregator. cache may be nil.
func NewAggregator(cache ResultCache) *Aggregator {
	return &Aggregator{
		cache:  cache,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for debug and warning messages.
func (a *Aggregator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Run returns the result for the given inputs, reusing the previous result
// or a cached one when the inputs are identical. Each call returns its own
// copy, so callers may modify it. Errors come only from the cache;
// per-mutation failures are reported in the result's outcomes.
func (a *Aggregator) Run(sequenceText, mutationsText string) (*Result, error) {
	key := Fingerprint(sequenceText, mutationsText)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last != nil && a.lastKey == key {
		a.logger.Debug("reusing previous result", zap.String("key", key))
		return a.last.clone(), nil
	}

	if a.cache != nil {
		res, found, err := a.cache.Lookup(key)
		if err != nil {
			return nil, fmt.Errorf("lookup cached result: %w", err)
		}
		if found {
			a.logger.Debug("cache hit", zap.String("key", key))
			a.remember(key, res)
			return res.clone(), nil
		}
	}

	res := Aggregate(sequenceText, mutationsText)
	a.logResult(res)

	if a.cache != nil {
		if err := a.cache.Store(key, res); err != nil {
			return nil, fmt.Errorf("store result: %w", err)
		}
	}

	a.remember(key, res)
	return res.clone(), nil
}

func (a *Aggregator) remember(key string, res *Result) {
	a.lastKey = key
	a.last = res
}

func (a *Aggregator) logResult(res *Result) {
	if res.Sequence == "" {
		a.logger.Info("empty reference sequence, no mutations evaluated")
		return
	}
	for _, o := range res.Outcomes {
		switch {
		case o.Err != nil:
			a.logger.Debug("mutation rejected",
				zap.String("token", o.Token),
				zap.Stringer("kind", o.Err.Kind),
				zap.String("reason", o.Err.Message))
		case !o.Context.IsCanonical():
			a.logger.Debug("context not counted",
				zap.String("token", o.Token),
				zap.String("context", o.Context.Notation))
		}
	}
	a.logger.Info("mutations contextualised",
		zap.Int("sequence_length", len(res.Sequence)),
		zap.Int("mutations", len(res.Outcomes)),
		zap.Int("succeeded", res.Succeeded()),
		zap.Int("counted", res.Counted()))
}
