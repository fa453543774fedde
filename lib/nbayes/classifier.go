package nbayes

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// ErrInvalidAlpha is returned by New for negative or non-finite smoothing strength
var ErrInvalidAlpha = errors.New("invalid alpha")

// ErrDegenerate is reported by Ready if predictions would be NaN
var ErrDegenerate = errors.New("degenerate model")

// Message is a labeled training message
type Message struct {
	Text string
	Spam bool
}

// Classifier is a naive bayes spam classifier with additive smoothing.
// It is not thread-safe, see Freeze for the concurrent read-only form.
type Classifier struct {
	alpha        float64
	tokens       map[string]*tokenCounts // vocabulary, each entry has counts for both classes
	spamMessages int
	hamMessages  int
}

// tokenCounts keeps the number of messages of each class containing the token
type tokenCounts struct {
	spam int
	ham  int
}

// New makes an empty classifier with the given smoothing strength.
// Alpha must be finite and non-negative, zero is allowed but see Ready.
func New(alpha float64) (*Classifier, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
		return nil, fmt.Errorf("%w: %v, should be finite and non-negative", ErrInvalidAlpha, alpha)
	}
	return &Classifier{alpha: alpha, tokens: make(map[string]*tokenCounts)}, nil
}

// Train folds messages into the classifier counts. Calls accumulate.
func (c *Classifier) Train(msgs ...Message) {
	for _, msg := range msgs {
		if msg.Spam {
			c.spamMessages++
		} else {
			c.hamMessages++
		}

		for token := range Tokenize(msg.Text) {
			tc, ok := c.tokens[token]
			if !ok {
				tc = &tokenCounts{}
				c.tokens[token] = tc
			}
			if msg.Spam {
				tc.spam++
				continue
			}
			tc.ham++
		}
	}
}

// Predict returns the probability of the text being spam, in [0, 1].
// Untrained classifier returns 0.5, degenerate one (see Ready) returns NaN.
func (c *Classifier) Predict(text string) float64 {
	query := Tokenize(text)
	var logSpam, logHam float64
	for token, tc := range c.tokens {
		pSpam, pHam := c.probability(*tc)
		if query.Has(token) {
			logSpam += math.Log(pSpam)
			logHam += math.Log(pHam)
			continue
		}
		logSpam += math.Log1p(-pSpam)
		logHam += math.Log1p(-pHam)
	}
	return posterior(logSpam, logHam)
}

// TokenProbability returns smoothed probabilities of the token to appear in spam and ham messages.
// ok is false for tokens not in the vocabulary.
func (c *Classifier) TokenProbability(token string) (pSpam, pHam float64, ok bool) {
	tc, ok := c.tokens[token]
	if !ok {
		return 0, 0, false
	}
	pSpam, pHam = c.probability(*tc)
	return pSpam, pHam, true
}

// Counts returns the number of spam and ham training messages containing the token
func (c *Classifier) Counts(token string) (spam, ham int, ok bool) {
	tc, ok := c.tokens[token]
	if !ok {
		return 0, 0, false
	}
	return tc.spam, tc.ham, true
}

// Messages returns the number of spam and ham training messages
func (c *Classifier) Messages() (spam, ham int) { return c.spamMessages, c.hamMessages }

// Alpha returns the smoothing strength
func (c *Classifier) Alpha() float64 { return c.alpha }

// Len returns the vocabulary size
func (c *Classifier) Len() int { return len(c.tokens) }

// Vocabulary returns all known tokens in lexical order
func (c *Classifier) Vocabulary() []string {
	res := lo.Keys(c.tokens)
	sort.Strings(res)
	return res
}

// Ready returns ErrDegenerate if alpha is zero and one of the classes has no training messages.
// Predict of such a classifier divides by zero and returns NaN for any trained vocabulary.
func (c *Classifier) Ready() error {
	return ready(c.alpha, c.spamMessages, c.hamMessages)
}

func (c *Classifier) probability(tc tokenCounts) (pSpam, pHam float64) {
	pSpam = (float64(tc.spam) + c.alpha) / (float64(c.spamMessages) + 2*c.alpha)
	pHam = (float64(tc.ham) + c.alpha) / (float64(c.hamMessages) + 2*c.alpha)
	return pSpam, pHam
}

func ready(alpha float64, spamMessages, hamMessages int) error {
	if alpha > 0 {
		return nil
	}
	if spamMessages == 0 || hamMessages == 0 {
		return fmt.Errorf("%w: zero alpha with %d spam and %d ham messages", ErrDegenerate, spamMessages, hamMessages)
	}
	return nil
}

// posterior returns Ls/(Ls+Lh) for class log-likelihoods. Computed as 1/(1+exp(logHam-logSpam)),
// so large vocabularies with both sums below the float64 exp range don't turn into 0/0.
func posterior(logSpam, logHam float64) float64 {
	return 1 / (1 + math.Exp(logHam-logSpam))
}
