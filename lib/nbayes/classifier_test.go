package nbayes

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trainMessages = []Message{
	{Text: "Free Bitcoin viagra XXX christmas deals 😻😻😻", Spam: true},
	{Text: "My dear Granddaughter, please explain Bitcoin over Christmas dinner"},
	{Text: "Here in my garage...", Spam: true},
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantErr bool
	}{
		{name: "one", alpha: 1},
		{name: "fraction", alpha: 0.5},
		{name: "zero", alpha: 0},
		{name: "negative", alpha: -1, wantErr: true},
		{name: "nan", alpha: math.NaN(), wantErr: true},
		{name: "positive inf", alpha: math.Inf(1), wantErr: true},
		{name: "negative inf", alpha: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.alpha)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAlpha)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.alpha, c.Alpha())
			assert.Equal(t, 0, c.Len())
			spam, ham := c.Messages()
			assert.Zero(t, spam)
			assert.Zero(t, ham)
		})
	}
}

func TestClassifier_Train(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	c.Train(trainMessages...)

	spam, ham := c.Messages()
	assert.Equal(t, 2, spam)
	assert.Equal(t, 1, ham)
	assert.Equal(t, 16, c.Len())
	assert.Equal(t, []string{"bitcoin", "christmas", "deals", "dear", "dinner", "explain", "free", "garage",
		"granddaughter", "here", "in", "my", "over", "please", "viagra", "xxx"}, c.Vocabulary())

	tests := []struct {
		token     string
		spam, ham int
	}{
		{"free", 1, 0}, {"bitcoin", 1, 1}, {"christmas", 1, 1}, {"my", 1, 1},
		{"dear", 0, 1}, {"garage", 1, 0}, {"deals", 1, 0}, {"dinner", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, h, ok := c.Counts(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.spam, s, "spam count")
			assert.Equal(t, tt.ham, h, "ham count")
		})
	}

	_, _, ok := c.Counts("crypto")
	assert.False(t, ok, "unknown token")
}

func TestClassifier_TrainCountInvariants(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	c.Train(trainMessages...)
	c.Train(Message{Text: "free free FREE money", Spam: true}, Message{Text: "", Spam: false})

	spam, ham := c.Messages()
	assert.Equal(t, 3, spam)
	assert.Equal(t, 2, ham, "empty message still counted")
	for _, token := range c.Vocabulary() {
		s, h, ok := c.Counts(token)
		require.True(t, ok)
		assert.LessOrEqual(t, s, spam, token)
		assert.LessOrEqual(t, h, ham, token)
		assert.Positive(t, s+h, token)
	}
	s, _, _ := c.Counts("free")
	assert.Equal(t, 2, s, "presence counted once per message")
}

func TestClassifier_TrainAdditive(t *testing.T) {
	extra := []Message{
		{Text: "cheap pills online", Spam: true},
		{Text: "lunch at noon tomorrow?"},
		{Text: "bitcoin doubler, send now", Spam: true},
	}

	split, err := New(1)
	require.NoError(t, err)
	split.Train(trainMessages...)
	split.Train(extra...)

	joined, err := New(1)
	require.NoError(t, err)
	joined.Train(append(append([]Message{}, trainMessages...), extra...)...)

	reversed, err := New(1)
	require.NoError(t, err)
	all := append(append([]Message{}, extra...), trainMessages...)
	for i := len(all) - 1; i >= 0; i-- {
		reversed.Train(all[i])
	}

	for _, other := range []*Classifier{joined, reversed} {
		assert.Equal(t, split.Vocabulary(), other.Vocabulary())
		s1, h1 := split.Messages()
		s2, h2 := other.Messages()
		assert.Equal(t, s1, s2)
		assert.Equal(t, h1, h2)
		for _, token := range split.Vocabulary() {
			s1, h1, _ := split.Counts(token)
			s2, h2, _ := other.Counts(token)
			assert.Equal(t, s1, s2, token)
			assert.Equal(t, h1, h2, token)
		}
		assert.InDelta(t, split.Predict("bitcoin deals"), other.Predict("bitcoin deals"), 1e-12)
	}
}

func TestClassifier_TrainNotIdempotent(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	c.Train(trainMessages...)
	c.Train(trainMessages...)

	spam, ham := c.Messages()
	assert.Equal(t, 4, spam)
	assert.Equal(t, 2, ham)
	s, h, _ := c.Counts("bitcoin")
	assert.Equal(t, 2, s)
	assert.Equal(t, 2, h)
	assert.Equal(t, 16, c.Len(), "vocabulary doesn't grow on the same corpus")
}

func TestClassifier_Predict(t *testing.T) {
	const alpha, numSpam, numHam = 1., 2., 1.
	c, err := New(alpha)
	require.NoError(t, err)
	c.Train(trainMessages...)

	// token counts in spam and ham messages, and presence in "Bitcoin crypto academy Christmas deals"
	vocab := []struct {
		token     string
		spam, ham float64
		present   bool
	}{
		{"free", 1, 0, false},
		{"bitcoin", 1, 1, true},
		{"viagra", 1, 0, false},
		{"xxx", 1, 0, false},
		{"christmas", 1, 1, true},
		{"deals", 1, 0, true},
		{"my", 1, 1, false},
		{"dear", 0, 1, false},
		{"granddaughter", 0, 1, false},
		{"please", 0, 1, false},
		{"explain", 0, 1, false},
		{"over", 0, 1, false},
		{"dinner", 0, 1, false},
		{"here", 1, 0, false},
		{"in", 1, 0, false},
		{"garage", 1, 0, false},
	}
	require.Len(t, vocab, c.Len())

	var logSpam, logHam float64
	for _, v := range vocab {
		pSpam := (v.spam + alpha) / (numSpam + 2*alpha)
		pHam := (v.ham + alpha) / (numHam + 2*alpha)
		if !v.present {
			pSpam, pHam = 1-pSpam, 1-pHam
		}
		logSpam += math.Log(pSpam)
		logHam += math.Log(pHam)
	}
	expected := math.Exp(logSpam) / (math.Exp(logSpam) + math.Exp(logHam))

	res := c.Predict("Bitcoin crypto academy Christmas deals")
	t.Logf("probability: %v", res)
	assert.InDelta(t, expected, res, 1e-6)
	assert.InDelta(t, 0.97, res, 0.01)

	// unknown tokens are ignored
	assert.InDelta(t, res, c.Predict("bitcoin christmas deals"), 1e-12)
	assert.InDelta(t, res, c.Predict("DEALS!!! christmas, bitcoin; unknown-token"), 1e-12)
}

func TestClassifier_PredictRange(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	c.Train(trainMessages...)
	c.Train(Message{Text: "see you at dinner, dear"}, Message{Text: "xxx deals, free viagra", Spam: true})

	texts := []string{"", "free viagra", "dear granddaughter", "christmas", "totally unknown words",
		strings.Repeat("garage ", 100), "my dear christmas deals over here"}
	for _, text := range texts {
		p := c.Predict(text)
		assert.False(t, math.IsNaN(p), text)
		assert.GreaterOrEqual(t, p, 0.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
	assert.Greater(t, c.Predict("free viagra xxx"), 0.5)
	assert.Less(t, c.Predict("dear granddaughter dinner"), 0.5)
}

func TestClassifier_PredictUntrained(t *testing.T) {
	for _, alpha := range []float64{0, 0.5, 1, 10} {
		c, err := New(alpha)
		require.NoError(t, err)
		for _, text := range []string{"", "anything", "Free Bitcoin"} {
			assert.Equal(t, 0.5, c.Predict(text), "alpha %v, text %q", alpha, text)
		}
	}
}

func TestClassifier_PredictLargeVocabulary(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)

	// every message contains the same 1000 tokens, so each absent token adds log(1/12) to both classes
	// and the log-likelihood sums go far below the smallest exponent representable by float64
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	text := strings.Join(words, " ")
	for i := 0; i < 10; i++ {
		c.Train(Message{Text: text, Spam: true}, Message{Text: text})
	}

	p := c.Predict("nothing known here")
	assert.False(t, math.IsNaN(p))
	assert.InDelta(t, 0.5, p, 1e-9)

	c.Train(Message{Text: "w1 special offer", Spam: true})
	p = c.Predict("special offer")
	assert.False(t, math.IsNaN(p))
	assert.Greater(t, p, 0.5)
	assert.LessOrEqual(t, p, 1.0)
}

func TestClassifier_TokenProbability(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	c.Train(trainMessages...)

	for _, token := range c.Vocabulary() {
		pSpam, pHam, ok := c.TokenProbability(token)
		require.True(t, ok)
		assert.True(t, pSpam > 0 && pSpam < 1, "%s spam %v", token, pSpam)
		assert.True(t, pHam > 0 && pHam < 1, "%s ham %v", token, pHam)
	}

	// token never seen in a class gets 1/(count+2) with alpha 1
	pSpam, _, ok := c.TokenProbability("dear")
	require.True(t, ok)
	assert.Equal(t, 1.0/4, pSpam)
	_, pHam, ok := c.TokenProbability("free")
	require.True(t, ok)
	assert.Equal(t, 1.0/3, pHam)

	pSpam, pHam, ok = c.TokenProbability("bitcoin")
	require.True(t, ok)
	assert.Equal(t, 2.0/4, pSpam)
	assert.Equal(t, 2.0/3, pHam)

	_, _, ok = c.TokenProbability("crypto")
	assert.False(t, ok)
}

func TestClassifier_Ready(t *testing.T) {
	t.Run("positive alpha always ready", func(t *testing.T) {
		c, err := New(0.1)
		require.NoError(t, err)
		assert.NoError(t, c.Ready())
		c.Train(Message{Text: "spam only", Spam: true})
		assert.NoError(t, c.Ready())
	})

	t.Run("zero alpha with one class is degenerate", func(t *testing.T) {
		c, err := New(0)
		require.NoError(t, err)
		assert.ErrorIs(t, c.Ready(), ErrDegenerate)
		assert.Equal(t, 0.5, c.Predict("anything"), "empty vocabulary is still defined")

		c.Train(Message{Text: "spam only", Spam: true})
		assert.ErrorIs(t, c.Ready(), ErrDegenerate)
		assert.True(t, math.IsNaN(c.Predict("spam")), "NaN propagates")
	})

	t.Run("zero alpha with both classes", func(t *testing.T) {
		c, err := New(0)
		require.NoError(t, err)
		c.Train(Message{Text: "aaa", Spam: true}, Message{Text: "bbb"})
		assert.NoError(t, c.Ready())
		assert.Equal(t, 1.0, c.Predict("aaa"))
		assert.Equal(t, 0.0, c.Predict("bbb"))
	})
}

func TestPosterior(t *testing.T) {
	tests := []struct {
		name            string
		logSpam, logHam float64
		expected        float64
	}{
		{name: "equal", logSpam: -3, logHam: -3, expected: 0.5},
		{name: "zero sums", logSpam: 0, logHam: 0, expected: 0.5},
		{name: "spam likelier", logSpam: math.Log(0.3), logHam: math.Log(0.1), expected: 0.75},
		{name: "below exp range", logSpam: -2000, logHam: -2000 + math.Log(3), expected: 0.25},
		{name: "spam impossible", logSpam: math.Inf(-1), logHam: -5, expected: 0},
		{name: "ham impossible", logSpam: -5, logHam: math.Inf(-1), expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, posterior(tt.logSpam, tt.logHam), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(posterior(math.Inf(-1), math.Inf(-1))))
	assert.True(t, math.IsNaN(posterior(math.NaN(), -1)))
}
