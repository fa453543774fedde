package nbayes

import "math"

// Model is a frozen snapshot of a Classifier with per-token log probabilities computed once.
// Model is immutable and safe for concurrent use.
type Model struct {
	alpha        float64
	spamMessages int
	hamMessages  int
	index        map[string]int // token to position in vocab and logs
	vocab        []string
	logs         []tokenLogs
}

// tokenLogs keeps log probabilities of the token present and absent, for both classes
type tokenLogs struct {
	spamPresent, spamAbsent float64
	hamPresent, hamAbsent   float64
}

// Freeze makes an immutable Model from the current state of the classifier.
// Following Train calls don't change the returned Model.
func (c *Classifier) Freeze() *Model {
	vocab := c.Vocabulary()
	res := &Model{
		alpha:        c.alpha,
		spamMessages: c.spamMessages,
		hamMessages:  c.hamMessages,
		index:        make(map[string]int, len(vocab)),
		vocab:        vocab,
		logs:         make([]tokenLogs, len(vocab)),
	}
	for i, token := range vocab {
		pSpam, pHam := c.probability(*c.tokens[token])
		res.index[token] = i
		res.logs[i] = tokenLogs{
			spamPresent: math.Log(pSpam), spamAbsent: math.Log1p(-pSpam),
			hamPresent: math.Log(pHam), hamAbsent: math.Log1p(-pHam),
		}
	}
	return res
}

// Predict returns the probability of the text being spam, same as Classifier.Predict
// for the state the model was frozen at.
func (m *Model) Predict(text string) float64 {
	present := make([]bool, len(m.logs))
	for token := range Tokenize(text) {
		if i, ok := m.index[token]; ok {
			present[i] = true
		}
	}

	var logSpam, logHam float64
	for i, tl := range m.logs {
		if present[i] {
			logSpam += tl.spamPresent
			logHam += tl.hamPresent
			continue
		}
		logSpam += tl.spamAbsent
		logHam += tl.hamAbsent
	}
	return posterior(logSpam, logHam)
}

// Messages returns the number of spam and ham messages the model was trained on
func (m *Model) Messages() (spam, ham int) { return m.spamMessages, m.hamMessages }

// Alpha returns the smoothing strength
func (m *Model) Alpha() float64 { return m.alpha }

// Len returns the vocabulary size
func (m *Model) Len() int { return len(m.vocab) }

// Vocabulary returns all known tokens in lexical order
func (m *Model) Vocabulary() []string { return append([]string(nil), m.vocab...) }

// Ready returns ErrDegenerate if predictions of the model are NaN, see Classifier.Ready
func (m *Model) Ready() error {
	return ready(m.alpha, m.spamMessages, m.hamMessages)
}
