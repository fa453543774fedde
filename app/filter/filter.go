// Package filter serves spam checks with a naive bayes model trained on the stored corpus.
// The live classifier is updated under a lock and published to readers as a frozen model,
// so checks never wait for training.
package filter

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/go-pkgz/fileutils"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/umputun/nbspam/app/storage"
	"github.com/umputun/nbspam/lib/nbayes"
	"github.com/umputun/nbspam/lib/spamcheck"
)

//go:generate moq --out mocks/corpus.go --pkg mocks --with-resets --skip-ensure . Corpus
//go:generate moq --out mocks/spam_logger.go --pkg mocks --with-resets --skip-ensure . SpamLogger

// CheckName is the name of the check reported in responses
const CheckName = "naive-bayes"

// Corpus is a storage of labeled training messages
type Corpus interface {
	Add(ctx context.Context, l storage.Label, s storage.Source, msg string) (prev storage.Label, err error)
	Delete(ctx context.Context, msg string) error
	Read(ctx context.Context, l storage.Label, s storage.Source) ([]string, error)
	Import(ctx context.Context, l storage.Label, s storage.Source, r io.Reader, withCleanup bool) (*storage.CorpusStats, error)
	Training(ctx context.Context) ([]nbayes.Message, error)
	Stats(ctx context.Context) (*storage.CorpusStats, error)
}

// SpamLogger is called for every spam verdict, cached or not
type SpamLogger interface {
	Save(req spamcheck.Request, resp spamcheck.Response)
}

// SpamLoggerFunc is a function adapter for SpamLogger
type SpamLoggerFunc func(req spamcheck.Request, resp spamcheck.Response)

// Save calls f(req, resp)
func (f SpamLoggerFunc) Save(req spamcheck.Request, resp spamcheck.Response) { f(req, resp) }

// Params is a set of filter parameters
type Params struct {
	Alpha     float64 // smoothing strength
	Threshold float64 // probability at or above which a message is spam

	// preset samples, optional. Loaded on Reload and watched for changes.
	SpamSamplesFile string
	HamSamplesFile  string
	WatchDelay      time.Duration

	CacheTTL    time.Duration // ttl of cached check results, 0 disables cache
	CacheSize   int
	HistorySize int

	SpamLogger SpamLogger // optional
}

// Filter checks messages with the current model and keeps it in sync with the corpus
type Filter struct {
	corpus  Corpus
	params  Params
	cache   cache.Cache[string, cachedResponse]
	history *spamcheck.History

	lock       sync.Mutex // guards classifier
	classifier *nbayes.Classifier
	model      atomic.Pointer[nbayes.Model]
}

// cachedResponse is a check result along with the model it was made by
type cachedResponse struct {
	model *nbayes.Model
	resp  spamcheck.Response
}

// Stats is a summary of the current model
type Stats struct {
	Vocabulary   int     `json:"vocabulary"`
	SpamMessages int     `json:"spam_messages"`
	HamMessages  int     `json:"ham_messages"`
	Alpha        float64 `json:"alpha"`
	Threshold    float64 `json:"threshold"`
	Ready        bool    `json:"ready"`
}

// TokenStat is a per-token summary of the classifier
type TokenStat struct {
	Token string  `json:"token"`
	Spam  int     `json:"spam"`   // spam messages containing the token
	Ham   int     `json:"ham"`    // ham messages containing the token
	PSpam float64 `json:"p_spam"` // smoothed probability to appear in spam
	PHam  float64 `json:"p_ham"`  // smoothed probability to appear in ham
}

// New makes a filter with an empty model. Call Reload to train it on the corpus.
func New(corpus Corpus, params Params) (*Filter, error) {
	if corpus == nil {
		return nil, fmt.Errorf("corpus is nil")
	}
	if math.IsNaN(params.Threshold) || params.Threshold < 0 || params.Threshold > 1 {
		return nil, fmt.Errorf("invalid threshold %v, should be in [0, 1]", params.Threshold)
	}
	cls, err := nbayes.New(params.Alpha)
	if err != nil {
		return nil, fmt.Errorf("can't make classifier: %w", err)
	}
	if params.CacheSize <= 0 {
		params.CacheSize = 1000
	}
	if params.HistorySize <= 0 {
		params.HistorySize = 100
	}

	res := &Filter{
		corpus:     corpus,
		params:     params,
		history:    spamcheck.NewHistory(params.HistorySize),
		classifier: cls,
		cache:      cache.NewCache[string, cachedResponse]().WithMaxKeys(params.CacheSize).WithTTL(params.CacheTTL),
	}
	res.publish()
	return res, nil
}

// Check classifies the message with the current model. Degenerate model (see nbayes.ErrDegenerate)
// is never used, the response has Error set and Spam false. The same goes for undefined (NaN)
// probability, possible with zero alpha when no class can produce the message.
func (f *Filter) Check(req spamcheck.Request) spamcheck.Response {
	model := f.model.Load()
	resp, cached := f.check(model, req.Msg)
	if !cached && resp.Error == nil && f.params.CacheTTL > 0 {
		f.cache.Set(req.Msg, cachedResponse{model: model, resp: resp}, f.params.CacheTTL)
	}
	if resp.Spam && f.params.SpamLogger != nil {
		f.params.SpamLogger.Save(req, resp)
	}
	f.history.Push(spamcheck.Check{Request: req, Response: resp, Time: time.Now()})
	log.Printf("[DEBUG] check %s, cached: %v, %s", shorten(req.Msg, 256), cached, resp.String())
	return resp
}

func (f *Filter) check(model *nbayes.Model, msg string) (resp spamcheck.Response, cached bool) {
	if f.params.CacheTTL > 0 {
		if c, ok := f.cache.Get(msg); ok && c.model == model {
			return c.resp, true
		}
	}

	if err := model.Ready(); err != nil {
		return spamcheck.Response{Name: CheckName, Details: "model not ready", Error: err}, false
	}
	prob := model.Predict(msg)
	if math.IsNaN(prob) {
		err := fmt.Errorf("undefined probability: %w", nbayes.ErrDegenerate)
		return spamcheck.Response{Name: CheckName, Details: "model not ready", Error: err}, false
	}
	return spamcheck.Response{
		Name:        CheckName,
		Spam:        prob >= f.params.Threshold,
		Probability: prob,
		Details:     fmt.Sprintf("threshold %.2f%%", f.params.Threshold*100),
	}, false
}

// Reload imports preset sample files to the corpus, replacing previous presets, and retrains
// the classifier from scratch on the whole corpus. Missing sample files are skipped,
// the model is kept as is if any file failed to import.
func (f *Filter) Reload(ctx context.Context) error {
	presets := []struct {
		file  string
		label storage.Label
	}{
		{f.params.SpamSamplesFile, storage.LabelSpam},
		{f.params.HamSamplesFile, storage.LabelHam},
	}
	errs := new(multierror.Error)
	for _, p := range presets {
		if p.file == "" {
			continue
		}
		if !fileutils.IsFile(p.file) {
			log.Printf("[WARN] %s samples file %q not found, skipped", p.label, p.file)
			continue
		}
		if err := f.importFile(ctx, p.file, p.label); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("can't reload samples: %w", err)
	}
	return f.rebuild(ctx)
}

// UpdateSpam adds the message to the corpus as spam and trains the classifier with it
func (f *Filter) UpdateSpam(ctx context.Context, msg string) error {
	return f.update(ctx, msg, storage.LabelSpam)
}

// UpdateHam adds the message to the corpus as ham and trains the classifier with it
func (f *Filter) UpdateHam(ctx context.Context, msg string) error {
	return f.update(ctx, msg, storage.LabelHam)
}

// RemoveSample deletes the message from the corpus and retrains the classifier from scratch
func (f *Filter) RemoveSample(ctx context.Context, msg string) error {
	if err := f.corpus.Delete(ctx, msg); err != nil {
		return fmt.Errorf("can't remove sample: %w", err)
	}
	return f.rebuild(ctx)
}

// Tokens returns sorted tokens of the message, as seen by the classifier
func (f *Filter) Tokens(msg string) []string {
	return nbayes.Tokenize(msg).Sorted()
}

// Stats returns the summary of the current model
func (f *Filter) Stats() Stats {
	m := f.model.Load()
	spam, ham := m.Messages()
	return Stats{
		Vocabulary:   m.Len(),
		SpamMessages: spam,
		HamMessages:  ham,
		Alpha:        m.Alpha(),
		Threshold:    f.params.Threshold,
		Ready:        m.Ready() == nil,
	}
}

// Samples returns stored messages by label and source, oldest first
func (f *Filter) Samples(ctx context.Context, l storage.Label, s storage.Source) ([]string, error) {
	return f.corpus.Read(ctx, l, s)
}

// CorpusStats returns statistics of the stored corpus
func (f *Filter) CorpusStats(ctx context.Context) (*storage.CorpusStats, error) {
	return f.corpus.Stats(ctx)
}

// History returns up to n most recent checks, oldest first
func (f *Filter) History(n int) []spamcheck.Check {
	return f.history.Last(n)
}

// TopTokens returns up to n tokens with the strongest evidence for spam (pSpam/pHam), then by token.
// Non-positive n returns all tokens.
func (f *Filter) TopTokens(n int) []TokenStat {
	f.lock.Lock()
	res := lo.Map(f.classifier.Vocabulary(), func(token string, _ int) TokenStat {
		spam, ham, _ := f.classifier.Counts(token)
		pSpam, pHam, _ := f.classifier.TokenProbability(token)
		return TokenStat{Token: token, Spam: spam, Ham: ham, PSpam: pSpam, PHam: pHam}
	})
	f.lock.Unlock()

	ratio := func(ts TokenStat) float64 {
		if ts.PHam == 0 {
			return math.Inf(1)
		}
		return ts.PSpam / ts.PHam
	}
	sort.SliceStable(res, func(i, j int) bool {
		ri, rj := ratio(res[i]), ratio(res[j])
		if ri != rj {
			return ri > rj
		}
		return res[i].Token < res[j].Token
	})
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// update adds a user sample to the corpus. A new message is trained incrementally,
// a relabeled one requires retraining as counts of the old label can't be removed.
func (f *Filter) update(ctx context.Context, msg string, label storage.Label) error {
	prev, err := f.corpus.Add(ctx, label, storage.SourceUser, msg)
	if err != nil {
		return fmt.Errorf("can't add %s sample: %w", label, err)
	}

	switch prev {
	case "":
		f.lock.Lock()
		defer f.lock.Unlock()
		f.classifier.Train(nbayes.Message{Text: storage.CleanSample(msg), Spam: label == storage.LabelSpam})
		f.publish()
		log.Printf("[INFO] %s sample added, %s", label, shorten(msg, 256))
	case label:
		log.Printf("[INFO] %s sample already known, %s", label, shorten(msg, 256))
	default:
		log.Printf("[INFO] sample relabeled from %s to %s, %s", prev, label, shorten(msg, 256))
		return f.rebuild(ctx)
	}
	return nil
}

// rebuild trains a new classifier on the whole corpus and replaces the current one
func (f *Filter) rebuild(ctx context.Context) error {
	msgs, err := f.corpus.Training(ctx)
	if err != nil {
		return fmt.Errorf("can't read corpus: %w", err)
	}
	cls, err := nbayes.New(f.params.Alpha)
	if err != nil {
		return fmt.Errorf("can't make classifier: %w", err)
	}
	cls.Train(msgs...)

	f.lock.Lock()
	defer f.lock.Unlock()
	f.classifier = cls
	f.publish()
	spam, ham := cls.Messages()
	log.Printf("[INFO] classifier trained, vocabulary: %d, spam: %d, ham: %d", cls.Len(), spam, ham)
	return nil
}

// publish freezes the classifier and makes the model current, must be called under lock
func (f *Filter) publish() {
	m := f.classifier.Freeze()
	f.model.Store(m)
	f.cache.Purge()
	if err := m.Ready(); err != nil {
		log.Printf("[WARN] model is not ready to serve checks: %v", err)
	}
}

func (f *Filter) importFile(ctx context.Context, file string, label storage.Label) error {
	fh, err := os.Open(file) //nolint gosec // file name is set by the app
	if err != nil {
		return fmt.Errorf("failed to open %s samples file %q: %w", label, file, err)
	}
	defer fh.Close()
	stats, err := f.corpus.Import(ctx, label, storage.SourcePreset, fh, true)
	if err != nil {
		return fmt.Errorf("failed to import %s samples from %q: %w", label, file, err)
	}
	log.Printf("[INFO] loaded %s samples from %q, %s", label, file, stats)
	return nil
}

// shorten quotes the string cut to limit runes
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%q...", string([]rune(s)[:limit]))
}
