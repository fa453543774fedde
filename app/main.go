package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/nbspam/app/filter"
	"github.com/umputun/nbspam/app/storage"
	"github.com/umputun/nbspam/app/storage/engine"
	"github.com/umputun/nbspam/app/webapi"
	"github.com/umputun/nbspam/lib/spamcheck"
)

type options struct {
	Alpha     float64 `long:"alpha" env:"ALPHA" default:"1" description:"smoothing strength, laplace by default"`
	Threshold float64 `long:"threshold" env:"THRESHOLD" default:"0.5" description:"min spam probability to report spam"`
	DataBase  string  `long:"db" env:"DB" default:"data/nbspam.db" description:"database url, sqlite file or postgres://"`
	GID       string  `long:"gid" env:"GID" default:"" description:"corpus group id, to keep many corpora in one database"`

	Files struct {
		SamplesSpamFile string        `long:"samples-spam" env:"SAMPLES_SPAM" default:"data/spam-samples.txt" description:"spam samples"`
		SamplesHamFile  string        `long:"samples-ham" env:"SAMPLES_HAM" default:"data/ham-samples.txt" description:"ham samples"`
		Watch           bool          `long:"watch" env:"WATCH" description:"watch samples files and reload on change"`
		WatchInterval   time.Duration `long:"watch-interval" env:"WATCH_INTERVAL" default:"5s" description:"watch interval"`
	} `group:"files" namespace:"files" env-namespace:"FILES"`

	Server struct {
		Enabled    bool    `long:"enabled" env:"ENABLED" description:"enable web server"`
		ListenAddr string  `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd string  `long:"auth" env:"AUTH" default:"" description:"basic auth password for user 'nbspam'"`
		Rate       float64 `long:"rate" env:"RATE" default:"50" description:"max requests per second per client"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Cache struct {
		TTL  time.Duration `long:"ttl" env:"TTL" default:"5m" description:"check results cache ttl, 0 to disable"`
		Size int           `long:"size" env:"SIZE" default:"1000" description:"max cached check results"`
	} `group:"cache" namespace:"cache" env-namespace:"CACHE"`

	History struct {
		Size int `long:"size" env:"SIZE" default:"100" description:"number of recent checks to keep"`
	} `group:"history" namespace:"history" env-namespace:"HISTORY"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable spam rotated logs"`
		FileName   string `long:"file" env:"FILE"  default:"nbspam.log" description:"location of spam log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	Check string `long:"check" env:"CHECK" description:"check the message, print the result and exit"`
	Vocab int    `long:"vocab" env:"VOCAB" description:"print N most spammy tokens and exit"`
	Dbg   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("nbspam %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, opts.Server.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options, out io.Writer) error {
	db, err := openDB(ctx, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	corpus, err := storage.NewCorpus(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make corpus storage, %w", err)
	}
	detections, err := storage.NewDetections(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make detections storage, %w", err)
	}

	loggerWr, err := makeSpamLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make spam log writer, %w", err)
	}
	defer loggerWr.Close()

	flt, err := makeFilter(opts, corpus, makeSpamLogger(ctx, loggerWr, detections))
	if err != nil {
		return fmt.Errorf("can't make filter, %w", err)
	}
	if err = flt.Reload(ctx); err != nil {
		return fmt.Errorf("can't load samples, %w", err)
	}

	switch {
	case opts.Check != "":
		return printCheck(out, flt.Check(spamcheck.Request{Msg: opts.Check}))
	case opts.Vocab > 0:
		printVocab(out, flt.TopTokens(opts.Vocab))
		return nil
	}

	if opts.Files.Watch {
		go func() {
			if werr := flt.Watch(ctx); werr != nil {
				log.Printf("[WARN] samples file watcher failed: %v", werr)
			}
		}()
	}

	if !opts.Server.Enabled {
		log.Printf("[WARN] web server disabled, nothing to serve")
		<-ctx.Done()
		return nil
	}

	srv := webapi.NewServer(webapi.Config{
		Version:    revision,
		ListenAddr: opts.Server.ListenAddr,
		Filter:     flt,
		Detections: detections,
		AuthPasswd: opts.Server.AuthPasswd,
		RateLimit:  opts.Server.Rate,
		Dbg:        opts.Dbg,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("web server failed, %w", err)
	}
	return nil
}

// openDB makes the database engine, retries on failure as postgres may be not ready yet
func openDB(ctx context.Context, opts options) (res *engine.SQL, err error) {
	if dir := filepath.Dir(opts.DataBase); !strings.Contains(opts.DataBase, "://") && dir != "." &&
		(strings.HasSuffix(opts.DataBase, ".db") || strings.HasSuffix(opts.DataBase, ".sqlite")) {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("can't make database directory %s, %w", dir, err)
		}
	}

	err = repeater.NewDefault(3, time.Second).Do(ctx, func() error {
		var e error
		res, e = engine.New(ctx, opts.DataBase, opts.GID)
		if e != nil {
			log.Printf("[WARN] can't open database, %v", e)
		}
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("can't open database %s, %w", opts.DataBase, err)
	}
	log.Printf("[DEBUG] database %s opened, type: %s, gid: %q", opts.DataBase, res.Type(), res.GID())
	return res, nil
}

func makeFilter(opts options, corpus filter.Corpus, spamLogger filter.SpamLogger) (*filter.Filter, error) {
	params := filter.Params{
		Alpha:           opts.Alpha,
		Threshold:       opts.Threshold,
		SpamSamplesFile: opts.Files.SamplesSpamFile,
		HamSamplesFile:  opts.Files.SamplesHamFile,
		WatchDelay:      opts.Files.WatchInterval,
		CacheTTL:        opts.Cache.TTL,
		CacheSize:       opts.Cache.Size,
		HistorySize:     opts.History.Size,
		SpamLogger:      spamLogger,
	}
	log.Printf("[DEBUG] filter params: %+v", params)
	return filter.New(corpus, params)
}

// makeSpamLogger creates spam logger to keep reports about spam messages.
// It writes json lines to the provided writer and saves detections to the storage.
func makeSpamLogger(ctx context.Context, wr io.Writer, detections *storage.Detections) filter.SpamLogger {
	return filter.SpamLoggerFunc(func(req spamcheck.Request, resp spamcheck.Response) {
		text := storage.CleanSample(req.Msg)
		log.Printf("[INFO] spam detected, %s", resp.String())
		log.Printf("[DEBUG] spam message: %s", text)
		ts := time.Now()
		m := struct {
			TimeStamp   string  `json:"ts"`
			Text        string  `json:"text"`
			Probability float64 `json:"probability"`
			Details     string  `json:"details"`
		}{
			TimeStamp:   ts.In(time.Local).Format(time.RFC3339),
			Text:        text,
			Probability: resp.Probability,
			Details:     resp.Details,
		}
		line, err := json.Marshal(&m)
		if err != nil {
			log.Printf("[WARN] can't marshal json, %v", err)
			return
		}
		if _, err := wr.Write(append(line, '\n')); err != nil {
			log.Printf("[WARN] can't write to log, %v", err)
		}

		if detections == nil {
			return
		}
		d := storage.Detection{Timestamp: ts, Message: text, Probability: resp.Probability, Details: resp.Details}
		if err := detections.Write(ctx, d); err != nil {
			log.Printf("[WARN] can't save detection, %v", err)
		}
	})
}

// makeSpamLogWriter creates spam log writer to keep reports about spam messages
// it parses options and makes lumberjack logger with rotation
func makeSpamLogWriter(opts options) (accessLog io.WriteCloser, err error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	maxSize, perr := sizeParse(opts.Logger.MaxSize)
	if perr != nil {
		return nil, fmt.Errorf("can't parse logger MaxSize: %w", perr)
	}
	maxSize /= 1048576

	log.Printf("[INFO] logger enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// sizeParse parses size with optional k, m, g or t suffix, case-insensitive
func sizeParse(inp string) (uint64, error) {
	if inp == "" {
		return 0, errors.New("empty value")
	}
	for i, sfx := range []string{"k", "m", "g", "t"} {
		if strings.HasSuffix(strings.ToLower(inp), sfx) {
			val, err := strconv.Atoi(inp[:len(inp)-1])
			if err != nil {
				return 0, fmt.Errorf("can't parse %s: %w", inp, err)
			}
			return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
		}
	}
	return strconv.ParseUint(inp, 10, 64)
}

// printCheck prints the verdict of a single check
func printCheck(w io.Writer, resp spamcheck.Response) error {
	if resp.Error != nil {
		return fmt.Errorf("can't check message, %s: %w", resp.Details, resp.Error)
	}
	verdict := color.New(color.FgGreen).Sprint("ham")
	if resp.Spam {
		verdict = color.New(color.FgHiRed).Sprint("spam")
	}
	_, err := fmt.Fprintf(w, "%s, probability %.2f%%, %s\n", verdict, resp.Probability*100, resp.Details)
	return err
}

// printVocab prints token stats as a table
func printVocab(w io.Writer, tokens []filter.TokenStat) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Token", "Spam", "Ham", "P(spam)", "P(ham)"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, ts := range tokens {
		table.Append([]string{ts.Token, strconv.Itoa(ts.Spam), strconv.Itoa(ts.Ham),
			strconv.FormatFloat(ts.PSpam, 'f', 4, 64), strconv.FormatFloat(ts.PHam, 'f', 4, 64)})
	}
	table.Render()
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets = lo.Filter(secrets, func(s string, _ int) bool { return s != "" })
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
