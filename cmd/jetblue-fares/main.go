package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/jetblue-fares/config"
	"github.com/theoremus-urban-solutions/jetblue-fares/formatter"
	"github.com/theoremus-urban-solutions/jetblue-fares/internal"
	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/normalizer"
	"github.com/theoremus-urban-solutions/jetblue-fares/query"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

// errNoPayload is returned when fares mode has nothing to parse
var errNoPayload = errors.New("no captured payload: pass -outbound and -inbound, or -response")

type options struct {
	mode          string
	configPath    string
	route         string
	origin        string
	destination   string
	depart        string
	ret           string
	passengers    int
	children      int
	outbound      string
	inbound       string
	response      string
	save          bool
	saveDir       string
	format        string
	unknownStatus string
	months        int
	departAfter   int
	departBefore  int
	returnAfter   int
	returnBefore  int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("jetblue-fares", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVar(&o.mode, "mode", "fares", "fares|estimate")
	fs.StringVar(&o.configPath, "config", "", "config file (default config.yml or $"+config.EnvConfigPath+")")
	fs.StringVar(&o.route, "route", "", "route name from config.routes[]")
	fs.StringVar(&o.origin, "origin", "", "origin airport (overrides route)")
	fs.StringVar(&o.destination, "destination", "", "destination airport (overrides route)")
	fs.StringVar(&o.depart, "depart", "", "departure date YYYY-MM-DD (estimate: any day of the month)")
	fs.StringVar(&o.ret, "return", "", "return date YYYY-MM-DD")
	fs.IntVar(&o.passengers, "passengers", 0, "number of adult passengers (overrides config)")
	fs.IntVar(&o.children, "children", -1, "number of child passengers (overrides config)")
	fs.StringVar(&o.outbound, "outbound", "", "captured outboundLFS body: file path or URL")
	fs.StringVar(&o.inbound, "inbound", "", "captured inboundLFS body: file path or URL")
	fs.StringVar(&o.response, "response", "", "combined {\"outbound\",\"inbound\"} document: file path or URL")
	fs.BoolVar(&o.save, "save", false, "save the outbound and inbound json to files")
	fs.StringVar(&o.saveDir, "save-dir", ".", "directory for -save")
	fs.StringVar(&o.format, "format", "", "text|json|dump (overrides config)")
	fs.StringVar(&o.unknownStatus, "unknown-status", "", "strict|degrade (overrides config)")
	fs.IntVar(&o.months, "months", 1, "number of months to estimate")
	fs.IntVar(&o.departAfter, "depart-after", -1, "show flights departing after hour")
	fs.IntVar(&o.departBefore, "depart-before", -1, "show flights departing before hour")
	fs.IntVar(&o.returnAfter, "return-after", -1, "show flights returning after hour")
	fs.IntVar(&o.returnBefore, "return-before", -1, "show flights returning before hour")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// positional form: origin departure_date destination return_date
	if rest := fs.Args(); len(rest) > 0 {
		if len(rest) != 4 {
			return nil, fmt.Errorf("expected 4 positional arguments (origin departure_date destination return_date), got %d", len(rest))
		}
		o.origin, o.depart, o.destination, o.ret = rest[0], rest[1], rest[2], rest[3]
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if err := config.LoadEnv(); err != nil {
		return err
	}
	if err := config.LoadAppConfig(o.configPath); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg := config.Config

	log, err := internal.InitLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	log.SetOutput(stderr)

	switch o.mode {
	case "fares":
		return runFares(ctx, o, cfg, log, stdout)
	case "estimate":
		return runEstimate(ctx, o, cfg, log, stdout)
	default:
		return fmt.Errorf("unknown mode: %q", o.mode)
	}
}

func runFares(ctx context.Context, o *options, cfg config.AppConfig, log *logrus.Logger, stdout io.Writer) error {
	format, err := formatter.ParseFormat(firstNonEmpty(o.format, cfg.Output.Format))
	if err != nil {
		return err
	}
	policy, err := normalizer.ParseStatusPolicy(firstNonEmpty(o.unknownStatus, cfg.Normalizer.UnknownStatus))
	if err != nil {
		return err
	}
	sel := selection(o, cfg)
	if err := sel.Validate(); err != nil {
		return err
	}

	if o.response == "" && (o.outbound == "" || o.inbound == "") {
		if q, err := searchQuery(o, cfg); err == nil {
			log.WithField("url", q.BookingURL()).
				Infof("capture the %s and %s responses from the booking page", jetblue.OutboundResponseMarker, jetblue.InboundResponseMarker)
		}
		return errNoPayload
	}

	f := newFetcher(time.Duration(cfg.Search.TimeoutMS) * time.Millisecond)
	resp, err := loadResponse(ctx, f, o)
	if err != nil {
		return err
	}

	res, err := normalizer.ParseRoundTrip(ctx, resp, normalizer.Options{UnknownStatus: policy})
	if err != nil {
		return err
	}
	res.Outbound.Warnings.LogAll(log, "outbound")
	res.Inbound.Warnings.LogAll(log, "inbound")
	log.WithFields(logrus.Fields{
		"outbound": len(res.Outbound.Itineraries),
		"inbound":  len(res.Inbound.Itineraries),
		"currency": res.Outbound.Currency,
	}).Debug("parsed itineraries")

	return formatter.Write(stdout, format, sel.Apply(res.Itineraries()))
}

func loadResponse(ctx context.Context, f *fetcher, o *options) (*jetblue.PuppetResponse, error) {
	if o.response != "" {
		body, err := f.fetch(ctx, o.response)
		if err != nil {
			return nil, err
		}
		return jetblue.DecodePuppetResponse(body)
	}

	outBody, inBody, err := f.fetchBoth(ctx, o.outbound, o.inbound)
	if err != nil {
		return nil, err
	}
	if o.save {
		if err := saveBodies(o.saveDir, outBody, inBody); err != nil {
			return nil, err
		}
	}
	out, err := jetblue.Decode(outBody)
	if err != nil {
		return nil, fmt.Errorf("outbound: %w", err)
	}
	in, err := jetblue.Decode(inBody)
	if err != nil {
		return nil, fmt.Errorf("inbound: %w", err)
	}
	return &jetblue.PuppetResponse{Outbound: out, Inbound: in}, nil
}

func saveBodies(dir string, outBody, inBody []byte) error {
	for name, body := range map[string][]byte{"outbound.json": outBody, "inbound.json": inBody} {
		pretty, err := jetblue.Pretty(body)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), pretty, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func runEstimate(ctx context.Context, o *options, cfg config.AppConfig, log *logrus.Logger, stdout io.Writer) error {
	q, err := searchQuery(o, cfg)
	if err != nil {
		return err
	}
	if o.months < 1 {
		return fmt.Errorf("months must be at least 1, got %d", o.months)
	}
	client := jetblue.NewEstimateClient(cfg.Estimate.BaseURL, cfg.Estimate.RequestsPerSecond, cfg.Estimate.Burst,
		time.Duration(cfg.Search.TimeoutMS)*time.Millisecond)
	months, err := client.GetMonths(ctx, q.Origin, q.Destination, q.DepartDate, o.months, q.Passengers)
	if err != nil {
		return err
	}
	for _, m := range months {
		log.WithField("currency", m.CurrencyCode).Debug("fetched estimate")
		if err := formatter.WriteEstimate(stdout, m); err != nil {
			return err
		}
	}
	return nil
}

// searchQuery merges flags, the selected route and config defaults.
func searchQuery(o *options, cfg config.AppConfig) (jetblue.SearchQuery, error) {
	q := jetblue.SearchQuery{Passengers: cfg.Search.Passengers}
	if r, ok := cfg.SelectRoute(o.route); ok {
		q.Origin, q.Destination = r.Origin, r.Destination
	}
	if o.origin != "" {
		q.Origin = o.origin
	}
	if o.destination != "" {
		q.Destination = o.destination
	}
	q.Origin, q.Destination = strings.ToUpper(q.Origin), strings.ToUpper(q.Destination)
	if o.passengers > 0 {
		q.Passengers.Adults = o.passengers
	}
	if o.children >= 0 {
		q.Passengers.Children = o.children
	}

	if o.depart == "" {
		return q, errors.New("a departure date is required")
	}
	d, err := time.Parse(utils.DateLayout, o.depart)
	if err != nil {
		return q, fmt.Errorf("invalid departure date %q: want YYYY-MM-DD", o.depart)
	}
	q.DepartDate = d
	q.ReturnDate = d
	if o.ret != "" {
		r, err := time.Parse(utils.DateLayout, o.ret)
		if err != nil {
			return q, fmt.Errorf("invalid return date %q: want YYYY-MM-DD", o.ret)
		}
		q.ReturnDate = r
	}
	if err := q.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

// selection merges hour flags over config filters.
func selection(o *options, cfg config.AppConfig) query.Selection {
	pick := func(flagValue int, fallback *int) *int {
		if flagValue >= 0 {
			return query.Hour(flagValue)
		}
		return fallback
	}
	return query.Selection{
		Depart: query.HourWindow{
			After:  pick(o.departAfter, cfg.Filters.DepartAfter),
			Before: pick(o.departBefore, cfg.Filters.DepartBefore),
		},
		Return: query.HourWindow{
			After:  pick(o.returnAfter, cfg.Filters.ReturnAfter),
			Before: pick(o.returnBefore, cfg.Filters.ReturnBefore),
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
