// Command estimate prints a triathlon finish-time estimate and training plan
// for one set of paces.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/internal/domain/model"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/pkg/logger"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errMixedShapes = errors.New("--swim and --run must both be M:SS or both be decimal minutes")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("estimate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		category = fs.StringP("category", "c", "olympic", "Race category: sprint, olympic, half-iron or iron")
		swim     = fs.StringP("swim", "s", "2:00", "Swim pace per 100m, M:SS or decimal minutes")
		bike     = fs.Float64P("bike", "b", 30, "Bike speed in km/h")
		runPace  = fs.StringP("run", "r", "5:00", "Run pace per km, M:SS or decimal minutes")
		asJSON   = fs.BoolP("json", "j", false, "Print the full result as JSON")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	req, err := buildRequest(*category, *swim, *bike, *runPace)
	if err != nil {
		fmt.Fprintln(stderr, "estimate:", err)
		return exitUsage
	}

	// Calculator warnings would duplicate the field list printed below.
	if err := logger.Init(logger.WithLevel("error"), logger.WithOutput(stderr)); err != nil {
		fmt.Fprintln(stderr, "estimate:", err)
		return exitUsage
	}

	res, err := service.New().Calculate(context.Background(), req)
	if err != nil {
		var verrs pace.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(stderr, "invalid input:")
			for _, v := range verrs {
				fmt.Fprintf(stderr, "  %s: %s\n", v.Field, v.Reason)
			}
		} else {
			fmt.Fprintln(stderr, "estimate:", err)
		}
		return exitInvalid
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintln(stderr, "estimate:", err)
			return exitInvalid
		}
		return exitOK
	}
	printReport(stdout, res)
	return exitOK
}

// buildRequest picks the split shape when the paces are written as M:SS and
// the decimal shape otherwise.
func buildRequest(category, swim string, bike float64, runPace string) (service.Request, error) {
	req := service.Request{Category: category}
	swimClock := strings.Contains(swim, ":")
	runClock := strings.Contains(runPace, ":")

	switch {
	case swimClock && runClock:
		swimMin, swimSec, err := parseClock("swim", swim)
		if err != nil {
			return req, err
		}
		runMin, runSec, err := parseClock("run", runPace)
		if err != nil {
			return req, err
		}
		req.Split = &pace.SplitInput{
			SwimMinutes: swimMin,
			SwimSeconds: swimSec,
			BikeKmh:     bike,
			RunMinutes:  runMin,
			RunSeconds:  runSec,
		}
	case !swimClock && !runClock:
		s, err := parseNumber("swim", swim)
		if err != nil {
			return req, err
		}
		r, err := parseNumber("run", runPace)
		if err != nil {
			return req, err
		}
		req.Decimal = &pace.DecimalInput{SwimPace: s, BikeKmh: bike, RunPace: r}
	default:
		return req, errMixedShapes
	}
	return req, nil
}

func parseClock(name, s string) (float64, float64, error) {
	minutes, seconds, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(seconds, ":") {
		return 0, 0, fmt.Errorf("--%s %q: want M:SS", name, s)
	}
	m, err := parseNumber(name, minutes)
	if err != nil {
		return 0, 0, err
	}
	sec, err := parseNumber(name, seconds)
	if err != nil {
		return 0, 0, err
	}
	return m, sec, nil
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("--%s %q: not a number", name, s)
	}
	return v, nil
}

func printReport(w io.Writer, res *service.Result) {
	fmt.Fprintf(w, "%s triathlon (%g km swim, %g km bike, %g km run)\n",
		res.Name, res.Distances.SwimKm, res.Distances.BikeKm, res.Distances.RunKm)
	fmt.Fprintf(w, "Estimated finish: %s\n\n", res.Formatted.Total)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEG\tPACE\tTIME\tTIER")
	legTimes := map[model.Discipline]string{
		model.Swim: res.Formatted.Swim,
		model.Bike: res.Formatted.Bike,
		model.Run:  res.Formatted.Run,
	}
	for _, e := range res.Evaluations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Discipline.Label(), res.PaceDisplay[e.Discipline], legTimes[e.Discipline], e.Tier.Label())
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nFocus: %s (weakest), then %s; %s is strongest.\n",
		res.Ranking.Weakest.Discipline.Label(),
		res.Ranking.SecondWeakest.Discipline.Label(),
		res.Ranking.Strongest.Discipline.Label())

	fmt.Fprintln(w, "\nTraining split:")
	for _, e := range res.Plan.Entries() {
		fmt.Fprintf(w, "  %3d%%  %s\n", e.Allocation, e.Discipline.Label())
		recs := e.Recommendations
		if e.Discipline != res.Plan.Weakest.Discipline {
			if e.Discipline == res.Plan.SecondWeakest.Discipline && !res.Plan.ShowSecondary {
				continue
			}
			recs = e.Highlights
		}
		for _, r := range recs {
			fmt.Fprintf(w, "        - %s\n", r)
		}
	}

	fmt.Fprintln(w, "\nWeek:")
	for _, d := range res.Plan.Week {
		marker := " "
		if d.Focus {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %-9s %s\n", marker, d.Weekday, d.Activity)
	}
}
