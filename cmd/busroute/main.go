package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/atharv3903/busroute/internal/app"
	"github.com/atharv3903/busroute/internal/config"
	"github.com/atharv3903/busroute/internal/engine"
	"github.com/atharv3903/busroute/internal/model"
)

const usage = `usage: busroute [flags] <command>

commands:
  route <from> <to>          plan a trip between two stop names
  nearest <lat> <lon> [n]    list the n stops closest to a point
  search <text>              list stop names containing text
  stats                      describe the loaded network`

// exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
)

func main() {
	cfg, args, err := config.FromFlags("busroute", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(exitNotFound)
	}

	eng, _, closeFn, err := app.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	code := run(eng, args, os.Stdout, os.Stderr)
	closeFn()
	os.Exit(code)
}

func run(eng *engine.Engine, args []string, stdout, stderr io.Writer) int {
	var out any

	switch {
	case args[0] == "route" && len(args) == 3:
		res, err := eng.FindPath(args[1], args[2])
		if err != nil {
			return reportRouteErr(stderr, err, args[1], args[2])
		}
		out = res

	case args[0] == "nearest" && (len(args) == 3 || len(args) == 4):
		lat, err1 := strconv.ParseFloat(args[1], 64)
		lon, err2 := strconv.ParseFloat(args[2], 64)
		limit := 0
		var err3 error
		if len(args) == 4 {
			limit, err3 = strconv.Atoi(args[3])
		}
		if err := errors.Join(err1, err2, err3); err != nil {
			fmt.Fprintln(stderr, "nearest:", err)
			return exitFailure
		}
		out = eng.NearestStops(lat, lon, limit)

	case args[0] == "search" && len(args) == 2:
		out = eng.SearchStopsByName(args[1])

	case args[0] == "stats" && len(args) == 1:
		if err := eng.Build(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
		out = eng.Stats()

	default:
		fmt.Fprintln(stderr, usage)
		return exitNotFound
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}

func reportRouteErr(w io.Writer, err error, from, to string) int {
	var nm *model.NoMatchError
	switch {
	case errors.As(err, &nm):
		fmt.Fprintf(w, "%s stop not found: %v\n", nm.Role, err)
		return exitNotFound
	case errors.Is(err, model.ErrNoPath):
		fmt.Fprintf(w, "no path from %q to %q: %v\n", from, to, err)
		return exitNotFound
	}
	fmt.Fprintln(w, err)
	return exitFailure
}
