package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/jengzang/vacances-backend-go/internal/config"
	"github.com/jengzang/vacances-backend-go/internal/database"
	"github.com/jengzang/vacances-backend-go/internal/gateway"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/repository"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/ticker"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

func main() {
	academyID := flag.String("academy", "", "Academy id (see /api/v1/academies)")
	lat := flag.Float64("lat", 0, "Latitude, used with -lng to find the nearest academy")
	lng := flag.Float64("lng", 0, "Longitude, used with -lat")
	zone := flag.String("zone", "", "Fallback zone (A, B or C) when no academy is known")
	remember := flag.Bool("remember", false, "Store the academy found from -lat/-lng as the selection")
	once := flag.Bool("once", false, "Print the countdown once and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: countdown [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Shows the time left until the next school vacation transition.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Load()
	if *zone != "" {
		cfg.DefaultZone = *zone
	}

	var q models.StatusQuery
	q.Academy = *academyID
	q.Remember = *remember
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			q.Latitude = lat
		case "lng":
			q.Longitude = lng
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	live := !*once && term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(ctx, cfg, q, live, os.Stdout); err != nil && ctx.Err() == nil {
		log.Fatalf("countdown: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, q models.StatusQuery, live bool, out io.Writer) error {
	loc := cfg.Location()
	policy, err := vacation.ParseMalformedPolicy(cfg.MalformedPolicy)
	if err != nil {
		return err
	}
	defaultZone, ok := models.ParseZone(cfg.DefaultZone)
	if !ok {
		return fmt.Errorf("%w: %q", service.ErrInvalidZone, cfg.DefaultZone)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return err
	}
	defer db.Close()

	client := gateway.NewClient(cfg.APIBaseURL, cfg.FetchTimeout, gateway.WithLocation(loc))
	vacations := service.NewVacationService(client, repository.NewVacationCacheRepository(db), cfg.CacheTTL, loc, nil)
	resolver := vacation.NewResolver(vacation.WithLocation(loc), vacation.WithMalformedPolicy(policy))
	status := service.NewStatusService(vacations, repository.NewSelectionRepository(db), resolver, defaultZone, nil)

	if !live {
		snap, err := status.Status(ctx, q)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, headline(snap, loc))
		fmt.Fprintln(out, formatRemaining(snap.Remaining))
		return nil
	}

	resolve := func(ctx context.Context) (time.Time, error) {
		snap, err := status.Status(ctx, q)
		if err != nil {
			return time.Time{}, err
		}
		q.Remember = false
		fmt.Fprintf(out, "\n%s\n", headline(snap, loc))
		return snap.Status.NextEvent, nil
	}
	err = ticker.Watch(ctx, resolve, func(r models.TimeRemaining) {
		fmt.Fprintf(out, "\r\033[K%s", formatRemaining(r))
	}, ticker.Options{})
	fmt.Fprintln(out)
	return err
}

// headline describes where the snapshot comes from and what comes next
func headline(snap *models.StatusSnapshot, loc *time.Location) string {
	where := "Zone " + string(snap.Zone)
	if snap.Academy != nil {
		where = fmt.Sprintf("Académie de %s (zone %s)", snap.Academy.Name, snap.Zone)
	}

	st := snap.Status
	when := st.NextEvent.In(loc).Format("02/01/2006")
	if st.Status == models.StatusInVacation {
		return fmt.Sprintf("%s: %s en cours, rentrée le %s", where, snap.Name, when)
	}
	return fmt.Sprintf("%s: %s le %s", where, snap.Name, when)
}

func formatRemaining(r models.TimeRemaining) string {
	if r.IsExpired {
		return "C'est maintenant !"
	}
	return fmt.Sprintf("%dj %02dh %02dm %02ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}
