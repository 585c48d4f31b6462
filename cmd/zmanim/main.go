package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/config"
	"github.com/subtlepseudonym/zmanim/rata"
	"github.com/subtlepseudonym/zmanim/solar"

	"github.com/robfig/cron/v3"
)

const (
	configFile = "secrets/zmanim.cfg"

	listenAddr = ":9000"
	dateFormat = "2006-01-02"
)

// Announcement logs a configured message when its zman arrives.
//
// This implements robfig/cron.Job
type Announcement struct {
	Zman    zmanim.Zman
	Message string
}

func (a Announcement) Run() {
	if a.Message != "" {
		log.Printf("%s: %s", a.Zman, a.Message)
		return
	}
	log.Printf("%s", a.Zman)
}

func main() {
	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("ERR: load tz location: %s", err)
		}
		time.Local = loc
	}

	config, err := config.Open(configFile)
	if err != nil {
		log.Fatalf("ERR: read config file failed: %s", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("ERR: validate config: %s", err)
	}

	zmanCron := cron.New()
	for _, job := range config.Jobs {
		zman, err := zmanim.ParseZman(job.Zman)
		if err != nil {
			log.Printf("ERR: parse job: %s", err)
			continue
		}

		var offset time.Duration
		if job.Offset != "" {
			offset, err = time.ParseDuration(job.Offset)
			if err != nil {
				log.Printf("ERR: parse job offset: %s", err)
				continue
			}
		}

		schedule := zmanim.Schedule{
			Zman:   zman,
			Place:  config.Location,
			Offset: offset,
		}
		zmanCron.Schedule(schedule, Announcement{Zman: zman, Message: job.Message})
		log.Printf("registered job: %q %s", zman, job.Offset)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/zmanim", zmanimHandler(config.Location))
	mux.HandleFunc("/rata", rataHandler)

	srv := http.Server{
		Addr:    listenAddr,
		Handler: mux,
	}
	log.Printf("listening on %s", srv.Addr)

	zmanCron.Start()
	log.Fatal(srv.ListenAndServe())
}

// zmanimHandler serves the named times for a single day at the
// configured location, keyed by zman name. Zmanim that do not occur on
// the requested day at that latitude are omitted.
func zmanimHandler(place solar.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := time.Now()
		if param := r.URL.Query().Get("date"); param != "" {
			var err error
			date, err = time.Parse(dateFormat, param)
			if err != nil {
				http.Error(w, "parse date: expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		day, err := solar.Suntimes(date, place)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		times := make(map[string]time.Time)
		for _, zman := range zmanim.Zmanim {
			at, err := zman.Compute(day)
			if err != nil {
				continue
			}
			times[zman.String()] = at
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(times)
		if err != nil {
			log.Printf("ERR: encode zmanim: %s", err)
		}
	}
}

type rataResponse struct {
	Date    string `json:"date"`
	RataDie uint64 `json:"rata_die"`
	Weekday string `json:"weekday"`
}

// rataHandler converts between civil dates and day numbers: ?date=
// encodes a date, ?n= decodes a day number.
func rataHandler(w http.ResponseWriter, r *http.Request) {
	var response rataResponse

	switch {
	case r.URL.Query().Get("date") != "":
		date, err := time.Parse(dateFormat, r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "parse date: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		day, err := rata.FromDate(date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		response = rataResponse{
			Date:    date.Format(dateFormat),
			RataDie: uint64(day),
			Weekday: day.Weekday().String(),
		}

	case r.URL.Query().Get("n") != "":
		n, err := strconv.ParseUint(r.URL.Query().Get("n"), 10, 64)
		if err != nil {
			http.Error(w, "parse n: expected an unsigned day number", http.StatusBadRequest)
			return
		}

		day := rata.RataDie(n)
		response = rataResponse{
			Date:    day.Date().Format(dateFormat),
			RataDie: n,
			Weekday: day.Weekday().String(),
		}

	default:
		http.Error(w, "expected a date or n parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("ERR: encode conversion: %s", err)
	}
}
