package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trek-tango/internal/config"
	"trek-tango/internal/mylogger"
	trekservice "trek-tango/internal/trek-service"
)

func main() {
	port := flag.String("port", "", "override TREK_SERVICE_PORT")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Srv.TrekServicePort = *port
	}

	mylog, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}

	if err := trekservice.Execute(context.Background(), mylog, cfg); err != nil {
		mylog.Error("service stopped", err)
		os.Exit(1)
	}
}
