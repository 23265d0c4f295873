// Package main is the entry point for the midi2strudel API server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/james-see/midi2strudel/pkg/api"
	"github.com/james-see/midi2strudel/pkg/converter"
)

func main() {
	port := flag.Int("port", 8080, "Server port")
	config := flag.String("config", "", "YAML options file")
	flag.Parse()

	opts := converter.DefaultOptions()
	if *config != "" {
		var err error
		if opts, err = converter.LoadOptions(*config); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Starting midi2strudel API server on port %d...\n", *port)
	fmt.Printf("Swagger docs available at http://localhost:%d/swagger/index.html\n", *port)

	if err := api.StartServer(*port, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
