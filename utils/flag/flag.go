/*
flag package sets up cli flags shared across commands.

Flags listed here are service-agnostic; command-specific flags belong in
their respective package.
*/
package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
	Seeder    = "seeder"
)

var (
	IsDevelopment bool
	ServiceName   string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "'api_server' or 'seeder'")
	flag.Parse()
}
