package main

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

// Version returns the build version of the service
func Version() string {
	return version
}

//
// end of file
//
