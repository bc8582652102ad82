package main

import (
	"flag"

	"github.com/df07/go-pathtracer/web/server"
	"github.com/golang/glog"
)

var (
	port    = flag.Int("port", 8080, "Port to serve on")
	workers = flag.Int("workers", 0, "Rows rendered concurrently per request; 0 uses every CPU")
)

func main() {
	flag.Parse()
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	webServer := server.NewServer(*port, *workers)

	glog.Infof("Path tracer web server")
	glog.Infof("Visit http://localhost:%d/api/scenes to list scenes", *port)

	if err := webServer.Start(); err != nil {
		glog.Exitf("Error starting server: %v", err)
	}
}
