package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/navionguy/webcalc/fileserv"
)

var (
	listen = flag.String("listen", ":8080", "listen address")
	page   = flag.String("page", "calc", "html page served at /")
)

// name of the route to the calculator page
const rootRt = "main page"

func startup() *mux.Router {
	rtr := mux.NewRouter()

	fileserv.WrapPage(rtr, rootRt, *page)
	fileserv.WrapFileSources(rtr)

	return rtr
}

func main() {

	flag.Parse()
	log.Printf("listening on %q...", *listen)
	log.Fatal(http.ListenAndServe(*listen, startup()))
}
