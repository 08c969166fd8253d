package fileserv

import (
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
)

type fileSource struct {
	src http.FileSystem
}

// These are the command line flags that tell where to find runtime resources
var (
	assetsDir = flag.String("assets", "./assets/", "web page assets")
	moduleDir = flag.String("webmodules", "./webmodules/", "web assembly file(s)")
)

// resource maps a url path onto a directory of files
type resource struct {
	dir      string
	path     string
	mimetype string // empty lets the server sniff it
}

func resources() []resource {
	return []resource{
		{dir: *assetsDir + "css/", path: "/css/{file}.{ext}", mimetype: "text/css; charset=utf-8"},
		{dir: *assetsDir + "images/", path: "/images/{file}.{ext}"},
		{dir: *assetsDir + "js/", path: "/js/{file}.{ext}", mimetype: "application/javascript; charset=utf-8"},
		{dir: *moduleDir, path: "/wasm/{file}.{ext}", mimetype: "application/wasm"},
	}
}

// WrapFileSources builds mux routes to all my resources
// css files, images, javascript files and of course
// the calculator wasm file.
func WrapFileSources(rtr *mux.Router) {
	for _, res := range resources() {
		fs := &fileSource{src: http.Dir(res.dir)}
		fs.wrapSource(rtr, res.path, res.mimetype)
	}
}

// WrapPage serves the named html page from the assets
// as the root of the site
func WrapPage(rtr *mux.Router, name string, page string) {
	fs := &fileSource{src: http.Dir(*assetsDir + "html/")}

	rtr.HandleFunc("/", func(rw http.ResponseWriter, r *http.Request) {
		fs.serveFile(rw, r, page+".html", "text/html; charset=utf-8")
	}).Name(name)
}

// given a path, create a handler function that will extract the
// parts of the path and then call the source directory to work
// on the file
func (fs *fileSource) wrapSource(rtr *mux.Router, path string, mimetype string) {
	rtr.HandleFunc(path, func(rw http.ResponseWriter, r *http.Request) {
		vs := mux.Vars(r)
		file := vs["file"]
		ext := vs["ext"]

		if len(ext) > 0 {
			file = file + "." + ext
		}
		fs.serveFile(rw, r, file, mimetype)
	}).Name(path)

}

// serveFile opens up the file and sends its contents
// directories are not served
func (fs fileSource) serveFile(w http.ResponseWriter, r *http.Request, fname string, mimetype string) {
	hfile, err := fs.Open(fname)

	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	defer hfile.Close()

	st, err := hfile.Stat()

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if st.IsDir() {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if len(mimetype) > 0 {
		w.Header().Set("Content-Type", mimetype)
	}

	if _, err = io.Copy(w, hfile); err != nil {
		log.Printf("sending %s failed, %v", fname, err)
	}
}

// Open is a wrapper around the Open method of the embedded FileSystem
// that refuses anything hidden
func (fs fileSource) Open(name string) (hFile http.File, err error) {
	if containsDotFile(name) { // hidden files are never served
		return nil, os.ErrPermission
	}

	return fs.src.Open(name)
}

// containsDotFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed
// by the http.FileSystem interface.
func containsDotFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
