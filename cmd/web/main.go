package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tomz197/goalpong/internal/config"
	"github.com/tomz197/goalpong/internal/logging"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(settings.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close(log)

	http.Handle("/", landingHandler(settings.Web.SSHDisplayHost, settings.SSH.Port, log))

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	log.Infof("Starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

// landingHandler serves the page telling visitors how to connect over SSH.
func landingHandler(sshHost, sshPort string, log logrus.FieldLogger) http.Handler {
	command := "ssh " + sshHost
	if sshPort != "" && sshPort != "22" {
		command = fmt.Sprintf("ssh -p %s %s", sshPort, sshHost)
	}
	page := strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHCommand}}", command,
	).Replace(htmlPage)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		log.WithFields(logrus.Fields{
			"remote": r.RemoteAddr,
			"agent":  r.UserAgent(),
		}).Debug("landing page")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
}
