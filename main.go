package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"embed"
	"flag"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/hulkholden/gowebdom/static"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed templates/*
	templatesFS embed.FS
	indexTmpl   = template.Must(template.ParseFS(templatesFS, "templates/index.html"))
)

type server struct {
	basePath string
	log      logrus.FieldLogger
}

func (s server) index(w http.ResponseWriter, r *http.Request) {
	// "/" matches any path that no other pattern does, e.g. "/non-existent".
	if r.URL.Path != s.basePath {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
		}
		return
	}

	data := map[string]any{}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.log.WithError(err).Error("Rendering index failed")
	}
}

// makeGzipHandler returns a HTTP HanderFunc which serves a gzipped version of the content.
func makeGzipHandler(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		// TODO: figure this out from the underlying file if we use this for more than just the .wasm.
		w.Header().Set("Content-Type", "application/wasm")
		r.URL.Path += ".gz"
		r.URL.RawPath += ".gz"
		h.ServeHTTP(w, r)
	}
}

func logRequest(log logrus.FieldLogger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{
			ResponseWriter: w,
			Status:         200,
		}
		handler.ServeHTTP(sr, r)
		log.WithFields(logrus.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"status": sr.Status,
			"url":    r.URL.String(),
		}).Info("Request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func canonicalizeBasePath(s string) string {
	bp := s
	if !strings.HasSuffix(bp, "/") {
		bp = bp + "/"
	}
	if !strings.HasPrefix(bp, "/") {
		bp = "/" + bp
	}
	return bp
}

// newHandler builds the handler serving the index page and static files
// under basePath, which must already be canonical.
func newHandler(basePath string, log logrus.FieldLogger) http.Handler {
	srv := server{
		basePath: basePath,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(basePath, srv.index)

	staticHandler := http.FileServer(http.FS(static.FS))
	mux.Handle(basePath+"static/", http.StripPrefix(basePath+"static/", staticHandler))
	// If client.wasm is requested, redirect to a gzipped version.
	mux.Handle(basePath+"static/client.wasm", http.StripPrefix(basePath+"static/", makeGzipHandler(staticHandler)))

	return logRequest(log, mux)
}

func main() {
	log := logrus.New()

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid environment")
	}
	cfg.registerFlags(flag.CommandLine)
	flag.Parse()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	log.SetLevel(level)

	basePath := canonicalizeBasePath(cfg.BasePath)
	addr := fmt.Sprintf(":%d", cfg.Port)
	handler := newHandler(basePath, log)

	if cfg.TLS {
		tlsCert, err := generateSelfSignedCert()
		if err != nil {
			log.WithError(err).Fatal("Failed to generate self-signed certificate")
		}
		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{tlsCert},
			},
		}
		log.Infof("Listening on https://0.0.0.0%s%s", addr, basePath)
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	} else {
		log.Infof("Listening on http://0.0.0.0%s%s", addr, basePath)
		if err := http.ListenAndServe(addr, handler); err != nil {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}
}

// generateSelfSignedCert creates an in-memory self-signed TLS certificate.
func generateSelfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("generating key: %w", err)
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("generating serial number: %w", err)
	}

	tmpl := x509.Certificate{
		SerialNumber: serialNumber,
		Subject:      pkix.Name{Organization: []string{"gowebdom dev"}},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(0, 0, 0, 0), net.IPv6loopback},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("creating certificate: %w", err)
	}

	return tls.Certificate{
		Certificate: [][]byte{certDER},
		PrivateKey:  key,
	}, nil
}
