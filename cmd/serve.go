// Package cmd: serve command.
// Exposes the pipeline over HTTP: POST /convert with {"html": "..."}
// answers with the document JSON.
package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
	"github.com/ditra-consulting/html-to-ricos-converter/core/pipeline"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP",
	Long: `Serve listens for POST /convert requests carrying {"html": "..."} and
responds with the converted document JSON.

Examples:
  ricos serve --addr :8080
  curl -d '{"html":"<p>hi</p>"}' localhost:8080/convert`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}
	p := newPipeline(cfg, cfg.IDs.Seed, cfg.SanitizeEnabled())
	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(p, cfg.Server.MaxBodyBytes, cfg.Server.AllowedOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", addr).Str("maxBody", humanize.Bytes(uint64(cfg.Server.MaxBodyBytes))).Msg("listening")
	return srv.ListenAndServe()
}

type convertRequest struct {
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// newHandler returns the HTTP surface of the converter.
func newHandler(p *pipeline.Pipeline, maxBody int64, origin string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		if maxBody > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		}
		var req convertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		res, err := p.Run("http", req.HTML)
		switch {
		case errors.Is(err, core.ErrInputMissing):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "html is required"})
			return
		case err != nil:
			log.Error().Err(err).Msg("conversion failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "conversion failed"})
			return
		}
		writeJSON(w, http.StatusOK, res.Document)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writing response")
	}
}
