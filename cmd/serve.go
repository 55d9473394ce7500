package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partnerhub/partnerhub-cli/internal/brdoc"
	"github.com/partnerhub/partnerhub-cli/internal/model"
	"github.com/partnerhub/partnerhub-cli/internal/store"
)

var servePort int

// hiringManagerPublic marks partners that signed themselves up through
// the public form.
const hiringManagerPublic = "Cadastro Público"

// shutdownTimeout bounds how long in-flight requests get to finish
// after a termination signal.
const shutdownTimeout = 5 * time.Second

type registerRequest struct {
	Name        string `json:"name"`
	Document    string `json:"document"`
	CEP         string `json:"cep"`
	Address     string `json:"address"`
	Responsible string `json:"responsible"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	BrokerCount int    `json:"brokerCount"`
}

func (r registerRequest) validate() error {
	switch {
	case r.Name == "":
		return eris.New("name is required")
	case r.Responsible == "":
		return eris.New("responsible is required")
	case r.Email == "":
		return eris.New("email is required")
	case r.Phone == "":
		return eris.New("phone is required")
	}
	return nil
}

func newServeHandler(st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/partners", func(w http.ResponseWriter, req *http.Request) {
		companies, err := st.ListCompanies(req.Context(), store.Filter{
			Status: model.Status(req.URL.Query().Get("status")),
		})
		if err != nil {
			zap.L().Error("list partners failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, companies)
	})

	r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
		var body registerRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if err := body.validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		docType := model.DocTypeCNPJ
		if len(brdoc.Digits(body.Document)) <= 11 {
			docType = model.DocTypeCPF
		}
		brokerCount := body.BrokerCount
		if brokerCount < 0 {
			brokerCount = 0
		}

		company := model.Company{
			Name:           body.Name,
			CNPJ:           brdoc.MaskDocument(body.Document),
			DocType:        docType,
			CEP:            brdoc.MaskCEP(body.CEP),
			Address:        body.Address,
			Responsible:    body.Responsible,
			HiringManager:  hiringManagerPublic,
			Email:          body.Email,
			Phone:          brdoc.MaskPhone(body.Phone),
			Website:        body.Website,
			BrokerCount:    brokerCount,
			CommissionRate: 5,
			Status:         model.StatusInactive,
			ContactHistory: []model.ContactHistoryEntry{},
			Brokers:        []model.Broker{},
		}

		created, err := st.CreateCompany(req.Context(), company)
		if err != nil {
			zap.L().Error("public registration failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		zap.L().Info("public registration received",
			zap.String("id", created.ID),
			zap.String("name", created.Name),
		)
		writeJSON(w, http.StatusCreated, map[string]string{
			"id":     created.ID,
			"status": "pending",
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the public registration server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			return eris.Wrap(err, "server listen")
		}

		zap.L().Info("starting server", zap.Int("port", port))
		return runServer(ctx, &http.Server{Handler: newServeHandler(st)}, ln)
	},
}

// runServer serves until ctx is canceled, then drains in-flight
// requests. The trigger context is already canceled at shutdown time,
// so the drain runs on its own timeout.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.Shutdown(drainCtx) //nolint:errcheck
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server serve")
	}
	return nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
