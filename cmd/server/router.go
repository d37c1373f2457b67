package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"

	"github.com/mmynk/qattah/internal/ledger"
	"github.com/mmynk/qattah/internal/metrics"
	"github.com/mmynk/qattah/internal/middleware"
	"github.com/mmynk/qattah/internal/notify"
	"github.com/mmynk/qattah/internal/service"
	"github.com/mmynk/qattah/internal/storage"
	"github.com/mmynk/qattah/pkg/api/apiconnect"
)

type routerDeps struct {
	store    storage.Store
	notifier *notify.Notifier
	ledger   ledger.Config
	metrics  *metrics.Metrics
}

// newRouter mounts the Connect services, health check and metrics.
func newRouter(deps routerDeps) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger, middleware.CORS)

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), deps.metrics.Interceptor())

	splitPath, splitHandler := apiconnect.NewSplitServiceHandler(
		service.NewSplitService(deps.store, deps.ledger, deps.metrics), interceptors)
	insightsPath, insightsHandler := apiconnect.NewInsightsServiceHandler(
		service.NewInsightsService(deps.store, deps.ledger, deps.metrics), interceptors)
	accountPath, accountHandler := apiconnect.NewAccountServiceHandler(
		service.NewAccountService(deps.store, deps.notifier, deps.ledger.PageSize, deps.metrics), interceptors)

	r.PathPrefix(splitPath).Handler(splitHandler)
	r.PathPrefix(insightsPath).Handler(insightsHandler)
	r.PathPrefix(accountPath).Handler(accountHandler)

	r.HandleFunc("/healthz", healthHandler(deps.store)).Methods(http.MethodGet)
	r.Handle("/metrics", deps.metrics.Handler()).Methods(http.MethodGet)

	return r
}

// healthHandler reports whether the store answers within two seconds.
func healthHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, code := map[string]string{"status": "ok"}, http.StatusOK
		if err := store.Ping(ctx); err != nil {
			status, code = map[string]string{"status": "unavailable", "error": err.Error()}, http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(status)
	}
}
