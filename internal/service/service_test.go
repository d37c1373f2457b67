package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/internal/ledger"
	"github.com/mmynk/qattah/internal/metrics"
	"github.com/mmynk/qattah/internal/middleware"
	"github.com/mmynk/qattah/internal/notify"
	"github.com/mmynk/qattah/internal/storage/sqlite"
	"github.com/mmynk/qattah/pkg/api/apiconnect"
)

// recordingPublisher keeps published e-mails in memory.
type recordingPublisher struct {
	mu   sync.Mutex
	sent []notify.EmailMessage
}

func (p *recordingPublisher) Publish(_ context.Context, msg notify.EmailMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) messages() []notify.EmailMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.EmailMessage(nil), p.sent...)
}

type testClients struct {
	split    apiconnect.SplitServiceClient
	insights apiconnect.InsightsServiceClient
	account  apiconnect.AccountServiceClient
	store    *sqlite.SQLiteStore
	outbox   *recordingPublisher
	url      string
}

// setupTestServer serves all three services over a temp-file SQLite database.
func setupTestServer(t *testing.T) (*testClients, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New()
	cfg := ledger.Config{SplitCategory: ledger.DefaultSplitCategory, PageSize: 2}
	outbox := &recordingPublisher{}
	notifier := notify.NewNotifier(store, outbox, "")

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), m.Interceptor())
	splitPath, splitHandler := apiconnect.NewSplitServiceHandler(NewSplitService(store, cfg, m), interceptors)
	insightsPath, insightsHandler := apiconnect.NewInsightsServiceHandler(NewInsightsService(store, cfg, m), interceptors)
	accountPath, accountHandler := apiconnect.NewAccountServiceHandler(NewAccountService(store, notifier, cfg.PageSize, m), interceptors)

	mux := http.NewServeMux()
	mux.Handle(splitPath, splitHandler)
	mux.Handle(insightsPath, insightsHandler)
	mux.Handle(accountPath, accountHandler)

	server := httptest.NewServer(mux)

	clients := &testClients{
		split:    apiconnect.NewSplitServiceClient(http.DefaultClient, server.URL),
		insights: apiconnect.NewInsightsServiceClient(http.DefaultClient, server.URL),
		account:  apiconnect.NewAccountServiceClient(http.DefaultClient, server.URL),
		store:    store,
		outbox:   outbox,
		url:      server.URL,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
