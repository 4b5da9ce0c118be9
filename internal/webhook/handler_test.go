package webhook_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
	"legal-office-management/internal/webhook"
	pkgKafka "legal-office-management/pkg/kafka"
	"legal-office-management/pkg/log"
)

const secret = "s3cret"

type mockIngester struct {
	mu   sync.Mutex
	got  []andamento.IngestInput
	done chan struct{}
}

func (m *mockIngester) Ingest(_ context.Context, _ model.Scope, in andamento.IngestInput) (andamento.IngestOutput, error) {
	m.mu.Lock()
	m.got = append(m.got, in)
	m.mu.Unlock()
	close(m.done)
	return andamento.IngestOutput{Received: len(in.Movements), Inserted: len(in.Movements)}, nil
}

type mockPublisher struct {
	topic    string
	messages []pkgKafka.Message
	err      error
}

func (m *mockPublisher) Publish(_ context.Context, topic string, messages ...pkgKafka.Message) error {
	m.topic = topic
	m.messages = append(m.messages, messages...)
	return m.err
}

func newRouter(h *webhook.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/legaldata", h.HandleLegalDataWebhook)
	return r
}

func post(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/legaldata", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func batchBody(t *testing.T, b model.MovementBatch) []byte {
	t.Helper()
	body, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestHandleLegalDataWebhook_Publish(t *testing.T) {
	pub := &mockPublisher{}
	h := webhook.NewHandler(&mockIngester{done: make(chan struct{})}, pub, "andamentos.sync", webhook.SecurityConfig{Secret: secret}, log.NewNop())
	r := newRouter(h)

	body := batchBody(t, model.MovementBatch{
		ProcessoOABID: "p-1",
		NumeroCNJ:     "0001234-71.2024.8.26.0100",
		Movements:     []model.Movement{{ExternalID: "m1", Texto: "Data Final: 15/03/2024"}},
	})
	w := post(r, body, webhook.Sign(secret, body))

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if pub.topic != "andamentos.sync" || len(pub.messages) != 1 || pub.messages[0].Key != "p-1" {
		t.Fatalf("unexpected publish: topic=%q messages=%d", pub.topic, len(pub.messages))
	}

	var relayed model.MovementBatch
	if err := json.Unmarshal(pub.messages[0].Value, &relayed); err != nil {
		t.Fatalf("decode relayed batch: %v", err)
	}
	if relayed.Source != model.SourceLegalData || relayed.ReceivedAt.IsZero() {
		t.Errorf("relayed batch not stamped: %+v", relayed)
	}
}

func TestHandleLegalDataWebhook_IngestInBackground(t *testing.T) {
	ing := &mockIngester{done: make(chan struct{})}
	h := webhook.NewHandler(ing, nil, "", webhook.SecurityConfig{Secret: secret}, log.NewNop())
	r := newRouter(h)

	body := batchBody(t, model.MovementBatch{ProcessoOABID: "p-1", Movements: []model.Movement{{ExternalID: "m1"}}})
	if w := post(r, body, webhook.Sign(secret, body)); w.Code != http.StatusAccepted {
		t.Fatalf("status = %d", w.Code)
	}

	select {
	case <-ing.done:
	case <-time.After(2 * time.Second):
		t.Fatal("ingest was not called")
	}
	ing.mu.Lock()
	defer ing.mu.Unlock()
	if ing.got[0].ProcessoOABID != "p-1" || ing.got[0].Source != model.SourceLegalData {
		t.Errorf("unexpected ingest input: %+v", ing.got[0])
	}
}

func TestHandleLegalDataWebhook_Rejections(t *testing.T) {
	valid := batchBody(t, model.MovementBatch{ProcessoOABID: "p-1", Movements: []model.Movement{{ExternalID: "m1"}}})
	noProcesso := batchBody(t, model.MovementBatch{Movements: []model.Movement{{ExternalID: "m1"}}})
	garbage := []byte("{not json")

	tests := []struct {
		name      string
		cfg       webhook.SecurityConfig
		pubErr    error
		body      []byte
		signature string
		wantCode  int
	}{
		{name: "bad signature", cfg: webhook.SecurityConfig{Secret: secret}, body: valid, signature: webhook.Sign("x", valid), wantCode: http.StatusUnauthorized},
		{name: "missing signature", cfg: webhook.SecurityConfig{Secret: secret}, body: valid, wantCode: http.StatusUnauthorized},
		{name: "ip not allowed", cfg: webhook.SecurityConfig{Secret: secret, AllowedIPs: []string{"10.0.0.1"}}, body: valid, signature: webhook.Sign(secret, valid), wantCode: http.StatusForbidden},
		{name: "invalid json", cfg: webhook.SecurityConfig{Secret: secret}, body: garbage, signature: webhook.Sign(secret, garbage), wantCode: http.StatusBadRequest},
		{name: "missing processo", cfg: webhook.SecurityConfig{Secret: secret}, body: noProcesso, signature: webhook.Sign(secret, noProcesso), wantCode: http.StatusBadRequest},
		{name: "broker down", cfg: webhook.SecurityConfig{Secret: secret}, pubErr: errors.New("broker down"), body: valid, signature: webhook.Sign(secret, valid), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := webhook.NewHandler(&mockIngester{done: make(chan struct{})}, &mockPublisher{err: tt.pubErr}, "andamentos.sync", tt.cfg, log.NewNop())
			if w := post(newRouter(h), tt.body, tt.signature); w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestHandleLegalDataWebhook_EmptyBatchIgnored(t *testing.T) {
	pub := &mockPublisher{}
	h := webhook.NewHandler(&mockIngester{done: make(chan struct{})}, pub, "andamentos.sync", webhook.SecurityConfig{Secret: secret}, log.NewNop())

	body := batchBody(t, model.MovementBatch{ProcessoOABID: "p-1"})
	if w := post(newRouter(h), body, webhook.Sign(secret, body)); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(pub.messages) != 0 {
		t.Errorf("empty batch must not be relayed")
	}
}
