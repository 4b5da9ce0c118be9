package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
	pkgKafka "legal-office-management/pkg/kafka"
	pkgResponse "legal-office-management/pkg/response"
)

const (
	signatureHeader = "X-Signature"
	maxBodyBytes    = 5 << 20
	ingestTimeout   = 2 * time.Minute
)

// HandleLegalDataWebhook accepts movement batches pushed by the judicial-data provider.
// @Summary     Legal-data provider webhook
// @Description Receives lawsuit movements. Requires X-Signature: sha256=<hex HMAC of the body>.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       X-Signature header string              true "HMAC-SHA256 signature"
// @Param       body        body   model.MovementBatch true "Movements of one lawsuit"
// @Success     202 {object} pkgResponse.Resp "Accepted"
// @Failure     400 {object} pkgResponse.Resp "Bad Request"
// @Failure     401 {object} pkgResponse.Resp "Invalid signature"
// @Failure     403 {object} pkgResponse.Resp "IP not allowed"
// @Failure     429 {object} pkgResponse.Resp "Rate limit exceeded"
// @Router      /webhook/legaldata [POST]
func (h *Handler) HandleLegalDataWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	ip := c.ClientIP()

	if err := h.security.ValidateIPAddress(ip); err != nil {
		h.l.Warnf(ctx, "webhook.legaldata: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	if err := h.security.CheckRateLimit(ip); err != nil {
		h.l.Warnf(ctx, "webhook.legaldata: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		h.l.Errorf(ctx, "webhook.legaldata: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(signatureHeader)); err != nil {
		h.l.Warnf(ctx, "webhook.legaldata: signature verification failed from %s: %v", ip, err)
		pkgResponse.Unauthorized(c)
		return
	}

	var batch model.MovementBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		h.l.Warnf(ctx, "webhook.legaldata: invalid payload: %v", err)
		pkgResponse.Error(c, errInvalidPayload, nil)
		return
	}
	if batch.ProcessoOABID == "" {
		pkgResponse.Error(c, errMissingProcesso, nil)
		return
	}
	if len(batch.Movements) == 0 {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "no movements"})
		return
	}

	batch.Source = model.SourceLegalData
	batch.ReceivedAt = time.Now().UTC()

	if h.publisher != nil {
		if err := h.publish(ctx, batch); err != nil {
			h.l.Errorf(ctx, "webhook.legaldata: publish failed: %v", err)
			pkgResponse.Error(c, errRelayUnavailable, nil)
			return
		}
	} else {
		go h.ingestAsync(batch)
	}

	c.JSON(http.StatusAccepted, pkgResponse.NewOKResp(gin.H{
		"status":    "accepted",
		"movements": len(batch.Movements),
	}))
}

func (h *Handler) publish(ctx context.Context, batch model.MovementBatch) error {
	value, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	return h.publisher.Publish(ctx, h.topic, pkgKafka.Message{Key: batch.ProcessoOABID, Value: value})
}

// ingestAsync stores the batch in background
func (h *Handler) ingestAsync(batch model.MovementBatch) {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	sc := model.Scope{UserID: "system_webhook", Source: "webhook"}
	out, err := h.ingester.Ingest(ctx, sc, andamento.IngestInput{
		ProcessoOABID: batch.ProcessoOABID,
		Source:        batch.Source,
		Movements:     batch.Movements,
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook.legaldata: ingest failed cnj=%s: %v", batch.NumeroCNJ, err)
		return
	}

	h.l.Infof(ctx, "webhook.legaldata: cnj=%s received=%d inserted=%d", batch.NumeroCNJ, out.Received, out.Inserted)
}
