package github

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewHandler(service Service) Handler {
	return Handler{
		service: service,
	}
}

type Handler struct {
	service Service
}

func (h *Handler) Handle(c *gin.Context) {

	// https://docs.github.com/en/webhooks/webhook-events-and-payloads
	eventType := c.GetHeader("X-GitHub-Event")
	if eventType == "" {
		// deliveries without an event type are treated as ping
		eventType = "ping"
	}

	deliveryID := c.GetHeader("X-GitHub-Delivery")
	if deliveryID == "" {
		deliveryID = uuid.New().String()
	}
	logger := log.With().Str("event", eventType).Str("delivery", deliveryID).Logger()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Reading body from Github webhook failed")
		h.respond(c, eventType, "error", http.StatusInternalServerError)
		return
	}

	if eventType == "ping" {
		h.countEvent(eventType, "pong")
		c.JSON(http.StatusOK, gin.H{"msg": "Pong!"})
		return
	}

	signatureHeader := c.GetHeader("X-Hub-Signature")
	if signatureHeader == "" {
		logger.Warn().Msg("Signature from Github webhook is missing")
		h.countEvent(eventType, "unauthenticated")
		c.String(http.StatusBadRequest, "Signature missing")
		return
	}

	if !h.service.HasValidSignature(c.Request.Context(), body, signatureHeader) {
		logger.Warn().Msg("Signature from Github webhook is invalid")
		h.countEvent(eventType, "unauthenticated")
		c.String(http.StatusBadRequest, "Invalid signature")
		return
	}

	switch eventType {
	case "status": // Any time a Repository has a status update from the API

		var statusEvent githubapi.StatusEvent
		if err := json.Unmarshal(body, &statusEvent); err != nil {
			logger.Error().Err(err).Str("body", string(body)).Msg("Deserializing body to GithubStatusEvent failed")
			h.respond(c, eventType, "invalid", http.StatusBadRequest)
			return
		}

		err = h.service.RelayStatusEvent(c.Request.Context(), statusEvent)
		h.handleRelayError(c, logger, eventType, err)

	case "check_run": // Any time a check run is created, requested, rerequested or completed

		var checkRunEvent githubapi.CheckRunEvent
		if err := json.Unmarshal(body, &checkRunEvent); err != nil {
			logger.Error().Err(err).Str("body", string(body)).Msg("Deserializing body to GithubCheckRunEvent failed")
			h.respond(c, eventType, "invalid", http.StatusBadRequest)
			return
		}

		err = h.service.RelayCheckRunEvent(c.Request.Context(), checkRunEvent)
		h.handleRelayError(c, logger, eventType, err)

	default:
		logger.Debug().Msgf("Unsupported Github webhook event of type '%v'", eventType)
		h.respond(c, eventType, "ignored", http.StatusNoContent)
	}
}

func (h *Handler) handleRelayError(c *gin.Context, logger zerolog.Logger, eventType string, err error) {
	switch {
	case err == nil:
		logger.Info().Msgf("Relayed Github %v event to Logilica", eventType)
		h.respond(c, eventType, "relayed", http.StatusNoContent)

	case errors.Is(err, api.ErrNotRelevant):
		logger.Debug().Err(err).Msgf("Ignoring Github %v event", eventType)
		h.respond(c, eventType, "ignored", http.StatusNoContent)

	default:
		logger.Error().Err(err).Msgf("Relaying Github %v event failed", eventType)
		h.respond(c, eventType, "failed", http.StatusInternalServerError)
	}
}

func (h *Handler) respond(c *gin.Context, eventType, outcome string, statusCode int) {
	h.countEvent(eventType, outcome)
	c.Status(statusCode)
}

func (h *Handler) countEvent(eventType, outcome string) {
	api.InboundEventTotals.With(prometheus.Labels{"event": eventType, "outcome": outcome}).Inc()
}
