package github

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/estafette/estafette-ci-relay/pkg/services/logilica"
	"github.com/estafette/estafette-ci-relay/pkg/services/prow"
	"github.com/rs/zerolog/log"
)

// Service handles http events for Github integration
//
//go:generate mockgen -package=github -destination ./mock.go -source=service.go
type Service interface {
	HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool)
	RelayStatusEvent(ctx context.Context, event githubapi.StatusEvent) (err error)
	RelayCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (err error)
}

// NewService returns a github.Service to handle incoming webhook events
func NewService(config *api.Config, prowService prow.Service, logilicaService logilica.Service) Service {
	return &service{
		config:          config,
		prowService:     prowService,
		logilicaService: logilicaService,
	}
}

type service struct {
	config          *api.Config
	prowService     prow.Service
	logilicaService logilica.Service
}

func (s *service) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) bool {

	if signatureHeader == "" {
		return false
	}

	webhookSecret, err := s.config.Github.RequireWebhookSecret()
	if err != nil {
		log.Error().Err(err).Msg("Cannot verify Github webhook signature")
		return false
	}

	// https://docs.github.com/en/webhooks/using-webhooks/validating-webhook-deliveries
	algorithm, signature, found := strings.Cut(signatureHeader, "=")
	if !found || algorithm != "sha1" {
		return false
	}

	actualMAC, err := hex.DecodeString(signature)
	if err != nil {
		log.Warn().Err(err).Msg("Decoding hexadecimal X-Hub-Signature to byte array failed")
		return false
	}

	// calculate expected MAC
	mac := hmac.New(sha1.New, []byte(webhookSecret))
	mac.Write(body)
	expectedMAC := mac.Sum(nil)

	// compare actual and expected MAC
	if hmac.Equal(actualMAC, expectedMAC) {
		return true
	}

	log.Warn().
		Str("expectedMAC", hex.EncodeToString(expectedMAC)).
		Str("actualMAC", hex.EncodeToString(actualMAC)).
		Msg("Expected and actual MAC do not match")

	return false
}

func (s *service) RelayStatusEvent(ctx context.Context, event githubapi.StatusEvent) (err error) {

	record, err := s.prowService.NormalizeStatusEvent(ctx, event)
	if err != nil {
		return err
	}

	return s.logilicaService.UploadBuild(ctx, *record)
}

func (s *service) RelayCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (err error) {

	record, err := s.prowService.NormalizeCheckRunEvent(ctx, event)
	if err != nil {
		return err
	}

	return s.logilicaService.UploadBuild(ctx, *record)
}
