package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estafette/estafette-ci-relay/pkg/services/github"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {

	t.Run("ServesLivenessAndReadiness", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newRouter(github.NewHandler(github.NewMockService(ctrl)))

		for _, path := range []string{"/liveness", "/readiness"} {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, path, nil)

			// act
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})

	t.Run("RoutesBothWebhookPathsToTheGithubHandler", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newRouter(github.NewHandler(github.NewMockService(ctrl)))

		for _, path := range []string{"/api/integrations/github/events", "/webhook"} {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"zen":"Keep it logically awesome."}`))
			request.Header.Set("X-GitHub-Event", "ping")

			// act
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "Pong!")
		}
	})
}
