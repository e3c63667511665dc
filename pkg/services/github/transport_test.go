package github

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func performRequest(handler Handler, eventType, signature string, body []byte) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/integrations/github/events", handler.Handle)

	request := httptest.NewRequest(http.MethodPost, "/api/integrations/github/events", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if eventType != "" {
		request.Header.Set("X-GitHub-Event", eventType)
	}
	if signature != "" {
		request.Header.Set("X-Hub-Signature", signature)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandle(t *testing.T) {

	statusBody := []byte(`{"context":"ci/prow/e2e","state":"success","target_url":"https://gcsweb/gs/test-platform-results/pr-logs/pull/123/e2e-test/456","commit":{"commit":{"author":{"name":"Test User","email":"test@example.com"}},"author":{"login":"testuser"}}}`)

	t.Run("RespondsPongToPingWithoutVerifyingSignature", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		recorder := performRequest(NewHandler(service), "ping", "sha1=dummy_signature", []byte(`{}`))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"msg":"Pong!"}`, recorder.Body.String())
	})

	t.Run("RespondsPongIfEventHeaderIsMissing", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		service.EXPECT().RelayStatusEvent(gomock.Any(), gomock.Any()).Times(0)

		// act
		recorder := performRequest(NewHandler(service), "", "", []byte(`{}`))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"msg":"Pong!"}`, recorder.Body.String())
	})

	t.Run("Returns400IfSignatureIsMissing", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		recorder := performRequest(NewHandler(service), "push", "", []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Signature missing")
	})

	t.Run("Returns400IfSignatureIsInvalid", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		body := []byte(`{"test": "payload"}`)
		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Eq(body), gomock.Eq("sha1=invalid_signature")).Return(false).Times(1)

		// act
		recorder := performRequest(NewHandler(service), "push", "sha1=invalid_signature", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid signature")
	})

	t.Run("Returns204AfterRelayingStatusEvent", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Eq(statusBody), gomock.Any()).Return(true).Times(1)
		service.
			EXPECT().
			RelayStatusEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, event githubapi.StatusEvent) error {
				assert.Equal(t, "ci/prow/e2e", event.Context)
				assert.Equal(t, "testuser", event.AuthorLogin())
				return nil
			}).
			Times(1)

		// act
		recorder := performRequest(NewHandler(service), "status", "sha1=valid", statusBody)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("Returns204IfEventIsNotRelevant", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)
		service.EXPECT().RelayStatusEvent(gomock.Any(), gomock.Any()).Return(api.ErrNotRelevant).Times(1)

		// act
		recorder := performRequest(NewHandler(service), "status", "sha1=valid", statusBody)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("Returns500IfRelayFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)
		service.EXPECT().RelayCheckRunEvent(gomock.Any(), gomock.Any()).Return(errors.New("failed after 7 attempts")).Times(1)

		// act
		recorder := performRequest(NewHandler(service), "check_run", "sha1=valid", []byte(`{"action":"completed","check_run":{"id":1}}`))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("Returns400ForUndecodableBody", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)
		service.EXPECT().RelayStatusEvent(gomock.Any(), gomock.Any()).Times(0)

		// act
		recorder := performRequest(NewHandler(service), "status", "sha1=valid", []byte(`{not json`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Returns204ForUnsupportedEvent", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

		// act
		recorder := performRequest(NewHandler(service), "push", "sha1=valid", []byte(`{}`))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
