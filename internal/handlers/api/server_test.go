package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/handlers/api"
	"github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
	"github.com/KirkDiggler/enhancement-calculator/internal/uuid"
)

type quoteBody struct {
	Session *struct {
		ID      string `json:"id"`
		OwnerID string `json:"owner_id"`
		Variant string `json:"variant"`
	} `json:"session"`
	Quote struct {
		Variant  string `json:"variant"`
		Price    int    `json:"price"`
		Complete bool   `json:"complete"`
	} `json:"quote"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

type ServerTestSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ServerTestSuite) SetupTest() {
	svc := calculator.NewService(&calculator.ServiceConfig{
		Repository:    selections.NewInMemoryRepository(nil),
		Rules:         rulebook.MustDefault(),
		UUIDGenerator: &uuid.StaticGenerator{IDs: []string{"sess-1", "sess-2"}},
	})
	s.handler = api.NewServer(&api.ServerConfig{Service: svc}).Handler()
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *ServerTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestListVariants() {
	rec := s.do(http.MethodGet, "/v1/variants", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Variants []api.VariantResponse `json:"variants"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Variants, 3)
	s.Equal("frosthaven", body.Variants[0].Variant)
	s.Equal(3, body.Variants[0].MaxPriorEnhancements)
	s.True(body.Variants[0].HonoursEnhancerLevel)
}

func (s *ServerTestSuite) TestVariantEffects() {
	rec := s.do(http.MethodGet, "/v1/variants/gloomhaven_digital/effects", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body api.EffectsResponse
	s.decode(rec, &body)
	s.Require().NotEmpty(body.PlayerPlusOne)
	s.Equal("move", body.PlayerPlusOne[0].ID)
	s.Equal(20, body.PlayerPlusOne[0].Cost)

	rec = s.do(http.MethodGet, "/v1/variants/nope/effects", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestVariantHelp() {
	rec := s.do(http.MethodGet, "/v1/variants/frosthaven/help", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body api.HelpResponse
	s.decode(rec, &body)
	s.Equal("frosthaven", body.Variant)
	s.Require().Len(body.Dots, 4)
	s.Equal(rulebook.DotCircle, body.Dots[1].Shape)
	s.Require().Len(body.Substitutions, 3)
	s.Equal("Damage trap", body.Substitutions[0].Subject)
	s.Equal(50, body.Substitutions[0].Cost)

	rec = s.do(http.MethodGet, "/v1/variants/nope/help", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestPrice() {
	rec := s.do(http.MethodPost, "/v1/price", map[string]any{
		"variant": "frosthaven",
		"selection": map[string]any{
			"category":             "other_effect",
			"other_effect":         "wound",
			"has_multiple_targets": true,
			"card_level":           2,
		},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body quoteBody
	s.decode(rec, &body)
	s.Nil(body.Session)
	s.True(body.Quote.Complete)
	// 75 x2 + 25
	s.Equal(175, body.Quote.Price)
}

func (s *ServerTestSuite) TestPrice_InvalidSelection() {
	rec := s.do(http.MethodPost, "/v1/price", map[string]any{
		"selection": map[string]any{
			"category":            "player_plus_one",
			"player_plus_one_effect": "attack",
			"card_level":          12,
		},
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body errorBody
	s.decode(rec, &body)
	s.Equal("invalid_selection", body.Error.Code)
	s.Equal("card_level", body.Error.Field)
}

func (s *ServerTestSuite) TestPrice_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/price", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSessionLifecycle() {
	rec := s.do(http.MethodPost, "/v1/sessions", map[string]any{"owner_id": "user-1"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created quoteBody
	s.decode(rec, &created)
	s.Require().NotNil(created.Session)
	s.Equal("sess-1", created.Session.ID)
	s.Equal("frosthaven", created.Session.Variant)

	steps := []struct {
		action string
		value  any
		price  int
	}{
		{action: api.ActionSelectCategory, value: "player_plus_one", price: 0},
		{action: api.ActionSelectPlayerEffect, value: "move", price: 30},
		{action: api.ActionSetCardLevel, value: 2, price: 55},
		{action: api.ActionToggleLostCard, price: 40},
		{action: api.ActionSetVariant, value: "gloomhaven_digital", price: 20},
	}
	for _, step := range steps {
		body := map[string]any{"action": step.action}
		if step.value != nil {
			body["value"] = step.value
		}
		rec = s.do(http.MethodPost, "/v1/sessions/sess-1/actions", body)
		s.Require().Equal(http.StatusOK, rec.Code, "%s: %s", step.action, rec.Body.String())

		var got quoteBody
		s.decode(rec, &got)
		s.Equal(step.price, got.Quote.Price, step.action)
	}

	rec = s.do(http.MethodGet, "/v1/sessions/sess-1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/v1/sessions?owner_id=user-1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list struct {
		Sessions []map[string]any `json:"sessions"`
	}
	s.decode(rec, &list)
	s.Len(list.Sessions, 1)

	rec = s.do(http.MethodDelete, "/v1/sessions/sess-1", nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/v1/sessions/sess-1", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestSessionActionErrors() {
	rec := s.do(http.MethodPost, "/v1/sessions", map[string]any{"owner_id": "user-1"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		field  string
	}{
		{
			name:   "unknown action",
			body:   map[string]any{"action": "explode"},
			status: http.StatusBadRequest,
			field:  "action",
		},
		{
			name:   "number action with string value",
			body:   map[string]any{"action": api.ActionSetCardLevel, "value": "three"},
			status: http.StatusBadRequest,
			field:  "value",
		},
		{
			name:   "out of range value",
			body:   map[string]any{"action": api.ActionSetTargetedHexCount, "value": 20},
			status: http.StatusBadRequest,
			field:  "targeted_hex_count",
		},
		{
			name:   "missing action",
			body:   map[string]any{},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, "/v1/sessions/sess-1/actions", tt.body)
			s.Equal(tt.status, rec.Code)

			var body errorBody
			s.decode(rec, &body)
			if tt.field != "" {
				s.Equal(tt.field, body.Error.Field)
			}
		})
	}

	rec = s.do(http.MethodPost, "/v1/sessions/missing/actions", map[string]any{"action": api.ActionReset})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestCreateSession_Validation() {
	rec := s.do(http.MethodPost, "/v1/sessions", map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/v1/sessions", map[string]any{"owner_id": "user-1", "variant": "nope"})
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewServer_Panics(t *testing.T) {
	assert.Panics(t, func() { api.NewServer(nil) })
	assert.Panics(t, func() { api.NewServer(&api.ServerConfig{}) })
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := calculator.NewService(&calculator.ServiceConfig{
		Repository: selections.NewInMemoryRepository(nil),
		Rules:      rulebook.MustDefault(),
	})
	handler := api.NewServer(&api.ServerConfig{
		Service:        svc,
		AllowedOrigins: []string{"https://app.example.org"},
	}).Handler()

	// httptest requests carry Host example.com, so every origin here is cross-origin
	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/v1/variants", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://app.example.org")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("https://other.example.net")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
