//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbook/internal/handler/api"
	"courtbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	targets []config.WatchTarget
}

func (s *stubLister) Targets() []config.WatchTarget { return s.targets }

func TestListTargets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(lister *stubLister) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/watch/targets", api.NewWatchHandler(lister).ListTargets)
		req := httptest.NewRequest(http.MethodGet, "/watch/targets", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("returns the configured targets", func(t *testing.T) {
		rec := serve(&stubLister{targets: []config.WatchTarget{
			{ID: "padel-evenings", CourtID: 7, DaysAhead: 7},
		}})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Targets []config.WatchTarget `json:"targets"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Targets, 1)
		assert.Equal(t, "padel-evenings", resp.Targets[0].ID)
	})

	t.Run("empty watch list serializes as an empty array", func(t *testing.T) {
		rec := serve(&stubLister{})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"targets":[]}`, rec.Body.String())
	})
}
