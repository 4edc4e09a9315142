package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// newManager creates a real in-memory session manager. Handler tests run
// against it directly since sessions live in process memory anyway.
func newManager() *service.Manager {
	return service.NewManager(testLogger(), nil, nil, 0, 0)
}

// mustCreate seeds a session through the manager and returns its snapshot.
func mustCreate(t *testing.T, m *service.Manager, rel models.RelationshipType) models.SessionSnapshot {
	t.Helper()

	snap, err := m.Create(models.TemplateRequest{
		Relationship: rel,
		PersonASex:   models.SexMale,
		PersonBSex:   models.SexFemale,
	})
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	return snap
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}
