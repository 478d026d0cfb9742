package handlers_test

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/SscSPs/bizbooks_app/cmd/docs"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/handlers"
	"github.com/SscSPs/bizbooks_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ginParam = regexp.MustCompile(`:([A-Za-z]+)`)

// swaggerPath maps a registered gin route onto the path its annotation documents.
// Both document collections share the /{kind} annotations.
func swaggerPath(route string) string {
	p := strings.TrimPrefix(route, "/api/v1")
	for _, kind := range []string{"/sales", "/purchases"} {
		if p == kind || strings.HasPrefix(p, kind+"/") {
			p = "/{kind}" + strings.TrimPrefix(p, kind)
		}
	}
	if p == "" {
		p = "/"
	}
	return ginParam.ReplaceAllString(p, "{$1}")
}

func TestSwaggerDocMatchesRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, &config.Config{
		JWTSecret:     "test-secret-key-that-is-long-enough",
		AuthRateLimit: "100-M",
		IsProduction:  true,
	}, &portssvc.ServiceContainer{
		Document:           new(MockDocumentService),
		Expense:            new(MockExpenseService),
		User:               new(MockUserService),
		Reporting:          new(MockReportingService),
		TokenService:       new(MockTokenService),
		GoogleOAuthHandler: new(MockGoogleOAuthService),
	}, nil))

	var doc struct {
		Paths map[string]map[string]struct {
			Tags []string `json:"tags"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	routed := map[string]bool{}
	for _, route := range r.Routes() {
		if route.Method == http.MethodOptions {
			continue
		}
		path := swaggerPath(route.Path)
		method := strings.ToLower(route.Method)
		routed[path+" "+method] = true

		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "%s %s is not documented", route.Method, route.Path) {
			assert.Contains(t, ops, method, "%s %s is not documented", route.Method, route.Path)
		}
	}

	for path, ops := range doc.Paths {
		for method, op := range ops {
			assert.True(t, routed[path+" "+method], "documented %s %s has no route", method, path)
			if strings.HasPrefix(path, "/{kind}") {
				assert.Equal(t, []string{"documents"}, op.Tags, "%s %s", method, path)
			}
		}
	}
}
