package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "https://chef.example.com",
			allowedOrigins: []string{"https://chef.example.com"},
			want:           true,
		},
		{
			name:           "wildcard match",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{"http://localhost:*"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches second",
			origin:         "https://chef.example.com",
			allowedOrigins: []string{"http://localhost:*", "https://chef.example.com"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "http://evil.com",
			allowedOrigins: []string{"http://localhost:*"},
			want:           false,
		},
		{
			name:           "empty origin",
			origin:         "",
			allowedOrigins: []string{"http://localhost:*"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantCORS   bool
	}{
		{"allowed origin - GET request", "http://localhost:5173", "GET", http.StatusOK, true},
		{"allowed origin - OPTIONS request", "http://localhost:5173", "OPTIONS", http.StatusNoContent, true},
		{"disallowed origin", "http://evil.com", "GET", http.StatusOK, false},
		{"no origin header", "", "GET", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware([]string{"http://localhost:*"}))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			corsHeader := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantCORS {
				if corsHeader != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %s, want %s", corsHeader, tt.origin)
				}
				if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
					t.Errorf("Access-Control-Allow-Credentials not set to true")
				}
			} else if corsHeader != "" {
				t.Errorf("Access-Control-Allow-Origin should not be set for disallowed origin, got %s", corsHeader)
			}
		})
	}
}

func TestCORSMiddleware_PreflightAllowsUserHeader(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:*"}))
	router.PATCH("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, UserIDHeader) {
		t.Errorf("Access-Control-Allow-Headers = %q, want it to list %s", got, UserIDHeader)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PATCH") {
		t.Errorf("Access-Control-Allow-Methods = %q, want PATCH", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(60, 2))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two requests = %v, want 200s", codes[:2])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
		}
	})

	t.Run("tracks clients separately", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(60, 1))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("client %s status = %d, want 200", addr, w.Code)
			}
		}
	})

	t.Run("non-positive limit disables limiting", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(0, 0))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, w.Code)
			}
		}
	})
}

func TestIPRateLimiter_SweepsIdleClients(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(60, 1)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		l.get(ip)
	}
	if got := l.size(); got != 3 {
		t.Fatalf("size = %d, want 3", got)
	}

	// one client stays active, the others go quiet
	clock = clock.Add(l.idleTTL / 2)
	l.get("10.0.0.1")
	if got := l.size(); got != 3 {
		t.Errorf("size before the sweep interval = %d, want 3", got)
	}

	clock = clock.Add(l.idleTTL / 2)
	l.get("10.0.0.9")
	if got := l.size(); got != 2 {
		t.Errorf("size after sweep = %d, want 2 (active client and the newcomer)", got)
	}

	// a swept client comes back with a fresh bucket
	first := l.get("10.0.0.1")
	clock = clock.Add(2 * l.idleTTL)
	if l.get("10.0.0.1") == first {
		t.Error("idle client kept its old bucket after the sweep")
	}
	if got := l.size(); got != 1 {
		t.Errorf("size after second sweep = %d, want 1", got)
	}
}

func TestUserIdentity(t *testing.T) {
	router := gin.New()
	router.Use(UserIdentityMiddleware())
	router.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, currentUser(c)) })
	router.GET("/closed", RequireUser(), func(c *gin.Context) { c.String(http.StatusOK, currentUser(c)) })

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
		wantBody string
	}{
		{"open without header", "/open", "", http.StatusOK, ""},
		{"open with header", "/open", "alice", http.StatusOK, "alice"},
		{"closed without header", "/closed", "", http.StatusUnauthorized, ""},
		{"closed with blank header", "/closed", "   ", http.StatusUnauthorized, ""},
		{"closed with header", "/closed", " bob ", http.StatusOK, "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK && w.Body.String() != tt.wantBody {
				t.Errorf("Body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RecoveryMiddleware(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
