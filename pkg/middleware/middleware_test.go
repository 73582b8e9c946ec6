package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poshan-stack/nutriscan/pkg/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestStackAppliesInOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	sys := middleware.New()
	sys.Use(tag("first"))
	sys.Use(tag("second"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	sys.Apply(okHandler()).ServeHTTP(rec, req)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("execution order = %v, want [first second]", order)
	}
}

func TestStackEmptyPassesThrough(t *testing.T) {
	sys := middleware.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	sys.Apply(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"https://app.example.com"},
		AllowCredentials: true,
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	handler := middleware.CORS(cfg)(okHandler())

	t.Run("allowed origin gets headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("allow-origin = %q, want https://app.example.com", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("allow-credentials = %q, want true", got)
		}
		if rec.Header().Get("Access-Control-Max-Age") == "" {
			t.Error("max-age header missing")
		}
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("allow-origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		h := middleware.CORS(cfg)(inner)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if called {
			t.Error("inner handler called on preflight")
		}
	})

	t.Run("disabled passes through", func(t *testing.T) {
		disabled := &middleware.CORSConfig{Enabled: false}
		h := middleware.CORS(disabled)(okHandler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("allow-origin = %q, want empty", got)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestCORSConfigFinalizeDefaults(t *testing.T) {
	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if len(cfg.AllowedMethods) == 0 {
		t.Error("AllowedMethods not defaulted")
	}
	if len(cfg.AllowedHeaders) == 0 {
		t.Error("AllowedHeaders not defaulted")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfigEnvOverrides(t *testing.T) {
	t.Setenv("NUTRISCAN_TEST_CORS_ENABLED", "true")
	t.Setenv("NUTRISCAN_TEST_CORS_ORIGINS", "https://a.example.com , https://b.example.com,")

	env := &middleware.CORSEnv{
		Enabled: "NUTRISCAN_TEST_CORS_ENABLED",
		Origins: "NUTRISCAN_TEST_CORS_ORIGINS",
	}

	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled not overridden")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "https://a.example.com" || cfg.Origins[1] != "https://b.example.com" {
		t.Errorf("Origins = %v, want two trimmed entries", cfg.Origins)
	}
}

func TestLogger(t *testing.T) {
	handler := middleware.Logger(discardLogger())(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/assessments", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRecovery(t *testing.T) {
	t.Run("panic becomes 500", func(t *testing.T) {
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})
		handler := middleware.Recovery(discardLogger())(panicking)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})

	t.Run("normal handler unaffected", func(t *testing.T) {
		handler := middleware.Recovery(discardLogger())(okHandler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}
