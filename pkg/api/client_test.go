package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aswin-K5/nutriview/pkg/api"
	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/session"
	"github.com/Aswin-K5/nutriview/pkg/storage"
)

type staticTokens string

func (s staticTokens) Token() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts api.Options) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts.BaseURL = srv.URL
	return api.New(opts)
}

func TestBearerHeaderInjection(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, api.Options{Tokens: staticTokens("abc123")})

	if _, err := client.Recalls(context.Background()); err != nil {
		t.Fatalf("Recalls: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc123")
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasAuth = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		w.Write([]byte(`[]`))
	}, api.Options{Tokens: staticTokens("")})

	if _, err := client.SearchFoods(context.Background(), "apple", 10); err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if hasAuth {
		t.Errorf("unauthenticated request carried Authorization %q", gotAuth)
	}
}

func TestLoginWireFormat(t *testing.T) {
	var gotContentType, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("path = %q, want /api/v1/auth/login", r.URL.Path)
		}
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":1800}`))
	}, api.Options{})

	resp, err := client.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "tok" {
		t.Errorf("AccessToken = %q, want tok", resp.AccessToken)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form encoding", gotContentType)
	}
	if gotBody != "password=pw&username=a%40b.com" {
		t.Errorf("body = %q, want form-encoded username/password", gotBody)
	}
}

func TestMeUsesExplicitToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"email":"a@b.com","full_name":"Ada B","role":"patient"}`))
	}, api.Options{Tokens: staticTokens("ambient")})

	// During registration the session store is still empty; Me must send
	// the token it was handed, not whatever the ambient source holds.
	user, err := client.Me(context.Background(), "fresh-token")
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer fresh-token" {
		t.Errorf("Authorization = %q, want the explicit token", gotAuth)
	}
	if user.Role != model.RolePatient {
		t.Errorf("role = %q, want patient", user.Role)
	}
}

func TestRegisterDefaultsRoleToPatient(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":2,"email":"a@b.com","full_name":"Ada B","role":"patient"}`))
	}, api.Options{})

	_, err := client.Register(context.Background(), api.RegisterParams{
		Email: "a@b.com", Password: "longenough", FullName: "Ada B",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	want := `{"email":"a@b.com","password":"longenough","full_name":"Ada B","role":"patient"}`
	if gotBody != want {
		t.Errorf("body = %s, want %s", gotBody, want)
	}
}

func TestUnauthorizedForcesLogout(t *testing.T) {
	kv := storage.NewMemory()
	st := session.New(kv)
	if err := st.SetAuth("abc123", &model.User{ID: 1, Email: "a@b.com", FullName: "Ada B", Role: model.RolePatient}); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}

	var navigated string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}, api.Options{
		Tokens: st,
		OnUnauthorized: func() {
			// Storage must be cleared before the redirect lands so the login
			// screen's guards observe a logged-out state.
			st.Logout()
			navigated = "/login"
		},
	})

	_, err := client.Recalls(context.Background())
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if st.Current().LoggedIn() {
		t.Errorf("session survived a 401")
	}
	if kv.Len() != 0 {
		t.Errorf("storage not cleared on 401: %d keys", kv.Len())
	}
	if navigated != "/login" {
		t.Errorf("navigated to %q, want /login", navigated)
	}
}

func TestOnly401ClearsSession(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		st := session.New(storage.NewMemory())
		if err := st.SetAuth("abc123", &model.User{ID: 1, Role: model.RolePatient}); err != nil {
			t.Fatalf("SetAuth: %v", err)
		}

		fired := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail":"nope"}`))
		}, api.Options{
			Tokens:         st,
			OnUnauthorized: func() { fired = true; st.Logout() },
		})

		_, err := client.Recalls(context.Background())

		var apiErr *api.Error
		if !errors.As(err, &apiErr) || apiErr.Status != status {
			t.Errorf("status %d: error = %v, want *api.Error with that status", status, err)
		}
		if errors.Is(err, api.ErrUnauthorized) {
			t.Errorf("status %d misreported as unauthorized", status)
		}
		if fired || !st.Current().LoggedIn() {
			t.Errorf("status %d must not touch the session", status)
		}
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"Email already registered"}`))
	}, api.Options{})

	_, err := client.Register(context.Background(), api.RegisterParams{Email: "a@b.com", Password: "longenough", FullName: "Ada B"})

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *api.Error", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Detail != "Email already registered" {
		t.Errorf("got %+v, want 409 with backend detail", apiErr)
	}
}

func TestRequestTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}, api.Options{Timeout: 20 * time.Millisecond})

	_, err := client.Recalls(context.Background())
	if err == nil {
		t.Fatalf("expected a timeout error")
	}
	if errors.Is(err, api.ErrUnauthorized) {
		t.Errorf("timeout misreported as unauthorized: %v", err)
	}
}

func TestRequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			t.Errorf("missing X-Request-ID")
		}
		seen[id] = true
		w.Write([]byte(`[]`))
	}, api.Options{})

	for i := 0; i < 3; i++ {
		if _, err := client.Recalls(context.Background()); err != nil {
			t.Fatalf("Recalls: %v", err)
		}
	}
	if len(seen) != 3 {
		t.Errorf("request ids not unique: %d distinct of 3", len(seen))
	}
}
