package session_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/session"
	"github.com/Aswin-K5/nutriview/pkg/storage"
)

func testUser() *model.User {
	return &model.User{ID: 7, Email: "a@b.com", FullName: "Ada B", Role: model.RolePatient}
}

// checkPaired fails unless token and user are both present or both absent,
// in memory and in storage.
func checkPaired(t *testing.T, st *session.Store, kv *storage.MemoryStore) {
	t.Helper()

	cur := st.Current()
	if (cur.Token != "") != (cur.User != nil) {
		t.Fatalf("in-memory pairing broken: token=%q user=%v", cur.Token, cur.User)
	}

	_, hasToken := kv.Get("nutriview.token")
	_, hasUser := kv.Get("nutriview.user")
	if hasToken != hasUser {
		t.Fatalf("stored pairing broken: token=%v user=%v", hasToken, hasUser)
	}
}

func TestSetAuthLogoutPairing(t *testing.T) {
	kv := storage.NewMemory()
	st := session.New(kv)
	checkPaired(t, st, kv)

	if err := st.SetAuth("abc123", testUser()); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	checkPaired(t, st, kv)

	if !st.Current().LoggedIn() {
		t.Fatalf("expected logged-in session after SetAuth")
	}

	if err := st.UpdateUser(&model.User{ID: 7, Email: "a@b.com", FullName: "Ada B", Role: model.RoleInvestigator}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	checkPaired(t, st, kv)
	if got := st.Current().User.Role; got != model.RoleInvestigator {
		t.Errorf("role after UpdateUser = %q, want investigator", got)
	}

	st.Logout()
	checkPaired(t, st, kv)
	if st.Current().LoggedIn() {
		t.Fatalf("still logged in after Logout")
	}
}

func TestSetAuthRejectsHalfSessions(t *testing.T) {
	st := session.New(storage.NewMemory())

	if err := st.SetAuth("", testUser()); err != session.ErrEmptyToken {
		t.Errorf("empty token: got %v, want ErrEmptyToken", err)
	}
	if err := st.SetAuth("abc123", nil); err != session.ErrNilUser {
		t.Errorf("nil user: got %v, want ErrNilUser", err)
	}
	if st.Current().LoggedIn() {
		t.Fatalf("rejected SetAuth must not leave a session behind")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	kv := storage.NewMemory()
	st := session.New(kv)

	if err := st.SetAuth("abc123", testUser()); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}

	st.Logout()
	after := st.Current()
	st.Logout() // second call must be a silent no-op

	if diff := cmp.Diff(after, st.Current()); diff != "" {
		t.Errorf("second Logout changed state (-want +got):\n%s", diff)
	}
	if kv.Len() != 0 {
		t.Errorf("storage not empty after logout: %d keys", kv.Len())
	}
}

func TestDurableRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	st := session.New(kv)
	if err := st.SetAuth("abc123", testUser()); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}

	// Simulate an app restart: a fresh store over the same storage.
	reloaded := session.New(kv)

	want := model.Session{Token: "abc123", User: testUser()}
	if diff := cmp.Diff(want, reloaded.Current()); diff != "" {
		t.Errorf("restored session mismatch (-want +got):\n%s", diff)
	}
}

func TestMalformedStoredUser(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set("nutriview.token", "abc123")
	kv.Set("nutriview.user", "{not json")

	st := session.New(kv)

	if st.Current().LoggedIn() {
		t.Fatalf("corrupt stored user must yield a logged-out session")
	}
	checkPaired(t, st, kv)
	if kv.Len() != 0 {
		t.Errorf("corrupt session not cleared from storage: %d keys", kv.Len())
	}
}

func TestHalfStoredSessionIsLoggedOut(t *testing.T) {
	tests := map[string]map[string]string{
		"token only": {"nutriview.token": "abc123"},
		"user only":  {"nutriview.user": `{"id":7,"email":"a@b.com","full_name":"Ada B","role":"patient"}`},
		"empty token": {
			"nutriview.token": "",
			"nutriview.user":  `{"id":7,"email":"a@b.com","full_name":"Ada B","role":"patient"}`,
		},
	}

	for name, seed := range tests {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemory()
			for k, v := range seed {
				kv.Set(k, v)
			}

			st := session.New(kv)
			if st.Current().LoggedIn() {
				t.Fatalf("half-stored session must be treated as logged out")
			}
			checkPaired(t, st, kv)
		})
	}
}

func TestTokenReadsDurableMirror(t *testing.T) {
	kv := storage.NewMemory()
	st := session.New(kv)

	if _, ok := st.Token(); ok {
		t.Fatalf("Token() on logged-out store must report absent")
	}

	if err := st.SetAuth("abc123", testUser()); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	if token, ok := st.Token(); !ok || token != "abc123" {
		t.Fatalf("Token() = (%q, %v), want (abc123, true)", token, ok)
	}

	st.Logout()
	if _, ok := st.Token(); ok {
		t.Fatalf("Token() after logout must report absent")
	}
}

func TestSubscribe(t *testing.T) {
	st := session.New(storage.NewMemory())

	var got []model.Session
	unsub := st.Subscribe(func(s model.Session) { got = append(got, s) })

	if err := st.SetAuth("abc123", testUser()); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	st.Logout()
	st.Logout() // already out; no notification

	unsub()
	if err := st.SetAuth("def456", testUser()); err != nil {
		t.Fatalf("SetAuth after unsubscribe: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if !got[0].LoggedIn() || got[0].Token != "abc123" {
		t.Errorf("first notification should carry the new session, got %+v", got[0])
	}
	if got[1].LoggedIn() {
		t.Errorf("second notification should be logged out, got %+v", got[1])
	}
}
