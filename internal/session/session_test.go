package session

import (
	"io"
	"log/slog"
	"testing"
)

func testReader(t *testing.T) (*Reader, *Store) {
	t.Helper()
	store := NewStore(t.TempDir())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReader(store, log), store
}

func TestCurrentResolvesPrimaryKeys(t *testing.T) {
	t.Parallel()
	r, store := testReader(t)

	if err := store.Set(KeyToken, "tok-1"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := store.Set(KeyUser, `{"id":7,"nome":"Maria Souza","tipo":"VENDEDOR"}`); err != nil {
		t.Fatalf("set user: %v", err)
	}

	sess := r.Current()
	if sess == nil {
		t.Fatal("expected a session")
	}
	if sess.Token != "tok-1" {
		t.Errorf("Token = %q, want tok-1", sess.Token)
	}
	if got := sess.User.ID.String(); got != "7" {
		t.Errorf("User.ID = %q, want 7", got)
	}
	if sess.Role() != RoleSeller {
		t.Errorf("Role = %q, want %q", sess.Role(), RoleSeller)
	}
	if sess.FirstName() != "Maria" {
		t.Errorf("FirstName = %q, want Maria", sess.FirstName())
	}
}

func TestCurrentFallsBackToAliasKeys(t *testing.T) {
	t.Parallel()
	r, store := testReader(t)

	if err := store.Set(KeyTokenAlias, "tok-alias"); err != nil {
		t.Fatalf("set token alias: %v", err)
	}
	if err := store.Set(KeyUserAlias, `{"id":"abc","nome":"João","tipo":"CLIENTE"}`); err != nil {
		t.Fatalf("set user alias: %v", err)
	}

	sess := r.Current()
	if sess == nil {
		t.Fatal("expected a session from alias keys")
	}
	if sess.Token != "tok-alias" {
		t.Errorf("Token = %q, want tok-alias", sess.Token)
	}
	if got := sess.User.ID.String(); got != "abc" {
		t.Errorf("User.ID = %q, want abc (string ids pass through)", got)
	}
}

func TestCurrentMissingHalvesMeanVisitor(t *testing.T) {
	t.Parallel()

	t.Run("no token", func(t *testing.T) {
		r, store := testReader(t)
		_ = store.Set(KeyUser, `{"id":1,"nome":"A","tipo":"CLIENTE"}`)
		if r.Current() != nil {
			t.Fatal("user without token should resolve to nil")
		}
	})

	t.Run("no user", func(t *testing.T) {
		r, store := testReader(t)
		_ = store.Set(KeyToken, "tok")
		if r.Current() != nil {
			t.Fatal("token without user should resolve to nil")
		}
	})
}

func TestCorruptUserClearsEverything(t *testing.T) {
	t.Parallel()
	r, store := testReader(t)

	_ = store.Set(KeyToken, "tok")
	_ = store.Set(KeyTokenAlias, "tok2")
	_ = store.Set(KeyUser, `{not json`)
	_ = store.Set(KeyUserAlias, `{"id":1}`)

	if r.Current() != nil {
		t.Fatal("corrupt user payload should resolve to nil")
	}
	for _, k := range allKeys {
		if v := store.Get(k); v != "" {
			t.Errorf("key %q survived the clear: %q", k, v)
		}
	}
}

func TestUnknownTipoIsClient(t *testing.T) {
	t.Parallel()
	cases := []struct {
		tipo string
		want Role
	}{
		{"VENDEDOR", RoleSeller},
		{"vendedor", RoleSeller},
		{"ADMIN", RoleAdmin},
		{"CLIENTE", RoleClient},
		{"gerente", RoleClient},
		{"", RoleClient},
	}
	for _, tc := range cases {
		s := &Session{User: User{Tipo: tc.tipo}}
		if got := s.Role(); got != tc.want {
			t.Errorf("Role(%q) = %q, want %q", tc.tipo, got, tc.want)
		}
	}
}

func TestFirstNameDefault(t *testing.T) {
	t.Parallel()
	s := &Session{}
	if got := s.FirstName(); got != "usuário" {
		t.Errorf("FirstName = %q, want usuário", got)
	}
}

func TestTokenExpiryOpaqueTokenIsNil(t *testing.T) {
	t.Parallel()
	if exp := tokenExpiry("not-a-jwt"); exp != nil {
		t.Fatalf("opaque token should have no expiry, got %v", exp)
	}
}

func TestLogoutClearsAliasSpellings(t *testing.T) {
	t.Parallel()
	r, store := testReader(t)

	_ = store.Set(KeyToken, "a")
	_ = store.Set(KeyTokenAlias, "b")
	_ = store.Set(KeyUser, `{"id":1,"nome":"X","tipo":"CLIENTE"}`)
	_ = store.Set(KeyUserAlias, `{"id":1}`)

	r.Logout()

	for _, k := range allKeys {
		if store.Get(k) != "" {
			t.Errorf("key %q still set after logout", k)
		}
	}
}
