package models

import "testing"

func TestCreateUser(t *testing.T) {
	t.Parallel()

	u, err := CreateUser("Maria Souza", "maria@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Role != ROLE_USER {
		t.Fatalf("role = %q, want %q", u.Role, ROLE_USER)
	}
	if u.Status != STATUS_ACTIVE {
		t.Fatalf("status = %q, want %q", u.Status, STATUS_ACTIVE)
	}
	if u.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if !u.CheckPassword("secret123") {
		t.Fatal("stored hash does not verify the original password")
	}
	if u.CheckPassword("wrong") {
		t.Fatal("wrong password verified")
	}
}

func TestCreateUser_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "short name", username: "ab", email: "a@b.com", password: "secret123"},
		{name: "bad email", username: "Maria", email: "not-an-email", password: "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CreateUser(tt.username, tt.email, tt.password); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSetPassword(t *testing.T) {
	t.Parallel()

	u, err := CreateUser("Maria Souza", "maria@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := u.SetPassword("another456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.CheckPassword("secret123") {
		t.Fatal("old password still verifies")
	}
	if !u.CheckPassword("another456") {
		t.Fatal("new password does not verify")
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	u := &User{Status: STATUS_ACTIVE}
	if !u.IsActive() {
		t.Fatal("active user reported inactive")
	}

	u.Status = STATUS_DISABLED
	if u.IsActive() {
		t.Fatal("disabled user reported active")
	}
}
