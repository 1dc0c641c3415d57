package authmsg

import "testing"

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{code: CodeWrongPassword, want: "Senha atual incorreta."},
		{code: CodeUserNotFound, want: "Usuário não encontrado."},
		{code: CodeEmailInUse, want: "Este email já está em uso."},
		{code: CodeWeakPassword, want: "A senha deve ter pelo menos 6 caracteres."},
		{code: CodeRecentLoginNeeded, want: "Para alterar email ou senha, faça login novamente."},
		{code: CodePasswordsDontMatch, want: "As senhas não coincidem."},
		{code: "auth/network-request-failed", want: Default},
		{code: "", want: Default},
	}

	for _, tt := range tests {
		if got := Message(tt.code); got != tt.want {
			t.Fatalf("Message(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
