// Package authmsg maps identity-provider error codes to the fixed localized
// strings shown inline in the auth and profile forms. Provider failures are
// never fatal; the user can always retry.
package authmsg

const (
	CodeWrongPassword      = "auth/wrong-password"
	CodeUserNotFound       = "auth/user-not-found"
	CodeEmailInUse         = "auth/email-already-in-use"
	CodeWeakPassword       = "auth/weak-password"
	CodeRecentLoginNeeded  = "auth/requires-recent-login"
	CodePasswordsDontMatch = "auth/passwords-dont-match"
)

var messages = map[string]string{
	CodeWrongPassword:      "Senha atual incorreta.",
	CodeUserNotFound:       "Usuário não encontrado.",
	CodeEmailInUse:         "Este email já está em uso.",
	CodeWeakPassword:       "A senha deve ter pelo menos 6 caracteres.",
	CodeRecentLoginNeeded:  "Para alterar email ou senha, faça login novamente.",
	CodePasswordsDontMatch: "As senhas não coincidem.",
}

// Default is shown for any unmapped provider error.
const Default = "Erro ao processar a solicitação. Tente novamente."

// Message resolves a provider error code to its user-facing text.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return Default
}
