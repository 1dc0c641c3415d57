package checkout

import (
	"testing"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
)

func testPlan() plans.Plan {
	return plans.Plan{Name: "Premium", Price: "R$ 39,90/mês"}
}

func TestSelectMethod(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	if s.State() != StateSelectingMethod {
		t.Fatalf("new session state = %q, want %q", s.State(), StateSelectingMethod)
	}

	if err := s.SelectMethod("dinheiro"); err != ErrUnknownMethod {
		t.Fatalf("unknown method error = %v, want ErrUnknownMethod", err)
	}
	if s.State() != StateSelectingMethod {
		t.Fatalf("rejected method must not change state, got %q", s.State())
	}

	if err := s.SelectMethod(MethodPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateEnteringDetails || s.Method() != MethodPix {
		t.Fatalf("state=%q method=%q after select", s.State(), s.Method())
	}
}

func TestSelectMethod_SwitchResetsErrors(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	if err := s.SelectMethod(MethodCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.mu.Lock()
	s.errors = s.validate() // empty card form fails every check
	s.mu.Unlock()
	if len(s.Errors()) == 0 {
		t.Fatal("expected validation errors for an empty card form")
	}

	if err := s.SelectMethod(MethodBoleto); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Errors()) != 0 {
		t.Fatalf("switching method must reset errors, got %v", s.Errors())
	}
}

func TestSetCardFields_AppliesMasks(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	s.SetCardFields("1234567890123456", "joão silva", "1226", "123")

	card := s.Card()
	if card.Number != "1234 5678 9012 3456" {
		t.Fatalf("card number = %q", card.Number)
	}
	if card.Name != "JOÃO SILVA" {
		t.Fatalf("card name = %q, want uppercased", card.Name)
	}
	if card.Expiry != "12/26" {
		t.Fatalf("expiry = %q", card.Expiry)
	}
}

func TestValidate_Card(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		number  string
		holder  string
		expiry  string
		cvv     string
		wantKey string
	}{
		{name: "15 digit number", number: "123456789012345", holder: "A B", expiry: "1226", cvv: "123", wantKey: "number"},
		{name: "blank holder", number: "1234567890123456", holder: "  ", expiry: "1226", cvv: "123", wantKey: "name"},
		{name: "short expiry", number: "1234567890123456", holder: "A B", expiry: "1", cvv: "123", wantKey: "expiry"},
		{name: "short cvv", number: "1234567890123456", holder: "A B", expiry: "1226", cvv: "12", wantKey: "cvv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(1, testPlan())
			if err := s.SelectMethod(MethodCard); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s.SetCardFields(tt.number, tt.holder, tt.expiry, tt.cvv)

			s.mu.Lock()
			errs := s.validate()
			s.mu.Unlock()

			if _, ok := errs[tt.wantKey]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantKey, errs)
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
		})
	}
}

func TestValidate_CardMessages(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	if err := s.SelectMethod(MethodCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.mu.Lock()
	errs := s.validate()
	s.mu.Unlock()

	want := map[string]string{
		"number": "Número do cartão deve ter 16 dígitos",
		"name":   "Nome no cartão é obrigatório",
		"expiry": "Data de validade deve estar no formato MM/AA",
		"cvv":    "CVV deve ter 3 ou 4 dígitos",
	}
	for k, msg := range want {
		if errs[k] != msg {
			t.Fatalf("errs[%q] = %q, want %q", k, errs[k], msg)
		}
	}
}

func TestValidate_MaskedCPFCountsDigitsOnly(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	if err := s.SelectMethod(MethodPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetPixFields("123.456.789-00", "Maria")

	s.mu.Lock()
	errs := s.validate()
	s.mu.Unlock()

	if len(errs) != 0 {
		t.Fatalf("masked CPF with 11 digits must validate, got %v", errs)
	}
}

func TestValidate_Boleto(t *testing.T) {
	t.Parallel()

	s := newSession(1, testPlan())
	if err := s.SelectMethod(MethodBoleto); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetBoletoFields("123", "", "not-an-email", "12")

	s.mu.Lock()
	errs := s.validate()
	s.mu.Unlock()

	want := map[string]string{
		"cpf":   "CPF deve ter 11 dígitos",
		"name":  "Nome é obrigatório",
		"email": "Email inválido",
		"phone": "Telefone deve ter 10 ou 11 dígitos",
	}
	for k, msg := range want {
		if errs[k] != msg {
			t.Fatalf("errs[%q] = %q, want %q", k, errs[k], msg)
		}
	}
}

func TestReference(t *testing.T) {
	t.Parallel()

	card := newSession(1, testPlan())
	if err := card.SelectMethod(MethodCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	card.SetCardFields("1234567890123456", "A B", "1226", "123")
	if got := card.Reference(); got != "**** **** **** 3456" {
		t.Fatalf("card reference = %q", got)
	}

	pix := newSession(1, testPlan())
	if err := pix.SelectMethod(MethodPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pix.SetPixFields("12345678900", "Maria")
	if got := pix.Reference(); got != "123.456.789-00" {
		t.Fatalf("pix reference = %q", got)
	}
}
