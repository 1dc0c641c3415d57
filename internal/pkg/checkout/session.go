package checkout

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
)

// Method is one of the three supported payment methods.
type Method string

const (
	MethodCard   Method = "cartao"
	MethodPix    Method = "pix"
	MethodBoleto Method = "boleto"
)

// State is the checkout lifecycle position. A session moves strictly forward
// except that validation failures keep it in StateEnteringDetails.
type State string

const (
	StateSelectingMethod State = "selecting_method"
	StateEnteringDetails State = "entering_details"
	StateSubmitting      State = "submitting"
	StateSucceeded       State = "succeeded"
)

var (
	ErrUnknownMethod     = errors.New("checkout: unknown payment method")
	ErrNoMethodSelected  = errors.New("checkout: no payment method selected")
	ErrAlreadySubmitting = errors.New("checkout: settlement already in progress")
	ErrAlreadySucceeded  = errors.New("checkout: session already settled")
)

// CardFields holds the credit-card form, already masked.
type CardFields struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

// PixFields holds the pix form, CPF already masked.
type PixFields struct {
	CPF  string
	Name string
}

// BoletoFields holds the bank-slip form, CPF and phone already masked.
type BoletoFields struct {
	CPF   string
	Name  string
	Email string
	Phone string
}

// Session is one in-flight checkout for one user and plan. All three field
// sets live in memory but only the one matching Method is rendered and
// validated; Errors only ever holds keys of the selected method.
type Session struct {
	ID        string
	UserID    uint
	Plan      plans.Plan
	CreatedAt time.Time

	mu        sync.Mutex
	state     State
	method    Method
	card      CardFields
	pix       PixFields
	boleto    BoletoFields
	errors    map[string]string
	abandoned bool
}

func newSession(userID uint, plan plans.Plan) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Plan:      plan,
		CreatedAt: time.Now(),
		state:     StateSelectingMethod,
		errors:    map[string]string{},
	}
}

// State returns the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Method returns the selected payment method, empty until one is chosen.
func (s *Session) Method() Method {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// Errors returns a copy of the current validation error map.
func (s *Session) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Card returns the masked credit-card fields.
func (s *Session) Card() CardFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card
}

// Pix returns the masked pix fields.
func (s *Session) Pix() PixFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pix
}

// Boleto returns the masked bank-slip fields.
func (s *Session) Boleto() BoletoFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boleto
}

// SelectMethod moves the session into the details step. Re-selecting while
// already entering details switches the active form and discards the errors
// of the previous method; the other field sets keep their values but are
// neither rendered nor validated.
func (s *Session) SelectMethod(m Method) error {
	switch m {
	case MethodCard, MethodPix, MethodBoleto:
	default:
		return ErrUnknownMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return ErrAlreadySubmitting
	case StateSucceeded:
		return ErrAlreadySucceeded
	}
	s.method = m
	s.state = StateEnteringDetails
	s.errors = map[string]string{}
	return nil
}

// SetCardFields applies the input masks and stores the credit-card form.
func (s *Session) SetCardFields(number, name, expiry, cvv string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.card = CardFields{
		Number: FormatCardNumber(number),
		Name:   strings.ToUpper(name),
		Expiry: FormatExpiry(expiry),
		CVV:    FormatCVV(cvv),
	}
}

// SetPixFields applies the input masks and stores the pix form.
func (s *Session) SetPixFields(cpf, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pix = PixFields{CPF: FormatCPF(cpf), Name: name}
}

// SetBoletoFields applies the input masks and stores the bank-slip form.
func (s *Session) SetBoletoFields(cpf, name, email, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boleto = BoletoFields{
		CPF:   FormatCPF(cpf),
		Name:  name,
		Email: email,
		Phone: FormatPhone(phone),
	}
}

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validate checks the fields of the selected method only and returns the
// error map. An empty map means the form may be submitted.
func (s *Session) validate() map[string]string {
	errs := map[string]string{}
	switch s.method {
	case MethodCard:
		if len(digitsOnly(s.card.Number)) != 16 {
			errs["number"] = "Número do cartão deve ter 16 dígitos"
		}
		if strings.TrimSpace(s.card.Name) == "" {
			errs["name"] = "Nome no cartão é obrigatório"
		}
		if !expiryPattern.MatchString(s.card.Expiry) {
			errs["expiry"] = "Data de validade deve estar no formato MM/AA"
		}
		if !cvvPattern.MatchString(s.card.CVV) {
			errs["cvv"] = "CVV deve ter 3 ou 4 dígitos"
		}
	case MethodPix:
		if len(digitsOnly(s.pix.CPF)) != 11 {
			errs["cpf"] = "CPF deve ter 11 dígitos"
		}
		if strings.TrimSpace(s.pix.Name) == "" {
			errs["name"] = "Nome é obrigatório"
		}
	case MethodBoleto:
		if len(digitsOnly(s.boleto.CPF)) != 11 {
			errs["cpf"] = "CPF deve ter 11 dígitos"
		}
		if strings.TrimSpace(s.boleto.Name) == "" {
			errs["name"] = "Nome é obrigatório"
		}
		if !emailPattern.MatchString(s.boleto.Email) {
			errs["email"] = "Email inválido"
		}
		if n := len(digitsOnly(s.boleto.Phone)); n < 10 || n > 11 {
			errs["phone"] = "Telefone deve ter 10 ou 11 dígitos"
		}
	}
	return errs
}

// Reference returns the masked identifier recorded with the settled
// subscription: card last-4 or the masked CPF.
func (s *Session) Reference() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.method {
	case MethodCard:
		n := digitsOnly(s.card.Number)
		if len(n) >= 4 {
			return "**** **** **** " + n[len(n)-4:]
		}
		return ""
	case MethodPix:
		return s.pix.CPF
	case MethodBoleto:
		return s.boleto.CPF
	default:
		return ""
	}
}
