package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/models"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/checkout"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/database"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/session"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/usercontext"
)

const checkoutSessionKey = "checkout_sid"

var checkoutManager *checkout.Manager

// InitializeCheckoutController wires the checkout session manager. Settled
// sessions are persisted as subscription records.
func InitializeCheckoutController() {
	checkoutManager = checkout.NewManager(checkout.DefaultSettleDelay, persistSubscription)
}

// GetCheckoutManager exposes the manager for the API status endpoint.
func GetCheckoutManager() *checkout.Manager {
	return checkoutManager
}

func persistSubscription(s *checkout.Session) {
	db := database.GetDB()
	if db == nil {
		return
	}
	sub := models.Subscription{
		UserID:        s.UserID,
		PlanName:      s.Plan.Name,
		PlanPrice:     s.Plan.Price,
		PaymentMethod: string(s.Method()),
		Reference:     s.Reference(),
		Status:        models.SubscriptionStatusActive,
	}
	if err := db.Create(&sub).Error; err != nil {
		log.Printf("failed to persist subscription for user %d: %v", s.UserID, err)
	}
}

// HandlePagamento renders the step matching the current checkout state. A
// new flow is only opened from the plan list: without an active session the
// `plano` and `preco` query parameters must both be present, otherwise the
// user is sent back to /planos. Arriving with a different plan than the
// active session's discards that session and starts over with the new plan.
func HandlePagamento(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	if s, ok := activeCheckout(c, userID); ok {
		if resumesCheckout(s, c.Query("plano")) {
			return renderCheckoutStep(c, s)
		}
		checkoutManager.Abandon(s.ID)
		_ = session.SetSessionValue(c, checkoutSessionKey, "")
	}

	planName := c.Query("plano")
	planPrice := c.Query("preco")
	if planName == "" || planPrice == "" {
		return c.Redirect("/planos", fiber.StatusSeeOther)
	}

	plan, ok := plans.ByName(planName)
	if !ok {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Plano não encontrado.",
		}).Redirect("/planos")
	}

	s := checkoutManager.Create(userID, plan)
	if err := session.SetSessionValue(c, checkoutSessionKey, s.ID); err != nil {
		checkoutManager.Abandon(s.ID)
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": fmt.Sprintf("something went wrong: %s", err),
		}).Redirect("/planos")
	}

	return renderCheckoutStep(c, s)
}

// resumesCheckout reports whether an active session still matches the plan
// the user navigated with. Entering without plan parameters always resumes.
func resumesCheckout(s *checkout.Session, planName string) bool {
	return planName == "" || planName == s.Plan.Name
}

// HandlePagamentoMetodo selects the payment method and moves the session to
// the details step. Switching methods resets any previous validation errors.
func HandlePagamentoMetodo(c *fiber.Ctx) error {
	s, ok := activeCheckout(c, usercontext.GetUserID(c))
	if !ok {
		return c.Redirect("/planos", fiber.StatusSeeOther)
	}

	if err := s.SelectMethod(checkout.Method(c.FormValue("metodo"))); err != nil {
		switch err {
		case checkout.ErrAlreadySubmitting, checkout.ErrAlreadySucceeded:
			// Settlement already running; the current step says so.
			return c.Redirect("/pagamento", fiber.StatusSeeOther)
		default:
			return flash.WithError(c, fiber.Map{
				"type":    "error",
				"message": "Método de pagamento inválido.",
			}).Redirect("/pagamento")
		}
	}

	return c.Redirect("/pagamento", fiber.StatusSeeOther)
}

// HandlePagamentoSubmit stores the submitted fields (already masked
// server-side) and validates them. Validation failures re-render the form
// with the field errors; a valid submission starts the simulated settlement.
func HandlePagamentoSubmit(c *fiber.Ctx) error {
	s, ok := activeCheckout(c, usercontext.GetUserID(c))
	if !ok {
		return c.Redirect("/planos", fiber.StatusSeeOther)
	}

	switch s.Method() {
	case checkout.MethodCard:
		s.SetCardFields(
			c.FormValue("number"),
			c.FormValue("name"),
			c.FormValue("expiry"),
			c.FormValue("cvv"),
		)
	case checkout.MethodPix:
		s.SetPixFields(c.FormValue("cpf"), c.FormValue("name"))
	case checkout.MethodBoleto:
		s.SetBoletoFields(
			c.FormValue("cpf"),
			c.FormValue("name"),
			c.FormValue("email"),
			c.FormValue("phone"),
		)
	default:
		return c.Redirect("/pagamento", fiber.StatusSeeOther)
	}

	_, err := checkoutManager.Submit(s.ID)
	if err != nil && err != checkout.ErrAlreadySubmitting {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Erro ao processar pagamento. Tente novamente.",
		}).Redirect("/pagamento")
	}

	// On validation failure the session keeps the error map and the form
	// step re-renders with the inline messages.
	return c.Redirect("/pagamento", fiber.StatusSeeOther)
}

// HandlePagamentoConfirmacao acknowledges a settled checkout: flashes the
// confirmation, discards the session and hands control back to the home page.
func HandlePagamentoConfirmacao(c *fiber.Ctx) error {
	s, ok := activeCheckout(c, usercontext.GetUserID(c))
	if !ok {
		return c.Redirect("/planos", fiber.StatusSeeOther)
	}
	if s.State() != checkout.StateSucceeded {
		return c.Redirect("/pagamento", fiber.StatusSeeOther)
	}

	plan := s.Plan
	checkoutManager.Abandon(s.ID)
	_ = session.SetSessionValue(c, checkoutSessionKey, "")

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Pagamento do plano %s processado com sucesso!", plan.Name),
	}).Redirect("/")
}

// HandlePagamentoCancelar abandons the flow. The pending settlement timer, if
// any, is cancelled so the discarded session is never updated afterwards.
func HandlePagamentoCancelar(c *fiber.Ctx) error {
	if s, ok := activeCheckout(c, usercontext.GetUserID(c)); ok {
		checkoutManager.Abandon(s.ID)
		_ = session.SetSessionValue(c, checkoutSessionKey, "")
	}
	return c.Redirect("/planos", fiber.StatusSeeOther)
}

// activeCheckout resolves the checkout session bound to the web session,
// guarding against stale ids and cross-user access.
func activeCheckout(c *fiber.Ctx, userID uint) (*checkout.Session, bool) {
	sid := session.GetSessionValue(c, checkoutSessionKey)
	if sid == "" {
		return nil, false
	}
	s, ok := checkoutManager.Get(sid)
	if !ok || s.UserID != userID {
		_ = session.SetSessionValue(c, checkoutSessionKey, "")
		return nil, false
	}
	return s, true
}

func renderCheckoutStep(c *fiber.Ctx, s *checkout.Session) error {
	switch s.State() {
	case checkout.StateSelectingMethod:
		return render(c, "pagamento_metodo", "pagamento", fiber.Map{
			"Plan":      s.Plan,
			"CsrfToken": c.Locals("csrf"),
		})
	case checkout.StateEnteringDetails:
		return render(c, "pagamento_form", "pagamento", fiber.Map{
			"Plan":      s.Plan,
			"Method":    string(s.Method()),
			"Card":      s.Card(),
			"Pix":       s.Pix(),
			"Boleto":    s.Boleto(),
			"Errors":    s.Errors(),
			"CsrfToken": c.Locals("csrf"),
		})
	case checkout.StateSubmitting:
		return render(c, "pagamento_processando", "pagamento", fiber.Map{
			"Plan":      s.Plan,
			"SessionID": s.ID,
		})
	case checkout.StateSucceeded:
		return c.Redirect("/pagamento/confirmacao", fiber.StatusSeeOther)
	default:
		return c.Redirect("/planos", fiber.StatusSeeOther)
	}
}
