package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/models"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/authmsg"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/database"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/session"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/usercontext"
)

// HandleUserProfile renders the profile page with the linked providers and
// the user's active subscription, if any.
func HandleUserProfile(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": authmsg.Message(authmsg.CodeUserNotFound)}).Redirect("/")
	}

	var providers []models.ProviderAccount
	database.GetDB().Where("user_id = ?", userID).Find(&providers)
	isGoogleUser := false
	for _, p := range providers {
		if p.Provider == "google" {
			isGoogleUser = true
			break
		}
	}

	var subscription models.Subscription
	hasSubscription := database.GetDB().
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&subscription).Error == nil

	return render(c, "perfil", "perfil", fiber.Map{
		"User":            user,
		"IsGoogleUser":    isGoogleUser,
		"HasSubscription": hasSubscription,
		"Subscription":    subscription,
		"MemberSince":     user.CreatedAt.Format("02/01/2006"),
		"CsrfToken":       c.Locals("csrf"),
	})
}

// HandleUserProfileUpdate applies display-name, email and password changes.
// Email and password changes require re-authentication with the current
// password; failures map to the fixed localized messages and keep the user
// on the profile page.
func HandleUserProfileUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": authmsg.Message(authmsg.CodeUserNotFound)}).Redirect("/")
	}

	displayName := strings.TrimSpace(c.FormValue("display_name"))
	email := strings.TrimSpace(c.FormValue("email"))
	currentPassword := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")
	confirmPassword := c.FormValue("confirm_password")

	if displayName != "" {
		user.Name = displayName
	}

	// Email change requires re-authentication
	if email != "" && email != user.Email {
		if currentPassword == "" {
			return profileError(c, authmsg.CodeRecentLoginNeeded)
		}
		if !user.CheckPassword(currentPassword) {
			return profileError(c, authmsg.CodeWrongPassword)
		}

		var existing models.User
		if err := database.GetDB().Where("email = ? AND id <> ?", email, user.ID).First(&existing).Error; err == nil {
			return profileError(c, authmsg.CodeEmailInUse)
		}
		user.Email = email
	}

	// Password change requires re-authentication as well
	if newPassword != "" {
		if currentPassword == "" {
			return profileError(c, authmsg.CodeRecentLoginNeeded)
		}
		if !user.CheckPassword(currentPassword) {
			return profileError(c, authmsg.CodeWrongPassword)
		}
		if newPassword != confirmPassword {
			return profileError(c, authmsg.CodePasswordsDontMatch)
		}
		if len(newPassword) < 6 {
			return profileError(c, authmsg.CodeWeakPassword)
		}
		if err := user.SetPassword(newPassword); err != nil {
			return profileError(c, "")
		}
	}

	if err := database.GetDB().Save(&user).Error; err != nil {
		return profileError(c, "")
	}

	// Refresh the session snapshot so the header shows the new name
	_ = session.SetSessionValue(c, USER_NAME, user.Name)
	_ = session.SetSessionValue(c, USER_EMAIL, user.Email)

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Perfil atualizado com sucesso!",
	}).Redirect("/perfil")
}

// HandleUserDelete removes the account after re-authentication and ends the
// web session.
func HandleUserDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": authmsg.Message(authmsg.CodeUserNotFound)}).Redirect("/")
	}

	// OAuth-only accounts have no password of their own; the provider login
	// backing this session counts as the re-authentication.
	var linked int64
	database.GetDB().Model(&models.ProviderAccount{}).Where("user_id = ?", userID).Count(&linked)
	if linked == 0 && !user.CheckPassword(c.FormValue("current_password")) {
		return profileError(c, authmsg.CodeWrongPassword)
	}

	now := time.Now()
	user.Status = models.STATUS_DISABLED
	user.LastLoginAt = &now
	if err := database.GetDB().Save(&user).Error; err != nil {
		return profileError(c, "")
	}
	if err := database.GetDB().Delete(&user).Error; err != nil {
		return profileError(c, "")
	}

	if sess, err := session.GetSessionStore().Get(c); err == nil {
		_ = sess.Destroy()
	}

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Conta excluída com sucesso.",
	}).Redirect("/")
}

func profileError(c *fiber.Ctx, code string) error {
	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": authmsg.Message(code),
	}).Redirect("/perfil")
}
