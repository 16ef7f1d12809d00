package flashcards

import (
	"context"
	"net/http"
	"strings"
)

// resetMessage is sent along with the password-reset request. The backend
// substitutes $token$ and mails the result; the client does no templating.
const resetMessage = "Follow this link to recover your password: " +
	"https://deckhand.invalid/set-new-password/$token$"

// Register creates an account. The backend reports duplicate emails through
// the error body, which surfaces here as *APIError.
func (c *Client) Register(ctx context.Context, form RegisterForm) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", form, &payload); err != nil {
		return err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return &APIError{Message: msg}
	}
	return nil
}

// Login authenticates and stores the session cookie on the client. A 2xx
// payload embedding an error message fails exactly like a hard failure.
func (c *Client) Login(ctx context.Context, creds Credentials) (Profile, error) {
	var payload accountPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &payload); err != nil {
		return Profile{}, err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return Profile{}, &APIError{Message: msg}
	}
	return payload.profile(), nil
}

// RequestPasswordReset asks the backend to mail a recovery link. The returned
// flag reports whether the backend accepted the address.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (bool, error) {
	body := struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}{Email: email, Message: resetMessage}
	var payload struct {
		Info    string `json:"info"`
		Success bool   `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot", body, &payload); err != nil {
		return false, err
	}
	return payload.Success, nil
}

// SetNewPassword completes the recovery flow using the token from the mailed
// link. It returns the backend's confirmation message.
func (c *Client) SetNewPassword(ctx context.Context, password, resetToken string) (string, error) {
	body := struct {
		Password           string `json:"password"`
		ResetPasswordToken string `json:"resetPasswordToken"`
	}{Password: password, ResetPasswordToken: resetToken}
	var payload struct {
		Info  string `json:"info"`
		Error string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/set-new-password", body, &payload); err != nil {
		return "", err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return "", &APIError{Message: msg}
	}
	return payload.Info, nil
}

// UpdateProfile changes name and/or avatar and returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (Profile, error) {
	var payload struct {
		UpdatedUser accountPayload `json:"updatedUser"`
		Error       string         `json:"error"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/me", upd, &payload); err != nil {
		return Profile{}, err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return Profile{}, &APIError{Message: msg}
	}
	return payload.UpdatedUser.profile(), nil
}

// Me refreshes the session. The backend models this as POST.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	var payload accountPayload
	if err := c.do(ctx, http.MethodPost, "/auth/me", nil, &payload); err != nil {
		return Profile{}, err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return Profile{}, &APIError{Message: msg}
	}
	return payload.profile(), nil
}

// Logout invalidates the session and returns the backend's farewell message.
func (c *Client) Logout(ctx context.Context) (string, error) {
	var payload struct {
		Info  string `json:"info"`
		Error string `json:"error"`
	}
	if err := c.do(ctx, http.MethodDelete, "/auth/me", nil, &payload); err != nil {
		return "", err
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return "", &APIError{Message: msg}
	}
	if payload.Info == "" {
		return "signed out", nil
	}
	return payload.Info, nil
}
