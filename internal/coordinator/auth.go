package coordinator

import (
	"context"

	"go.uber.org/zap"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// Register creates an account and flips the signed-up flag so the UI can
// route back to the sign-in form.
func (c *Coordinator) Register(ctx context.Context, op state.OpID, form flashcards.RegisterForm) []state.Action {
	if err := c.api.Register(ctx, form); err != nil {
		c.log.Warn("register failed", zap.Error(err))
		return c.fail(op, err)
	}
	return []state.Action{
		state.SetSignedUp{Value: true},
		state.OpDone{ID: op, Info: "account created, sign in to continue"},
	}
}

// Login authenticates and caches the profile. The logged-in flag is set
// after the profile so a forced logout elsewhere cannot leave a stale
// profile behind.
func (c *Coordinator) Login(ctx context.Context, op state.OpID, creds flashcards.Credentials) []state.Action {
	profile, err := c.api.Login(ctx, creds)
	if err != nil {
		c.log.Warn("login failed", zap.String("email", creds.Email), zap.Error(err))
		return c.fail(op, err)
	}
	c.log.Info("signed in", zap.String("user", profile.ID))
	return []state.Action{
		state.SetProfile{Profile: profile},
		state.SetLoggedIn{Value: true},
		state.OpDone{ID: op, Info: "signed in as " + profile.Email},
	}
}

// RequestPasswordReset asks for a recovery mail and records the address and
// whether the backend accepted it.
func (c *Coordinator) RequestPasswordReset(ctx context.Context, op state.OpID, email string) []state.Action {
	accepted, err := c.api.RequestPasswordReset(ctx, email)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.SetRecoveryEmail{Email: email},
		state.SetRecoveryAccepted{Value: accepted},
		state.OpDone{ID: op, Info: "recovery link sent to " + email},
	}
}

// SetNewPassword completes the recovery flow with the token from the mail.
func (c *Coordinator) SetNewPassword(ctx context.Context, op state.OpID, password, resetToken string) []state.Action {
	info, err := c.api.SetNewPassword(ctx, password, resetToken)
	if err != nil {
		return c.fail(op, err)
	}
	if info == "" {
		info = "password changed"
	}
	return []state.Action{
		state.SetPasswordChanged{Message: info},
		state.OpDone{ID: op, Info: info},
	}
}

// UpdateProfile changes name and/or avatar.
func (c *Coordinator) UpdateProfile(ctx context.Context, op state.OpID, upd flashcards.ProfileUpdate) []state.Action {
	profile, err := c.api.UpdateProfile(ctx, upd)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.SetProfile{Profile: profile},
		state.SetLoggedIn{Value: true},
		state.OpDone{ID: op, Info: "profile updated"},
	}
}

// RestoreSession refreshes the session cookie on startup. A 401 here is the
// normal cold-start case, not an error worth surfacing.
func (c *Coordinator) RestoreSession(ctx context.Context, op state.OpID) []state.Action {
	profile, err := c.api.Me(ctx)
	if err != nil {
		if flashcards.IsUnauthorized(err) {
			return []state.Action{
				state.SetLoggedIn{Value: false},
				state.OpDone{ID: op},
			}
		}
		return c.fail(op, err)
	}
	return []state.Action{
		state.SetProfile{Profile: profile},
		state.SetLoggedIn{Value: true},
		state.OpDone{ID: op},
	}
}

// Logout invalidates the session.
func (c *Coordinator) Logout(ctx context.Context, op state.OpID) []state.Action {
	info, err := c.api.Logout(ctx)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.SetLoggedIn{Value: false},
		state.OpDone{ID: op, Info: info},
	}
}
