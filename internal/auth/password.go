package auth

import (
	"context"
	"errors"
	"log"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/internal/guard"
)

const collectionUsers = "users"

// ChangePassword performs the forced password change behind a navigation
// guard. The password update itself is the primary action; clearing the
// must_change_password flag on the user document is a best-effort secondary
// write. The guard unblocks whenever the primary action succeeds, even if
// the flag write fails; that failure is logged, not surfaced.
func ChangePassword(ctx context.Context, svc Service, gw gateway.Gateway, g *guard.Guard, userID, currentPassword, newPassword string) error {
	err := svc.UpdatePassword(ctx, newPassword)

	var authErr *Error
	if errors.As(err, &authErr) && authErr.Code == CodeRequiresRecentLogin {
		if err := svc.Reauthenticate(ctx, currentPassword); err != nil {
			return err
		}
		err = svc.UpdatePassword(ctx, newPassword)
	}
	if err != nil {
		return err
	}

	if err := gw.UpdateFields(ctx, collectionUsers, userID, map[string]any{
		"must_change_password": false,
	}); err != nil {
		log.Printf("auth: failed to clear must_change_password for %s: %v", userID, err)
	}

	g.Complete()
	return nil
}

// AcknowledgePolicy records the one-time policy acknowledgement. Like the
// password flag, the document write is best-effort once the user has
// checked the box; the guard still unblocks on a failed write.
func AcknowledgePolicy(ctx context.Context, gw gateway.Gateway, g *guard.Guard, userID string) error {
	if err := gw.UpdateFields(ctx, collectionUsers, userID, map[string]any{
		"policy_acknowledged": true,
	}); err != nil {
		log.Printf("auth: failed to persist policy acknowledgement for %s: %v", userID, err)
	}

	g.Complete()
	return nil
}
