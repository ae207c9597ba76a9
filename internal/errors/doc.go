// Package errors provides coded errors for the player service.
//
// Gameplay outcomes (cooldowns, self-targeting, missing levels, a held
// action lock) are never errors; they are reported through result values.
// Errors are reserved for:
//
//   - storage failures, always CodeUnavailable (see Persistence)
//   - broken catalog invariants, CodeInternal with the "invariant" meta flag
//   - bad input at the transport or config boundary, CodeInvalidArgument
//
// Creating and wrapping:
//
//	err := errors.NotFoundf("player %s not found", id)
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Persistence(err, "failed to save player %s", id)
//	}
//
// Checking:
//
//	if errors.IsPersistence(err) {
//	    // tell the user something went wrong, never report success
//	}
//
// Handlers convert to gRPC with ToGRPCError; clients convert back with
// FromGRPCError.
package errors
