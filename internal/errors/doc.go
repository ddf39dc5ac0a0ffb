// Package errors provides the structured error type used across pokemon-api.
//
// Every error carries a Code. Codes fall into two kinds:
//   - user errors: bad input, not found for this caller, permission and
//     quota violations. Their message is shown to the caller.
//   - server errors: infrastructure failures, catalog failures and broken
//     internal invariants. Callers only ever see a generic message.
//
// # Basic Usage
//
//	err := errors.NotFound("game session not found")
//	err := errors.InvalidArgumentf("unknown scene %q", name)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get game save")
//	}
//
// Collaborator failures that must never reach the caller as user errors
// are wrapped with AsServerError:
//
//	if err := catalog.GetMove(ctx, key); err != nil {
//	    return errors.AsServerError(err, "failed to fetch move")
//	}
//
// # Checking
//
//	errors.IsNotFound(err)
//	errors.IsUserError(err)
//	errors.PublicMessage(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("character_name", save.CharacterName, vb)
//	errors.ValidateRange("pokemon_level", owned.PokemonLevel, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). User errors carry an
// errdetails.ErrorInfo with the code as reason and the metadata; server
// errors are reduced to their gRPC code and a generic message.
package errors
