// Package errs defines the error vocabulary shared by the domain model and
// the adapters. Refusals that callers branch on are expressed as struct
// errors unwrapping to package sentinels, so call sites can classify with
// errors.Is or pull details with errors.As:
//
//   - ValueIsRequiredError: a constructor argument was missing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each type comes in a plain and a WithCause variant; the cause is folded
// into the message and the sentinel stays the Unwrap target. Messages are
// flattened to a single line so multi-line input cannot break log parsing.
//
// The HTTP layer depends on this classification: ObjectNotFoundError maps to
// 404 while everything else on the error channel maps to 500.
package errs
