/*
Package errors implements the error kinds used across bazaar.

Reuse the root errors declared in this package where possible and register a
custom kind only when an extension needs a client visible distinction. A kind
is registered once at startup with Register(code, description); the code is
returned to ABCI clients so they can tell failures apart.

Create runtime instances with ErrXyz.New("...") or Wrap(ErrXyz, "...") at the
point where the failure happens. The innermost wrap attaches a stack trace.
Do not declare a wrapped error as a package level variable, the stack trace
would point at the initialization.

Formatting:
	%s is just the error message
	%v is the message with the [file:line] of creation
	%+v is the full stack trace
*/
package errors
