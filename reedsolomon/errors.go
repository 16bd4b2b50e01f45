package reedsolomon

import "golang.org/x/xerrors"

// Decode-class errors are expected outcomes of decoding with too many errors
// or an overly aggressive declared bound; callers should treat them as "no
// decode" (unique decoder) or "empty candidate list" (list decoder).
// ErrInvalidInput marks malformed parameters, a programming error on the
// caller's side. Match with errors.Is; all errors returned by this package
// wrap one of these sentinels.
var (
	ErrInvalidInput               = xerrors.New("reedsolomon: invalid input")
	ErrUnsolvable                 = xerrors.New("reedsolomon: berlekamp-welch system has no solution")
	ErrInconsistentFactorization  = xerrors.New("reedsolomon: error locator does not divide the numerator polynomial")
	ErrInsufficientCorrectSymbols = xerrors.New("reedsolomon: fewer correct symbols than the message length")
	ErrDegenerateInterpolation    = xerrors.New("reedsolomon: bivariate interpolation yielded no usable polynomial")
	ErrNoCandidates               = xerrors.New("reedsolomon: no candidate survived degree and error filtering")
)
