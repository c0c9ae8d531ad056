package argopt

import "github.com/tmont/argopt/core"

// Style selects the option syntax recognized by the binder and used
// by the usage formatter.
type Style = core.Style

const (
	// Unix recognizes "-name" and "--name" with "=" joining inline
	// values.
	Unix = core.Unix
	// Windows recognizes "/name" with ":" joining inline values.
	Windows = core.Windows
)

// Result carries the leftover tokens and per-token binding errors of
// one parse call. The populated contract is the caller's pointer.
type Result = core.Result

// TokenError pairs an offending token with its failure cause.
type TokenError = core.TokenError

// Descriptor is the normalized metadata view of one contract field,
// as built from its struct tags on every parse or format call.
type Descriptor = core.Descriptor

// Kind classifies how a contract field participates in binding.
type Kind = core.Kind

const (
	KindPlain       = core.KindPlain
	KindFlag        = core.KindFlag
	KindComplexFlag = core.KindComplexFlag
	KindCollector   = core.KindCollector
	KindExcluded    = core.KindExcluded
)

// Enum is implemented by named integer types whose value is one of a
// closed, ordered set of member names. Option text is matched
// case-insensitively against the member names; unmatched text leaves
// the field untouched.
type Enum = core.Enum
