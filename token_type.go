package ripple

import (
	"strings"

	"github.com/pkg/errors"
)

// TokenType is the leading byte of an encoded token. The values are fixed by
// the ledger protocol and must never be renumbered.
type TokenType byte

const (
	TokenTypeNone            TokenType = 1 // unused
	TokenTypeNodePublic      TokenType = 28
	TokenTypeNodePrivate     TokenType = 32
	TokenTypeAccountID       TokenType = 0
	TokenTypeAccountPublic   TokenType = 35
	TokenTypeAccountSecret   TokenType = 34
	TokenTypeFamilyGenerator TokenType = 41 // unused
	TokenTypeFamilySeed      TokenType = 33
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeNone:            "None",
	TokenTypeNodePublic:      "NodePublic",
	TokenTypeNodePrivate:     "NodePrivate",
	TokenTypeAccountID:       "AccountID",
	TokenTypeAccountPublic:   "AccountPublic",
	TokenTypeAccountSecret:   "AccountSecret",
	TokenTypeFamilyGenerator: "FamilyGenerator",
	TokenTypeFamilySeed:      "FamilySeed",
}

// TokenTypes lists every registered type in declaration order.
func TokenTypes() []TokenType {
	return []TokenType{
		TokenTypeNone,
		TokenTypeNodePublic,
		TokenTypeNodePrivate,
		TokenTypeAccountID,
		TokenTypeAccountPublic,
		TokenTypeAccountSecret,
		TokenTypeFamilyGenerator,
		TokenTypeFamilySeed,
	}
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "invalid"
}

func (t TokenType) Valid() bool {
	_, ok := tokenTypeNames[t]
	return ok
}

func (t TokenType) Validate() (err error) {
	if !t.Valid() {
		err = errors.Wrapf(ErrUnknownTokenType, "tag %d", byte(t))
	}
	return
}

// ParseTokenType accepts a type name, case insensitively ("accountid",
// "NodePublic", ...).
func ParseTokenType(name string) (typ TokenType, err error) {
	for t, n := range tokenTypeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	err = errors.Wrapf(ErrUnknownTokenType, "'%s'", name)
	return
}
