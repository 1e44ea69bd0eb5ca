package sample

import "errors"

var (
	// ErrDataIntegrity marks malformed or insufficient input samples.
	// It is fatal to store construction; no query is answerable with
	// corrupt data.
	ErrDataIntegrity = errors.New("sample: data integrity violation")

	// ErrBadLabel is returned by ParseLabel for labels that do not follow
	// the FAMILY_<concentration>T convention.
	ErrBadLabel = errors.New("sample: malformed phantom label")
)
