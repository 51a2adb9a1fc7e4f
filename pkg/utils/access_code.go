package utils

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AccessCodeAlphabet is base-36; codes are stored and compared uppercase.
const AccessCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const DefaultAccessCodeLength = 5

type CodeGenerator interface {
	Generate() (string, error)
}

type NanoCodeGenerator struct {
	Length int
}

func NewNanoCodeGenerator(length int) *NanoCodeGenerator {
	if length <= 0 {
		length = DefaultAccessCodeLength
	}
	return &NanoCodeGenerator{Length: length}
}

func (g *NanoCodeGenerator) Generate() (string, error) {
	code, err := gonanoid.Generate(AccessCodeAlphabet, g.Length)
	if err != nil {
		return "", err
	}
	return NormalizeAccessCode(code), nil
}

// NormalizeAccessCode makes human-entered codes comparable with stored ones.
func NormalizeAccessCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NewResetToken returns an unguessable URL-safe token for password reset links.
func NewResetToken() (string, error) {
	return gonanoid.New(32)
}
