package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPasswordIncorrect    = errors.New("password incorrect")
	ErrTokenIncorrect       = errors.New("token incorrect")
	ErrDuplicateDeclaration = errors.New("duplicate placeholder declaration id")
	ErrInvalidAttachment    = errors.New("invalid attachment kind")
)

// TemplateInvalidError is returned when a template cannot be promoted to
// active because validation produced findings. The findings ride along so the
// transport layer can show the author every problem at once.
type TemplateInvalidError struct {
	Findings []string
}

func (e *TemplateInvalidError) Error() string {
	return fmt.Sprintf("template has validation findings: %s", strings.Join(e.Findings, "; "))
}
