package service

import (
	"strings"

	"intranet/internal/apperr"
)

func validateUserName(name string) error {
	if len(name) < 3 {
		return apperr.E(apperr.Validation, "Name should have more than 3 characteres!")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) < 5 || !strings.Contains(email, "@") {
		return apperr.E(apperr.Validation, "E-mail is invalid!")
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < 5 {
		return apperr.E(apperr.Validation, "Password invalid or not provided!")
	}
	return nil
}

func validateNewPassword(pw string) error {
	if len(pw) < 5 {
		return apperr.E(apperr.Validation, "New password invalid or not provided!")
	}
	return nil
}

// Companies, associates and events all share the longer name rule.
func validateDisplayName(name string) error {
	if len(name) < 5 {
		return apperr.E(apperr.Validation, "Name should have more than 5 characters")
	}
	return nil
}

func validateDescription(desc string) error {
	if desc == "" {
		return apperr.E(apperr.Validation, "Description is mandatory")
	}
	return nil
}
