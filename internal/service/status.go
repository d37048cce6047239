package service

import (
	"strings"

	"github.com/govjobs/govjobs-backend/internal/model"
)

// Create requests coerce unknown statuses to PENDING; updates reject them.

func parseResultStatus(s string) (model.ResultStatus, bool) {
	switch model.ResultStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case model.ResultStatusPending:
		return model.ResultStatusPending, true
	case model.ResultStatusReleased:
		return model.ResultStatusReleased, true
	}
	return "", false
}

func coerceResultStatus(s string) model.ResultStatus {
	if st, ok := parseResultStatus(s); ok {
		return st
	}
	return model.ResultStatusPending
}

func parseAdmitCardStatus(s string) (model.AdmitCardStatus, bool) {
	switch model.AdmitCardStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case model.AdmitCardStatusPending:
		return model.AdmitCardStatusPending, true
	case model.AdmitCardStatusAvailable:
		return model.AdmitCardStatusAvailable, true
	}
	return "", false
}

func coerceAdmitCardStatus(s string) model.AdmitCardStatus {
	if st, ok := parseAdmitCardStatus(s); ok {
		return st
	}
	return model.AdmitCardStatusPending
}
