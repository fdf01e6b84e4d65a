package errors

import "errors"

var (
	ErrRuleNotFound          = errors.New("distribution rule not found")
	ErrInvalidRuleInput      = errors.New("invalid distribution rule input")
	ErrNotificationNotFound  = errors.New("user notification not found")
	ErrDuplicateDistribution = errors.New("document revision already distributed")
	ErrDistributionFailed    = errors.New("falha ao enviar notificações de distribuição")
)
