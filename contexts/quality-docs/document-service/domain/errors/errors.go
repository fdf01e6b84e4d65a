package errors

import "errors"

var (
	ErrDocumentNotFound      = errors.New("document not found")
	ErrInvalidDocumentInput  = errors.New("invalid document input")
	ErrDocumentNotApprovable = errors.New("document is not in an approvable status")
)
