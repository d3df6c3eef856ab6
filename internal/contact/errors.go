package contact

import "errors"

var (
	ErrExportFailed = errors.New("contact export failed")
)
