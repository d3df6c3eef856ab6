package usecase

import (
	"encoding/json"
	"fmt"

	"admin-srv/internal/docstore"
)

func (uc *implUseCase) encodeCursor(c *docstore.Cursor) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return uc.enc.Seal(raw)
}

func (uc *implUseCase) decodeCursor(token string) (*docstore.Cursor, error) {
	raw, err := uc.enc.Open(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", docstore.ErrInvalidCursor, err)
	}
	var c docstore.Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", docstore.ErrInvalidCursor, err)
	}
	return &c, nil
}
