package persistence

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

var errMalformed = errors.New("stored value is not valid JSON")

// decodeStored unmarshals raw into dst only when the whole value decodes, so
// a corrupt partition never leaves dst half-filled.
func decodeStored[T any](raw string, dst *T) error {
	if !gjson.Valid(raw) {
		return errMalformed
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return err
	}
	*dst = v
	return nil
}
