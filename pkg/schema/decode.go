package schema

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeObject decodes a matched raw object into a typed options struct.
// Decoding is strict: keys without a corresponding struct field are errors,
// so a successful Match is a precondition for the rule-package Parse
// helpers that call this. Fields already set on dst act as defaults; the
// decoder only overwrites what the raw object provides.
func DecodeObject(src map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		ErrorUnused:      true,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("decoding options: %w", err)
	}
	return nil
}
