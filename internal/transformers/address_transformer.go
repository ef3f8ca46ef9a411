package transformers

import (
	"strings"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// ShortAddress keeps the street part of "123 Main St, Toronto, ON".
// City and province are dropped; they live in their own fields.
func (t *addressTransformer) ShortAddress(full string) string {
	if i := strings.Index(full, ","); i >= 0 {
		return strings.TrimSpace(full[:i])
	}
	return full
}
