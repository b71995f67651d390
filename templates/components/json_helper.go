package components

import (
	"encoding/json"
	"log"
)

// JSON marshals v for a data attribute, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Failed to marshal component data: %v", err)
		return "{}"
	}
	return string(b)
}
