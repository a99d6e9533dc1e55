// Package check validates raw query-string parameters before any of them
// reach the data layer. Downstream code only ever sees typed values.
package check

import (
	"fmt"
	"strconv"
	"strings"

	pkgErrors "cost-item-service/pkg/errors"
)

// filterKeys are the only query parameters accepted by the cost item
// filter endpoint. price and notes are accepted for backward compatibility
// but are never applied as predicates.
var filterKeys = []string{"id", "ids", "name", "price", "notes"}

// ValidateInt64 parses a decimal string into an int64.
func ValidateInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, pkgErrors.NewBadRequest(
			fmt.Sprintf("Error parsing string: '%s', not a valid integer", s),
		)
	}
	return n, nil
}

// ValidateFloat64 parses a decimal string into a float64.
func ValidateFloat64(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, pkgErrors.NewBadRequest(
			fmt.Sprintf("Error parsing string: '%s', not a valid float", s),
		)
	}
	return f, nil
}

// ParseIDs parses a comma-separated id list ("1,2,3"). Order is preserved
// and duplicates are kept; the first invalid token fails the whole list.
func ParseIDs(s string) ([]int64, error) {
	tokens := strings.Split(s, ",")
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, err := ValidateInt64(token)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CostItemFilterParams checks a raw filter parameter map: every key must be
// a known filter key, id and ids are mutually exclusive, and id/ids values
// must parse as integers.
func CostItemFilterParams(params map[string]string) error {
	for key := range params {
		if !isFilterKey(key) {
			return pkgErrors.NewBadRequest(
				fmt.Sprintf("the parameter '%s' is incorrect", key),
			)
		}
	}

	_, hasID := params["id"]
	_, hasIDs := params["ids"]
	if hasID && hasIDs {
		return pkgErrors.NewBadRequest("select only one of them, id xor ids")
	}

	if id, ok := params["id"]; ok {
		if _, err := ValidateInt64(id); err != nil {
			return err
		}
	}

	if ids, ok := params["ids"]; ok {
		if _, err := ParseIDs(ids); err != nil {
			return err
		}
	}

	return nil
}

func isFilterKey(key string) bool {
	for _, k := range filterKeys {
		if key == k {
			return true
		}
	}
	return false
}
