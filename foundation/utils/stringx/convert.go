// File: convert.go
// Title: Value to String Conversion
// Description: Generic conversion of arbitrary values to their default textual
//              form, with a strconv fast path for numbers and booleans.
// Author: msto63
// Version: v0.3.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.3.0: Initial implementation

package stringx

import (
	"fmt"
	"strconv"
)

// ToString returns the default textual representation of v.
func ToString[T any](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// ToStringSpec formats v with a fmt verb spec without the leading '%',
// e.g. ToStringSpec(3.14159, ".2f") == "3.14". An empty spec uses ToString.
func ToStringSpec[T any](v T, spec string) string {
	if spec == "" {
		return ToString(v)
	}
	return fmt.Sprintf("%"+spec, v)
}
