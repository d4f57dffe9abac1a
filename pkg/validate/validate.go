// Package validate provides struct-tag validation for request and model types.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	gte=N               number >= N
//	lte=N               number <= N
//	between=min,max     number or string length between min and max (inclusive)
//
// Example:
//
//	type Input struct {
//	    Name     string `json:"name"     validate:"required,min=2,max=100"`
//	    Email    string `json:"email"    validate:"required,email"`
//	    Quantity int    `json:"quantity" validate:"nullable,gt=0"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// If `nullable` is present and field is empty — skip all rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if !emailRe.MatchString(raw) {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}

	case "min":
		limit, _ := strconv.ParseFloat(param, 64)
		if isString(v) {
			if float64(len([]rune(raw))) < limit {
				return fmt.Sprintf("The %s field must be at least %s characters.", field, param)
			}
		} else if n, ok := numericValue(v); ok && n < limit {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "max":
		limit, _ := strconv.ParseFloat(param, 64)
		if isString(v) {
			if float64(len([]rune(raw))) > limit {
				return fmt.Sprintf("The %s field may not be greater than %s characters.", field, param)
			}
		} else if n, ok := numericValue(v); ok && n > limit {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "gt":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); ok && !(n > limit) {
			return fmt.Sprintf("The %s field must be greater than %s.", field, param)
		}

	case "gte":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); ok && n < limit {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "lte":
		limit, _ := strconv.ParseFloat(param, 64)
		if n, ok := numericValue(v); ok && n > limit {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "between":
		lo, hi, ok := strings.Cut(param, ",")
		if !ok {
			return ""
		}
		loF, _ := strconv.ParseFloat(lo, 64)
		hiF, _ := strconv.ParseFloat(hi, 64)

		var n float64
		if isString(v) {
			n = float64(len([]rune(raw)))
		} else if num, okNum := numericValue(v); okNum {
			n = num
		} else {
			return ""
		}
		if n < loF || n > hiF {
			return fmt.Sprintf("The %s field must be between %s and %s.", field, lo, hi)
		}
	}

	return ""
}

// splitRules splits the tag on commas, but keeps "between=1,10" together
// by re-joining a bare numeric fragment with the previous rule.
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	rules := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(rules) > 0 && !strings.ContainsAny(p, "=") && isNumericFragment(p) &&
			strings.Contains(rules[len(rules)-1], "=") {
			rules[len(rules)-1] += "," + p
			continue
		}
		rules = append(rules, p)
	}
	return rules
}

func isNumericFragment(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func isString(v reflect.Value) bool { return v.Kind() == reflect.String }

func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
