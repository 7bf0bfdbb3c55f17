// Package validate provides struct-tag validation for request input.
//
// Rules (comma-separated in the `validate` tag):
//
//	required              field must not be zero/empty
//	nullable              if empty, skip all remaining rules for this field
//	email                 valid email address
//	alpha                 letters only
//	alpha_space           letters and spaces only (city names)
//	address               letters, digits, spaces, commas, periods, dashes
//	phone                 optional leading +, then 10–15 digits
//	numeric               any number
//	integer               whole number
//	min=N / max=N         string: char length bound | number: value bound
//	gte=N / lte=N         numeric comparison
//	between=lo,hi         number or string length within [lo,hi]
//	digits=N              exactly N decimal digits
//	digits_between=lo,hi  only digits, length within [lo,hi] (postal codes)
//	in=a,b,c              value must be one of the listed items
//	regex=pattern         value must match the regex (no commas in pattern)
//	confirmed             must equal sibling field <field>_confirmation
//
// Example:
//
//	type CheckoutInput struct {
//	    Address    string `json:"address"     validate:"required,address,max=255"`
//	    City       string `json:"city"        validate:"required,alpha_space,max=100"`
//	    PostalCode string `json:"postal_code" validate:"required,digits_between=4,10"`
//	    Phone      string `json:"phone"       validate:"nullable,phone"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

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

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value, rv); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value, parent reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}

	case "alpha":
		for _, c := range raw {
			if !unicode.IsLetter(c) {
				return fmt.Sprintf("The %s field must contain only letters.", field)
			}
		}

	case "alpha_space":
		for _, c := range raw {
			if !unicode.IsLetter(c) && c != ' ' {
				return fmt.Sprintf("The %s field must contain only letters and spaces.", field)
			}
		}

	case "address":
		if !addressRE.MatchString(raw) {
			return fmt.Sprintf("The %s may only contain letters, numbers, spaces, commas, periods, and dashes.", field)
		}

	case "phone":
		if !phoneRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid phone number, e.g. +1234567890.", field)
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
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}

	case "max":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}

	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}

	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}

	case "between":
		parts := strings.SplitN(param, ",", 2)
		if len(parts) != 2 {
			return ""
		}
		lo, hi := mustParseFloat(parts[0]), mustParseFloat(parts[1])
		if isNumericKind(v) {
			f := toFloat(v)
			if f < lo || f > hi {
				return fmt.Sprintf("The %s must be between %s and %s.", field, parts[0], parts[1])
			}
		} else {
			l := float64(len([]rune(raw)))
			if l < lo || l > hi {
				return fmt.Sprintf("The %s must be between %s and %s characters.", field, parts[0], parts[1])
			}
		}

	case "digits":
		n := mustParseFloat(param)
		if !digitsOnlyRE.MatchString(raw) || float64(len(raw)) != n {
			return fmt.Sprintf("The %s must be %s digits.", field, param)
		}

	case "digits_between":
		parts := strings.SplitN(param, ",", 2)
		if len(parts) != 2 {
			return ""
		}
		lo, hi := int(mustParseFloat(parts[0])), int(mustParseFloat(parts[1]))
		if !digitsOnlyRE.MatchString(raw) || len(raw) < lo || len(raw) > hi {
			return fmt.Sprintf("The %s must contain between %s and %s digits.", field, parts[0], parts[1])
		}

	case "in":
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil {
			return fmt.Sprintf("The %s has an invalid validation pattern.", field)
		}
		if !re.MatchString(raw) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}

	case "confirmed":
		confirm := findSiblingByJSONName(parent, field+"_confirmation")
		if confirm == nil || fmt.Sprintf("%v", confirm.Interface()) != raw {
			return fmt.Sprintf("The %s confirmation does not match.", field)
		}
	}

	return ""
}

var (
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	addressRE    = regexp.MustCompile(`^[a-zA-Z0-9\s,.\-]+$`)
	phoneRE      = regexp.MustCompile(`^\+?\d{10,15}$`)
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
)

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	f, _ := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
	return f
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits the validate tag by comma while keeping multi-value rule
// parameters (in=, between=, digits_between=) intact.
func splitRules(tag string) []string {
	var rules []string
	var current strings.Builder
	inParam := false

	multiValuePrefixes := []string{"in=", "between=", "digits_between="}

	for i := 0; i < len(tag); i++ {
		ch := tag[i]
		if ch == ',' {
			if inParam && !looksLikeNewRule(tag[i+1:]) {
				current.WriteByte(ch)
				continue
			}
			rules = append(rules, current.String())
			current.Reset()
			inParam = false
		} else {
			current.WriteByte(ch)
			if !inParam {
				for _, pfx := range multiValuePrefixes {
					if strings.HasSuffix(current.String(), pfx) {
						inParam = true
						break
					}
				}
			}
		}
	}
	if current.Len() > 0 {
		rules = append(rules, current.String())
	}
	return rules
}

func looksLikeNewRule(s string) bool {
	known := []string{
		"required", "nullable", "email", "alpha", "alpha_space", "address",
		"phone", "numeric", "integer", "confirmed", "regex=", "min=", "max=",
		"gte=", "lte=", "digits=", "digits_between=", "in=", "between=",
	}
	for _, k := range known {
		if strings.HasPrefix(s, k) {
			return true
		}
	}
	return false
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == target {
			return true
		}
	}
	return false
}

func findSiblingByJSONName(parent reflect.Value, name string) *reflect.Value {
	rt := parent.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonFieldName(rt.Field(i)) == name {
			v := parent.Field(i)
			return &v
		}
	}
	return nil
}
