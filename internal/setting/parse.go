package setting

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts the textual form of a value back into a data record
// for meta. It is the inverse of FormatValue for every value FormatValue
// can produce, and additionally accepts common spellings for booleans.
func ParseValue(meta *Meta, raw string) (*Data, error) {
	data := &Data{Key: meta.Key, Type: meta.Type}

	switch meta.Type {
	case TypeGroup:
		return nil, fmt.Errorf("setting %s: groups carry no value", meta.Key)

	case TypeBool, TypeBoolNumeric:
		v, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", meta.Key, err)
		}
		data.Bool = v

	case TypeInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("setting %s: invalid integer %q", meta.Key, raw)
		}
		if spec, ok := meta.Spec.(*IntSpec); ok && !spec.IsValid(v) {
			return nil, fmt.Errorf("setting %s: %d is out of range", meta.Key, v)
		}
		data.Int = v

	case TypeFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("setting %s: invalid number %q", meta.Key, raw)
		}
		data.Float = v

	case TypeString, TypeFrames, TypeLoadFile, TypeSaveFile, TypeSaveFolder:
		data.String = raw

	case TypeEnum:
		spec, ok := meta.Spec.(*EnumSpec)
		if !ok {
			return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		if spec.Value(raw) == nil {
			return nil, fmt.Errorf("setting %s: %q is not a declared enum value", meta.Key, raw)
		}
		data.String = raw

	case TypeFlags:
		spec, ok := meta.Spec.(*FlagsSpec)
		if !ok {
			return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		for _, token := range splitTokens(raw) {
			if spec.Value(token) == nil {
				return nil, fmt.Errorf("setting %s: %q is not a declared flag", meta.Key, token)
			}
			data.Flags = append(data.Flags, token)
		}

	case TypeList:
		for _, token := range splitTokens(raw) {
			element := ListElement{Enabled: true}
			if number, err := strconv.Atoi(token); err == nil {
				element.Number = number
			} else {
				element.Key = token
			}
			data.List = append(data.List, element)
		}

	default:
		return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}

	return data, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRUE", "1", "ON", "YES":
		return true, nil
	case "FALSE", "0", "OFF", "NO":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", raw)
}

func splitTokens(raw string) []string {
	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
