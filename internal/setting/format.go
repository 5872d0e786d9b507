package setting

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDefault renders meta's default value into its canonical textual
// form, used both for display and for generated documentation. Group nodes
// render as the empty string.
func FormatDefault(meta *Meta) (string, error) {
	switch meta.Type {
	case TypeGroup:
		return "", nil

	case TypeLoadFile, TypeSaveFile, TypeSaveFolder:
		spec, err := filesystemSpec(meta)
		if err != nil {
			return "", err
		}
		return spec.Default, nil

	case TypeString:
		spec, ok := meta.Spec.(*StringSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return spec.Default, nil

	case TypeFrames:
		spec, ok := meta.Spec.(*FramesSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return spec.Default, nil

	case TypeInt:
		spec, ok := meta.Spec.(*IntSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return strconv.Itoa(spec.Default), nil

	case TypeFloat:
		spec, ok := meta.Spec.(*FloatSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return fmt.Sprintf(spec.Format(), spec.Default), nil

	case TypeBoolNumeric:
		spec, ok := meta.Spec.(*BoolSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return formatBoolNumeric(spec.Default), nil

	case TypeBool:
		spec, ok := meta.Spec.(*BoolSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return formatBool(spec.Default), nil

	case TypeEnum:
		spec, ok := meta.Spec.(*EnumSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return spec.Default, nil

	case TypeList:
		spec, ok := meta.Spec.(*ListSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return joinListElements(spec.Default), nil

	case TypeFlags:
		spec, ok := meta.Spec.(*FlagsSpec)
		if !ok {
			return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
		}
		return strings.Join(spec.Default, ","), nil

	default:
		return "", &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}
}

// FormatValue renders a current value into its canonical textual form. For
// float settings whose value fails the meta's range check, the default is
// rendered instead; that recovery is part of the contract, not an error.
func FormatValue(meta *Meta, data *Data) (string, error) {
	switch data.Type {
	case TypeGroup:
		return "", nil

	case TypeLoadFile, TypeSaveFile, TypeSaveFolder, TypeString, TypeFrames, TypeEnum:
		return data.String, nil

	case TypeInt:
		return strconv.Itoa(data.Int), nil

	case TypeFloat:
		spec, err := floatSpec(meta)
		if err != nil {
			return "", err
		}
		if spec.IsValid(data.Float) {
			return fmt.Sprintf(spec.Format(), data.Float), nil
		}
		return fmt.Sprintf(spec.Format(), spec.Default), nil

	case TypeBoolNumeric:
		return formatBoolNumeric(data.Bool), nil

	case TypeBool:
		return formatBool(data.Bool), nil

	case TypeList:
		return joinListElements(data.List), nil

	case TypeFlags:
		return strings.Join(data.Flags, ","), nil

	default:
		return "", &UnsupportedTypeError{Key: data.Key, Type: data.Type}
	}
}

func formatBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func formatBoolNumeric(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// joinListElements renders the enabled elements of a list value, comma
// separated. The separator is tracked against emitted elements, not raw
// indices, so disabled entries never produce doubled or leading commas.
func joinListElements(elements []ListElement) string {
	var sb strings.Builder
	first := true
	for _, element := range elements {
		if !element.Enabled {
			continue
		}
		if !first {
			sb.WriteString(",")
		}
		first = false

		if element.Key != "" {
			sb.WriteString(element.Key)
		} else {
			sb.WriteString(strconv.Itoa(element.Number))
		}
	}
	return sb.String()
}

func floatSpec(meta *Meta) (*FloatSpec, error) {
	spec, ok := meta.Spec.(*FloatSpec)
	if !ok {
		return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}
	return spec, nil
}

func filesystemSpec(meta *Meta) (*FilesystemSpec, error) {
	spec, ok := meta.Spec.(*FilesystemSpec)
	if !ok {
		return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}
	return spec, nil
}
