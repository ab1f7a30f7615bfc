package service

import (
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

type fields = map[string]*structpb.Value

func isAbsent(v *structpb.Value) bool {
	if v == nil {
		return true
	}
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return null
}

// scalarString accepts strings, numbers and booleans, so YAML scalars such as
// `value: 8080` decode the same as their quoted form.
func scalarString(v *structpb.Value) (string, bool) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, true
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), true
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(k.BoolValue), true
	}
	return "", false
}

func stringField(obj fields, path, key string) (string, error) {
	v := obj[key]
	if isAbsent(v) {
		return "", nil
	}
	s, ok := scalarString(v)
	if !ok {
		return "", svcerrors.Errorf(svcerrors.KindValidation, "%s.%s: expected a string", path, key)
	}
	return s, nil
}

func optionalString(obj fields, path, key string) (*string, error) {
	if isAbsent(obj[key]) {
		return nil, nil
	}
	s, err := stringField(obj, path, key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func requiredString(obj fields, path, key string) (string, error) {
	s, err := stringField(obj, path, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", svcerrors.Errorf(svcerrors.KindValidation, "%s.%s is required", path, key)
	}
	return s, nil
}

func listField(obj fields, path, key string) ([]*structpb.Value, error) {
	v := obj[key]
	if isAbsent(v) {
		return nil, nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, svcerrors.Errorf(svcerrors.KindValidation, "%s.%s: expected a list", path, key)
	}
	return list.ListValue.GetValues(), nil
}

func stringList(obj fields, path, key string) ([]string, error) {
	values, err := listField(obj, path, key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for i, v := range values {
		s, ok := scalarString(v)
		if !ok {
			return nil, svcerrors.Errorf(svcerrors.KindValidation, "%s.%s[%d]: expected a string", path, key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func objectList(obj fields, path, key string) ([]fields, error) {
	values, err := listField(obj, path, key)
	if err != nil {
		return nil, err
	}
	out := make([]fields, 0, len(values))
	for i, v := range values {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, svcerrors.Errorf(svcerrors.KindValidation, "%s.%s[%d]: expected an object", path, key, i)
		}
		out = append(out, s.StructValue.GetFields())
	}
	return out, nil
}
