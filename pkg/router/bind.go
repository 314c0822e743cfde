package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		return bindQuery(r.URL.Query(), req)

	case http.MethodPost:
		// Multipart bodies are read directly by the handler.
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			return nil
		}

		if r.Body == nil {
			return nil
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(body) == 0 {
			return nil
		}

		return json.Unmarshal(body, req)
	}

	return fmt.Errorf("not supported method %s", method)
}

// bindQuery fills the json-tagged fields of req from query parameters. Only
// string, integer, and boolean fields are supported.
func bindQuery(values url.Values, req any) error {
	structValue := reflect.ValueOf(req).Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		name, _, _ := strings.Cut(structType.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		value := values.Get(name)
		if value == "" {
			continue
		}

		field := structValue.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(value)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer parameter %s: %w", name, err)
			}
			field.SetInt(n)

		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean parameter %s: %w", name, err)
			}
			field.SetBool(b)

		default:
			return fmt.Errorf("not supported query parameter type %s", field.Kind())
		}
	}

	return nil
}
