package web

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var jsonApi = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSerializer replaces echo's default encoding/json serializer with
// jsoniter.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := jsonApi.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

func (JSONSerializer) Deserialize(c echo.Context, i any) error {
	return jsonApi.NewDecoder(c.Request().Body).Decode(i)
}
