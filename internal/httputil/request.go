package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var errInvalidBody = errors.New("el cuerpo de la solicitud contiene datos inválidos")

// BindData binds the JSON request body to the struct passed in.
// On failure it answers the request with a 400 envelope.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			e := errors.New("el cuerpo de la solicitud no puede estar vacío")
			Error(c, http.StatusBadRequest, e.Error())
			return e
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		Error(c, http.StatusBadRequest, errInvalidBody.Error())
		return errInvalidBody
	}

	return nil
}

// ParseID parses the named path parameter as a UUID.
// On failure it answers the request with a 400 envelope.
func ParseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		Error(c, http.StatusBadRequest, "el identificador no es válido")
		return uuid.Nil, err
	}

	return id, nil
}

// GetBodyFields returns the Go field names of resource for which the
// request body sets a value. The result is used to build partial
// updates that only touch the fields the client actually sent.
//
// This function reads and restores the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse the body into a map to have all fields available
	var mapBody map[string]any

	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		Error(c, http.StatusBadRequest, errInvalidBody.Error())
		return []any{}, errInvalidBody
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param, _, _ := strings.Cut(val.Type().Field(i).Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}
	return bodyFields, nil
}

// GetURLFields checks which query parameters are set and can be used
// directly as gorm query fields.
//
// queryFields contains the field names usable directly in a gorm Where
// statement. As gorm uses interface{} for Where arguments, this cannot
// be a []string.
//
// setFields contains every field name set in the query parameters,
// including fields that need explicit filter logic outside of gorm.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField marks whether the field maps 1:1 to a database
		// column. Fields with filterField:"false" are handled by
		// explicit logic in the controller.
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
