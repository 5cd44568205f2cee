package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
)

// --------------------------------------------------
// Leitura de parâmetros de rota/query
// --------------------------------------------------

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// queryFloat devolve nil quando o parâmetro não veio.
func queryFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido.")
		return nil, false
	}
	return &v, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido.")
		return 0, false
	}
	return v, true
}

// queryCenter lê lat/lon; ambos ausentes devolve nil. Só um deles é erro.
func queryCenter(c *gin.Context) (*geo.Point, bool) {
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return nil, false
	}
	lon, ok := queryFloat(c, "lon")
	if !ok {
		return nil, false
	}

	if (lat == nil) != (lon == nil) {
		httperr.BadRequest(c, "invalid_center", "Informe latitude e longitude.")
		return nil, false
	}
	if lat == nil {
		return nil, true
	}

	center, err := geo.MakeProfessionalLocation(*lat, *lon)
	if err != nil {
		httperr.Respond(c, err)
		return nil, false
	}
	return &center, true
}
