package swaggerkit

import (
	"encoding/json"
	"net/http"

	"dashboard/internal/core/version"
)

type obj = map[string]any

func jsonBody(desc string, schema obj) obj {
	return obj{"description": desc, "content": obj{"application/json": obj{"schema": schema}}}
}

func ref(name string) obj { return obj{"$ref": "#/components/schemas/" + name} }

var errorResponse = jsonBody("error envelope", ref("Envelope"))

func getOp(tag, summary string, params []obj, ok obj) obj {
	op := obj{
		"tags":    []string{tag},
		"summary": summary,
		"responses": obj{
			"200": ok,
			"400": errorResponse,
			"500": errorResponse,
		},
	}
	if len(params) > 0 {
		op["parameters"] = params
	}
	return obj{"get": op}
}

var dateList = obj{"type": "object", "additionalProperties": obj{"type": "array", "items": obj{"type": "string"}}}

// Doc renders the OpenAPI document for the API served at apiBase
func Doc(apiBase string) []byte {
	doc := obj{
		"openapi": "3.0.3",
		"info":    obj{"title": "Dashboard API", "version": version.Info().Version},
		"servers": []obj{{"url": apiBase}},
		"paths": obj{
			"/calendar-info": getOp("Calendar", "Holidays and name days for the configured years", nil,
				jsonBody("snapshot", ref("Snapshot"))),
			"/calendar-info/{date}": getOp("Calendar", "Holidays and name days for one date",
				[]obj{{"name": "date", "in": "path", "required": true, "schema": obj{"type": "string", "format": "date"}}},
				jsonBody("day", ref("Envelope"))),
			"/weather": getOp("Weather", "Current road weather station data, passed through", nil,
				jsonBody("upstream payload", obj{"type": "object"})),
			"/speak": getOp("Speech", "Finnish text to speech",
				[]obj{{"name": "text", "in": "query", "schema": obj{"type": "string", "maxLength": 200}}},
				obj{"description": "audio", "content": obj{"audio/mpeg": obj{"schema": obj{"type": "string", "format": "binary"}}}}),
			"/meta/health":  getOp("Meta", "Health check", nil, jsonBody("health", ref("Envelope"))),
			"/meta/version": getOp("Meta", "Build and version info", nil, jsonBody("build", ref("Envelope"))),
			"/meta/service": getOp("Meta", "Service info and uptime", nil, jsonBody("service", ref("Envelope"))),
		},
		"components": obj{"schemas": obj{
			"Snapshot": obj{
				"type":       "object",
				"properties": obj{"holidays": dateList, "namedays": dateList},
			},
			"Envelope": obj{
				"type": "object",
				"properties": obj{
					"status_code": obj{"type": "integer"},
					"status":      obj{"type": "string"},
					"code":        obj{"type": "string"},
					"error":       obj{"type": "string"},
					"request_id":  obj{"type": "string"},
					"data":        obj{},
				},
			},
		}},
	}
	b, _ := json.Marshal(doc)
	return b
}

func serveDocJSON(apiBase string) http.HandlerFunc {
	body := Doc(apiBase)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	}
}
