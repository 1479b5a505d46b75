// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	mJson "github.com/matt-dz/recipematch/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//	@Produce	json
//
//	@Success	200	{object}	PingResponse
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	_ = mJson.WriteJSON(w, http.StatusOK, PingResponse{Status: "ok"})
}
