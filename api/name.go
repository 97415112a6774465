package api

import (
	"encoding/json"
	"net/http"
)

type nameResponse struct {
	Name string `json:"name"`
}

func (a *Api) handleGetName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := a.device.GetName()
		if err != nil {
			a.log.Errorf("Could not get name: %v", err)
			a.jsonError(w, "could not get name", http.StatusInternalServerError)
			return
		}

		a.jsonResponse(w, &nameResponse{Name: name}, http.StatusOK)
	}
}

type putNameRequest struct {
	Name string `json:"name"`
}

func (a *Api) handlePutName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &putNameRequest{}

		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil {
			a.jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err = a.device.SetName(req.Name)
		if err != nil {
			a.log.Errorf("Could not set name: %v", err)
			a.jsonError(w, "could not set name", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
