package api

import (
	"encoding/json"
	"net/http"
)

type getNetworksResponse struct {
	Networks []string `json:"networks"`
}

func (a *Api) handleGetNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		networks := a.device.KnownNetworks()
		if networks == nil {

			// use literal so it serializes into an empty json array
			networks = []string{}
		}

		a.jsonResponse(w, &getNetworksResponse{Networks: networks}, http.StatusOK)
	}
}

type postNetworkRequest struct {
	Ssid string `json:"ssid"`
	Psk  string `json:"psk"`
}

func (a *Api) handlePostNetwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &postNetworkRequest{}

		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil {
			a.jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if req.Ssid == "" {
			a.jsonError(w, "ssid is required", http.StatusBadRequest)
			return
		}

		err = a.device.RegisterNetwork(req.Ssid, req.Psk)
		if err != nil {
			a.log.Errorf("Could not register network: %v", err)
			a.jsonError(w, "could not register network", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type putApRequest struct {
	Ssid string `json:"ssid"`
	Psk  string `json:"psk"`
}

func (a *Api) handlePutAp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &putApRequest{}

		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil {
			a.jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if req.Ssid == "" {
			a.jsonError(w, "ssid is required", http.StatusBadRequest)
			return
		}

		err = a.device.SetAccessPoint(req.Ssid, req.Psk)
		if err != nil {
			a.log.Errorf("Could not set access point: %v", err)
			a.jsonError(w, "could not set access point", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
