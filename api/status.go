package api

import (
	"net/http"

	"github.com/bricc-land/briccd/wifi"
)

type getStatusResponse struct {
	Status string `json:"status"`
	Ssid   string `json:"ssid,omitempty"`
	Signal uint8  `json:"signal,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (a *Api) handleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := &getStatusResponse{}

		switch status := a.device.Status().(type) {
		case *wifi.ConnectedStatus:
			res.Status = "connected"
			res.Ssid = status.Ssid
			res.Signal = status.Signal
		case *wifi.ApOnlyStatus:
			res.Status = "ap-only"
			res.Ssid = status.Ssid
		case *wifi.DisconnectedStatus:
			res.Status = "disconnected"
		case *wifi.ErrorStatus:
			res.Status = "error"
			res.Error = status.Err.Error()
		default:
			a.jsonError(w, "unknown status", http.StatusInternalServerError)
			return
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}

type getConnectivityResponse struct {
	State string `json:"state"`
}

func (a *Api) handleGetConnectivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := &getConnectivityResponse{
			State: a.device.Connectivity().String(),
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}

func (a *Api) handleGetLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.jsonResponse(w, a.device.LatestLogs(), http.StatusOK)
	}
}
