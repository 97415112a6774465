package api

import (
	"net"
	"net/http"

	"github.com/bricc-land/briccd/device"
	"github.com/go-errors/errors"
	"github.com/gorilla/mux"
)

type Config struct {
	Log Logger
}

type Api struct {
	device *device.Device
	router *mux.Router
	log    Logger
}

// check Api compliance to the device api contract during compile time
var _ device.Api = (*Api)(nil)

func New(config *Config) *Api {
	api := &Api{
		router: mux.NewRouter(),
	}

	if config.Log != nil {
		api.log = config.Log
	} else {
		api.log = noopLogger{}
	}

	api.router.Handle("/api/v1/status", api.handleGetStatus()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/connectivity", api.handleGetConnectivity()).Methods(http.MethodGet)

	api.router.Handle("/api/v1/networks", api.handleGetNetworks()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/networks", api.handlePostNetwork()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/ap", api.handlePutAp()).Methods(http.MethodPut)

	api.router.Handle("/api/v1/name", api.handleGetName()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/name", api.handlePutName()).Methods(http.MethodPut)

	api.router.Handle("/api/v1/logs", api.handleGetLogs()).Methods(http.MethodGet)

	return api
}

func (a *Api) SetDevice(device *device.Device) {
	a.device = device
}

func (a *Api) Serve(l net.Listener) error {
	err := http.Serve(l, a.router)
	if err != nil {
		return errors.Errorf("unable to serve api: %v", err)
	}

	return nil
}
