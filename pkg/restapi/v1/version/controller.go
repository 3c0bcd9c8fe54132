/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package version_test -source=controller.go -mock_names router=Mockrouter

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/verifiedid-relay/pkg/service/status"
)

const (
	Path       = "/version"
	SystemPath = "/version/system"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version       string
	ServerVersion string
}

type Controller struct {
	version       string
	serverVersion string
}

type versionResponse struct {
	Version string `json:"version"`
	// StatusMessages is the version of the message table the status endpoint answers with.
	StatusMessages string `json:"statusMessages"`
}

type serverVersionResponse struct {
	Version string `json:"version"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		version:       cfg.Version,
		serverVersion: cfg.ServerVersion,
	}

	router.GET(Path, c.Version)
	router.GET(SystemPath, c.ServerVersion)

	return c
}

func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{
		Version:        c.version,
		StatusMessages: status.MessageTableVersion,
	})
}

func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, serverVersionResponse{Version: c.serverVersion})
}
