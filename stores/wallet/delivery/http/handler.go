package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/delivery"
	"github.com/x-xyz/goclient/domain/wallet"
)

type handler struct {
	wallet wallet.Usecase
}

func New(e *echo.Echo, walletUC wallet.Usecase) {
	h := &handler{wallet: walletUC}
	g := e.Group("/wallet")
	g.GET("/session", h.getSession)
	g.POST("/connect", h.connect)
	g.POST("/disconnect", h.disconnect)
}

func (h *handler) getSession(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.wallet.Session())
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address, err := h.wallet.Connect(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	h.wallet.Disconnect(ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
