package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/delivery"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/token"
	"github.com/x-xyz/goclient/middleware"
)

type handler struct {
	token token.Usecase
}

func New(e *echo.Echo, tokenUC token.Usecase) {
	h := &handler{token: tokenUC}
	g := e.Group("/tokens")
	g.GET("/:owner", h.getOwnedTokens, middleware.IsValidAddress("owner"))
	g.GET("/:owner/portfolio", h.getPortfolio, middleware.IsValidAddress("owner"))
	e.GET("/metadata", h.getMetadata)
}

func (h *handler) getOwnedTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	inventory, err := h.token.LoadOwnedTokens(ctx, domain.Address(c.Param("owner")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, inventory)
}

func (h *handler) getPortfolio(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	portfolio, err := h.token.LoadPortfolio(ctx, domain.Address(c.Param("owner")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, portfolio)
}

func (h *handler) getMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	uri := c.QueryParam("uri")
	if uri == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	metadata, err := h.token.TokenMetadata(ctx, uri)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, metadata)
}
