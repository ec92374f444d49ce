package http

import (
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/delivery"
	"github.com/x-xyz/goclient/domain/mint"
	"github.com/x-xyz/goclient/domain/token"
)

type handler struct {
	mint mint.Usecase
}

func New(e *echo.Echo, mintUC mint.Usecase) {
	h := &handler{mint: mintUC}
	e.POST("/mint", h.handleMint)
}

func (h *handler) handleMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name        string            `json:"name" validate:"required"`
		Description string            `json:"description"`
		ImgData     string            `json:"imgData" validate:"required"`
		Attributes  []token.Attribute `json:"attributes"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	image, err := base64.StdEncoding.DecodeString(p.ImgData)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	result, err := h.mint.Mint(ctx, &mint.Request{
		Name:        p.Name,
		Description: p.Description,
		Image:       image,
		Attributes:  p.Attributes,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, result)
}
