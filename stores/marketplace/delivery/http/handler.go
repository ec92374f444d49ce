package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/delivery"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/marketplace"
	"github.com/x-xyz/goclient/middleware"
)

type handler struct {
	marketplace marketplace.Usecase
}

func New(e *echo.Echo, marketplaceUC marketplace.Usecase) {
	h := &handler{marketplace: marketplaceUC}
	g := e.Group("/marketplace")
	g.GET("/listings", h.getActiveListings)
	g.GET("/listings/:seller", h.getSellerListings, middleware.IsValidAddress("seller"))
	g.GET("/listing/:tokenId", h.getListing)
	g.GET("/fee", h.getFee)
	g.GET("/approval/:owner/:tokenId", h.getApprovalStatus, middleware.IsValidAddress("owner"))
	g.POST("/approval", h.approve)
	g.POST("/listing", h.list)
	g.POST("/purchase", h.buy)
	g.DELETE("/listing/:tokenId", h.cancel)
	g.PATCH("/listing/:tokenId", h.updatePrice)
}

func (h *handler) getActiveListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, err := queryInt64(c, "offset", 0)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	limit, err := queryInt64(c, "limit", 20)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	tokenIds, err := h.marketplace.GetActiveListings(ctx, offset, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	listings, err := h.marketplace.HydrateListings(ctx, tokenIds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	out := make([]*marketplace.Listing, 0, len(tokenIds))
	for _, id := range tokenIds {
		if l, ok := listings[id]; ok {
			out = append(out, l)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

func (h *handler) getSellerListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := domain.Address(c.Param("seller"))
	tokenIds, err := h.marketplace.GetSellerListings(ctx, seller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tokenIds)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	view, err := h.marketplace.GetListingView(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if view == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) getFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	feeBps, err := h.marketplace.MarketplaceFee(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	type resp struct {
		FeeBps     int64  `json:"feeBps"`
		FeePercent string `json:"feePercent"`
	}
	percent := decimal.New(feeBps, -2)
	return delivery.MakeJsonResp(c, http.StatusOK, resp{FeeBps: feeBps, FeePercent: percent.String()})
}

func (h *handler) getApprovalStatus(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("owner"))
	state, err := h.marketplace.ApprovalStatus(ctx, owner, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, state)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	pt, err := h.marketplace.Approve(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pt)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		TokenId string `json:"tokenId" validate:"required"`
		Price   string `json:"price" validate:"required"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := domain.ParsePositiveAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pt, err := h.marketplace.ListNFT(ctx, domain.TokenId(p.TokenId), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pt)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		TokenId string `json:"tokenId" validate:"required"`
		Price   string `json:"price" validate:"required"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := domain.ParsePositiveAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pt, err := h.marketplace.BuyNFT(ctx, domain.TokenId(p.TokenId), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pt)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	pt, err := h.marketplace.CancelListing(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pt)
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Price string `json:"price" validate:"required"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := domain.ParsePositiveAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pt, err := h.marketplace.UpdateListingPrice(ctx, domain.TokenId(c.Param("tokenId")), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pt)
}

func queryInt64(c echo.Context, name string, def int64) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
