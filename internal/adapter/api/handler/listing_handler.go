package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/service"
	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Price       *float64 `json:"price"`
	Unit        string   `json:"unit"`
	MinOrder    int      `json:"minOrder"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

// filterFromQuery maps the catalog query string parameters onto a filter.
// tags and stores are comma separated; min_price and max_price are left unset
// when absent or unparsable so that unbounded browsing keeps unpriced
// listings visible.
func filterFromQuery(c echo.Context) service.CatalogFilter {
	filter := service.CatalogFilter{
		Query:    c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	if tags := c.QueryParam("tags"); tags != "" {
		filter.Tags = splitCSV(tags)
	}
	if stores := c.QueryParam("stores"); stores != "" {
		filter.Stores = splitCSV(stores)
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	return filter
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortFromQuery(c echo.Context) service.SortMode {
	switch mode := service.SortMode(c.QueryParam("sort")); mode {
	case service.SortPriceLowToHigh, service.SortPriceHighToLow, service.SortNewest:
		return mode
	default:
		return service.SortFeatured
	}
}

func (h *ListingHandler) ListAds(c echo.Context) error {
	listings, err := h.listingUseCase.ListCatalog(c.Request().Context(), filterFromQuery(c), sortFromQuery(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, listings)
}

func (h *ListingHandler) Suggest(c echo.Context) error {
	suggestions, err := h.listingUseCase.Suggest(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return response.Error(c, err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return response.JSON(c, suggestions)
}

func (h *ListingHandler) Facets(c echo.Context) error {
	facets, err := h.listingUseCase.CatalogFacets(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, facets)
}

func (h *ListingHandler) GetAd(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, listing)
}

func (h *ListingHandler) ListUserAds(c echo.Context) error {
	listings, err := h.listingUseCase.ListBySellerID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, listings)
}

func (h *ListingHandler) CreateAd(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), sellerID, usecase.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Price:       req.Price,
		Unit:        req.Unit,
		MinOrder:    req.MinOrder,
		Stock:       req.Stock,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ad": listing,
	})
}

func (h *ListingHandler) UpdateAd(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	var patch entity.ListingPatch
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), sellerID, patch)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ad": listing,
	})
}

func (h *ListingHandler) DeleteAd(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c)
}
