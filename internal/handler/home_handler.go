package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"realtor/internal/errors"
	"realtor/internal/model"
	"realtor/internal/repository"
	"realtor/internal/service"
)

// HomeHandler handles home listing endpoints.
type HomeHandler struct {
	homeService service.HomeService
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(homeService service.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

// HomeImage represents a single image URL attached at creation.
type HomeImage struct {
	URL string `json:"url" validate:"required"`
}

// CreateHomeRequest represents a new listing.
type CreateHomeRequest struct {
	Address           string             `json:"address" validate:"required"`
	City              string             `json:"city" validate:"required"`
	Price             decimal.Decimal    `json:"price" validate:"required"`
	NumberOfBedrooms  int                `json:"numberOfBedrooms" validate:"required"`
	NumberOfBathrooms int                `json:"numberOfBathrooms" validate:"required"`
	PropertyType      model.PropertyType `json:"propertyType" validate:"required,oneof=RESIDENTIAL CONDO"`
	LandSize          float64            `json:"landSize" validate:"required"`
	Image             []HomeImage        `json:"image" validate:"required,dive"`
}

// UpdateHomeRequest represents a partial listing update.
type UpdateHomeRequest struct {
	Address           *string             `json:"address,omitempty"`
	City              *string             `json:"city,omitempty"`
	Price             *decimal.Decimal    `json:"price,omitempty"`
	NumberOfBedrooms  *int                `json:"numberOfBedrooms,omitempty"`
	NumberOfBathrooms *int                `json:"numberOfBathrooms,omitempty"`
	PropertyType      *model.PropertyType `json:"propertyType,omitempty" validate:"omitempty,oneof=RESIDENTIAL CONDO"`
	LandSize          *float64            `json:"landSize,omitempty"`
}

// InquireRequest represents a buyer inquiry about a listing.
type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}

func homeIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid home ID",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// GetHomes godoc
// @Summary Search home listings
// @Tags homes
// @Produce json
// @Param city query string false "Exact city match"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param propertyType query string false "Property type" Enums(RESIDENTIAL, CONDO)
// @Success 200 {array} dto.HomeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes [get]
func (h *HomeHandler) GetHomes(c echo.Context) error {
	var filter repository.HomeFilter

	filter.City = c.QueryParam("city")

	if raw := c.QueryParam("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid minPrice",
				Code:  "INVALID_PRICE",
			})
		}
		filter.MinPrice = &min
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid maxPrice",
				Code:  "INVALID_PRICE",
			})
		}
		filter.MaxPrice = &max
	}
	if raw := c.QueryParam("propertyType"); raw != "" {
		propertyType := model.PropertyType(raw)
		if !propertyType.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid property type",
				Code:  "INVALID_PROPERTY_TYPE",
			})
		}
		filter.PropertyType = propertyType
	}

	homes, err := h.homeService.GetHomes(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, homes)
}

// GetHome godoc
// @Summary Get a home listing by ID
// @Tags homes
// @Produce json
// @Param id path int true "Home ID"
// @Success 200 {object} dto.HomeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id} [get]
func (h *HomeHandler) GetHome(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}

	home, err := h.homeService.GetHomeByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, home)
}

// CreateHome godoc
// @Summary Create a home listing
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHomeRequest true "Listing data"
// @Success 201 {object} dto.HomeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes [post]
func (h *HomeHandler) CreateHome(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateHomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imageURLs := make([]string, 0, len(req.Image))
	for _, img := range req.Image {
		imageURLs = append(imageURLs, img.URL)
	}

	home, err := h.homeService.CreateHome(c.Request().Context(), service.CreateHomeParams{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		PropertyType:      req.PropertyType,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		LandSize:          req.LandSize,
		ImageURLs:         imageURLs,
	}, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, home)
}

// UpdateHome godoc
// @Summary Update a home listing
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Home ID"
// @Param request body UpdateHomeRequest true "Fields to update"
// @Success 200 {object} dto.HomeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id} [put]
func (h *HomeHandler) UpdateHome(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}
	if err := h.requireOwner(c, id); err != nil {
		return err
	}

	var req UpdateHomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	home, err := h.homeService.UpdateHomeByID(c.Request().Context(), id, service.UpdateHomeParams{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		PropertyType:      req.PropertyType,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		LandSize:          req.LandSize,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, home)
}

// DeleteHome godoc
// @Summary Delete a home listing
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Home ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id} [delete]
func (h *HomeHandler) DeleteHome(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}
	if err := h.requireOwner(c, id); err != nil {
		return err
	}

	if err := h.homeService.DeleteHomeByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "home deleted successfully",
	})
}

// GetRealtor godoc
// @Summary Get the realtor of a home listing
// @Tags homes
// @Produce json
// @Param id path int true "Home ID"
// @Success 200 {object} dto.RealtorResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id}/realtor [get]
func (h *HomeHandler) GetRealtor(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}

	realtor, err := h.homeService.GetRealtorByHomeID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, realtor)
}

// Inquire godoc
// @Summary Send an inquiry about a home listing
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Home ID"
// @Param request body InquireRequest true "Inquiry message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id}/inquire [post]
func (h *HomeHandler) Inquire(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req InquireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.homeService.Inquire(c.Request().Context(), claims.UserID, id, req.Message)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, message)
}

// GetHomeMessages godoc
// @Summary List inquiries for a home listing
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Home ID"
// @Success 200 {array} dto.HomeMessage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /homes/{id}/messages [get]
func (h *HomeHandler) GetHomeMessages(c echo.Context) error {
	id, err := homeIDParam(c)
	if err != nil {
		return err
	}
	if err := h.requireOwner(c, id); err != nil {
		return err
	}

	messages, err := h.homeService.GetHomeMessages(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, messages)
}

// requireOwner rejects the request unless the caller is the realtor
// owning the home. Missing homes surface as 404 here so ownership
// checks and lookups agree on not-found semantics.
func (h *HomeHandler) requireOwner(c echo.Context, homeID uint) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	realtor, err := h.homeService.GetRealtorByHomeID(c.Request().Context(), homeID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if realtor.ID != claims.UserID {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return nil
}
